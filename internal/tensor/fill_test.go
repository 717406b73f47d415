package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A fill of 7 over shape (4) yields exactly [7 7 7 7].
func TestFillElements(t *testing.T) {
	f, err := NewFill(Shape{4}, 7)
	require.NoError(t, err)
	assert.Equal(t, 4, f.Count())
	assert.Equal(t, 7, f.Element())
	assert.Equal(t, RowMajor, f.Order())

	var got []int
	it := f.Elements()
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{7, 7, 7, 7}, got)
	assert.Zero(t, it.Remaining())

	got = got[:0]
	for v := range f.Values() {
		got = append(got, v)
	}
	assert.Equal(t, []int{7, 7, 7, 7}, got)
}

func TestFillRepeat(t *testing.T) {
	f, err := NewFill(Shape{2, 2}, 1.5)
	require.NoError(t, err)

	it := f.Repeat(2)
	assert.Equal(t, 2, it.Remaining())
	_, ok := it.Next()
	assert.True(t, ok)
	_, ok = it.Next()
	assert.True(t, ok)
	_, ok = it.Next()
	assert.False(t, ok)

	assert.Zero(t, f.Repeat(-3).Remaining())
}

func TestFillEmpty(t *testing.T) {
	f, err := NewFill(Shape{0, 5}, true)
	require.NoError(t, err)
	_, ok := f.Elements().Next()
	assert.False(t, ok)

	d := f.AsDense()
	assert.Equal(t, 0, d.SpanCount())
	assert.Empty(t, drain(d.Elements()))
}

func TestFillInvalidShape(t *testing.T) {
	_, err := NewFill(Shape{-1}, 0)
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestFillEqual(t *testing.T) {
	a, _ := NewFill(Shape{2, 3}, 1)
	b, _ := NewFill(Shape{2, 3}, 1)
	c, _ := NewFill(Shape{3, 2}, 1)
	d, _ := NewFill(Shape{2, 3}, 2)

	assert.True(t, FillEqual(a, b))
	assert.False(t, FillEqual(a, c))
	assert.False(t, FillEqual(a, d))
}

func TestFillAsDense(t *testing.T) {
	f, err := NewFill(Shape{2, 3}, 5)
	require.NoError(t, err)

	d := f.AsDense()
	assert.Equal(t, []int{0, 0}, d.Strides())
	assert.Equal(t, 6, d.Count())
	assert.Equal(t, 1, d.SpanCount())
	assert.Equal(t, 1, d.Buffer().Len())
	assert.True(t, d.IsShared())
	assert.Equal(t, [][]int{{5, 5, 5}, {5, 5, 5}}, d.Nested())

	d.Set(8, 1, 1)
	assert.Equal(t, [][]int{{5, 5, 5}, {5, 8, 5}}, d.Nested())
	assert.Equal(t, 5, f.Element())
}

func TestFillMaterialize(t *testing.T) {
	f, err := NewFill(Shape{2, 2}, int32(3))
	require.NoError(t, err)

	m, err := f.Materialize(ColMajor)
	require.NoError(t, err)
	assert.True(t, m.IsContiguous())
	assert.Equal(t, ColMajor, m.Order())
	assert.Equal(t, []int32{3, 3, 3, 3}, m.Buffer().Slice(0, 4))
	assert.True(t, Equal(m, f.AsDense()))
}

func TestFillString(t *testing.T) {
	f, err := NewFill(Shape{4}, 7)
	require.NoError(t, err)
	assert.Equal(t, "FillTensor(4)(7)", f.String())
}
