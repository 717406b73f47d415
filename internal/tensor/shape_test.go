package tensor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orders = []StorageOrder{RowMajor, ColMajor}

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{2, 3}, 6},
		{Shape{2, 3, 4}, 24},
		{Shape{2, 0, 4}, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.shape.NumElements(), "shape %v", tt.shape)
	}
}

func TestShapeValidate(t *testing.T) {
	assert.NoError(t, Shape{}.Validate())
	assert.NoError(t, Shape{2, 0, 3}.Validate())
	assert.ErrorIs(t, Shape{2, -1}.Validate(), ErrInvalidShape)
	assert.ErrorIs(t, Shape{math.MaxInt / 2, 3}.Validate(), ErrInvalidShape)

	// A zero extent does not hide an overflowing stride.
	assert.ErrorIs(t, Shape{0, math.MaxInt / 2, 3}.Validate(), ErrInvalidShape)
	assert.ErrorIs(t, Shape{math.MaxInt / 2, 0, 3}.Validate(), ErrInvalidShape)
}

func TestShapeSequentialStrides(t *testing.T) {
	assert.Equal(t, []int{3, 1}, Shape{2, 3}.SequentialStrides(RowMajor))
	assert.Equal(t, []int{1, 2}, Shape{2, 3}.SequentialStrides(ColMajor))
	assert.Equal(t, []int{12, 4, 1}, Shape{2, 3, 4}.SequentialStrides(RowMajor))
	assert.Equal(t, []int{1, 2, 6}, Shape{2, 3, 4}.SequentialStrides(ColMajor))
	assert.Empty(t, Shape{}.SequentialStrides(RowMajor))
}

// Odometer increments over sequential strides visit every offset once, in
// increasing order.
func TestShapeIncrementVisitsSequentialOffsets(t *testing.T) {
	shapes := []Shape{{7}, {2, 3}, {3, 1, 4}, {2, 3, 2, 2}, {1, 2, 1, 3, 1, 2}}
	for _, shape := range shapes {
		for _, order := range orders {
			strides := shape.SequentialStrides(order)
			position := make([]int, len(shape))
			for want := 0; want < shape.NumElements(); want++ {
				require.Equal(t, want, dot(position, strides), "shape %v %s", shape, order)
				shape.Increment(position, order)
			}
			assert.Equal(t, make([]int, len(shape)), position, "terminal state wraps to zero")
		}
	}
}

func TestShapeIncrementOrder(t *testing.T) {
	position := []int{0, 2}
	Shape{2, 3}.Increment(position, RowMajor)
	assert.Equal(t, []int{1, 0}, position)

	position = []int{1, 0}
	Shape{2, 3}.Increment(position, ColMajor)
	assert.Equal(t, []int{0, 1}, position)
}

func TestShapeUnravel(t *testing.T) {
	shape := Shape{2, 3, 4}
	for _, order := range orders {
		position := make([]int, 3)
		seq := 0
		for want := range shape.Positions(order) {
			shape.Unravel(seq, order, position)
			require.Equal(t, want, position, "seq %d %s", seq, order)
			seq++
		}
		assert.Equal(t, 24, seq)
	}
}

func TestShapeContains(t *testing.T) {
	s := Shape{2, 3}
	assert.True(t, s.Contains([]int{1, 2}))
	assert.False(t, s.Contains([]int{2, 0}))
	assert.False(t, s.Contains([]int{0, -1}))
	assert.False(t, s.Contains([]int{0}))
}

func TestShapePositionsEmpty(t *testing.T) {
	n := 0
	for range (Shape{3, 0}).Positions(RowMajor) {
		n++
	}
	assert.Zero(t, n)
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "(2, 3)", Shape{2, 3}.String())
	assert.Equal(t, "()", Shape{}.String())
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		a, b      Shape
		want      Shape
		broadcast bool
		wantErr   bool
	}{
		{Shape{3, 1}, Shape{3, 5}, Shape{3, 5}, true, false},
		{Shape{1, 5}, Shape{3, 5}, Shape{3, 5}, true, false},
		{Shape{3, 5}, Shape{3, 5}, Shape{3, 5}, false, false},
		{Shape{5}, Shape{3, 5}, Shape{3, 5}, true, false},
		{Shape{3, 4}, Shape{3, 5}, nil, false, true},
	}
	for _, tt := range tests {
		got, broadcast, err := BroadcastShapes(tt.a, tt.b)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrShapeMismatch)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.broadcast, broadcast, "%v + %v", tt.a, tt.b)
	}
}

func TestSequentialIndexCompare(t *testing.T) {
	a := SequentialIndex{Position: []int{1, 0}, Seq: 3}
	b := SequentialIndex{Position: []int{0, 1}, Seq: 3}
	c := SequentialIndex{Position: []int{0, 0}, Seq: 4}

	assert.True(t, a.Equal(b), "positions are ignored")
	assert.True(t, a.Less(c))
	assert.False(t, c.Less(a))
	assert.Equal(t, 0, a.Compare(b))
	assert.Equal(t, -1, a.Compare(c))
	assert.Equal(t, 1, c.Compare(a))
}

func TestDataType(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
		name  string
	}{
		{Float32, 4, "float32"},
		{Float64, 8, "float64"},
		{Int32, 4, "int32"},
		{Int64, 8, "int64"},
		{Uint8, 1, "uint8"},
		{Bool, 1, "bool"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.size, tt.dtype.Size())
		assert.Equal(t, tt.name, tt.dtype.String())
	}
	assert.Equal(t, Float32, DataTypeOf[float32]())
	assert.Equal(t, Bool, DataTypeOf[bool]())
	assert.Equal(t, Unknown, DataTypeOf[string]())
}
