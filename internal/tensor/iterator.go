package tensor

import (
	"fmt"
	"iter"
)

// StartIndex returns the cursor at the first element: Seq 0, all-zero position.
func (t *DenseTensor[E]) StartIndex() SequentialIndex {
	return SequentialIndex{Position: make([]int, len(t.shape)), Seq: 0}
}

// EndIndex returns the past-the-end cursor. Its position is meaningless and
// must not be dereferenced.
func (t *DenseTensor[E]) EndIndex() SequentialIndex {
	return SequentialIndex{Position: make([]int, len(t.shape)), Seq: t.count}
}

// IndexAfter returns the cursor one odometer step after i. The argument is
// left untouched, so independent cursors never share state.
func (t *DenseTensor[E]) IndexAfter(i SequentialIndex) SequentialIndex {
	next := i.clone()
	t.shape.Increment(next.Position, t.order)
	next.Seq++
	return next
}

// AtIndex returns the element under cursor i.
// Panics with ErrIndexOutOfBounds at or beyond EndIndex.
func (t *DenseTensor[E]) AtIndex(i SequentialIndex) E {
	if i.Seq < 0 || i.Seq >= t.count {
		panic(fmt.Errorf("%w: sequence index %d, count %d", ErrIndexOutOfBounds, i.Seq, t.count))
	}
	return t.buffer.data[t.LinearOffset(i.Position)]
}

// DenseIterator yields the elements of a tensor in iteration order (last axis
// fastest for RowMajor, first axis fastest for ColMajor). It is one-shot;
// call Elements again for a fresh pass.
type DenseIterator[E any] struct {
	tensor *DenseTensor[E]
	index  SequentialIndex
}

// Elements returns a new iterator positioned at StartIndex.
func (t *DenseTensor[E]) Elements() *DenseIterator[E] {
	return &DenseIterator[E]{tensor: t, index: t.StartIndex()}
}

// Next returns the element under the cursor and then advances it.
// The second result is false once every element has been produced.
func (it *DenseIterator[E]) Next() (E, bool) {
	t := it.tensor
	if it.index.Seq >= t.count {
		var zero E
		return zero, false
	}
	v := t.buffer.data[t.LinearOffset(it.index.Position)]
	t.shape.Increment(it.index.Position, t.order)
	it.index.Seq++
	return v, true
}

// Index returns a copy of the cursor of the next element to be produced.
func (it *DenseIterator[E]) Index() SequentialIndex {
	return it.index.clone()
}

// All iterates over (cursor, element) pairs in iteration order.
// The cursor's position slice is reused between steps.
func (t *DenseTensor[E]) All() iter.Seq2[SequentialIndex, E] {
	return func(yield func(SequentialIndex, E) bool) {
		idx := t.StartIndex()
		for ; idx.Seq < t.count; idx.Seq++ {
			if !yield(idx, t.buffer.data[t.LinearOffset(idx.Position)]) {
				return
			}
			t.shape.Increment(idx.Position, t.order)
		}
	}
}

// Values iterates over the elements in iteration order.
func (t *DenseTensor[E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		it := t.Elements()
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
