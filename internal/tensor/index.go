package tensor

// SequentialIndex is a cursor into a tensor: a logical Position plus the
// number of elements visited before it (Seq).
//
// Ordering and equality use Seq only. Position is auxiliary state used to
// compute buffer offsets, so two cursors over differently strided tensors
// still compare by how far they have advanced.
type SequentialIndex struct {
	Position []int
	Seq      int
}

// Equal reports whether both cursors have advanced the same distance.
func (i SequentialIndex) Equal(other SequentialIndex) bool {
	return i.Seq == other.Seq
}

// Less reports whether i precedes other.
func (i SequentialIndex) Less(other SequentialIndex) bool {
	return i.Seq < other.Seq
}

// Compare returns -1, 0 or +1, suitable for slices.SortFunc.
func (i SequentialIndex) Compare(other SequentialIndex) int {
	switch {
	case i.Seq < other.Seq:
		return -1
	case i.Seq > other.Seq:
		return 1
	default:
		return 0
	}
}

// clone copies the position so the result can be advanced independently.
func (i SequentialIndex) clone() SequentialIndex {
	pos := make([]int, len(i.Position))
	copy(pos, i.Position)
	return SequentialIndex{Position: pos, Seq: i.Seq}
}
