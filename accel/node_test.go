package accel

import "testing"

func TestNodeRefRoundTrips(t *testing.T) {
	tests := []struct {
		tag   uint16
		index int
	}{
		{tagAligned, 0},
		{tagLeaf, 1},
		{tagUnalignedMB4D, 1<<20 + 7},
		{tagAligned, int(indexMask)},
	}
	for _, tt := range tests {
		r := newNodeRef(tt.tag, tt.index)
		if got := r.tag(); got != tt.tag {
			t.Errorf("newNodeRef(%d, %d).tag() = %d, want %d", tt.tag, tt.index, got, tt.tag)
		}
		if got := r.index(); got != tt.index {
			t.Errorf("newNodeRef(%d, %d).index() = %d, want %d", tt.tag, tt.index, got, tt.index)
		}
	}
}

func TestNodeRefZeroValueIsAlignedIndexZero(t *testing.T) {
	var r nodeRef
	if r.tag() != tagAligned || r.index() != 0 {
		t.Errorf("zero nodeRef = (tag %d, index %d), want (0, 0)", r.tag(), r.index())
	}
}

func TestNewNodeRefPanicsOnOverflow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("newNodeRef(tagLeaf, indexMask+1) did not panic")
		}
	}()
	newNodeRef(tagLeaf, int(indexMask)+1)
}
