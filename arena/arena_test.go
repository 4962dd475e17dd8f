package arena

import "testing"

func TestAllocReturnsRequestedSize(t *testing.T) {
	a := New(0)
	b := a.Alloc(24, 8)
	if got, want := len(b), 24; got != want {
		t.Errorf("len(Alloc(24, 8)) = %d, want %d", got, want)
	}
}

func TestAllocDistinctMemory(t *testing.T) {
	a := New(0)
	b1 := a.Alloc(8, 8)
	b2 := a.Alloc(8, 8)
	b1[0] = 1
	b2[0] = 2
	if b1[0] == b2[0] {
		t.Errorf("Alloc() returned aliased memory for two allocations")
	}
}

func TestAllocZeroed(t *testing.T) {
	a := New(0)
	b := a.Alloc(8, 8)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("Alloc()[%d] = %d, want 0 (fresh block should be zeroed)", i, v)
		}
	}
}

func TestAllocGrowsAcrossBlocks(t *testing.T) {
	a := New(64)
	var slices [][]byte
	for i := 0; i < 100; i++ {
		slices = append(slices, a.Alloc(16, 8))
	}
	for i, s := range slices {
		s[0] = byte(i)
	}
	for i, s := range slices {
		if s[0] != byte(i) {
			t.Fatalf("allocation %d was corrupted: got %d", i, s[0])
		}
	}
}

func TestAllocOversizedGetsOwnBlock(t *testing.T) {
	a := New(64)
	b := a.Alloc(1024, 8)
	if len(b) != 1024 {
		t.Errorf("len(Alloc(1024, 8)) = %d, want 1024", len(b))
	}
}

func TestResetReusesBlocks(t *testing.T) {
	a := New(4096)
	b := a.Alloc(16, 8)
	b[0] = 42
	a.Reset()

	if got, want := len(a.used), 0; got != want {
		t.Errorf("len(used) after Reset = %d, want %d", got, want)
	}
	if len(a.available) == 0 {
		t.Errorf("Reset() did not move blocks to available")
	}

	b2 := a.Alloc(16, 8)
	if b2[0] != 0 {
		t.Errorf("Alloc() after Reset returned non-zeroed memory: %d", b2[0])
	}
}

func TestAllocRespectsAlignment(t *testing.T) {
	a := New(0)
	_ = a.Alloc(1, 1) // misalign bytesUsed within the block
	b := a.Alloc(16, 16)
	// The returned slice must start at an offset that's a multiple of 16
	// relative to the block's backing array; verify indirectly by
	// checking the arena's internal bookkeeping advanced by a multiple
	// of 16 plus the requested size.
	if len(b) != 16 {
		t.Errorf("len(Alloc(16, 16)) = %d, want 16", len(b))
	}
	if got, want := a.used[0].bytesUsed, 32; got != want {
		t.Errorf("bytesUsed after Alloc(1, 1), Alloc(16, 16) = %d, want %d", got, want)
	}
}
