package rng

import "testing"

func TestNewDefaultMatchesReferenceSequence(t *testing.T) {
	r := NewDefault()
	// First few outputs of the reference PCG32 implementation seeded with
	// its default state/stream constants.
	want := []uint32{0x152ca78d, 0x027c6003, 0xcb07bbf3, 0xf98befee}
	for i, w := range want {
		if got := r.Uint32(); got != w {
			t.Errorf("Uint32() #%d = %#x, want %#x", i, got, w)
		}
	}
}

func TestSeedIsDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 8; i++ {
		if ga, gb := a.Uint32(), b.Uint32(); ga != gb {
			t.Fatalf("draw %d diverged: %#x vs %#x", i, ga, gb)
		}
	}
}

func TestDifferentSeqDiverge(t *testing.T) {
	a := New(1)
	b := New(2)
	same := true
	for i := 0; i < 8; i++ {
		if a.Uint32() != b.Uint32() {
			same = false
			break
		}
	}
	if same {
		t.Errorf("streams seeded from different seq values produced identical output")
	}
}

func TestFloat32Bounded(t *testing.T) {
	r := NewDefault()
	for i := 0; i < 10000; i++ {
		f := r.Float32()
		if f < 0 || f >= 1 {
			t.Fatalf("Float32() = %v, want in [0, 1)", f)
		}
	}
}
