// Package arena provides a per-ray bump allocator.
//
// A path tracer allocates a large number of small, short-lived objects per
// ray (BSDF instances, light-sampling records) that all die together when
// the ray finishes. Routing these through the garbage collector on every
// ray is the single biggest allocation-rate problem a renderer has; this
// package avoids it by handing out memory from large reusable blocks and
// resetting the whole arena in O(blocks) once a ray is done, the same
// policy as the teacher's original allocator (renoster/util/allocator.h).
//
// Alloc returns a plain []byte, not a typed pointer: Go generics cannot
// express "construct a T in these bytes" without unsafe, so this package
// stays generic-free and leaves turning bytes into a value to the caller
// (the out-of-scope BSDF implementations, which know their own layout).
package arena

const defaultMinBlockSize = 4096

type block struct {
	bytes     []byte
	bytesUsed int
}

func newBlock(size int) *block {
	return &block{bytes: make([]byte, size)}
}

// alloc returns a zeroed numBytes slice of b's backing array, front-padded
// so its offset from the start of the block is a multiple of alignment, or
// nil if the block doesn't have room.
func (b *block) alloc(numBytes, alignment int) []byte {
	aligned := (b.bytesUsed + alignment - 1) &^ (alignment - 1)
	end := aligned + numBytes
	if end > len(b.bytes) {
		return nil
	}
	b.bytesUsed = end
	p := b.bytes[aligned:end:end]
	clear(p)
	return p
}

func (b *block) reset() { b.bytesUsed = 0 }

// Arena is a bump allocator that reclaims all of its memory at once via
// Reset. It is not safe for concurrent use; the renderer gives each
// worker goroutine its own Arena (spec.md §5: one arena per worker,
// no locking).
type Arena struct {
	minBlockSize int
	used         []*block
	available    []*block
}

// New returns an Arena whose blocks grow in minBlockSize increments (or
// the size of a single oversized allocation, whichever is larger). A
// minBlockSize <= 0 uses a 4KB default.
func New(minBlockSize int) *Arena {
	if minBlockSize <= 0 {
		minBlockSize = defaultMinBlockSize
	}
	return &Arena{minBlockSize: minBlockSize}
}

// Alloc returns numBytes of zeroed memory aligned to alignment within the
// block, valid until the next Reset. It first tries the current block,
// then scans blocks freed by a previous Reset, then allocates a fresh
// block of max(minBlockSize, numBytes) — exactly the teacher's original
// used/available/fresh-block search order.
func (a *Arena) Alloc(numBytes, alignment int) []byte {
	if alignment <= 0 {
		alignment = 1
	}

	if len(a.used) > 0 {
		if p := a.used[0].alloc(numBytes, alignment); p != nil {
			return p
		}
	}

	for i, b := range a.available {
		if p := b.alloc(numBytes, alignment); p != nil {
			a.available = append(a.available[:i], a.available[i+1:]...)
			a.used = append([]*block{b}, a.used...)
			return p
		}
	}

	size := a.minBlockSize
	if numBytes > size {
		size = numBytes
	}
	b := newBlock(size)
	a.used = append([]*block{b}, a.used...)
	return b.alloc(numBytes, alignment)
}

// Reset reclaims every allocation made since the arena was created (or
// last reset), without returning the underlying memory to the OS: blocks
// move from "used" to "available" and are reused by the next round of
// allocations, exactly mirroring the teacher's Block splice.
func (a *Arena) Reset() {
	for _, b := range a.used {
		b.reset()
	}
	a.available = append(a.available, a.used...)
	a.used = a.used[:0]
}
