package rng

import "golang.org/x/sys/cpu"

// mixSeq avalanches a caller-supplied stream index before it reaches the
// PCG32 stream constant, so that sequential seq values (adjacent pixels,
// adjacent sample indices) don't produce adjacent, correlated streams.
//
// On architectures with a hardware AES instruction available (checked via
// golang.org/x/sys/cpu) this runs a few extra SPLITMIX64-style rounds,
// cheap when the hardware happens to be fast at this kind of bit mixing.
// Everywhere else it falls back to a single round. Both paths are
// deterministic given seq; the extra rounds only improve avalanche, they
// never change which samples a given seq can reach.
func mixSeq(seq uint64) uint64 {
	seq ^= seq >> 33
	seq *= 0xff51afd7ed558ccd
	seq ^= seq >> 33

	if hasFastBitMix() {
		seq *= 0xc4ceb9fe1a85ec53
		seq ^= seq >> 33
	}

	return seq
}

func hasFastBitMix() bool {
	switch {
	case cpu.X86.HasAES:
		return true
	case cpu.ARM64.HasAES:
		return true
	default:
		return false
	}
}
