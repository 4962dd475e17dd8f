// Package rng provides the PCG32 pseudo-random generator used for every
// stochastic sampling decision in the renderer (pixel jitter, BSDF
// sampling, light selection, Russian roulette).
//
// Grounded on the teacher's original numerical core (renoster/rng.h). The
// generator step and NewDefault are carried over bit-for-bit. Seed passes
// the stream index through mixSeq first, whose number of mixing rounds
// depends on the CPU (see mix.go), so a given stream index reproduces the
// same sample sequence on one machine but not necessarily across machines.
package rng

const (
	defaultState = 0x853c49e6748fea9b
	defaultSeq   = 0xda3e39cb94b95bdb
	multiplier   = 0x5851f42d4c957f2d

	// oneMinusEpsilon is the largest float32 strictly less than 1,
	// the upper bound Float32 clamps to so that 1.0 is never
	// returned.
	oneMinusEpsilon = 0x1.fffffep-1
)

// PCG32 is a single PCG32 stream. The zero value is not seeded correctly;
// use New or NewDefault.
type PCG32 struct {
	state uint64
	inc   uint64
}

// NewDefault returns a PCG32 seeded with the library's fixed default
// state and stream, matching the teacher's original default constructor.
func NewDefault() *PCG32 {
	return &PCG32{state: defaultState, inc: defaultSeq}
}

// New returns a PCG32 seeded deterministically from seq, typically a
// per-pixel or per-sample-dimension index so that independent streams
// never correlate.
func New(seq uint64) *PCG32 {
	r := &PCG32{}
	r.Seed(seq)
	return r
}

// Seed reseeds the generator from seq, following the PCG reference
// seeding procedure: zero the state, set the stream from seq, advance
// once, add the default state constant, advance again.
func (r *PCG32) Seed(seq uint64) {
	r.state = 0
	r.inc = (mixSeq(seq) << 1) | 1
	r.Uint32()
	r.state += defaultState
	r.Uint32()
}

// Uint32 returns the next uniformly distributed uint32 in the stream.
func (r *PCG32) Uint32() uint32 {
	oldState := r.state
	r.state = oldState*multiplier + r.inc
	xorShifted := uint32(((oldState >> 18) ^ oldState) >> 27)
	rot := uint32(oldState >> 59)
	return (xorShifted >> rot) | (xorShifted << ((-rot) & 31))
}

// Uint64 satisfies rand.Source64 by combining two draws.
func (r *PCG32) Uint64() uint64 {
	hi := uint64(r.Uint32())
	lo := uint64(r.Uint32())
	return hi<<32 | lo
}

// Int63 satisfies rand.Source.
func (r *PCG32) Int63() int64 {
	return int64(r.Uint64() >> 1)
}

// Float32 returns a uniform sample in [0, 1), clamped below 1 exactly as
// the teacher's original sampler does, so that 1/(1-u)-style density
// transforms never divide by zero.
func (r *PCG32) Float32() float32 {
	f := float32(r.Uint32()) * 0x1p-32
	if f > oneMinusEpsilon {
		return oneMinusEpsilon
	}
	return f
}

// Float64 widens Float32 to the float64 precision the rest of the
// renderer computes in.
func (r *PCG32) Float64() float64 {
	return float64(r.Float32())
}
