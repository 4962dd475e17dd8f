package sampler

import (
	"github.com/tomvbussel/renoster/rng"
	"github.com/tomvbussel/renoster/vecmath"
)

// Independent draws every sample from a fresh PCG32 stream with no
// stratification, original_source's IndependentSampler.
type Independent struct {
	samplesPerPixel int
	currentPixel    vecmath.Point2i
	currentSample   int
	rng             *rng.PCG32
}

// NewIndependent returns an Independent sampler producing spp samples
// per pixel, seeded from seed.
func NewIndependent(spp, seed int) *Independent {
	return &Independent{
		samplesPerPixel: spp,
		rng:             rng.New(uint64(seed)),
	}
}

func (s *Independent) Get1D() float64 { return s.rng.Float64() }

func (s *Independent) Get2D() vecmath.Point2 {
	return vecmath.P2(s.Get1D(), s.Get1D())
}

func (s *Independent) StartPixel(pixel vecmath.Point2i) {
	s.currentPixel = pixel
	s.currentSample = 0
}

func (s *Independent) StartNextSample() bool {
	ok := s.currentSample < s.samplesPerPixel
	s.currentSample++
	return ok
}

func (s *Independent) Clone(seed int) Sampler {
	return NewIndependent(s.samplesPerPixel, seed)
}
