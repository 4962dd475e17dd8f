package sampling

import (
	"math"

	"github.com/tomvbussel/renoster/vecmath"
)

// UniformSampleDisk maps u in [0,1)^2 to a uniformly distributed point on
// the unit disk, via the concentric-free polar mapping used by the
// teacher's original numerical core.
func UniformSampleDisk(u vecmath.Point2) vecmath.Point2 {
	r := math.Sqrt(u.X)
	theta := vecmath.TwoPi * u.Y
	return vecmath.P2(r*math.Cos(theta), r*math.Sin(theta))
}

func UniformSampleDiskPdf(vecmath.Point2) float64 { return vecmath.InvPi }

// UniformSampleSphere maps u to a uniformly distributed direction on the
// unit sphere.
func UniformSampleSphere(u vecmath.Point2) vecmath.Vector3 {
	z := 1 - 2*u.X
	r := math.Sqrt(math.Max(0, 1-z*z))
	phi := vecmath.TwoPi * u.Y
	return vecmath.V3(r*math.Cos(phi), r*math.Sin(phi), z)
}

func UniformSampleSpherePdf(vecmath.Vector3) float64 { return vecmath.InvFourPi }

// UniformSampleTriangle maps u to barycentric coordinates (b0, b1)
// distributed uniformly over a triangle (b2 = 1 - b0 - b1 is implicit).
func UniformSampleTriangle(u vecmath.Point2) vecmath.Point2 {
	a := math.Sqrt(u.X)
	return vecmath.P2(1-a, u.Y*a)
}

func UniformSampleTrianglePdf(vecmath.Point2) float64 { return 0.5 }

// CosineSampleHemisphere maps u to a direction on the unit hemisphere
// (local Z >= 0) distributed proportional to cosine of the polar angle,
// via Malley's method (uniform disk sample lifted onto the hemisphere).
func CosineSampleHemisphere(u vecmath.Point2) vecmath.Vector3 {
	d := UniformSampleDisk(u)
	z := math.Sqrt(math.Max(0, 1-d.X*d.X-d.Y*d.Y))
	return vecmath.V3(d.X, d.Y, z)
}

// CosineSampleHemispherePdf returns the density of CosineSampleHemisphere
// at the local-space direction w.
func CosineSampleHemispherePdf(w vecmath.Vector3) float64 {
	return vecmath.CosTheta(w) * UniformSampleDiskPdf(vecmath.P2(w.X, w.Y))
}

// MISPowerHeuristic combines two sampling strategies' densities using
// Veach's power-2 heuristic, the standard choice for multiple importance
// sampling between light and BSDF sampling.
func MISPowerHeuristic(nF int, pdfF float64, nG int, pdfG float64) float64 {
	f := float64(nF) * pdfF
	g := float64(nG) * pdfG
	return (f * f) / (f*f + g*g)
}
