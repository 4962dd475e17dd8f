// Package camera provides the Camera interface every integrator calls
// to turn a film-plane sample into a world-space ray, and the reference
// Pinhole implementation.
//
// Grounded on original_source/include/renoster/camera.h and
// src/plugins/cameras/pinhole.cpp.
package camera

import (
	"math"

	"github.com/tomvbussel/renoster/sampler"
	"github.com/tomvbussel/renoster/vecmath"
)

// Camera generates the primary ray for a film-plane sample.
type Camera interface {
	// GenerateRay returns the world-space ray through pScreen (screen
	// space, as produced by film.Film.RasterToScreen) at the given
	// time, along with the ray's importance weight (1 for every camera
	// model this renderer ships, but kept as a return value so a future
	// camera with non-uniform importance, a physical lens model, does
	// not need an interface change).
	GenerateRay(s sampler.Sampler, pScreen vecmath.Point2, time float64) (ray vecmath.Ray, weight float64)

	RenderBegin(screenWindow vecmath.Bounds2)
	RenderEnd()
}

// Pinhole is an idealized perspective camera with no lens (an
// infinitesimal aperture, so every ray originates at the same point)
// and no depth of field.
type Pinhole struct {
	worldToCamera vecmath.Transform
	cameraToWorld vecmath.Transform
	fov           float64
	zoom          float64
}

func NewPinhole(worldToCamera, cameraToWorld vecmath.Transform, fovDegrees float64) *Pinhole {
	return &Pinhole{
		worldToCamera: worldToCamera,
		cameraToWorld: cameraToWorld,
		fov:           fovDegrees,
		zoom:          math.Tan(0.5 * fovDegrees * vecmath.DegToRad),
	}
}

func (c *Pinhole) GenerateRay(_ sampler.Sampler, pScreen vecmath.Point2, time float64) (vecmath.Ray, float64) {
	ray := vecmath.NewRay(
		vecmath.Point3{},
		vecmath.V3(pScreen.X*c.zoom, pScreen.Y*c.zoom, 1).Normalize(),
		vecmath.Epsilon,
		math.Inf(1),
		time,
	)
	return c.cameraToWorld.Ray(ray), 1
}

func (c *Pinhole) RenderBegin(vecmath.Bounds2) {}

func (c *Pinhole) RenderEnd() {}
