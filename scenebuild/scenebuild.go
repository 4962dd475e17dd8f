// Package scenebuild implements the scene-construction state machine a
// CLI front end drives to build a Scene and render it: a three-state
// (uninitialized/options/world) machine with transform and
// attribute stacks, plus the named-factory registries construction
// statements look plugins up in.
//
// Grounded on original_source/src/librenoster/reno.cpp (the RenoXxx
// free-function API) and include/renoster/reno.h; every exported method
// here is the Go rendering of one RenoXxx function, generalized from
// free functions plus package-level globals to methods on a Builder
// value so multiple scenes can be built independently (spec.md §6).
package scenebuild

import (
	"fmt"

	"github.com/tomvbussel/renoster/camera"
	"github.com/tomvbussel/renoster/display"
	"github.com/tomvbussel/renoster/film"
	"github.com/tomvbussel/renoster/integrator"
	"github.com/tomvbussel/renoster/light"
	"github.com/tomvbussel/renoster/material"
	"github.com/tomvbussel/renoster/paramlist"
	"github.com/tomvbussel/renoster/plugin"
	"github.com/tomvbussel/renoster/primitive"
	"github.com/tomvbussel/renoster/renderer"
	"github.com/tomvbussel/renoster/sampler"
	"github.com/tomvbussel/renoster/scene"
	"github.com/tomvbussel/renoster/shading"
	"github.com/tomvbussel/renoster/vecmath"
)

// state names the builder's position in the begin/worldBegin/worldEnd/end
// sequence; every construction method checks it the same way every
// RenoXxx function in reno.cpp checks the static RenoState.
type state int

const (
	stateUninitialized state = iota
	stateOptions
	stateWorld
)

// CameraFactory builds a Camera from parameters and the world<->camera
// transform pair in effect when the camera statement was issued. Kept
// separate from plugin.Registry (rather than folded into it) because a
// camera's construction needs that transform pair in addition to params,
// unlike every other named-factory kind (reno.cpp's
// CreateCamera(name, params, WorldToCamera, CameraToWorld)).
type CameraFactory func(params *paramlist.ParameterList, worldToCamera, cameraToWorld vecmath.Transform) (camera.Camera, error)

// LightFactory builds a standalone (non-geometry) light.
type LightFactory func(params *paramlist.ParameterList) (light.Emitter, error)

// GeometryLightFactory builds the light attached to a piece of geometry
// inside a geometryLight/geometry attribute pair.
type GeometryLightFactory func(params *paramlist.ParameterList, geom shading.Primitive) (light.Emitter, error)

// Registries bundles every named-factory table a Builder consults. The
// zero value has no entries registered; callers wire in the reference
// implementations (or their own) before use.
type Registries struct {
	Cameras     map[string]CameraFactory
	Displays    *plugin.Registry[film.Display]
	Integrators *plugin.Registry[integrator.Integrator]
	Samplers    *plugin.Registry[sampler.Sampler]
	Filters     *plugin.Registry[film.Filter]
	Geometries  *plugin.Registry[shading.Primitive]
	Materials   *plugin.Registry[material.Material]
	Lights      map[string]LightFactory
	GeometryLights map[string]GeometryLightFactory
}

// NewRegistries returns an empty Registries with every plugin.Registry
// field initialized and labeled.
func NewRegistries() *Registries {
	return &Registries{
		Cameras:        make(map[string]CameraFactory),
		Displays:       plugin.NewRegistry[film.Display]("display"),
		Integrators:    plugin.NewRegistry[integrator.Integrator]("integrator"),
		Samplers:       plugin.NewRegistry[sampler.Sampler]("sampler"),
		Filters:        plugin.NewRegistry[film.Filter]("pixel filter"),
		Geometries:     plugin.NewRegistry[shading.Primitive]("geometry"),
		Materials:      plugin.NewRegistry[material.Material]("material"),
		Lights:         make(map[string]LightFactory),
		GeometryLights: make(map[string]GeometryLightFactory),
	}
}

// options holds every option-block statement's result, the Go rendering
// of reno.cpp's static Options struct.
type options struct {
	camera     camera.Camera
	display    film.Display
	film       *film.Film
	filter     film.Filter
	integrator integrator.Integrator
	sampler    sampler.Sampler
}

// attributes holds the current material/light-attachment state, the Go
// rendering of reno.cpp's static Attributes struct.
type attributes struct {
	material    material.Material
	lightName   string
	lightParams paramlist.ParameterList
	hasLight    bool
}

// Builder drives scene construction through the begin/worldBegin/
// worldEnd/end state machine. The zero value is not usable; construct
// with New.
type Builder struct {
	registries *Registries

	state state
	opts  options

	curTransform   vecmath.Transform
	transformStack []vecmath.Transform

	curAttributes   attributes
	attributesStack []attributes

	primitives []shading.Primitive
	geometries []shading.Primitive
	lights     []light.Emitter

	// RenderThreads is forwarded to renderer.Options.NumThreads at
	// WorldEnd; 0 uses the runtime default.
	RenderThreads int
}

// New returns a Builder wired to registries, ready for Begin.
func New(registries *Registries) *Builder {
	return &Builder{registries: registries}
}

func stateError(op string) error {
	return fmt.Errorf("scenebuild: %s called in the wrong state", op)
}

// Begin enters the options block. Must be called from the uninitialized
// state.
func (b *Builder) Begin() error {
	if b.state != stateUninitialized {
		return stateError("Begin")
	}
	b.curTransform = vecmath.IdentityTransform()
	b.state = stateOptions
	return nil
}

// End leaves the options block, discarding any options set since Begin.
func (b *Builder) End() error {
	if b.state != stateOptions {
		return stateError("End")
	}
	b.opts = options{}
	b.state = stateUninitialized
	return nil
}

// WorldBegin enters the world block, where geometry, lights, and
// materials are declared.
func (b *Builder) WorldBegin() error {
	if b.state != stateOptions {
		return stateError("WorldBegin")
	}
	b.curTransform = vecmath.IdentityTransform()
	b.state = stateWorld
	return nil
}

// WorldEnd renders the accumulated world with the accumulated options,
// then returns to the options state with the world cleared, mirroring
// RenoWorldEnd's render-then-reset sequence.
func (b *Builder) WorldEnd() error {
	if b.state != stateWorld {
		return stateError("WorldEnd")
	}
	if b.opts.camera == nil || b.opts.film == nil || b.opts.integrator == nil || b.opts.sampler == nil {
		return fmt.Errorf("scenebuild: WorldEnd: camera, film, integrator, and sampler must all be set")
	}

	filter := b.opts.filter
	if filter == nil {
		filter = film.NewBoxFilter(vecmath.V2(0.5, 0.5))
	}

	b.opts.film.RenderBegin(filter, b.opts.display)
	b.opts.camera.RenderBegin(b.opts.film.ScreenWindow())

	scn := scene.New(b.geometries, b.lights)
	renderer.Render(scn, b.opts.camera, b.opts.film, b.opts.sampler, b.opts.integrator, renderer.Options{NumThreads: b.RenderThreads})

	b.opts.camera.RenderEnd()
	if err := b.opts.film.RenderEnd(); err != nil {
		return err
	}

	b.primitives = nil
	b.geometries = nil
	b.lights = nil
	b.state = stateOptions
	return nil
}

// AttributeBegin saves the current transform and material/light
// attributes, restored by the matching AttributeEnd.
func (b *Builder) AttributeBegin() error {
	if b.state != stateWorld {
		return stateError("AttributeBegin")
	}
	b.transformStack = append(b.transformStack, b.curTransform)
	b.attributesStack = append(b.attributesStack, b.curAttributes)
	return nil
}

func (b *Builder) AttributeEnd() error {
	if b.state != stateWorld {
		return stateError("AttributeEnd")
	}
	if len(b.transformStack) == 0 || len(b.attributesStack) == 0 {
		return stateError("AttributeEnd")
	}
	n := len(b.transformStack) - 1
	b.curTransform = b.transformStack[n]
	b.transformStack = b.transformStack[:n]

	n = len(b.attributesStack) - 1
	b.curAttributes = b.attributesStack[n]
	b.attributesStack = b.attributesStack[:n]
	return nil
}

// TransformBegin/TransformEnd save and restore only the current
// transform, not the material/light attributes.
func (b *Builder) TransformBegin() error {
	if b.state != stateWorld {
		return stateError("TransformBegin")
	}
	b.transformStack = append(b.transformStack, b.curTransform)
	return nil
}

func (b *Builder) TransformEnd() error {
	if b.state != stateWorld {
		return stateError("TransformEnd")
	}
	if len(b.transformStack) == 0 {
		return stateError("TransformEnd")
	}
	n := len(b.transformStack) - 1
	b.curTransform = b.transformStack[n]
	b.transformStack = b.transformStack[:n]
	return nil
}

// Identity resets the current transform, valid in either state (reno.cpp
// places no state check on RenoIdentity).
func (b *Builder) Identity() {
	b.curTransform = vecmath.IdentityTransform()
}

func (b *Builder) LookAt(eye, look vecmath.Point3, up vecmath.Vector3) {
	b.curTransform = b.curTransform.Compose(vecmath.LookAt(eye, look, up))
}

func (b *Builder) Orthographic(zNear, zFar float64) {
	b.curTransform = b.curTransform.Compose(vecmath.Orthographic(zNear, zFar))
}

func (b *Builder) Perspective(fovDegrees, zNear, zFar float64) {
	b.curTransform = b.curTransform.Compose(vecmath.Perspective(fovDegrees, zNear, zFar))
}

func (b *Builder) RotateTransform(angleDegrees float64, axis vecmath.Vector3) {
	b.curTransform = b.curTransform.Compose(vecmath.Rotate(angleDegrees*vecmath.DegToRad, axis))
}

func (b *Builder) ScaleTransform(s vecmath.Vector3) {
	b.curTransform = b.curTransform.Compose(vecmath.Scale(s))
}

func (b *Builder) Translate(d vecmath.Vector3) {
	b.curTransform = b.curTransform.Compose(vecmath.Translate(d))
}

// Camera constructs the active camera from the current transform (its
// inverse is WorldToCamera, matching reno.cpp's RenoCamera).
func (b *Builder) Camera(name string, params *paramlist.ParameterList) error {
	if b.state != stateOptions {
		return stateError("Camera")
	}
	factory, ok := b.registries.Cameras[name]
	if !ok {
		return &plugin.NotFoundError{Kind: "camera", Name: name}
	}
	worldToCamera := vecmath.Inverse(b.curTransform)
	cameraToWorld := b.curTransform
	cam, err := factory(params, worldToCamera, cameraToWorld)
	if err != nil {
		return err
	}
	b.opts.camera = cam
	return nil
}

func (b *Builder) Display(name string, params *paramlist.ParameterList) error {
	if b.state != stateOptions {
		return stateError("Display")
	}
	d, err := b.registries.Displays.New(name, params)
	if err != nil {
		return err
	}
	b.opts.display = d
	return nil
}

// Film constructs the film from params alone, matching reno.cpp's
// RenoFilm (there is exactly one film type, so no name/registry).
func (b *Builder) Film(params *paramlist.ParameterList) error {
	if b.state != stateOptions {
		return stateError("Film")
	}
	b.opts.film = filmFromParams(params)
	return nil
}

func (b *Builder) Integrator(name string, params *paramlist.ParameterList) error {
	if b.state != stateOptions {
		return stateError("Integrator")
	}
	integ, err := b.registries.Integrators.New(name, params)
	if err != nil {
		return err
	}
	b.opts.integrator = integ
	return nil
}

func (b *Builder) PixelFilter(name string, params *paramlist.ParameterList) error {
	if b.state != stateOptions {
		return stateError("PixelFilter")
	}
	f, err := b.registries.Filters.New(name, params)
	if err != nil {
		return err
	}
	b.opts.filter = f
	return nil
}

func (b *Builder) Sampler(name string, params *paramlist.ParameterList) error {
	if b.state != stateOptions {
		return stateError("Sampler")
	}
	s, err := b.registries.Samplers.New(name, params)
	if err != nil {
		return err
	}
	b.opts.sampler = s
	return nil
}

// Material sets the material every subsequent Geometry statement (until
// the enclosing AttributeEnd) attaches to.
func (b *Builder) Material(name string, params *paramlist.ParameterList) error {
	if b.state != stateWorld {
		return stateError("Material")
	}
	m, err := b.registries.Materials.New(name, params)
	if err != nil {
		return err
	}
	b.curAttributes.material = m
	return nil
}

// GeometryLight records the light every subsequent Geometry statement
// (until the enclosing AttributeEnd) emits as, deferred until Geometry
// provides the underlying shape (reno.cpp's RenoGeometryLight).
func (b *Builder) GeometryLight(name string, params *paramlist.ParameterList) error {
	if b.state != stateWorld {
		return stateError("GeometryLight")
	}
	b.curAttributes.lightName = name
	b.curAttributes.lightParams = *params
	b.curAttributes.hasLight = true
	return nil
}

// Geometry instances the named geometry at the current transform,
// attaching the current material and (if GeometryLight was called in
// this attribute scope) a geometry light.
func (b *Builder) Geometry(name string, params *paramlist.ParameterList) error {
	if b.state != stateWorld {
		return stateError("Geometry")
	}
	geom, err := b.registries.Geometries.New(name, params)
	if err != nil {
		return err
	}

	objectToWorld := b.curTransform
	prim := primitive.NewTransformedPrimitive(geom, objectToWorld)

	b.geometries = append(b.geometries, prim)
	b.primitives = append(b.primitives, prim)

	if b.curAttributes.hasLight {
		factory, ok := b.registries.GeometryLights[b.curAttributes.lightName]
		if !ok {
			return &plugin.NotFoundError{Kind: "geometry light", Name: b.curAttributes.lightName}
		}
		em, err := factory(&b.curAttributes.lightParams, geom)
		if err != nil {
			return err
		}
		b.lights = append(b.lights, em)
	}

	return nil
}

// Light instances a standalone light at the current transform (reno.cpp's
// RenoLight; there is no TransformedPrimitive wrapper here since a light
// carries its own world/light transform pair via light.Context).
func (b *Builder) Light(name string, params *paramlist.ParameterList) error {
	if b.state != stateWorld {
		return stateError("Light")
	}
	factory, ok := b.registries.Lights[name]
	if !ok {
		return &plugin.NotFoundError{Kind: "light", Name: name}
	}
	em, err := factory(params)
	if err != nil {
		return err
	}
	b.lights = append(b.lights, em)
	return nil
}

// filmFromParams reads the film parameters reno.cpp's CreateFilm reads
// (resolution, crop window, pixel aspect ratio), applying the same
// defaults a freshly constructed ParameterList's scalar getters would.
func filmFromParams(params *paramlist.ParameterList) *film.Film {
	resX := params.GetInt("xresolution", 640)
	resY := params.GetInt("yresolution", 480)
	pixelAspect := params.GetFloat("pixelaspectratio", 1)

	cropMin := params.GetPoint2f("cropwindowmin", vecmath.P2(0, 0))
	cropMax := params.GetPoint2f("cropwindowmax", vecmath.P2(1, 1))

	tileX := params.GetInt("tilesizex", 16)
	tileY := params.GetInt("tilesizey", 16)
	filterTableSize := params.GetInt("filtertablesize", 16)

	resolution := vecmath.V2i(resX, resY)
	frameAspectRatio := float64(resX) * pixelAspect / float64(resY)

	var screenWindow vecmath.Bounds2
	if frameAspectRatio > 1 {
		screenWindow = vecmath.Bounds2{
			Min: vecmath.P2(-frameAspectRatio, -1),
			Max: vecmath.P2(frameAspectRatio, 1),
		}
	} else {
		screenWindow = vecmath.Bounds2{
			Min: vecmath.P2(-1, -1/frameAspectRatio),
			Max: vecmath.P2(1, 1/frameAspectRatio),
		}
	}

	return film.NewFilm(
		resolution, pixelAspect,
		vecmath.Bounds2{Min: cropMin, Max: cropMax},
		frameAspectRatio, screenWindow,
		vecmath.V2i(tileX, tileY), filterTableSize,
		film.ConvolutionSample,
	)
}

// DefaultRegistries returns the reference registries every construction
// statement can resolve against out of the box: the "pinhole" camera,
// the "independent" sampler, the "normal"/"occlusion"/"direct"/"path"
// integrators, the "lambertian" material, and the "image" display.
// Geometry and standalone lights have no reference implementation
// (out of scope; spec.md §1) so those tables start empty.
func DefaultRegistries() *Registries {
	r := NewRegistries()

	r.Cameras["pinhole"] = func(params *paramlist.ParameterList, worldToCamera, cameraToWorld vecmath.Transform) (camera.Camera, error) {
		fov := params.GetFloat("fov", 90)
		return camera.NewPinhole(worldToCamera, cameraToWorld, fov), nil
	}

	r.Samplers.Register("independent", func(params *paramlist.ParameterList) (sampler.Sampler, error) {
		spp := params.GetInt("pixelsamples", 16)
		seed := params.GetInt("seed", 0)
		return sampler.NewIndependent(spp, seed), nil
	})

	r.Integrators.Register("normal", func(*paramlist.ParameterList) (integrator.Integrator, error) {
		return integrator.Normal{}, nil
	})
	r.Integrators.Register("occlusion", func(params *paramlist.ParameterList) (integrator.Integrator, error) {
		maxDist := params.GetFloat("maxdistance", 0)
		numSamples := params.GetInt("numsamples", 0)
		return integrator.NewOcclusion(maxDist, numSamples), nil
	})
	r.Integrators.Register("direct", func(params *paramlist.ParameterList) (integrator.Integrator, error) {
		numLight := params.GetInt("numlightsamples", 0)
		numBSDF := params.GetInt("numbsdfsamples", 0)
		return integrator.NewDirectLighting(numLight, numBSDF), nil
	})
	r.Integrators.Register("path", func(params *paramlist.ParameterList) (integrator.Integrator, error) {
		maxDepth := params.GetInt("maxdepth", 0)
		rrDepth := params.GetInt("rrdepth", 0)
		rrThreshold := params.GetFloat("rrthreshold", 0)
		return integrator.NewPathTracer(maxDepth, rrDepth, rrThreshold), nil
	})

	r.Materials.Register("lambertian", func(params *paramlist.ParameterList) (material.Material, error) {
		refl := params.GetColor("reflectance", vecmath.NewColor(0.5, 0.5, 0.5))
		return &material.Lambertian{Reflectance: refl}, nil
	})

	r.Filters.Register("box", func(params *paramlist.ParameterList) (film.Filter, error) {
		radius := params.GetFloat("radius", 0.5)
		return film.NewBoxFilter(vecmath.V2(radius, radius)), nil
	})

	r.Displays.Register("image", func(params *paramlist.ParameterList) (film.Display, error) {
		filename := params.GetString("filename", "out.png")
		return display.NewImage(filename), nil
	})

	return r
}
