// Package renderer drives the parallel render loop: a fixed pool of
// worker goroutines pulling whole tiles from the film's tile generator,
// each with its own arena, sampler clone, and accumulator.
//
// Grounded on spec.md §4.6's per-tile/per-pixel pseudocode and the
// teacher's internal/parallel.WorkerPool for the fixed-size goroutine
// pool + join shape (see DESIGN.md for why the teacher's per-worker
// queues and work-stealing are not carried over: renoster's unit of
// parallel work is "pull one tile from a mutex-guarded generator",
// which already load-balances without them).
package renderer

import (
	"runtime"
	"sync"

	"github.com/tomvbussel/renoster/arena"
	"github.com/tomvbussel/renoster/camera"
	"github.com/tomvbussel/renoster/film"
	"github.com/tomvbussel/renoster/integrator"
	"github.com/tomvbussel/renoster/sampler"
	"github.com/tomvbussel/renoster/vecmath"
)

// Options configures a render pass.
type Options struct {
	// NumThreads is the number of worker goroutines to spawn. <= 0 uses
	// runtime.GOMAXPROCS(0).
	NumThreads int
}

// Render runs integ over every tile flm.GetNextTile yields, blocking
// until every worker has drained the generator and merged its tiles.
// samp is the prototype sampler each worker clones (seeded by tile ID,
// spec.md §5's determinism-by-construction guarantee).
func Render(scn integrator.Scene, cam camera.Camera, flm *film.Film, samp sampler.Sampler, integ integrator.Integrator, opts Options) {
	numThreads := opts.NumThreads
	if numThreads <= 0 {
		numThreads = runtime.GOMAXPROCS(0)
	}

	var wg sync.WaitGroup
	wg.Add(numThreads)
	for i := 0; i < numThreads; i++ {
		go func() {
			defer wg.Done()
			runWorker(scn, cam, flm, samp, integ)
		}()
	}
	wg.Wait()
}

// runWorker is one worker's tile loop: pull a tile, clone the sampler
// seeded by the tile's ID, estimate every sample in the tile's sample
// bounds, and merge the finished tile back into the film. Per-worker
// state (alloc, accum, the sampler clone) is never shared, so no
// synchronization is needed here beyond what GetNextTile/MergeFilmTile
// already provide (spec.md §5).
func runWorker(scn integrator.Scene, cam camera.Camera, flm *film.Film, samp sampler.Sampler, integ integrator.Integrator) {
	alloc := arena.New(0)
	var accum film.Accumulator
	accum.Reset()

	for {
		tile, ok := flm.GetNextTile()
		if !ok {
			return
		}

		localSampler := samp.Clone(tile.TileID())
		ctx := integrator.Context{Scene: scn, Sampler: localSampler, Alloc: alloc}

		tile.SampleBounds().Points(func(pixel vecmath.Point2i) {
			localSampler.StartPixel(pixel)
			for localSampler.StartNextSample() {
				pSample, pdf := tile.Sample(pixel, localSampler)
				pScreen := flm.RasterToScreen(pSample)
				time := localSampler.Get1D()
				ray, w := cam.GenerateRay(localSampler, pScreen, time)

				accum.Scale(w / pdf)
				integ.Integrate(ctx, ray, &accum)
				tile.AddSample(pixel, pSample, &accum)
				accum.Reset()
				alloc.Reset()
			}
		})

		flm.MergeFilmTile(tile)
	}
}
