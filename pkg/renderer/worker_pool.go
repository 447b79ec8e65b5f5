package renderer

import (
	"runtime"
	"sync"

	"github.com/df07/go-pathtracer/pkg/core"
)

// WorkerPool runs a fixed set of workers over a flattened pixel index space.
// Worker k owns every index i with i % numWorkers == k, so the sets are disjoint
// and together cover [0, totalPixels). There is no queue and no stealing.
type WorkerPool struct {
	workers     []*Worker
	numWorkers  int
	totalPixels int
	wg          sync.WaitGroup
}

// Worker owns one interleaved slice of the pixels and its own sampler
type Worker struct {
	ID      int
	Sampler *core.RandomSampler
	Samples int // Samples taken by this worker during the last run
	pool    *WorkerPool
}

// NewWorkerPool creates a pool for totalPixels pixels. numWorkers <= 0 uses the
// CPU count; the pool never has more workers than pixels.
func NewWorkerPool(totalPixels, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	numWorkers = max(1, min(numWorkers, totalPixels))

	wp := &WorkerPool{
		numWorkers:  numWorkers,
		totalPixels: totalPixels,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:      i,
			Sampler: core.NewRandomSampler(0, uint64(i)),
			pool:    wp,
		})
	}

	return wp
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Workers returns the pool's workers
func (wp *WorkerPool) Workers() []*Worker {
	return wp.workers
}

// Run spawns one goroutine per worker, calls fn for every pixel the worker owns,
// and returns once all workers have finished.
func (wp *WorkerPool) Run(fn func(w *Worker, pixelIndex int)) {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg, fn)
	}
	wp.wg.Wait()
}

// ForEachPixel calls fn for every pixel index owned by the worker, in increasing order
func (w *Worker) ForEachPixel(fn func(pixelIndex int)) {
	for i := w.ID; i < w.pool.totalPixels; i += w.pool.numWorkers {
		fn(i)
	}
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup, fn func(w *Worker, pixelIndex int)) {
	defer wg.Done()

	w.ForEachPixel(func(pixelIndex int) {
		fn(w, pixelIndex)
	})
}

// PartitionPixels returns the pixel indices each worker of a pool would own
func PartitionPixels(totalPixels, numWorkers int) [][]int {
	wp := NewWorkerPool(totalPixels, numWorkers)
	partition := make([][]int, wp.numWorkers)
	for _, worker := range wp.workers {
		worker.ForEachPixel(func(pixelIndex int) {
			partition[worker.ID] = append(partition[worker.ID], pixelIndex)
		})
	}
	return partition
}
