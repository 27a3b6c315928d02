package renderer

import (
	"fmt"
	"image/color"
	"math/rand"
	"runtime"
	"sync"

	"github.com/mdillard/go-pathtracer/pkg/core"
)

// ChunkTask represents a chunk rendering task for the worker pool
type ChunkTask struct {
	Chunk Chunk
	Seed  int64 // Base seed; combined with the chunk ID for determinism
}

// PixelResult pairs a pixel coordinate with its computed color
type PixelResult struct {
	X, Y  int
	Color color.RGBA
}

// ChunkResult contains the result from rendering one chunk. Completion
// order is unconstrained; the driver merges results by coordinate.
type ChunkResult struct {
	ChunkID int
	Pixels  []PixelResult
	Err     error
}

// WorkerPool manages parallel chunk rendering
type WorkerPool struct {
	taskQueue   chan ChunkTask
	resultQueue chan ChunkResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual chunk rendering tasks
type Worker struct {
	ID          int
	raytracer   *Raytracer
	taskQueue   chan ChunkTask
	resultQueue chan ChunkResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// A non-positive count uses the available hardware parallelism. maxChunks
// sizes the queues so submission and collection never block each other.
func NewWorkerPool(scene Scene, numWorkers, maxChunks int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan ChunkTask, maxChunks),
		resultQueue: make(chan ChunkResult, maxChunks),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			raytracer:   NewRaytracer(scene),
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a chunk task to the worker pool
func (wp *WorkerPool) SubmitTask(task ChunkTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed chunk result
func (wp *WorkerPool) GetResult() (ChunkResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		pixels, err := w.renderChunk(task)
		w.resultQueue <- ChunkResult{
			ChunkID: task.Chunk.ID,
			Pixels:  pixels,
			Err:     err,
		}
	}
}

// renderChunk computes every pixel in the chunk. Each chunk owns a sampler
// seeded from its ID, so results do not depend on which worker picked the
// chunk up or in what order chunks complete.
func (w *Worker) renderChunk(task ChunkTask) (pixels []PixelResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			pixels = nil
			err = fmt.Errorf("worker %d failed on chunk %d: %v", w.ID, task.Chunk.ID, r)
		}
	}()

	sampler := ChunkSampler(task.Chunk, task.Seed)
	width := w.raytracer.camera.ImageWidth()

	pixels = make([]PixelResult, 0, task.Chunk.Size())
	for p := task.Chunk.Start; p < task.Chunk.End; p++ {
		x := p % width
		y := p / width
		pixels = append(pixels, PixelResult{
			X:     x,
			Y:     y,
			Color: w.raytracer.RenderPixel(x, y, sampler),
		})
	}

	return pixels, nil
}

// ChunkSampler creates the deterministic sampler a chunk renders with. The
// serial path uses the same construction, which is what makes serial and
// parallel renders pixel-identical.
func ChunkSampler(chunk Chunk, seed int64) core.Sampler {
	// +42 keeps chunk 0 with seed 0 off the degenerate zero seed
	return core.NewRandomSampler(rand.New(rand.NewSource(seed + int64(chunk.ID) + 42)))
}
