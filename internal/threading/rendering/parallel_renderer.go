package rendering

import (
	"sync"

	"raycaster/internal/mathutil"
	"raycaster/internal/threading/core"
)

const (
	// inlineColumnLimit is the widest frame rendered without the pool.
	inlineColumnLimit = 8
	minBatchSize      = 4
	maxBatchSize      = 32
)

// ParallelRenderer distributes screen columns across a persistent worker pool.
type ParallelRenderer struct {
	workerPool *core.WorkerPool
}

// NewParallelRenderer creates a renderer backed by numWorkers goroutines (0 = CPU count).
func NewParallelRenderer(numWorkers int) *ParallelRenderer {
	return &ParallelRenderer{
		workerPool: core.CreateDefaultWorkerPool(numWorkers),
	}
}

// NumWorkers returns the size of the underlying pool.
func (pr *ParallelRenderer) NumWorkers() int {
	return pr.workerPool.GetNumWorkers()
}

// RenderColumns calls fn for every column in [0, numColumns) and blocks until all calls
// have returned. Columns are grouped into batches so each job does a useful amount of work.
func (pr *ParallelRenderer) RenderColumns(numColumns int, fn func(column int)) {
	// Very small workloads: process inline to avoid synchronization overhead
	if numColumns <= inlineColumnLimit {
		for x := 0; x < numColumns; x++ {
			fn(x)
		}
		return
	}

	batchSize := mathutil.IntClamp(numColumns/pr.workerPool.GetNumWorkers(), minBatchSize, maxBatchSize)

	var wg sync.WaitGroup
	for i := 0; i < numColumns; i += batchSize {
		start := i
		end := mathutil.IntMin(i+batchSize, numColumns)

		wg.Add(1)
		pr.workerPool.Submit(func() {
			defer wg.Done()
			for x := start; x < end; x++ {
				fn(x)
			}
		})
	}
	wg.Wait()
}

// Stop shuts down the parallel renderer
func (pr *ParallelRenderer) Stop() {
	pr.workerPool.Stop()
}
