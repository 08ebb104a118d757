// Package parallel provides the worker pool handed into scalers by the
// caller. The resize engine never owns a pool; a nil *Pool means strictly
// sequential execution.
package parallel

import (
	"sync"
)

// Pool bounds the number of goroutines a single resize may fan out to.
type Pool struct {
	workers int
	sem     chan struct{}
}

// NewPool returns a pool allowing up to workers concurrent tasks.
// workers < 1 is clamped to 1.
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		workers: workers,
		sem:     make(chan struct{}, workers),
	}
}

// Workers reports the pool size. A nil pool reports 1.
func (p *Pool) Workers() int {
	if p == nil {
		return 1
	}
	return p.workers
}

// Run executes all tasks and returns when every one has finished — the
// hard barrier decomposition stages rely on. Tasks must write pairwise
// disjoint regions; Run adds no synchronization beyond the final join.
// A nil pool, a single-worker pool, or a single task runs inline.
func (p *Pool) Run(tasks []func()) {
	if p == nil || p.workers <= 1 || len(tasks) <= 1 {
		for _, task := range tasks {
			task()
		}
		return
	}
	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for _, task := range tasks {
		p.sem <- struct{}{}
		go func(task func()) {
			defer func() {
				<-p.sem
				wg.Done()
			}()
			task()
		}(task)
	}
	wg.Wait()
}

// Bands splits the half-open row range [0, height) into at most n
// contiguous [lo, hi) chunks of near-equal size.
func Bands(height, n int) [][2]int {
	if height <= 0 {
		return nil
	}
	if n < 1 {
		n = 1
	}
	if n > height {
		n = height
	}
	bands := make([][2]int, 0, n)
	lo := 0
	for i := 0; i < n; i++ {
		hi := lo + (height-lo)/(n-i)
		if hi <= lo {
			hi = lo + 1
		}
		bands = append(bands, [2]int{lo, hi})
		lo = hi
	}
	return bands
}
