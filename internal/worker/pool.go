// Package worker replays independent games on a pool of goroutines.
package worker

import (
	"math"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/atomic-chess-go/internal/engine"
	"github.com/lgbarn/atomic-chess-go/internal/processing"
)

// WorkItem is one move list to replay as its own game.
type WorkItem struct {
	Index int    // Position in the input, used to restore order
	Name  string // Source of the moves, e.g. a file name
	Moves []string
}

// ProcessResult is the outcome of replaying a WorkItem.
type ProcessResult struct {
	Index     int
	Name      string
	Game      *engine.Game
	Analysis  *processing.GameAnalysis
	Duplicate bool // Final position already reached by an earlier result
	Error     error
}

// ProcessFunc replays a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool fans work items out to a fixed number of goroutines.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	cutoff      atomic.Int64 // items with a greater Index are skipped
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size. Values below 1 are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool with one worker and a buffer of 10 unless
// options say otherwise.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.cutoff.Store(math.MaxInt64)
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if int64(item.Index) > p.cutoff.Load() {
			continue // drain
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues an item, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop makes workers skip every item not yet started.
func (p *Pool) Stop() {
	p.StopAfter(-1)
}

// StopAfter makes workers skip items not yet started whose Index is
// greater than index. Items at or below the lowest index passed are
// still processed.
func (p *Pool) StopAfter(index int) {
	for {
		cur := p.cutoff.Load()
		if int64(index) >= cur || p.cutoff.CompareAndSwap(cur, int64(index)) {
			return
		}
	}
}

// IsStopped reports whether Stop or StopAfter has been called.
func (p *Pool) IsStopped() bool {
	return p.cutoff.Load() != math.MaxInt64
}

// Close ends submission, waits for the workers and then closes Results.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the channel of finished items, in completion order.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run replays every item on a pool of numWorkers goroutines and returns
// the results in input order. When stopAfter is non-nil, the results end
// at the first one in input order for which it returns true; later items
// are dropped whether or not a worker had already started them.
func Run(items []WorkItem, numWorkers int, fn ProcessFunc, stopAfter func(ProcessResult) bool) []ProcessResult {
	pool := NewPool(fn, WithWorkers(numWorkers), WithBufferSize(len(items)))
	pool.Start()

	go func() {
		for _, item := range items {
			if int64(item.Index) > pool.cutoff.Load() {
				continue
			}
			pool.Submit(item)
		}
		pool.Close()
	}()

	results := make([]ProcessResult, 0, len(items))
	for r := range pool.Results() {
		results = append(results, r)
		if stopAfter != nil && stopAfter(r) {
			pool.StopAfter(r.Index)
		}
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return truncateAtStop(results, stopAfter)
}

// truncateAtStop cuts sorted results after the first stopping result.
// StopAfter never skips an item at or below that result's index, so the
// kept prefix has no gaps.
func truncateAtStop(results []ProcessResult, stopAfter func(ProcessResult) bool) []ProcessResult {
	if stopAfter == nil {
		return results
	}
	for i, r := range results {
		if stopAfter(r) {
			return results[:i+1]
		}
	}
	return results
}
