package worker

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/atomic-chess-go/internal/chess"
	cerrors "github.com/lgbarn/atomic-chess-go/internal/errors"
	"github.com/lgbarn/atomic-chess-go/internal/processing"
)

// noopProcessFunc echoes the item index.
func noopProcessFunc() ProcessFunc {
	return func(item WorkItem) ProcessResult {
		return ProcessResult{Index: item.Index, Name: item.Name}
	}
}

// countingProcessFunc increments counter for every processed item.
func countingProcessFunc(counter *int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		atomic.AddInt32(counter, 1)
		return ProcessResult{Index: item.Index}
	}
}

func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

// TestPoolBasic tests basic worker pool functionality.
func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(countingProcessFunc(&processed), WithWorkers(4))
	pool.Start()

	const numItems = 10
	go func() {
		for i := 0; i < numItems; i++ {
			pool.Submit(WorkItem{Index: i, Moves: []string{"e2e4"}})
		}
		pool.Close()
	}()

	if got := collectResults(pool); got != numItems {
		t.Errorf("results = %d; want %d", got, numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

func TestPoolIsStopped(t *testing.T) {
	pool := NewPool(noopProcessFunc(), WithWorkers(2))
	pool.Start()

	if pool.IsStopped() {
		t.Error("pool should not be stopped initially")
	}
	pool.Stop()
	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}

	pool.Close()
}

func TestNewPoolOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 10},
		{"with workers", []PoolOption{WithWorkers(4)}, 4, 10},
		{"with buffer size", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"invalid values ignored", []PoolOption{WithWorkers(0), WithBufferSize(-5)}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(noopProcessFunc(), tt.opts...)
			if pool.NumWorkers() != tt.wantWorkers {
				t.Errorf("NumWorkers() = %d; want %d", pool.NumWorkers(), tt.wantWorkers)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
		})
	}
}

// TestRunRestoresOrder verifies results come back in input order even when
// workers finish out of order.
func TestRunRestoresOrder(t *testing.T) {
	variableDelay := func(item WorkItem) ProcessResult {
		if item.Index%2 == 0 {
			time.Sleep(5 * time.Millisecond)
		}
		return ProcessResult{Index: item.Index, Name: item.Name}
	}

	names := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	items := make([]WorkItem, len(names))
	for i, n := range names {
		items[i] = WorkItem{Index: i, Name: n}
	}

	results := Run(items, 4, variableDelay, nil)

	if len(results) != len(names) {
		t.Fatalf("received %d results; want %d", len(results), len(names))
	}
	for i, r := range results {
		if r.Index != i || r.Name != names[i] {
			t.Errorf("results[%d] = {%d %s}; want {%d %s}", i, r.Index, r.Name, i, names[i])
		}
	}
}

func TestPoolStopAfterKeepsLowestIndex(t *testing.T) {
	pool := NewPool(noopProcessFunc())

	pool.StopAfter(5)
	pool.StopAfter(8)
	if got := pool.cutoff.Load(); got != 5 {
		t.Errorf("cutoff = %d; want 5", got)
	}
	pool.StopAfter(2)
	if got := pool.cutoff.Load(); got != 2 {
		t.Errorf("cutoff = %d; want 2", got)
	}
	if !pool.IsStopped() {
		t.Error("pool should be stopped after StopAfter()")
	}
}

func TestRunStopAfter(t *testing.T) {
	var processed int32
	slow := func(item WorkItem) ProcessResult {
		time.Sleep(time.Millisecond)
		atomic.AddInt32(&processed, 1)
		return ProcessResult{Index: item.Index}
	}

	items := make([]WorkItem, 50)
	for i := range items {
		items[i] = WorkItem{Index: i}
	}

	results := Run(items, 1, slow, func(ProcessResult) bool { return true })

	if len(results) != 1 || results[0].Index != 0 {
		t.Fatalf("results = %+v; want only item 0", results)
	}
	if got := atomic.LoadInt32(&processed); got == int32(len(items)) {
		t.Errorf("processed all %d items after stopping", got)
	}
}

// TestRunStopAfterIsDeterministic replays a set of games where one is
// rejected and checks the results always end at that game, however the
// workers are scheduled.
func TestRunStopAfterIsDeterministic(t *testing.T) {
	failed := func(r ProcessResult) bool {
		return r.Error != nil || r.Analysis.Stopped
	}
	replay := Replayer("", processing.Options{StopOnError: true})

	for _, failAt := range []int{0, 3} {
		items := make([]WorkItem, 6)
		for i := range items {
			items[i] = WorkItem{Index: i, Moves: []string{"e2e4", "e7e5"}}
		}
		items[failAt].Moves = []string{"e2e5"}

		for _, workers := range []int{1, 3} {
			for run := 0; run < 100; run++ {
				results := Run(items, workers, replay, failed)

				if len(results) != failAt+1 {
					t.Fatalf("failAt=%d workers=%d: got %d results; want %d",
						failAt, workers, len(results), failAt+1)
				}
				for i, r := range results {
					if r.Index != i {
						t.Fatalf("results[%d].Index = %d", i, r.Index)
					}
				}
				if !results[failAt].Analysis.Stopped {
					t.Fatalf("last result should be the rejected game: %+v", results[failAt].Analysis)
				}
			}
		}
	}
}

func TestReplayer(t *testing.T) {
	items := []WorkItem{
		{Index: 0, Name: "quiet", Moves: []string{"e2e4", "e7e5"}},
		{Index: 1, Name: "trap", Moves: []string{"e2e4", "d7d5", "e4d5", "d8d2"}},
		{Index: 2, Name: "bad", Moves: []string{"e2e5"}},
	}

	results := Run(items, 3, Replayer("", processing.Options{}), nil)

	if results[0].Analysis.Accepted != 2 || results[0].Game.Status() != chess.Unfinished {
		t.Errorf("quiet: %+v", results[0].Analysis)
	}
	if results[1].Game.Status() != chess.BlackWon {
		t.Errorf("trap status = %v; want BLACK_WON", results[1].Game.Status())
	}
	if !errors.Is(results[2].Analysis.Rejections[0], cerrors.ErrOutOfRange) {
		t.Errorf("bad rejection = %v; want ErrOutOfRange", results[2].Analysis.Rejections)
	}
}

func TestReplayer_InvalidFEN(t *testing.T) {
	r := Replayer("8/8 w", processing.Options{})(WorkItem{Index: 3})

	if !errors.Is(r.Error, cerrors.ErrInvalidFEN) {
		t.Errorf("Error = %v; want ErrInvalidFEN", r.Error)
	}
	if r.Game != nil || r.Index != 3 {
		t.Errorf("result = %+v", r)
	}
}
