package main

import (
	"fmt"
	"os"

	"github.com/lgbarn/atomic-chess-go/internal/chess"
	"github.com/lgbarn/atomic-chess-go/internal/config"
	"github.com/lgbarn/atomic-chess-go/internal/engine"
	"github.com/lgbarn/atomic-chess-go/internal/errors"
	"github.com/lgbarn/atomic-chess-go/internal/hashing"
	"github.com/lgbarn/atomic-chess-go/internal/output"
	"github.com/lgbarn/atomic-chess-go/internal/processing"
	"github.com/lgbarn/atomic-chess-go/internal/worker"
)

// Totals summarises a batch run over one or more games.
type Totals struct {
	Games      int
	Accepted   int
	Rejected   int
	Duplicates int
	Stopped    bool // a strict run stopped at a rejected move

	Explosions   int
	Destroyed    [2]int // indexed by chess.Colour
	LargestBlast int
	Repetitions  int // games in which a position occurred three times
}

func (t *Totals) add(a *processing.GameAnalysis) {
	t.Games++
	t.Accepted += a.Accepted
	t.Rejected += a.Rejected
	t.Stopped = t.Stopped || a.Stopped

	t.Explosions += a.Explosions
	for c := range t.Destroyed {
		t.Destroyed[c] += a.Destroyed[c]
	}
	t.LargestBlast = max(t.LargestBlast, a.LargestBlast)
	if a.HasRepetition {
		t.Repetitions++
	}
}

// logObserver logs rejected moves at verbosity 1 and accepted moves at 2.
func logObserver(cfg *config.Config, g *engine.Game) processing.MoveObserver {
	return func(_ string, r *engine.MoveResult, err error) {
		if err != nil {
			cfg.Logf(1, "%v", err)
			return
		}
		cfg.Logf(2, "%d. %s", g.TurnCount(), output.MoveText(r))
	}
}

// runBatch plays moves on a game built from cfg.StartFEN and writes the
// final position in the configured format.
func runBatch(cfg *config.Config, moves []string, stopOnError bool) (Totals, error) {
	var totals Totals

	g, err := newGame(cfg)
	if err != nil {
		return totals, err
	}

	analysis := processing.AnalyzeGame(g, moves, processing.Options{
		StopOnError: stopOnError,
		Observer:    logObserver(cfg, g),
	})
	totals.add(analysis)

	w, err := output.NewWriter(cfg.OutputFile, cfg)
	if err != nil {
		return totals, err
	}
	if err := w.WritePosition(g); err != nil {
		return totals, errors.Wrap(err, "writing position")
	}
	return totals, nil
}

// runGames replays each moves file as a separate game on a pool of workers.
// Final positions are written in input order. With suppressDuplicates set,
// a game whose final position was already written is skipped. With
// stopOnError set, nothing after the first game with a rejected move is
// written or counted.
func runGames(cfg *config.Config, paths []string, workers int, stopOnError, suppressDuplicates bool) (Totals, error) {
	var totals Totals

	items := make([]worker.WorkItem, 0, len(paths))
	for i, path := range paths {
		moves, err := readMovesFile(path)
		if err != nil {
			return totals, err
		}
		items = append(items, worker.WorkItem{Index: i, Name: path, Moves: moves})
	}

	var stopAfter func(worker.ProcessResult) bool
	if stopOnError {
		stopAfter = func(r worker.ProcessResult) bool {
			return r.Error != nil || r.Analysis.Stopped
		}
	}
	opts := processing.Options{StopOnError: stopOnError}
	results := worker.Run(items, workers, worker.Replayer(cfg.StartFEN, opts), stopAfter)

	w, err := output.NewWriter(cfg.OutputFile, cfg)
	if err != nil {
		return totals, err
	}
	detector := hashing.NewDuplicateDetector(cfg.DuplicateExact, cfg.DuplicateCapacity)

	for _, r := range results {
		if r.Error != nil {
			return totals, errors.Wrapf(r.Error, "%s", r.Name)
		}
		totals.add(r.Analysis)
		for _, rejection := range r.Analysis.Rejections {
			cfg.Logf(1, "%s: %v", r.Name, rejection)
		}
		logAnalysis(cfg, r.Name+": ", r.Analysis)

		if detector.IsFull() {
			cfg.Logf(2, "%s: duplicate table full, new positions are not stored", r.Name)
		}
		if detector.CheckAndAdd(r.Game) {
			totals.Duplicates++
			if suppressDuplicates {
				cfg.Logf(2, "%s: duplicate final position suppressed", r.Name)
				continue
			}
		}

		if cfg.OutputFormat == config.Diagram {
			fmt.Fprintf(cfg.OutputFile, "# %s\n", r.Name)
		}
		if err := w.WritePosition(r.Game); err != nil {
			return totals, errors.Wrap(err, "writing position")
		}
	}
	return totals, nil
}

// logAnalysis writes the replay statistics of one game at verbosity 2.
func logAnalysis(cfg *config.Config, prefix string, a *processing.GameAnalysis) {
	cfg.Logf(2, "%s%d moves, %d explosions, %s", prefix, a.Accepted, a.Explosions, a.FinalStatus)
	if a.Explosions > 0 {
		cfg.Logf(2, "%sdestroyed %d white and %d black pieces, largest blast %d", prefix,
			a.Destroyed[chess.White], a.Destroyed[chess.Black], a.LargestBlast)
	}
	if a.HasRepetition {
		cfg.Logf(2, "%sa position occurred three times", prefix)
	}
}

// readMovesFile reads the move tokens of one file.
func readMovesFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening moves file: %w", err)
	}
	defer file.Close()

	return processing.ReadMoves(file)
}

// newGame returns the starting position named by cfg.
func newGame(cfg *config.Config) (*engine.Game, error) {
	if cfg.StartFEN == "" {
		return engine.NewGame(), nil
	}
	return engine.NewGameFromFEN(cfg.StartFEN)
}
