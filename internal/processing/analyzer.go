// Package processing replays move lists against a game and analyses the result.
package processing

import (
	"github.com/lgbarn/atomic-chess-go/internal/chess"
	"github.com/lgbarn/atomic-chess-go/internal/engine"
	"github.com/lgbarn/atomic-chess-go/internal/hashing"
)

// GameAnalysis holds analysis results from replaying a game.
type GameAnalysis struct {
	Accepted   int
	Rejected   int
	Rejections []error // In the order they occurred
	Stopped    bool    // Replay ended early at a rejected move

	Explosions   int
	Destroyed    [2]int // Pieces lost, indexed by chess.Colour
	LargestBlast int    // Most pieces removed by a single capture

	HasRepetition bool // Some position occurred three times

	FinalStatus chess.Status
}

// MoveObserver is told about every move token as it is replayed. result is
// nil when err is set.
type MoveObserver func(tok string, result *engine.MoveResult, err error)

// Options control a replay.
type Options struct {
	StopOnError bool
	Observer    MoveObserver
}

// AnalyzeGame plays each move token on g in order and analyses the game.
// Rejected moves leave g untouched and replay continues unless
// opts.StopOnError is set.
func AnalyzeGame(g *engine.Game, moves []string, opts Options) *GameAnalysis {
	analysis := &GameAnalysis{}

	positionCount := map[uint64]int{hashing.GenerateZobristHash(g): 1}

	for _, tok := range moves {
		from, to, err := ParseMove(tok)
		if err == nil {
			err = g.Move(from, to)
		}
		if err != nil {
			analysis.Rejected++
			analysis.Rejections = append(analysis.Rejections, err)
			notify(opts.Observer, tok, nil, err)
			if opts.StopOnError {
				analysis.Stopped = true
				break
			}
			continue
		}

		result := g.LastMove()
		analysis.Accepted++
		analysis.recordDestruction(result)
		notify(opts.Observer, tok, result, nil)

		posHash := hashing.GenerateZobristHash(g)
		positionCount[posHash]++
		if positionCount[posHash] >= 3 {
			analysis.HasRepetition = true
		}
	}

	analysis.FinalStatus = g.Status()
	return analysis
}

// recordDestruction tallies the pieces removed by a capture.
func (ga *GameAnalysis) recordDestruction(r *engine.MoveResult) {
	destroyed := r.Destroyed()
	if len(destroyed) == 0 {
		return
	}
	ga.Explosions++
	ga.LargestBlast = max(ga.LargestBlast, len(destroyed))
	for _, p := range destroyed {
		ga.Destroyed[p.Colour()]++
	}
}

func notify(obs MoveObserver, tok string, r *engine.MoveResult, err error) {
	if obs != nil {
		obs(tok, r, err)
	}
}
