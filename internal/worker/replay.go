package worker

import (
	"github.com/lgbarn/atomic-chess-go/internal/engine"
	"github.com/lgbarn/atomic-chess-go/internal/processing"
)

// Replayer returns a ProcessFunc that plays each item on a fresh game
// starting from startFEN, or the standard layout when it is empty.
// opts.Observer must be safe for concurrent use if set.
func Replayer(startFEN string, opts processing.Options) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		result := ProcessResult{Index: item.Index, Name: item.Name}

		g := engine.NewGame()
		if startFEN != "" {
			var err error
			if g, err = engine.NewGameFromFEN(startFEN); err != nil {
				result.Error = err
				return result
			}
		}

		result.Game = g
		result.Analysis = processing.AnalyzeGame(g, item.Moves, opts)
		return result
	}
}
