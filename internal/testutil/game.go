package testutil

import (
	"testing"

	"github.com/lgbarn/atomic-chess-go/internal/engine"
)

// MustGame builds a game from a FEN string, or the standard starting
// position when fen is empty. It calls t.Fatal if the FEN is invalid.
func MustGame(t *testing.T, fen string) *engine.Game {
	t.Helper()
	if fen == "" {
		return engine.NewGame()
	}
	g, err := engine.NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q) error: %v", fen, err)
	}
	return g
}

// MustMove plays each "from-to" pair in order and calls t.Fatal on the
// first rejected move.
func MustMove(t *testing.T, g *engine.Game, moves ...[2]string) {
	t.Helper()
	for _, m := range moves {
		if err := g.Move(m[0], m[1]); err != nil {
			t.Fatalf("Move(%s, %s) error: %v", m[0], m[1], err)
		}
	}
}

// BoardMap returns the position as square -> FEN letter, convenient for
// cmp.Diff comparisons.
func BoardMap(g *engine.Game) map[string]string {
	out := make(map[string]string)
	for _, p := range g.Pieces() {
		sq, _ := p.Position()
		out[sq.String()] = string(p.Symbol())
	}
	return out
}
