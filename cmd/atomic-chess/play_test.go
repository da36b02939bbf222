package main

import (
	"bytes"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lgbarn/atomic-chess-go/internal/chess"
	"github.com/lgbarn/atomic-chess-go/internal/config"
	"github.com/lgbarn/atomic-chess-go/internal/engine"
	"github.com/lgbarn/atomic-chess-go/internal/render"
	"github.com/lgbarn/atomic-chess-go/internal/sound"
)

func newTestSession(t *testing.T, fen string) (*session, *bytes.Buffer) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init: %v", err)
	}
	screen.SetSize(60, 20)
	t.Cleanup(screen.Fini)

	var log bytes.Buffer
	cfg := config.NewConfigBuilder().
		WithVerbosity(2).
		WithInteractive(true, false).
		WithLog(&log).
		Build()

	g := engine.NewGame()
	if fen != "" {
		var err error
		if g, err = engine.NewGameFromFEN(fen); err != nil {
			t.Fatal(err)
		}
	}
	return newSession(cfg, screen, g, sound.Silent()), &log
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func click(name string) *tcell.EventMouse {
	x, y := render.CellOf(chess.MustParseSquare(name))
	return tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone)
}

func send(t *testing.T, s *session, events ...tcell.Event) {
	t.Helper()
	for _, ev := range events {
		if !s.handleInput(ev) {
			t.Fatalf("session quit on %T", ev)
		}
	}
}

func TestSession_KeyboardMove(t *testing.T) {
	s, log := newTestSession(t, "")

	// Cursor starts on e2.
	send(t, s, runeKey(' '), runeKey('k'), runeKey('k'), runeKey(' '))

	if p, ok := s.game.Occupant("e4"); !ok || p.Kind() != chess.Pawn {
		t.Errorf("e4 = %v, %v; want white pawn", p, ok)
	}
	if s.game.SideToMove() != chess.Black {
		t.Errorf("SideToMove() = %v, want Black", s.game.SideToMove())
	}
	if _, ok := s.view.Selected(); ok {
		t.Error("selection should be cleared after a move")
	}
	if log.String() != "1. e2-e4\n" {
		t.Errorf("log = %q", log.String())
	}
}

func TestSession_ArrowKeysAndEnter(t *testing.T) {
	s, _ := newTestSession(t, "")

	send(t, s, key(tcell.KeyLeft), key(tcell.KeyDown), key(tcell.KeyEnter))
	if sq, ok := s.view.Selected(); !ok || sq.String() != "d1" {
		t.Fatalf("Selected() = %v, %v; want d1", sq, ok)
	}

	send(t, s, key(tcell.KeyRight), key(tcell.KeyUp), key(tcell.KeyUp), key(tcell.KeyEnter))
	// Queen d1 to e3 is not a queen line.
	if s.game.TurnCount() != 0 {
		t.Errorf("TurnCount() = %d, want 0 after rejected move", s.game.TurnCount())
	}
}

func TestSession_MouseCapture(t *testing.T) {
	s, _ := newTestSession(t, "4k3/3n4/8/8/8/8/8/3RK3 w - - 0 1")

	send(t, s, click("d1"), click("d7"))

	if s.game.Status() != chess.WhiteWon {
		t.Errorf("Status() = %v, want WHITE_WON", s.game.Status())
	}

	// No selection is possible once the game is over.
	send(t, s, click("e1"))
	if _, ok := s.view.Selected(); ok {
		t.Error("selection after game over")
	}
}

func TestSession_Reselect(t *testing.T) {
	s, _ := newTestSession(t, "")

	send(t, s, click("e2"), click("g1"))
	if sq, _ := s.view.Selected(); sq.String() != "g1" {
		t.Errorf("Selected() = %v, want g1", sq)
	}

	send(t, s, click("g1"))
	if _, ok := s.view.Selected(); ok {
		t.Error("clicking the selected square should clear it")
	}

	// An enemy piece cannot be selected.
	send(t, s, click("e7"))
	if _, ok := s.view.Selected(); ok {
		t.Error("enemy piece selected")
	}
}

func TestSession_Quit(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
	}{
		{"q", runeKey('q')},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)},
		{"escape", key(tcell.KeyEscape)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSession(t, "")
			if s.handleInput(tt.ev) {
				t.Errorf("%s should quit", tt.name)
			}
		})
	}
}

func TestSession_EscapeClearsSelection(t *testing.T) {
	s, _ := newTestSession(t, "")

	send(t, s, runeKey(' '), key(tcell.KeyEscape))
	if _, ok := s.view.Selected(); ok {
		t.Error("escape should clear the selection")
	}
}
