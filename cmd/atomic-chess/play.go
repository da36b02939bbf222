package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lgbarn/atomic-chess-go/internal/chess"
	"github.com/lgbarn/atomic-chess-go/internal/config"
	"github.com/lgbarn/atomic-chess-go/internal/engine"
	"github.com/lgbarn/atomic-chess-go/internal/output"
	"github.com/lgbarn/atomic-chess-go/internal/render"
	"github.com/lgbarn/atomic-chess-go/internal/sound"
)

// session is one interactive game in the terminal.
type session struct {
	cfg    *config.Config
	screen tcell.Screen
	game   *engine.Game
	view   *render.View
	player *sound.Player
}

func newSession(cfg *config.Config, screen tcell.Screen, game *engine.Game, player *sound.Player) *session {
	s := &session{
		cfg:    cfg,
		screen: screen,
		game:   game,
		view:   render.NewView(screen, cfg.Unicode),
		player: player,
	}
	s.view.SetMessage("select a piece", false)
	return s
}

// runInteractive opens the terminal and plays until the user quits.
// The final position is written to cfg.OutputFile afterwards.
func runInteractive(cfg *config.Config) error {
	game, err := newGame(cfg)
	if err != nil {
		return err
	}

	// Diagnostics on the terminal would corrupt the board, so hold them
	// until the screen is released.
	if cfg.LogFile == os.Stderr {
		var held bytes.Buffer
		cfg.LogFile = &held
		defer func() {
			cfg.LogFile = os.Stderr
			_, _ = os.Stderr.Write(held.Bytes())
		}()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	screen.EnableMouse()

	player := sound.Silent()
	if cfg.Sound {
		if player, err = sound.NewPlayer(cfg.Volume); err != nil {
			// Non-fatal, play continues without sound
			cfg.Logf(1, "Audio initialization failed: %v", err)
		}
	}

	s := newSession(cfg, screen, game, player)
	s.run()

	player.Close()
	screen.Fini()

	w, err := output.NewWriter(cfg.OutputFile, cfg)
	if err != nil {
		return err
	}
	return w.WritePosition(game)
}

func (s *session) run() {
	s.view.Draw(s.game)
	for {
		ev := s.screen.PollEvent()
		if ev == nil || !s.handleInput(ev) {
			return
		}
		s.view.Draw(s.game)
	}
}

// handleInput processes one terminal event. It returns false when the
// user asks to quit.
func (s *session) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return s.handleKey(ev)

	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return true
		}
		if sq, ok := render.SquareAt(ev.Position()); ok {
			s.view.SetCursor(sq)
			s.activate()
		}

	case *tcell.EventResize:
		s.screen.Sync()
	}
	return true
}

func (s *session) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		if _, ok := s.view.Selected(); !ok {
			return false
		}
		s.view.ClearSelection()
		s.view.SetMessage("selection cleared", false)
	case tcell.KeyUp:
		s.view.MoveCursor(0, 1)
	case tcell.KeyDown:
		s.view.MoveCursor(0, -1)
	case tcell.KeyLeft:
		s.view.MoveCursor(-1, 0)
	case tcell.KeyRight:
		s.view.MoveCursor(1, 0)
	case tcell.KeyEnter:
		s.activate()
	case tcell.KeyRune:
		return s.handleRune(ev.Rune())
	}
	return true
}

func (s *session) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case 'h':
		s.view.MoveCursor(-1, 0)
	case 'j':
		s.view.MoveCursor(0, -1)
	case 'k':
		s.view.MoveCursor(0, 1)
	case 'l':
		s.view.MoveCursor(1, 0)
	case ' ':
		s.activate()
	}
	return true
}

// activate selects the cursor square as origin, or tries the move from
// the selected origin to the cursor square.
func (s *session) activate() {
	cursor := s.view.Cursor()
	from, ok := s.view.Selected()
	if !ok {
		s.selectOrigin(cursor)
		return
	}
	if from == cursor {
		s.view.ClearSelection()
		s.view.SetMessage("selection cleared", false)
		return
	}

	// Reselect instead of attempting to capture a friendly piece.
	if p, occupied := s.game.OccupantAt(cursor); occupied && p.Colour() == s.game.SideToMove() {
		s.selectOrigin(cursor)
		return
	}

	s.view.ClearSelection()
	if err := s.game.Move(from.String(), cursor.String()); err != nil {
		s.cfg.Logf(2, "%v", err)
		s.view.SetMessage(err.Error(), true)
		s.player.Play(sound.EffectRejected, 0)
		return
	}

	r := s.game.LastMove()
	s.cfg.Logf(2, "%d. %s", s.game.TurnCount(), output.MoveText(r))
	s.view.SetMessage(output.MoveText(r), false)
	s.player.PlayMove(r)
}

func (s *session) selectOrigin(sq chess.Square) {
	if s.game.Status().Finished() {
		s.view.SetMessage("game over, press q to quit", true)
		return
	}
	p, ok := s.game.OccupantAt(sq)
	if !ok || p.Colour() != s.game.SideToMove() {
		s.view.SetMessage(fmt.Sprintf("select a %s piece", s.game.SideToMove()), true)
		return
	}
	s.view.Select()
	s.view.SetMessage(fmt.Sprintf("%s on %s selected", p, sq), false)
}
