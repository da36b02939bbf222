// Package engine provides atomic chess move validation and board mutation.
package engine

import (
	"github.com/lgbarn/atomic-chess-go/internal/chess"
	"github.com/lgbarn/atomic-chess-go/internal/errors"
)

// Game holds the board, the side to move and the game status.
// It is not safe for concurrent use.
type Game struct {
	board     *chess.Board
	toMove    chess.Colour
	turnCount int
	status    chess.Status
	last      *MoveResult
}

// NewGame creates a game in the standard starting position, White to move.
func NewGame() *Game {
	return NewGameFromBoard(chess.NewInitialBoard(), chess.White)
}

// NewGameFromBoard creates a game that takes ownership of board.
func NewGameFromBoard(board *chess.Board, toMove chess.Colour) *Game {
	return &Game{
		board:  board,
		toMove: toMove,
		status: chess.Unfinished,
	}
}

// Status returns whether the game is still running or who won it.
func (g *Game) Status() chess.Status {
	return g.status
}

// Turn reports whose move is next: true for White.
func (g *Game) Turn() bool {
	return g.toMove == chess.White
}

// SideToMove returns the colour whose move is next.
func (g *Game) SideToMove() chess.Colour {
	return g.toMove
}

// TurnCount returns the number of accepted moves.
func (g *Game) TurnCount() int {
	return g.turnCount
}

// LastMove returns the outcome of the most recent accepted move, or nil.
func (g *Game) LastMove() *MoveResult {
	return g.last
}

// Occupant returns a copy of the piece on the square named by coord.
// ok is false for an empty square or a malformed coordinate.
func (g *Game) Occupant(coord string) (piece chess.Piece, ok bool) {
	sq, err := chess.ParseSquare(coord)
	if err != nil {
		return chess.Piece{}, false
	}
	return g.OccupantAt(sq)
}

// OccupantAt is Occupant for an already parsed square.
func (g *Game) OccupantAt(sq chess.Square) (piece chess.Piece, ok bool) {
	p := g.board.At(sq)
	if p == nil {
		return chess.Piece{}, false
	}
	return *p, true
}

// Pieces returns copies of the live pieces in rank-major order from a1.
func (g *Game) Pieces() []chess.Piece {
	live := g.board.Pieces()
	pieces := make([]chess.Piece, len(live))
	for i, p := range live {
		pieces[i] = *p
	}
	return pieces
}

// AttemptMove applies the move from origin to destination if it is legal
// and reports whether it was accepted. A rejected move leaves the game
// unchanged.
func (g *Game) AttemptMove(origin, destination string) bool {
	return g.Move(origin, destination) == nil
}

// Move applies the move from origin to destination. It returns a
// *errors.MoveError naming the first rule the move breaks; the game is
// unchanged in that case.
func (g *Game) Move(origin, destination string) error {
	if err := g.apply(origin, destination); err != nil {
		return &errors.MoveError{Err: err, From: origin, To: destination}
	}
	return nil
}

// apply validates every rule before touching the board, so the mutation
// steps below it cannot fail half way.
func (g *Game) apply(origin, destination string) error {
	if g.status.Finished() {
		return errors.ErrGameOver
	}

	from, err := chess.ParseSquare(origin)
	if err != nil {
		return err
	}
	to, err := chess.ParseSquare(destination)
	if err != nil {
		return err
	}

	mover := g.board.At(from)
	if mover == nil {
		return errors.ErrEmptyOrigin
	}
	if mover.TurnAffinity() != g.Turn() {
		return errors.ErrWrongTurn
	}
	if !inRange(g.board, mover, from, to) {
		return errors.ErrOutOfRange
	}
	if !pathClear(g.board, mover, from, to) {
		return errors.ErrPathBlocked
	}

	result := &MoveResult{Piece: *mover, From: from, To: to}
	if target := g.board.At(to); target != nil {
		if mover.Kind() == chess.King {
			return errors.ErrKingCapture
		}
		if target.Colour() == mover.Colour() {
			return errors.ErrFriendlyTarget
		}
		g.resolveCapture(result)
	} else {
		g.board.Relocate(from, to)
	}

	result.Status = g.status
	g.last = result
	g.turnCount++
	g.toMove = g.toMove.Opposite()
	return nil
}

// setDefeated records the loss of colour's king. The first king destroyed
// decides the game; later calls are ignored.
func (g *Game) setDefeated(colour chess.Colour) {
	if g.status.Finished() {
		return
	}
	g.status = chess.WinFor(colour.Opposite())
}
