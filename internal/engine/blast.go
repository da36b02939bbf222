package engine

import "github.com/lgbarn/atomic-chess-go/internal/chess"

// Victim is a piece destroyed by an atomic blast, with the square it stood on.
type Victim struct {
	Square chess.Square
	Piece  chess.Piece
}

// MoveResult describes an accepted move.
type MoveResult struct {
	Piece    chess.Piece  // The mover as it was before the move
	From     chess.Square // Origin
	To       chess.Square // Destination
	Captured *chess.Piece // The piece taken on To, nil for a quiet move
	Victims  []Victim     // Pieces destroyed around To, excluding the mover and Captured
	Status   chess.Status // Game status after the move
}

// IsCapture reports whether the move was an atomic capture.
func (r *MoveResult) IsCapture() bool {
	return r.Captured != nil
}

// Destroyed returns every piece removed by the move: the captured piece,
// the blast victims and the mover itself.
func (r *MoveResult) Destroyed() []chess.Piece {
	if !r.IsCapture() {
		return nil
	}
	destroyed := []chess.Piece{*r.Captured}
	for _, v := range r.Victims {
		destroyed = append(destroyed, v.Piece)
	}
	return append(destroyed, r.Piece)
}

// resolveCapture carries out an atomic capture on r.To. The captured piece,
// every non-pawn piece around r.To and the mover are all removed.
func (g *Game) resolveCapture(r *MoveResult) {
	captured := *g.board.At(r.To)
	r.Captured = &captured
	g.board.Remove(r.To)
	if captured.Kind() == chess.King {
		g.setDefeated(captured.Colour())
	}

	// The mover stands on the capture square while the blast is worked out.
	g.board.Set(r.To, g.board.At(r.From))

	r.Victims = blastVictims(g.board, r.To)
	var ownKingLost bool
	for _, v := range r.Victims {
		g.board.Remove(v.Square)
		if v.Piece.Kind() != chess.King {
			continue
		}
		if v.Piece.Colour() == r.Piece.Colour() {
			ownKingLost = true
		} else {
			g.setDefeated(v.Piece.Colour())
		}
	}
	// Destroying the enemy king wins even if the mover's own king goes too.
	if ownKingLost {
		g.setDefeated(r.Piece.Colour())
	}

	g.board.Remove(r.To)
}

// blastVictims lists the pieces within one square of centre that an
// explosion there destroys. Pawns are immune and the centre itself is
// excluded.
func blastVictims(board *chess.Board, centre chess.Square) []Victim {
	var victims []Victim
	for _, sq := range centre.Neighbours() {
		p := board.At(sq)
		if p == nil || p.Kind() == chess.Pawn {
			continue
		}
		victims = append(victims, Victim{Square: sq, Piece: *p})
	}
	return victims
}
