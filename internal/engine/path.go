package engine

import "github.com/lgbarn/atomic-chess-go/internal/chess"

// inRange reports whether to is reachable from from by the piece's movement
// geometry. Occupancy only matters for pawns: a diagonal step must land on a
// piece, and the colour of that piece is checked by the caller.
func inRange(board *chess.Board, p *chess.Piece, from, to chess.Square) bool {
	d := from.Delta(to)
	if d.DX == 0 && d.DY == 0 {
		return false
	}

	kind := p.Kind()
	switch {
	case kind == chess.Pawn:
		return pawnInRange(board, p, d, to)

	case kind.Slides():
		_, ok := slideDirection(kind, d)
		return ok
	}

	for _, o := range kind.Offsets() {
		if o == d {
			return true
		}
	}
	return false
}

// pawnInRange handles the forward single and double steps and the forward
// diagonal capture step.
func pawnInRange(board *chess.Board, p *chess.Piece, d chess.Offset, to chess.Square) bool {
	forward := p.Colour().Forward()

	switch {
	case d.DX == 0 && d.DY == forward:
		return true
	case d.DX == 0 && d.DY == 2*forward:
		return p.MoveCount() == 0
	case abs(d.DX) == 1 && d.DY == forward:
		return board.At(to) != nil
	}

	return false
}

// slideDirection returns the unit step of a sliding kind that reaches d,
// reporting false if d is not a whole number of steps along one of them.
func slideDirection(kind chess.Kind, d chess.Offset) (chess.Offset, bool) {
	if d.DX != 0 && d.DY != 0 && abs(d.DX) != abs(d.DY) {
		return chess.Offset{}, false
	}
	step := chess.Offset{DX: sign(d.DX), DY: sign(d.DY)}
	for _, o := range kind.Offsets() {
		if o == step {
			return step, true
		}
	}
	return chess.Offset{}, false
}

// pathClear reports whether nothing stands in the way of the move.
// Sliding pieces need every square strictly between from and to to be empty
// and may not land on a friendly piece. Pawns moving straight need the whole
// path including the destination to be empty. Knights jump and kings take a
// single step, so neither has a path to check.
func pathClear(board *chess.Board, p *chess.Piece, from, to chess.Square) bool {
	d := from.Delta(to)

	switch {
	case p.Kind().Slides():
		step, ok := slideDirection(p.Kind(), d)
		if !ok {
			return false
		}
		sq := from.Add(step)
		for sq != to {
			if board.At(sq) != nil {
				return false
			}
			sq = sq.Add(step)
		}
		if target := board.At(to); target != nil && target.Colour() == p.Colour() {
			return false
		}
		return true

	case p.Kind() == chess.Pawn:
		if d.DX != 0 {
			return true
		}
		step := chess.Offset{DY: sign(d.DY)}
		for sq := from.Add(step); ; sq = sq.Add(step) {
			if board.At(sq) != nil {
				return false
			}
			if sq == to {
				return true
			}
		}
	}

	return true
}
