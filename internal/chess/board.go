package chess

// Cell is one square of the board and its optional occupant.
type Cell struct {
	Square Square
	piece  *Piece
}

// Occupant returns the piece on the cell, or nil.
func (c *Cell) Occupant() *Piece {
	return c.piece
}

// Board owns the 64 cells and, through them, every live piece.
// A piece's recorded position always matches the cell that holds it.
type Board struct {
	// cells[file][rank]
	cells [BoardSize][BoardSize]Cell
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	b := &Board{}
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			b.cells[file][rank].Square = Square{File: file, Rank: rank}
		}
	}
	return b
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// backRank is the piece order on the first and eighth ranks, a to h.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// SetupInitialPosition clears the board and sets up the standard chess
// starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()
	for file := 0; file < BoardSize; file++ {
		b.Set(Square{File: file, Rank: 0}, NewPiece(backRank[file], White))
		b.Set(Square{File: file, Rank: White.HomeRank()}, NewPiece(Pawn, White))
		b.Set(Square{File: file, Rank: Black.HomeRank()}, NewPiece(Pawn, Black))
		b.Set(Square{File: file, Rank: BoardSize - 1}, NewPiece(backRank[file], Black))
	}
}

// Clear removes every piece from the board.
func (b *Board) Clear() {
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			b.Remove(Square{File: file, Rank: rank})
		}
	}
}

// Cell returns the cell at sq, or nil if sq is off the board.
func (b *Board) Cell(sq Square) *Cell {
	if !sq.Valid() {
		return nil
	}
	return &b.cells[sq.File][sq.Rank]
}

// At returns the piece at sq, or nil if the square is empty or off the board.
func (b *Board) At(sq Square) *Piece {
	if c := b.Cell(sq); c != nil {
		return c.piece
	}
	return nil
}

// Set places a piece on sq. Any previous occupant of sq is taken off the
// board, and p is lifted from the cell it stood on before. Squares off the
// board are ignored.
func (b *Board) Set(sq Square, p *Piece) {
	c := b.Cell(sq)
	if c == nil || p == nil {
		return
	}
	b.Remove(sq)
	if from, ok := p.Position(); ok {
		b.Remove(from)
	}
	c.piece = p
	p.pos = sq
	p.onBoard = true
}

// Remove takes the piece on sq off the board and returns it, or returns nil
// if there was none.
func (b *Board) Remove(sq Square) *Piece {
	c := b.Cell(sq)
	if c == nil || c.piece == nil {
		return nil
	}
	p := c.piece
	c.piece = nil
	p.pos = Square{File: -1, Rank: -1}
	p.onBoard = false
	return p
}

// Relocate moves the piece on from to the empty square to and counts the
// move. It reports false, leaving the board untouched, if from is empty or
// to is occupied or off the board.
func (b *Board) Relocate(from, to Square) bool {
	p := b.At(from)
	if p == nil || !to.Valid() || b.At(to) != nil {
		return false
	}
	b.Set(to, p)
	p.moves++
	return true
}

// Pieces returns the live pieces in rank-major order from a1 to h8.
func (b *Board) Pieces() []*Piece {
	var pieces []*Piece
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if p := b.cells[file][rank].piece; p != nil {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// Count returns the number of live pieces of the given colour and kind.
func (b *Board) Count(colour Colour, kind Kind) int {
	n := 0
	for _, p := range b.Pieces() {
		if p.colour == colour && p.kind == kind {
			n++
		}
	}
	return n
}
