package chess

// Piece is one chess unit. Kind and colour are fixed at construction; the
// position and move count are only changed by the Board that holds it.
type Piece struct {
	kind    Kind
	colour  Colour
	pos     Square
	onBoard bool
	moves   int
}

// NewPiece creates an unplaced piece that has not moved.
func NewPiece(kind Kind, colour Colour) *Piece {
	return &Piece{kind: kind, colour: colour}
}

// NewMovedPiece creates an unplaced piece with a given move count, used when
// a position is set up mid-game.
func NewMovedPiece(kind Kind, colour Colour, moves int) *Piece {
	return &Piece{kind: kind, colour: colour, moves: moves}
}

// Kind returns the piece kind.
func (p Piece) Kind() Kind { return p.kind }

// Colour returns the piece colour.
func (p Piece) Colour() Colour { return p.colour }

// TurnAffinity reports the turn on which the piece may move: true for White.
func (p Piece) TurnAffinity() bool { return p.colour == White }

// MoveCount returns how many non-capturing moves the piece has made.
func (p Piece) MoveCount() int { return p.moves }

// Position returns the square the piece stands on. ok is false once the
// piece has been captured or before it is placed.
func (p Piece) Position() (sq Square, ok bool) {
	return p.pos, p.onBoard
}

// Symbol returns the FEN letter of the piece: uppercase for White.
func (p Piece) Symbol() byte {
	letter := p.kind.Letter()
	if p.colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// Glyph returns the Unicode chess symbol of the piece.
func (p Piece) Glyph() rune {
	if !p.kind.Valid() {
		return '?'
	}
	return kinds[p.kind].glyph[p.colour]
}

// String returns a description such as "White Knight".
func (p Piece) String() string {
	return p.colour.String() + " " + p.kind.String()
}
