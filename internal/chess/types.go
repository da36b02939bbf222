// Package chess provides the piece model and board for atomic chess.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (for pawn direction).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the rank index pawns of this colour start on.
func (c Colour) HomeRank() int {
	if c == White {
		return 1
	}
	return BoardSize - 2
}

// Kind represents a chess piece type.
type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// Offset is a displacement in board coordinates, +Y toward higher ranks.
type Offset struct {
	DX, DY int
}

var (
	diagonals  = []Offset{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	orthogonal = []Offset{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	knightJump = []Offset{{1, 2}, {-1, 2}, {1, -2}, {-1, -2}, {2, 1}, {-2, 1}, {2, -1}, {-2, -1}}
	kingStep   = append(append([]Offset{}, orthogonal...), diagonals...)
)

// kindInfo is the immutable per-kind configuration selected at construction.
type kindInfo struct {
	name    string
	letter  byte
	glyph   [2]rune // indexed by Colour
	offsets []Offset
	slides  bool
}

var kinds = [NumKinds]kindInfo{
	Pawn:   {name: "Pawn", letter: 'P', glyph: [2]rune{'♟', '♙'}},
	Knight: {name: "Knight", letter: 'N', glyph: [2]rune{'♞', '♘'}, offsets: knightJump},
	Bishop: {name: "Bishop", letter: 'B', glyph: [2]rune{'♝', '♗'}, offsets: diagonals, slides: true},
	Rook:   {name: "Rook", letter: 'R', glyph: [2]rune{'♜', '♖'}, offsets: orthogonal, slides: true},
	Queen:  {name: "Queen", letter: 'Q', glyph: [2]rune{'♛', '♕'}, offsets: kingStep, slides: true},
	King:   {name: "King", letter: 'K', glyph: [2]rune{'♚', '♔'}, offsets: kingStep},
}

// Valid reports whether k is one of the six piece kinds.
func (k Kind) Valid() bool {
	return k >= Pawn && k < NumKinds
}

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	if k.Valid() {
		return kinds[k].name
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	if k.Valid() {
		return kinds[k].letter
	}
	return '?'
}

// Offsets returns the unit displacements of the kind. Sliding kinds repeat
// them; knights and kings take exactly one. Pawns have no fixed set since
// their steps depend on colour, move count and occupancy.
func (k Kind) Offsets() []Offset {
	if !k.Valid() {
		return nil
	}
	return kinds[k].offsets
}

// Slides reports whether the kind moves any distance along its offsets.
func (k Kind) Slides() bool {
	return k.Valid() && kinds[k].slides
}

// KindFromLetter converts a FEN letter (either case) to a kind.
func KindFromLetter(c byte) (Kind, bool) {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	for k := Pawn; k < NumKinds; k++ {
		if kinds[k].letter == c {
			return k, true
		}
	}
	return 0, false
}

// Status is the terminal state of a game.
type Status int

const (
	Unfinished Status = iota
	WhiteWon
	BlackWon
)

// String returns the status in the form used by game reports.
func (s Status) String() string {
	switch s {
	case WhiteWon:
		return "WHITE_WON"
	case BlackWon:
		return "BLACK_WON"
	default:
		return "UNFINISHED"
	}
}

// Finished reports whether a king has been destroyed.
func (s Status) Finished() bool {
	return s == WhiteWon || s == BlackWon
}

// WinFor returns the status recording a win for colour c.
func WinFor(c Colour) Status {
	if c == White {
		return WhiteWon
	}
	return BlackWon
}
