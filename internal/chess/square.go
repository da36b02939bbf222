package chess

import (
	"github.com/lgbarn/atomic-chess-go/internal/errors"
)

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	FileBase = 'a'
	RankBase = '1'
)

// Square is a board coordinate. File 0 is the a-file, Rank 0 is the first
// rank, so the origin sits bottom-left from White's point of view.
type Square struct {
	File int
	Rank int
}

// ParseSquare converts an algebraic coordinate such as "e4" to a Square.
// Anything other than a lowercase file a-h followed by a rank 1-8 is rejected.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, errors.Wrapf(errors.ErrInvalidSquare, "%q", s)
	}
	sq := Square{File: int(s[0]) - FileBase, Rank: int(s[1]) - RankBase}
	if !sq.Valid() {
		return Square{}, errors.Wrapf(errors.ErrInvalidSquare, "%q", s)
	}
	return sq, nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// It is intended for fixed coordinates in setup code and tests.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// String returns the algebraic form of the square, or "-" when off the board.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(FileBase + s.File), byte(RankBase + s.Rank)})
}

// Add returns the square displaced by o. The result may be off the board.
func (s Square) Add(o Offset) Square {
	return Square{File: s.File + o.DX, Rank: s.Rank + o.DY}
}

// Delta returns the displacement from s to to.
func (s Square) Delta(to Square) Offset {
	return Offset{DX: to.File - s.File, DY: to.Rank - s.Rank}
}

// Distance returns the Chebyshev distance between two squares.
func (s Square) Distance(to Square) int {
	d := s.Delta(to)
	return max(abs(d.DX), abs(d.DY))
}

// Neighbours returns the on-board squares at Chebyshev distance 1 from s,
// in rank-major order starting bottom-left.
func (s Square) Neighbours() []Square {
	neighbours := make([]Square, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if n := s.Add(Offset{DX: dx, DY: dy}); n.Valid() {
				neighbours = append(neighbours, n)
			}
		}
	}
	return neighbours
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
