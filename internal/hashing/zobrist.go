package hashing

import (
	"github.com/lgbarn/atomic-chess-go/internal/chess"
	"github.com/lgbarn/atomic-chess-go/internal/engine"
)

const numSquares = chess.BoardSize * chess.BoardSize

var (
	pieceKeys [2][chess.NumKinds][numSquares]uint64
	sideKey   uint64
)

func init() {
	// Fixed seed so hashes are stable between runs.
	state := uint64(0x9E3779B97F4A7C15)
	for c := range pieceKeys {
		for k := range pieceKeys[c] {
			for sq := range pieceKeys[c][k] {
				pieceKeys[c][k][sq] = splitmix64(&state)
			}
		}
	}
	sideKey = splitmix64(&state)
}

// splitmix64 advances state and returns the next pseudo-random value.
func splitmix64(state *uint64) uint64 {
	*state += 0x9E3779B97F4A7C15
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// GenerateZobristHash returns the Zobrist hash of the game's position and
// side to move. Move counts do not contribute.
func GenerateZobristHash(g *engine.Game) uint64 {
	return HashPieces(g.Pieces(), g.SideToMove())
}

// HashPieces hashes a set of placed pieces. Pieces off the board are ignored.
func HashPieces(pieces []chess.Piece, toMove chess.Colour) uint64 {
	var hash uint64
	for _, p := range pieces {
		sq, ok := p.Position()
		if !ok {
			continue
		}
		hash ^= pieceKeys[p.Colour()][p.Kind()][sq.Rank*chess.BoardSize+sq.File]
	}
	if toMove == chess.White {
		hash ^= sideKey
	}
	return hash
}

// WeakHash is a cheap material signature: four bits per colour and kind
// holding the piece count.
func WeakHash(g *engine.Game) uint64 {
	var counts uint64
	for _, p := range g.Pieces() {
		shift := (uint(p.Colour())*uint(chess.NumKinds) + uint(p.Kind())) * 4
		counts += 1 << shift
	}
	return counts
}
