// Package hashing provides position hashing and duplicate detection for
// atomic chess games.
package hashing

import (
	"github.com/lgbarn/atomic-chess-go/internal/engine"
)

// DuplicateDetector tracks the final positions of games it has seen.
type DuplicateDetector struct {
	// hashTable stores the signatures seen under each Zobrist hash
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires the same number of half-moves
	useExactMatch bool
	// maxCapacity caps the number of stored signatures, 0 for no limit
	maxCapacity int
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	size           int
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// TurnCount is the number of half-moves played
	TurnCount int
	// WeakHash is the material signature of the final position
	WeakHash uint64
}

// NewDuplicateDetector creates a new duplicate detector. maxCapacity of 0
// means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// Signature computes the signature of the game's current position.
func Signature(g *engine.Game) GameSignature {
	return GameSignature{
		Hash:      GenerateZobristHash(g),
		TurnCount: g.TurnCount(),
		WeakHash:  WeakHash(g),
	}
}

// CheckAndAdd reports whether the game's final position was seen before,
// and records it if not. Once the detector is full new positions are
// still checked but no longer stored.
func (d *DuplicateDetector) CheckAndAdd(g *engine.Game) bool {
	if g == nil {
		return false
	}
	sig := Signature(g)

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.size++
	return false
}

// signaturesMatch checks if two game signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	return !d.useExactMatch || a.TurnCount == b.TurnCount
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions stored.
func (d *DuplicateDetector) UniqueCount() int {
	return d.size
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.size >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.duplicateCount = 0
	d.size = 0
}
