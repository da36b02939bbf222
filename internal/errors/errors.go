// Package errors provides sentinel errors and error types for the atomic chess engine.
// Every rejected move is reported as a MoveError wrapping one of the sentinels,
// so callers can inspect the reason with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for move rejection and setup failures.
var (
	// ErrGameOver indicates a move was requested after a king was destroyed.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidSquare indicates a coordinate outside a1..h8.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrEmptyOrigin indicates there is no piece on the origin square.
	ErrEmptyOrigin = errors.New("no piece on origin square")

	// ErrWrongTurn indicates the piece belongs to the side not on move.
	ErrWrongTurn = errors.New("wrong player")

	// ErrOutOfRange indicates the destination is not reachable by the piece's geometry.
	ErrOutOfRange = errors.New("destination out of range")

	// ErrPathBlocked indicates a piece stands in the way of the move.
	ErrPathBlocked = errors.New("path blocked")

	// ErrFriendlyTarget indicates the destination holds a piece of the mover's colour.
	ErrFriendlyTarget = errors.New("destination occupied by friendly piece")

	// ErrKingCapture indicates a king tried to capture.
	ErrKingCapture = errors.New("king cannot capture")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a rejection reason with the requested origin and destination.
type MoveError struct {
	Err  error  // The underlying sentinel
	From string // Origin as given by the caller
	To   string // Destination as given by the caller
}

// Error returns a message of the form "move e2-e5: destination out of range".
func (e *MoveError) Error() string {
	var parts []string
	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	if len(parts) == 0 {
		return "illegal move"
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
