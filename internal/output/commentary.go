package output

import (
	"strings"

	"github.com/lgbarn/atomic-chess-go/internal/engine"
)

// MoveText describes an accepted move in long algebraic form, e.g. "Ng1-f3"
// for a quiet move or "Bb5xd7 (destroyed: Nb8 ke8)" for a capture.
func MoveText(r *engine.MoveResult) string {
	var sb strings.Builder

	if letter := r.Piece.Kind().Letter(); letter != 'P' {
		sb.WriteByte(letter)
	}
	sb.WriteString(r.From.String())
	if r.IsCapture() {
		sb.WriteByte('x')
	} else {
		sb.WriteByte('-')
	}
	sb.WriteString(r.To.String())

	if len(r.Victims) > 0 {
		sb.WriteString(" (destroyed:")
		for _, v := range r.Victims {
			sb.WriteByte(' ')
			sb.WriteByte(v.Piece.Symbol())
			sb.WriteString(v.Square.String())
		}
		sb.WriteByte(')')
	}
	if r.Status.Finished() {
		sb.WriteString(" ")
		sb.WriteString(r.Status.String())
	}

	return sb.String()
}
