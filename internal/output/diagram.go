package output

import (
	"io"
	"strings"

	"github.com/lgbarn/atomic-chess-go/internal/chess"
	"github.com/lgbarn/atomic-chess-go/internal/engine"
)

// DiagramWriter draws the board as text, rank 8 at the top, with file
// letters above and below and rank numbers on both sides.
type DiagramWriter struct {
	w       io.Writer
	unicode bool
}

// NewDiagramWriter creates a diagram writer. With unicode set, pieces are
// drawn as chess glyphs and empty squares as '□'; otherwise FEN letters and '.'.
func NewDiagramWriter(w io.Writer, unicode bool) *DiagramWriter {
	return &DiagramWriter{w: w, unicode: unicode}
}

// WritePosition writes the diagram followed by a status line.
func (dw *DiagramWriter) WritePosition(game *engine.Game) error {
	_, err := io.WriteString(dw.w, Diagram(game, dw.unicode))
	return err
}

// Diagram returns the text diagram of the game's position.
func Diagram(game *engine.Game, unicode bool) string {
	var sb strings.Builder

	writeFileLetters(&sb)
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		label := byte(chess.RankBase + rank)
		sb.WriteByte(label)
		sb.WriteString("  ")
		for file := 0; file < chess.BoardSize; file++ {
			sb.WriteRune(squareRune(game, chess.Square{File: file, Rank: rank}, unicode))
			sb.WriteString("  ")
		}
		sb.WriteByte(label)
		sb.WriteByte('\n')
	}
	writeFileLetters(&sb)
	sb.WriteString(StatusLine(game))
	sb.WriteByte('\n')

	return sb.String()
}

// StatusLine summarises whose turn it is or who won.
func StatusLine(game *engine.Game) string {
	switch game.Status() {
	case chess.WhiteWon:
		return "White won"
	case chess.BlackWon:
		return "Black won"
	}
	return game.SideToMove().String() + " to move"
}

// writeFileLetters writes the "   a  b  c ..." header row.
func writeFileLetters(sb *strings.Builder) {
	sb.WriteString("   ")
	for file := 0; file < chess.BoardSize; file++ {
		sb.WriteByte(byte(chess.FileBase + file))
		if file < chess.BoardSize-1 {
			sb.WriteString("  ")
		}
	}
	sb.WriteByte('\n')
}

// squareRune returns the character drawn for a square.
func squareRune(game *engine.Game, sq chess.Square, unicode bool) rune {
	p, ok := game.OccupantAt(sq)
	switch {
	case !ok && unicode:
		return '□'
	case !ok:
		return '.'
	case unicode:
		return p.Glyph()
	default:
		return rune(p.Symbol())
	}
}
