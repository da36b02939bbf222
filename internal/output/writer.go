// Package output provides position output formatting for atomic chess games.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/atomic-chess-go/internal/config"
	"github.com/lgbarn/atomic-chess-go/internal/engine"
)

// PositionWriter is the interface for writing game positions to output.
// Different implementations handle different formats (diagram, FEN, JSON).
type PositionWriter interface {
	// WritePosition writes the current position of the game.
	WritePosition(game *engine.Game) error
}

// NewWriter returns the PositionWriter selected by cfg.OutputFormat,
// writing to w.
func NewWriter(w io.Writer, cfg *config.Config) (PositionWriter, error) {
	switch cfg.OutputFormat {
	case config.Diagram:
		return &DiagramWriter{w: w, unicode: cfg.Unicode}, nil
	case config.FEN:
		return &FENWriter{w: w}, nil
	case config.JSON:
		return &JSONWriter{w: w}, nil
	default:
		return nil, fmt.Errorf("no writer for output format %v", cfg.OutputFormat)
	}
}

// FENWriter writes one FEN line per position.
type FENWriter struct {
	w io.Writer
}

// NewFENWriter creates a new FEN writer.
func NewFENWriter(w io.Writer) *FENWriter {
	return &FENWriter{w: w}
}

// WritePosition writes the position as a FEN string followed by a newline.
func (fw *FENWriter) WritePosition(game *engine.Game) error {
	_, err := fmt.Fprintln(fw.w, game.FEN())
	return err
}
