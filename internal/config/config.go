// Package config provides configuration for the atomic-chess command.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/atomic-chess-go/internal/errors"
)

// OutputFormat selects how the final position is written.
type OutputFormat int

const (
	Diagram OutputFormat = iota // Text board with file letters and rank numbers
	FEN                         // Forsyth-Edwards Notation
	JSON                        // JSON snapshot of the game
)

var formatNames = map[string]OutputFormat{
	"diagram": Diagram,
	"fen":     FEN,
	"json":    JSON,
}

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	for name, v := range formatNames {
		if v == f {
			return name
		}
	}
	return fmt.Sprintf("OutputFormat(%d)", int(f))
}

// ParseOutputFormat converts a flag value such as "json" to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	if f, ok := formatNames[strings.ToLower(s)]; ok {
		return f, nil
	}
	return Diagram, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
}

// Config holds all program configuration.
type Config struct {
	// 0=nothing, 1=rejected moves and result, 2=running commentary
	Verbosity int

	// Starting position; empty means the standard layout.
	StartFEN string

	// Output
	OutputFormat OutputFormat
	Unicode      bool // Use chess glyphs in diagrams

	// Interactive terminal play
	Interactive bool
	Sound       bool
	Volume      float64 // 0 to 1

	// Duplicate final positions in multi-game runs
	DuplicateExact    bool // also require the same number of moves
	DuplicateCapacity int  // maximum stored positions, 0 = unlimited

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:    1,
		OutputFormat: Diagram,
		Volume:       0.5,
		OutputFile:   os.Stdout,
		LogFile:      os.Stderr,
	}
}

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d out of range 0-2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if _, ok := formatNames[c.OutputFormat.String()]; !ok {
		return fmt.Errorf("output format %v: %w", c.OutputFormat, errors.ErrInvalidConfig)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("volume %g out of range 0-1: %w", c.Volume, errors.ErrInvalidConfig)
	}
	if c.DuplicateCapacity < 0 {
		return fmt.Errorf("duplicate capacity %d is negative: %w", c.DuplicateCapacity, errors.ErrInvalidConfig)
	}
	if c.Sound && !c.Interactive {
		return fmt.Errorf("sound requires interactive mode: %w", errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return fmt.Errorf("output and log streams must be set: %w", errors.ErrInvalidConfig)
	}
	return nil
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
