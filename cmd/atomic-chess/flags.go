// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/atomic-chess-go/internal/config"
	"github.com/lgbarn/atomic-chess-go/internal/errors"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	outputFormat = flag.String("W", "diagram", "Output format: diagram, fen, json")
	unicode      = flag.Bool("u", false, "Draw pieces as chess glyphs")

	// Position and moves
	startFEN  = flag.String("fen", "", "Starting position in FEN (default: standard layout)")
	movesFile = flag.String("f", "", "Read moves from this file ('-' for stdin)")
	strict    = flag.Bool("strict", false, "Stop at the first rejected move and exit with status 1")

	// Multiple games
	gamesMode          = flag.Bool("games", false, "Treat each argument as a moves file and replay it as a separate game")
	numWorkers         = flag.Int("j", 1, "Number of games replayed in parallel with -games")
	suppressDuplicates = flag.Bool("D", false, "With -games, skip games whose final position was already output")
	exactDuplicates    = flag.Bool("exact-duplicates", false, "With -games, a duplicate must also take the same number of moves")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum stored final positions (0 = unlimited)")

	// Interactive play
	interactive  = flag.Bool("i", false, "Play interactively in the terminal")
	soundEffects = flag.Bool("s", false, "Play sound effects (interactive mode only)")
	volume       = flag.Float64("volume", 0.5, "Sound volume between 0 and 1")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	appendLog = flag.String("L", "", "Append diagnostics to this file")
	quiet     = flag.Bool("q", false, "Quiet mode: no diagnostics")
	verbose   = flag.Bool("v", false, "Log every accepted move")

	// Help and version
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flag values to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := checkLogFlags(); err != nil {
		return err
	}
	applyVerbosityFlags(cfg)

	cfg.StartFEN = *startFEN
	cfg.Unicode = *unicode
	cfg.Interactive = *interactive
	cfg.Sound = *soundEffects
	cfg.Volume = *volume
	cfg.DuplicateExact = *exactDuplicates
	cfg.DuplicateCapacity = *duplicateCapacity

	return applyOutputFormatFlags(cfg)
}

// checkLogFlags rejects -l together with -L; only one log file can be open.
func checkLogFlags() error {
	if *logFile != "" && *appendLog != "" {
		return fmt.Errorf("-l and -L cannot be used together: %w", errors.ErrInvalidConfig)
	}
	return nil
}

// applyVerbosityFlags sets the log level; -q wins over -v.
func applyVerbosityFlags(cfg *config.Config) {
	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}

// applyOutputFormatFlags configures the output format.
func applyOutputFormatFlags(cfg *config.Config) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return fmt.Errorf("-W: %w", err)
	}
	cfg.OutputFormat = format
	return nil
}
