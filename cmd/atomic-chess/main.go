// atomic-chess plays atomic chess from a list of moves or interactively in the terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/atomic-chess-go/internal/chess"
	"github.com/lgbarn/atomic-chess-go/internal/config"
	"github.com/lgbarn/atomic-chess-go/internal/processing"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("atomic-chess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if cfg.Interactive {
		if err := runInteractive(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	totals, err := processAllInputs(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	reportStatistics(cfg, totals)
	if totals.Stopped {
		os.Exit(1)
	}
}

// processAllInputs runs either a single game from the collected moves or,
// with -games, one game per moves file.
func processAllInputs(cfg *config.Config) (Totals, error) {
	if *gamesMode {
		if flag.NArg() == 0 {
			return Totals{}, fmt.Errorf("-games needs at least one moves file")
		}
		return runGames(cfg, flag.Args(), *numWorkers, *strict, *suppressDuplicates)
	}

	moves, err := collectMoves(flag.Args(), *movesFile, os.Stdin)
	if err != nil {
		return Totals{}, err
	}
	return runBatch(cfg, moves, *strict)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *quiet {
		cfg.LogFile = io.Discard
		return
	}

	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// collectMoves gathers move tokens from the command line and the moves
// file. With neither given, moves are read from stdin.
func collectMoves(args []string, path string, stdin io.Reader) ([]string, error) {
	moves, err := processing.ReadMoves(strings.NewReader(strings.Join(args, " ")))
	if err != nil {
		return nil, err
	}

	switch {
	case path == "-" || (path == "" && len(args) == 0):
		more, err := processing.ReadMoves(stdin)
		if err != nil {
			return nil, err
		}
		moves = append(moves, more...)
	case path != "":
		more, err := readMovesFile(path)
		if err != nil {
			return nil, err
		}
		moves = append(moves, more...)
	}
	return moves, nil
}

// reportStatistics logs the move counts of a batch run.
func reportStatistics(cfg *config.Config, totals Totals) {
	if totals.Games > 1 {
		cfg.Logf(1, "%d games, %d duplicate final positions", totals.Games, totals.Duplicates)
	}
	cfg.Logf(1, "%d moves accepted, %d rejected", totals.Accepted, totals.Rejected)
	if totals.Explosions > 0 {
		cfg.Logf(2, "%d explosions destroyed %d white and %d black pieces, largest blast %d",
			totals.Explosions, totals.Destroyed[chess.White], totals.Destroyed[chess.Black], totals.LargestBlast)
	}
	if totals.Repetitions > 0 {
		cfg.Logf(2, "%d games repeated a position three times", totals.Repetitions)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: atomic-chess [options] [moves...]\n")
	fmt.Fprintf(os.Stderr, "       atomic-chess -games [options] moves-file...\n\n")
	fmt.Fprintf(os.Stderr, "Plays atomic chess: every capture explodes, destroying the capturing piece\n")
	fmt.Fprintf(os.Stderr, "and all non-pawn pieces next to the capture square. Destroy the enemy king to win.\n\n")
	fmt.Fprintf(os.Stderr, "Moves are coordinate pairs such as e2e4 or e2-e4. Without moves on the\n")
	fmt.Fprintf(os.Stderr, "command line or -f, moves are read from stdin.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nOutput formats (-W):\n")
	fmt.Fprintf(os.Stderr, "  diagram  Text board (default)\n")
	fmt.Fprintf(os.Stderr, "  fen      FEN of the final position\n")
	fmt.Fprintf(os.Stderr, "  json     JSON snapshot with pieces and last move\n")
}
