package processing

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/atomic-chess-go/internal/errors"
)

// ParseMove splits a move token into origin and destination coordinates.
// Accepted forms are "e2e4", "e2-e4", "e2xe4" and "e2:e4". The squares
// themselves are validated by the engine.
func ParseMove(tok string) (from, to string, err error) {
	tok = strings.ToLower(strings.TrimSpace(tok))
	if i := strings.IndexAny(tok, "-x:"); i >= 0 {
		from, to = tok[:i], tok[i+1:]
	} else if len(tok) == 4 {
		from, to = tok[:2], tok[2:]
	}
	if from == "" || to == "" {
		return "", "", fmt.Errorf("malformed move %q", tok)
	}
	return from, to, nil
}

// ReadMoves returns the move tokens in r. Text after '#' on a line is a
// comment, and move numbers such as "12." are skipped.
func ReadMoves(r io.Reader) ([]string, error) {
	var moves []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		for _, tok := range strings.Fields(line) {
			if IsMoveNumber(tok) {
				continue
			}
			moves = append(moves, tok)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading moves")
	}
	return moves, nil
}

// IsMoveNumber reports whether tok looks like "1." or "23...".
func IsMoveNumber(tok string) bool {
	digits := strings.TrimRight(tok, ".")
	if digits == tok || digits == "" {
		return false
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
