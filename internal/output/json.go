package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/atomic-chess-go/internal/chess"
	"github.com/lgbarn/atomic-chess-go/internal/engine"
)

// JSONGame represents a game snapshot in JSON format.
type JSONGame struct {
	Status    string      `json:"status"`
	Turn      string      `json:"turn"` // "white" or "black"
	TurnCount int         `json:"turnCount"`
	FEN       string      `json:"fen"`
	Pieces    []JSONPiece `json:"pieces"`
	LastMove  *JSONMove   `json:"lastMove,omitempty"`
}

// JSONPiece represents a piece on the board.
type JSONPiece struct {
	Square    string `json:"square"`
	Kind      string `json:"kind"`
	Color     string `json:"color"`
	Symbol    string `json:"symbol"`
	MoveCount int    `json:"moveCount"`
}

// JSONMove represents the most recent accepted move.
type JSONMove struct {
	From     string      `json:"from"`
	To       string      `json:"to"`
	Piece    string      `json:"piece"`
	Captured string      `json:"captured,omitempty"`
	Victims  []JSONPiece `json:"victims,omitempty"`
}

// JSONWriter writes each position as an indented JSON object.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WritePosition writes the game snapshot.
func (jw *JSONWriter) WritePosition(game *engine.Game) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(GameToJSON(game))
}

// GameToJSON converts a game to its JSON snapshot.
func GameToJSON(game *engine.Game) *JSONGame {
	jg := &JSONGame{
		Status:    game.Status().String(),
		Turn:      colourName(game.SideToMove()),
		TurnCount: game.TurnCount(),
		FEN:       game.FEN(),
		Pieces:    []JSONPiece{},
	}

	for _, p := range game.Pieces() {
		sq, _ := p.Position()
		jg.Pieces = append(jg.Pieces, pieceToJSON(p, sq))
	}

	if r := game.LastMove(); r != nil {
		jm := &JSONMove{
			From:  r.From.String(),
			To:    r.To.String(),
			Piece: string(r.Piece.Symbol()),
		}
		if r.Captured != nil {
			jm.Captured = string(r.Captured.Symbol())
		}
		for _, v := range r.Victims {
			jm.Victims = append(jm.Victims, pieceToJSON(v.Piece, v.Square))
		}
		jg.LastMove = jm
	}

	return jg
}

// pieceToJSON converts a piece standing on sq.
func pieceToJSON(p chess.Piece, sq chess.Square) JSONPiece {
	return JSONPiece{
		Square:    sq.String(),
		Kind:      p.Kind().String(),
		Color:     colourName(p.Colour()),
		Symbol:    string(p.Symbol()),
		MoveCount: p.MoveCount(),
	}
}

// colourName returns "white" or "black".
func colourName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}
