// Package render draws atomic chess games on a terminal screen.
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lgbarn/atomic-chess-go/internal/chess"
	"github.com/lgbarn/atomic-chess-go/internal/engine"
	"github.com/lgbarn/atomic-chess-go/internal/output"
)

// Screen layout. Each square is squareWidth cells wide with the piece in
// the middle column; rank 8 is drawn on row boardTop.
const (
	squareWidth = 3
	boardLeft   = 2
	boardTop    = 1
	statusRow   = boardTop + chess.BoardSize + 2
	messageRow  = statusRow + 1
	helpRow     = messageRow + 1
)

const helpText = "arrows/hjkl move  space select  esc cancel  q quit"

var (
	lightSquare = tcell.StyleDefault.Background(tcell.NewRGBColor(181, 136, 99))
	darkSquare  = tcell.StyleDefault.Background(tcell.NewRGBColor(120, 80, 50))
	labelStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	errorStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	blastColour = tcell.NewRGBColor(200, 40, 20)
)

// View holds the interactive state drawn on top of a game: the cursor,
// an optional selected origin square and a one-line message.
type View struct {
	screen   tcell.Screen
	unicode  bool
	cursor   chess.Square
	selected chess.Square
	hasSel   bool
	message  string
	isError  bool
}

// NewView creates a view with the cursor on e2.
func NewView(screen tcell.Screen, unicode bool) *View {
	return &View{
		screen:  screen,
		unicode: unicode,
		cursor:  chess.Square{File: 4, Rank: 1},
	}
}

// Cursor returns the square under the cursor.
func (v *View) Cursor() chess.Square { return v.cursor }

// Selected returns the selected origin square, if any.
func (v *View) Selected() (chess.Square, bool) { return v.selected, v.hasSel }

// MoveCursor shifts the cursor, clamped to the board.
func (v *View) MoveCursor(dx, dy int) {
	v.cursor.File = clamp(v.cursor.File+dx, 0, chess.BoardSize-1)
	v.cursor.Rank = clamp(v.cursor.Rank+dy, 0, chess.BoardSize-1)
}

// SetCursor places the cursor on sq if it is on the board.
func (v *View) SetCursor(sq chess.Square) {
	if sq.Valid() {
		v.cursor = sq
	}
}

// Select marks the cursor square as the move origin.
func (v *View) Select() {
	v.selected = v.cursor
	v.hasSel = true
}

// ClearSelection drops the selected origin.
func (v *View) ClearSelection() {
	v.hasSel = false
}

// SetMessage sets the message line. Error messages are drawn in red.
func (v *View) SetMessage(msg string, isError bool) {
	v.message = msg
	v.isError = isError
}

// SquareAt maps a screen cell to the board square drawn there.
func SquareAt(x, y int) (chess.Square, bool) {
	if x < boardLeft || y < boardTop {
		return chess.Square{}, false
	}
	sq := chess.Square{
		File: (x - boardLeft) / squareWidth,
		Rank: chess.BoardSize - 1 - (y - boardTop),
	}
	return sq, sq.Valid()
}

// CellOf returns the screen cell where the piece on sq is drawn.
func CellOf(sq chess.Square) (x, y int) {
	x, y = squareOrigin(sq)
	return x + 1, y
}

// squareOrigin returns the screen cell of the left edge of sq.
func squareOrigin(sq chess.Square) (x, y int) {
	return boardLeft + sq.File*squareWidth, boardTop + chess.BoardSize - 1 - sq.Rank
}

// Draw renders the game and shows the screen.
func (v *View) Draw(g *engine.Game) {
	v.screen.Clear()

	blasted := blastSquares(g.LastMove())

	drawFileLetters(v.screen, boardTop-1)
	drawFileLetters(v.screen, boardTop+chess.BoardSize)
	for rank := 0; rank < chess.BoardSize; rank++ {
		_, y := squareOrigin(chess.Square{Rank: rank})
		label := rune(chess.RankBase + rank)
		v.screen.SetContent(0, y, label, nil, labelStyle)
		v.screen.SetContent(boardLeft+chess.BoardSize*squareWidth+1, y, label, nil, labelStyle)

		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Square{File: file, Rank: rank}
			v.drawSquare(g, sq, blasted[sq])
		}
	}

	drawText(v.screen, 0, statusRow, statusStyle, output.StatusLine(g))
	msgStyle := tcell.StyleDefault
	if v.isError {
		msgStyle = errorStyle
	}
	drawText(v.screen, 0, messageRow, msgStyle, v.message)
	drawText(v.screen, 0, helpRow, labelStyle, helpText)

	v.screen.Show()
}

// drawSquare paints one square including its piece and highlights.
func (v *View) drawSquare(g *engine.Game, sq chess.Square, blasted bool) {
	style := darkSquare
	if (sq.File+sq.Rank)%2 == 1 {
		style = lightSquare
	}
	if blasted {
		style = style.Background(blastColour)
	}
	if v.hasSel && sq == v.selected {
		style = style.Background(tcell.ColorOlive)
	}

	ch := ' '
	if p, ok := g.OccupantAt(sq); ok {
		if v.unicode {
			ch = p.Glyph()
		} else {
			ch = rune(p.Symbol())
		}
		if p.Colour() == chess.White {
			style = style.Foreground(tcell.ColorWhite).Bold(true)
		} else {
			style = style.Foreground(tcell.ColorBlack)
		}
	}
	if sq == v.cursor {
		style = style.Reverse(true)
	}

	x, y := squareOrigin(sq)
	v.screen.SetContent(x, y, ' ', nil, style)
	v.screen.SetContent(x+1, y, ch, nil, style)
	v.screen.SetContent(x+2, y, ' ', nil, style)
}

// blastSquares returns the squares emptied by the last move's explosion.
func blastSquares(r *engine.MoveResult) map[chess.Square]bool {
	out := make(map[chess.Square]bool)
	if r == nil || !r.IsCapture() {
		return out
	}
	out[r.To] = true
	for _, victim := range r.Victims {
		out[victim.Square] = true
	}
	return out
}

func drawFileLetters(s tcell.Screen, y int) {
	for file := 0; file < chess.BoardSize; file++ {
		x, _ := squareOrigin(chess.Square{File: file})
		s.SetContent(x+1, y, rune(chess.FileBase+file), nil, labelStyle)
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
