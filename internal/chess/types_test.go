package chess

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	cerrors "github.com/lgbarn/atomic-chess-go/internal/errors"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in      string
		want    Square
		wantErr bool
	}{
		{"a1", Square{0, 0}, false},
		{"h8", Square{7, 7}, false},
		{"e4", Square{4, 3}, false},
		{"", Square{}, true},
		{"a", Square{}, true},
		{"a9", Square{}, true},
		{"i1", Square{}, true},
		{"A1", Square{}, true},
		{"a0", Square{}, true},
		{"a10", Square{}, true},
		{"1a", Square{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSquare(tt.in)
			if tt.wantErr {
				if !errors.Is(err, cerrors.ErrInvalidSquare) {
					t.Errorf("ParseSquare(%q) error = %v, want ErrInvalidSquare", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSquare(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
			if got.String() != tt.in {
				t.Errorf("ParseSquare(%q).String() = %q", tt.in, got.String())
			}
		})
	}
}

func TestSquareNeighbours(t *testing.T) {
	tests := []struct {
		square string
		want   []string
	}{
		{"a1", []string{"b1", "a2", "b2"}},
		{"h8", []string{"g7", "h7", "g8"}},
		{"e4", []string{"d3", "e3", "f3", "d4", "f4", "d5", "e5", "f5"}},
		{"a5", []string{"a4", "b4", "b5", "a6", "b6"}},
	}

	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			var got []string
			for _, n := range MustParseSquare(tt.square).Neighbours() {
				got = append(got, n.String())
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Neighbours(%s) mismatch (-want +got):\n%s", tt.square, diff)
			}
		})
	}
}

func TestSquareDistance(t *testing.T) {
	e4 := MustParseSquare("e4")
	tests := []struct {
		to   string
		want int
	}{
		{"e4", 0}, {"f5", 1}, {"d3", 1}, {"e6", 2}, {"h1", 3}, {"a8", 4},
	}
	for _, tt := range tests {
		if got := e4.Distance(MustParseSquare(tt.to)); got != tt.want {
			t.Errorf("e4.Distance(%s) = %d, want %d", tt.to, got, tt.want)
		}
	}
}

func TestKindFromLetter(t *testing.T) {
	for k := Pawn; k < NumKinds; k++ {
		upper := k.Letter()
		lower := upper + ('a' - 'A')
		for _, c := range []byte{upper, lower} {
			got, ok := KindFromLetter(c)
			if !ok || got != k {
				t.Errorf("KindFromLetter(%c) = %v, %v; want %v, true", c, got, ok, k)
			}
		}
	}
	if _, ok := KindFromLetter('x'); ok {
		t.Error("KindFromLetter('x') ok = true, want false")
	}
}

func TestKindSlides(t *testing.T) {
	want := map[Kind]bool{
		Pawn: false, Knight: false, Bishop: true,
		Rook: true, Queen: true, King: false,
	}
	for k, slides := range want {
		if got := k.Slides(); got != slides {
			t.Errorf("%v.Slides() = %v, want %v", k, got, slides)
		}
	}
	if Kind(42).Slides() {
		t.Error("Kind(42).Slides() = true, want false")
	}
}

func TestPieceSymbol(t *testing.T) {
	tests := []struct {
		piece *Piece
		want  byte
		glyph rune
	}{
		{NewPiece(King, White), 'K', '♔'},
		{NewPiece(King, Black), 'k', '♚'},
		{NewPiece(Knight, White), 'N', '♘'},
		{NewPiece(Pawn, Black), 'p', '♟'},
	}
	for _, tt := range tests {
		if got := tt.piece.Symbol(); got != tt.want {
			t.Errorf("%v.Symbol() = %c, want %c", tt.piece, got, tt.want)
		}
		if got := tt.piece.Glyph(); got != tt.glyph {
			t.Errorf("%v.Glyph() = %c, want %c", tt.piece, got, tt.glyph)
		}
	}
}

func TestTurnAffinity(t *testing.T) {
	if !NewPiece(Rook, White).TurnAffinity() {
		t.Error("White rook TurnAffinity() = false, want true")
	}
	if NewPiece(Rook, Black).TurnAffinity() {
		t.Error("Black rook TurnAffinity() = true, want false")
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		status   Status
		name     string
		finished bool
	}{
		{Unfinished, "UNFINISHED", false},
		{WhiteWon, "WHITE_WON", true},
		{BlackWon, "BLACK_WON", true},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.name {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.name)
		}
		if got := tt.status.Finished(); got != tt.finished {
			t.Errorf("%s.Finished() = %v, want %v", tt.name, got, tt.finished)
		}
	}
	if WinFor(White) != WhiteWon || WinFor(Black) != BlackWon {
		t.Error("WinFor does not map colours to their win status")
	}
}
