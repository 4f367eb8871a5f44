package eval

import (
	"testing"

	"github.com/mkarren/chesskit/internal/board"
)

func TestStartPositionIsBalanced(t *testing.T) {
	pos := board.NewPosition()
	if got := Evaluate(pos); got != 0 {
		t.Errorf("Evaluate(start) = %d, want 0", got)
	}
	if got := Material(pos); got != 0 {
		t.Errorf("Material(start) = %d, want 0", got)
	}
}

func TestMaterialBalance(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want int
	}{
		{"white up a queen", "4k3/8/8/8/8/8/8/3QK3 w - - 0 1", QueenValue},
		{"black up a rook", "3rk3/8/8/8/8/8/8/4K3 w - - 0 1", -RookValue},
		{"white up a pawn", "4k3/8/8/8/8/8/P7/4K3 w - - 0 1", PawnValue},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos, err := board.ParseFEN(tc.fen)
			if err != nil {
				t.Fatalf("Failed to parse FEN: %v", err)
			}
			if got := Material(pos); got != tc.want {
				t.Errorf("Material = %d, want %d", got, tc.want)
			}
		})
	}
}

// TestMirrorSymmetry checks that color-flipping a position negates the score.
func TestMirrorSymmetry(t *testing.T) {
	// White knight on d5 against the color-flipped black knight on d4.
	a, err := board.ParseFEN("4k3/8/8/3N4/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("Failed to parse FEN: %v", err)
	}
	b, err := board.ParseFEN("4k3/8/8/8/3n4/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("Failed to parse FEN: %v", err)
	}
	if Evaluate(a) != -Evaluate(b) {
		t.Errorf("mirrored knights should negate: %d vs %d", Evaluate(a), Evaluate(b))
	}
}

func TestCentralKnightBeatsCornerKnight(t *testing.T) {
	central, err := board.ParseFEN("4k3/8/8/3N4/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("Failed to parse FEN: %v", err)
	}
	corner, err := board.ParseFEN("4k3/8/8/8/8/8/8/N3K3 w - - 0 1")
	if err != nil {
		t.Fatalf("Failed to parse FEN: %v", err)
	}
	if Evaluate(central) <= Evaluate(corner) {
		t.Errorf("central knight (%d) should outscore corner knight (%d)",
			Evaluate(central), Evaluate(corner))
	}
}
