package board

import (
	"testing"
)

func TestCheckmate(t *testing.T) {
	// Back rank mate, black to move and already checkmated.
	pos, err := ParseFEN("R6k/6pp/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}

	t.Log("Checkmate position:")
	t.Log(pos)
	t.Log("InCheck:", pos.InCheck())

	blackMoves := pos.GenerateLegalMoves()
	t.Log("Black legal moves:", blackMoves.Len())
	for i := 0; i < blackMoves.Len(); i++ {
		t.Log("  Move:", blackMoves.Get(i))
	}

	if !pos.IsCheckmate() {
		t.Error("Expected checkmate but got false")
	}
	if got := pos.Result(); got != WhiteWins {
		t.Errorf("Result() = %v, want %v", got, WhiteWins)
	}
}

func TestNotCheckmate(t *testing.T) {
	// Black king on h8, rook on g8, but the king can capture it.
	pos, err := ParseFEN("6Rk/8/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}

	if pos.IsCheckmate() {
		t.Error("Expected NOT checkmate but got true")
	}
	if got := pos.Result(); got != Ongoing {
		t.Errorf("Result() = %v, want %v", got, Ongoing)
	}
}

func TestStalemate(t *testing.T) {
	// Black king on h8 has no moves and is not in check.
	pos, err := ParseFEN("7k/5Q2/5K2/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}

	if pos.InCheck() {
		t.Fatal("stalemate position should not be check")
	}
	if !pos.IsStalemate() {
		t.Error("Expected stalemate but got false")
	}
	if got := pos.Result(); got != Draw {
		t.Errorf("Result() = %v, want %v", got, Draw)
	}
}

func TestCheckmateBlackWins(t *testing.T) {
	// Mirror of the back rank mate with white to move.
	pos, err := ParseFEN("k7/8/8/8/8/8/6PP/r6K w - - 0 1")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}

	if !pos.IsCheckmate() {
		t.Error("Expected checkmate but got false")
	}
	if got := pos.Result(); got != BlackWins {
		t.Errorf("Result() = %v, want %v", got, BlackWins)
	}
}
