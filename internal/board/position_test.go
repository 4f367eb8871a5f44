package board

import (
	"testing"
)

// TestOccupancyInvariant checks that the derived occupancy boards stay in
// sync with the piece boards through a sequence of moves.
func TestOccupancyInvariant(t *testing.T) {
	pos := NewPosition()
	line := []Move{
		NewMove(E2, E4), NewMove(C7, C5),
		NewMove(G1, F3), NewMove(D7, D6),
		NewMove(D2, D4), NewMove(C5, D4),
		NewMove(F3, D4), NewMove(G8, F6),
	}

	check := func() {
		var white, black Bitboard
		for pt := Pawn; pt <= King; pt++ {
			white |= pos.Pieces[White][pt]
			black |= pos.Pieces[Black][pt]
		}
		if pos.Occupied[White] != white || pos.Occupied[Black] != black {
			t.Fatal("per-color occupancy out of sync with piece boards")
		}
		if pos.AllOccupied != white|black {
			t.Fatal("total occupancy out of sync")
		}
		if white&black != 0 {
			t.Fatal("colors overlap")
		}
	}

	check()
	for _, m := range line {
		if !pos.MakeMove(m) {
			t.Fatalf("MakeMove(%v) failed", m)
		}
		check()
	}
	for pos.UndoDepth() > 0 {
		pos.UndoMove()
		check()
	}
}

func TestCloneIndependence(t *testing.T) {
	pos := NewPosition()
	pos.MakeMove(NewMove(E2, E4))

	clone := pos.Clone()
	if clone.ToFEN() != pos.ToFEN() {
		t.Fatal("clone differs from original")
	}
	if clone.UndoDepth() != 0 {
		t.Errorf("clone UndoDepth = %d, want 0", clone.UndoDepth())
	}

	clone.MakeMove(NewMove(E7, E5))
	if clone.ToFEN() == pos.ToFEN() {
		t.Error("mutating the clone changed the original")
	}

	// Clone cannot unwind moves made before the clone.
	clone2 := pos.Clone()
	clone2.UndoMove()
	if clone2.ToFEN() != pos.ToFEN() {
		t.Error("UndoMove on a fresh clone should be a no-op")
	}
}

func TestSetPieceReplaces(t *testing.T) {
	pos := NewPosition()
	pos.SetPiece(E2, BlackQueen)
	if pos.PieceAt(E2) != BlackQueen {
		t.Errorf("PieceAt(e2) = %v, want black queen", pos.PieceAt(E2))
	}
	if pos.Pieces[White][Pawn].IsSet(E2) {
		t.Error("white pawn board still has e2 set")
	}
	pos.SetPiece(E2, NoPiece)
	if pos.PieceAt(E2) != NoPiece {
		t.Error("clearing e2 failed")
	}
}

func TestRightsFromPlacement(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want CastlingRights
	}{
		{"start", StartFEN, AllCastling},
		{"white king moved", "r3k2r/8/8/8/8/8/4K3/R6R w kq - 0 1", BlackKingSide | BlackQueenSide},
		{"h1 rook gone", "r3k2r/8/8/8/8/8/8/R3K3 w Qkq - 0 1", WhiteQueenSide | BlackKingSide | BlackQueenSide},
		{"empty board kings", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", NoCastling},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos, err := ParseFEN(tc.fen)
			if err != nil {
				t.Fatalf("Failed to parse FEN: %v", err)
			}
			if got := RightsFromPlacement(&pos.Pieces); got != tc.want {
				t.Errorf("RightsFromPlacement = %v, want %v", got, tc.want)
			}
		})
	}
}

// TestRightsDoNotRegrow plays a rook out and back and checks the right stays
// lost even though the placement again matches the original squares.
func TestRightsDoNotRegrow(t *testing.T) {
	pos, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("Failed to parse FEN: %v", err)
	}

	pos.MakeMove(NewMove(H1, H4))
	if pos.CastlingRights&WhiteKingSide != 0 {
		t.Fatal("kingside right should drop when the rook leaves h1")
	}
	pos.MakeMove(NewMove(A8, A7))
	pos.MakeMove(NewMove(H4, H1))
	if pos.CastlingRights&WhiteKingSide != 0 {
		t.Error("kingside right must not return with the rook")
	}
	if pos.CastlingRights&WhiteQueenSide == 0 {
		t.Error("queenside right should be unaffected")
	}
}
