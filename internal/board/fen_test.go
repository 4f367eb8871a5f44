package board

import (
	"testing"
)

func TestParseFENStartPosition(t *testing.T) {
	pos, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatalf("Failed to parse FEN: %v", err)
	}

	if pos.SideToMove != White {
		t.Errorf("SideToMove = %v, want White", pos.SideToMove)
	}
	if pos.CastlingRights != AllCastling {
		t.Errorf("CastlingRights = %v, want KQkq", pos.CastlingRights)
	}
	if pos.EnPassant != NoSquare {
		t.Errorf("EnPassant = %v, want none", pos.EnPassant)
	}
	if pos.PieceAt(E1) != WhiteKing || pos.PieceAt(E8) != BlackKing {
		t.Error("kings not on their home squares")
	}
	if pos.AllOccupied.PopCount() != 32 {
		t.Errorf("occupied squares = %d, want 32", pos.AllOccupied.PopCount())
	}

	fresh := NewPosition()
	if pos.ToFEN() != fresh.ToFEN() {
		t.Errorf("parsed start position differs from constructed one:\n%s\n%s",
			pos.ToFEN(), fresh.ToFEN())
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"4k3/8/8/8/4Pp2/8/8/4K3 b - e3 0 1",
		"8/P6k/8/8/8/8/8/K7 w - - 12 34",
	}

	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Errorf("ParseFEN(%q): %v", fen, err)
			continue
		}
		if got := pos.ToFEN(); got != fen {
			t.Errorf("round trip changed %q to %q", fen, got)
		}
	}
}

func TestParseFENDefaults(t *testing.T) {
	// Clock fields are optional.
	pos, err := ParseFEN("4k3/8/8/8/8/8/8/4K3 w - -")
	if err != nil {
		t.Fatalf("Failed to parse FEN: %v", err)
	}
	if pos.HalfMoveClock != 0 || pos.FullMoveNumber != 1 {
		t.Errorf("clock defaults = %d/%d, want 0/1", pos.HalfMoveClock, pos.FullMoveNumber)
	}
}

func TestParseFENErrors(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq -",       // 7 ranks
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq -", // bad side
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w XQkq -", // bad rights
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9", // bad square
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -",  // rank overflow
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1", // bad clock
	}

	for _, fen := range bad {
		if _, err := ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q) should fail", fen)
		}
	}
}

// TestParseFENTrimsStaleRights checks that granted rights are dropped when
// the placement no longer supports them.
func TestParseFENTrimsStaleRights(t *testing.T) {
	// White king on e2: the K and Q flags cannot hold.
	pos, err := ParseFEN("r3k2r/8/8/8/8/8/4K3/R6R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("Failed to parse FEN: %v", err)
	}
	if pos.CastlingRights&(WhiteKingSide|WhiteQueenSide) != 0 {
		t.Errorf("white rights should be trimmed, got %v", pos.CastlingRights)
	}
	if pos.CastlingRights&(BlackKingSide|BlackQueenSide) != (BlackKingSide | BlackQueenSide) {
		t.Errorf("black rights should survive, got %v", pos.CastlingRights)
	}
}
