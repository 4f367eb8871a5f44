package board

import "fmt"

// CastlingRights is the four-bit set of still-available castling options.
type CastlingRights uint8

const (
	WhiteKingSide  CastlingRights = 1 << iota // K
	WhiteQueenSide                            // Q
	BlackKingSide                             // k
	BlackQueenSide                            // q

	NoCastling  CastlingRights = 0
	AllCastling CastlingRights = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
)

// String returns the FEN castling field ("KQkq", "-").
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSide != 0 {
		s += "K"
	}
	if cr&WhiteQueenSide != 0 {
		s += "Q"
	}
	if cr&BlackKingSide != 0 {
		s += "k"
	}
	if cr&BlackQueenSide != 0 {
		s += "q"
	}
	return s
}

// RightsFromPlacement derives the castling rights supported by the current
// piece placement: a right survives only while its king and rook both stand
// on their original squares. MakeMove intersects the live rights with this
// after every move, so the rights bits can never disagree with the board,
// whatever path a king or rook took off its home square.
func RightsFromPlacement(pieces *[2][6]Bitboard) CastlingRights {
	var cr CastlingRights
	if pieces[White][King].IsSet(E1) {
		if pieces[White][Rook].IsSet(H1) {
			cr |= WhiteKingSide
		}
		if pieces[White][Rook].IsSet(A1) {
			cr |= WhiteQueenSide
		}
	}
	if pieces[Black][King].IsSet(E8) {
		if pieces[Black][Rook].IsSet(H8) {
			cr |= BlackKingSide
		}
		if pieces[Black][Rook].IsSet(A8) {
			cr |= BlackQueenSide
		}
	}
	return cr
}

// Position is the full mutable game state. It is owned by a single goroutine:
// make/undo/generation share scratch buffers, so concurrent use of one
// instance is not safe. Parallel searches clone instead (see Clone).
type Position struct {
	// Pieces holds one bitboard per (color, piece type). A square bit is set
	// in at most one of the twelve boards.
	Pieces [2][6]Bitboard

	// Occupied and AllOccupied are the aggregate masks, always recomputed
	// from Pieces after a mutation: AllOccupied = Occupied[White] |
	// Occupied[Black], and the two sides never overlap.
	Occupied    [2]Bitboard
	AllOccupied Bitboard

	SideToMove     Color
	CastlingRights CastlingRights
	EnPassant      Square // capture target for the next move only, else NoSquare
	HalfMoveClock  int
	FullMoveNumber int

	undo    [MaxUndoDepth]UndoRecord
	undoLen int

	// legal caches the most recent legal move generation; legalOK is cleared
	// by every mutating path so a stale list can never be served.
	legal   MoveList
	legalOK bool
}

// NewPosition returns a position set up with the standard starting layout.
func NewPosition() *Position {
	p := &Position{}
	p.SetStartPosition()
	return p
}

// Clear empties the board and resets all state to defaults: white to move,
// no rights, no en passant, fresh counters, empty undo stack.
func (p *Position) Clear() {
	*p = Position{
		EnPassant:      NoSquare,
		FullMoveNumber: 1,
	}
}

// SetStartPosition loads the standard 32-piece layout with full castling
// rights and white to move.
func (p *Position) SetStartPosition() {
	p.Clear()
	p.Pieces[White][Pawn] = Rank2
	p.Pieces[White][Knight] = SquareBB(B1) | SquareBB(G1)
	p.Pieces[White][Bishop] = SquareBB(C1) | SquareBB(F1)
	p.Pieces[White][Rook] = SquareBB(A1) | SquareBB(H1)
	p.Pieces[White][Queen] = SquareBB(D1)
	p.Pieces[White][King] = SquareBB(E1)
	p.Pieces[Black][Pawn] = Rank7
	p.Pieces[Black][Knight] = SquareBB(B8) | SquareBB(G8)
	p.Pieces[Black][Bishop] = SquareBB(C8) | SquareBB(F8)
	p.Pieces[Black][Rook] = SquareBB(A8) | SquareBB(H8)
	p.Pieces[Black][Queen] = SquareBB(D8)
	p.Pieces[Black][King] = SquareBB(E8)
	p.CastlingRights = AllCastling
	p.updateOccupied()
}

// Clone returns a deep copy with an empty undo stack. Each search worker in
// a parallel traversal gets its own clone; nothing is shared between the
// copy and the original.
func (p *Position) Clone() *Position {
	c := *p
	c.undoLen = 0
	c.legalOK = false
	return &c
}

// PieceAt returns the occupant of sq by scanning the twelve piece boards,
// or NoPiece for an empty or out-of-range square. The O(12) scan is
// deliberate: it depends only on the piece boards, never on the aggregate
// masks, so it stays correct mid-mutation.
func (p *Position) PieceAt(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	bb := SquareBB(sq)
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			if p.Pieces[c][pt]&bb != 0 {
				return NewPiece(pt, c)
			}
		}
	}
	return NoPiece
}

// SetPiece places piece on sq, evicting any previous occupant; NoPiece
// empties the square. Occupancy is recomputed and the legal-move cache
// dropped.
func (p *Position) SetPiece(sq Square, piece Piece) {
	if !sq.IsValid() {
		return
	}
	bb := SquareBB(sq)
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			p.Pieces[c][pt] &^= bb
		}
	}
	if piece != NoPiece {
		p.Pieces[piece.Color()][piece.Type()] |= bb
	}
	p.updateOccupied()
	p.legalOK = false
}

// putPiece sets one piece-board bit. Callers reconcile occupancy afterwards
// via updateOccupied.
func (p *Position) putPiece(c Color, pt PieceType, sq Square) {
	p.Pieces[c][pt] |= SquareBB(sq)
}

// takePiece clears one piece-board bit.
func (p *Position) takePiece(c Color, pt PieceType, sq Square) {
	p.Pieces[c][pt] &^= SquareBB(sq)
}

// updateOccupied rebuilds the aggregate masks from the twelve piece boards.
// Every mutation path ends here; no code updates a piece board without
// funneling through a caller of this.
func (p *Position) updateOccupied() {
	p.Occupied[White] = 0
	p.Occupied[Black] = 0
	for pt := Pawn; pt <= King; pt++ {
		p.Occupied[White] |= p.Pieces[White][pt]
		p.Occupied[Black] |= p.Pieces[Black][pt]
	}
	p.AllOccupied = p.Occupied[White] | p.Occupied[Black]
}

// UndoDepth returns the number of moves currently held on the undo stack.
func (p *Position) UndoDepth() int {
	return p.undoLen
}

// String renders the board with game state, rank 8 first.
func (p *Position) String() string {
	s := "\n"
	for rank := 7; rank >= 0; rank-- {
		s += fmt.Sprintf("%d  ", rank+1)
		for file := 0; file < 8; file++ {
			piece := p.PieceAt(NewSquare(file, rank))
			if piece == NoPiece {
				s += ". "
			} else {
				s += piece.String() + " "
			}
		}
		s += "\n"
	}
	s += "\n   a b c d e f g h\n\n"
	s += fmt.Sprintf("Side to move: %v\n", p.SideToMove)
	s += fmt.Sprintf("Castling: %v\n", p.CastlingRights)
	s += fmt.Sprintf("En passant: %v\n", p.EnPassant)
	s += fmt.Sprintf("Halfmove clock: %d, move %d\n", p.HalfMoveClock, p.FullMoveNumber)
	return s
}
