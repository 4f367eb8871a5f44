package board

// GenerateLegalMoves returns every legal move for the side to move. Results
// are cached until the next mutation; the returned list is the caller's own
// copy, safe to hold across recursive make/undo.
func (p *Position) GenerateLegalMoves() *MoveList {
	if !p.legalOK {
		p.computeLegalMoves()
	}
	out := p.legal
	return &out
}

// GeneratePseudoLegalMoves returns all moves obeying piece-movement rules,
// without the king-safety filter.
func (p *Position) GeneratePseudoLegalMoves() *MoveList {
	ml := &MoveList{}
	p.generateAll(ml)
	return ml
}

// computeLegalMoves runs the generate-and-filter legality algorithm: apply
// each pseudo-legal move, keep it only if the mover's king is not attacked
// afterwards, and revert. Slow but canonical; the cache in front amortizes
// repeated queries between mutations.
func (p *Position) computeLegalMoves() {
	var pseudo MoveList
	p.generateAll(&pseudo)

	us := p.SideToMove
	p.legal.Clear()
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.Get(i)
		if !p.MakeMove(m) {
			continue
		}
		safe := !p.kingAttacked(us)
		p.UndoMove()
		if safe {
			p.legal.Add(m)
		}
	}
	// Set after the loop: the filter's own make/undo calls clear the flag.
	p.legalOK = true
}

// generateAll appends every pseudo-legal move for the side to move.
func (p *Position) generateAll(ml *MoveList) {
	us := p.SideToMove
	occupied := p.AllOccupied
	enemies := p.Occupied[us.Other()]

	p.generatePawnMoves(ml, us, enemies, occupied)

	knights := p.Pieces[us][Knight]
	for knights != 0 {
		from := knights.PopLSB()
		targets := KnightAttacks(from) &^ p.Occupied[us]
		for targets != 0 {
			ml.Add(NewMove(from, targets.PopLSB()))
		}
	}

	bishops := p.Pieces[us][Bishop]
	for bishops != 0 {
		from := bishops.PopLSB()
		targets := BishopAttacks(from, occupied) &^ p.Occupied[us]
		for targets != 0 {
			ml.Add(NewMove(from, targets.PopLSB()))
		}
	}

	rooks := p.Pieces[us][Rook]
	for rooks != 0 {
		from := rooks.PopLSB()
		targets := RookAttacks(from, occupied) &^ p.Occupied[us]
		for targets != 0 {
			ml.Add(NewMove(from, targets.PopLSB()))
		}
	}

	queens := p.Pieces[us][Queen]
	for queens != 0 {
		from := queens.PopLSB()
		targets := QueenAttacks(from, occupied) &^ p.Occupied[us]
		for targets != 0 {
			ml.Add(NewMove(from, targets.PopLSB()))
		}
	}

	if ksq := p.Pieces[us][King].LSB(); ksq != NoSquare {
		targets := KingAttacks(ksq) &^ p.Occupied[us]
		for targets != 0 {
			ml.Add(NewMove(ksq, targets.PopLSB()))
		}
	}

	// Castling comes after the ordinary king steps.
	p.generateCastling(ml, us)
}

// generatePawnMoves appends pushes, double pushes, captures, promotions and
// en-passant captures. The whole pawn set moves at once through mask shifts;
// the file masks inside the shift helpers provide the wraparound rejection,
// and shifting the single-push set again enforces the empty intermediate
// square for double pushes.
func (p *Position) generatePawnMoves(ml *MoveList, us Color, enemies, occupied Bitboard) {
	pawns := p.Pieces[us][Pawn]
	empty := ^occupied

	var push1, push2, capL, capR, promoRank Bitboard
	var forward int
	if us == White {
		push1 = pawns.North() & empty
		push2 = (push1 & Rank3).North() & empty
		capL = pawns.NorthWest() & enemies
		capR = pawns.NorthEast() & enemies
		promoRank = Rank8
		forward = 8
	} else {
		push1 = pawns.South() & empty
		push2 = (push1 & Rank6).South() & empty
		capL = pawns.SouthWest() & enemies
		capR = pawns.SouthEast() & enemies
		promoRank = Rank1
		forward = -8
	}

	for bb := push1 &^ promoRank; bb != 0; {
		to := bb.PopLSB()
		ml.Add(NewMove(Square(int(to)-forward), to))
	}
	for bb := push2; bb != 0; {
		to := bb.PopLSB()
		ml.Add(NewMove(Square(int(to)-2*forward), to))
	}
	for bb := capL &^ promoRank; bb != 0; {
		to := bb.PopLSB()
		ml.Add(NewMove(Square(int(to)-forward+1), to))
	}
	for bb := capR &^ promoRank; bb != 0; {
		to := bb.PopLSB()
		ml.Add(NewMove(Square(int(to)-forward-1), to))
	}

	// Promotion fan-out: each eighth-rank landing becomes four moves.
	for bb := push1 & promoRank; bb != 0; {
		to := bb.PopLSB()
		addPromotions(ml, Square(int(to)-forward), to)
	}
	for bb := capL & promoRank; bb != 0; {
		to := bb.PopLSB()
		addPromotions(ml, Square(int(to)-forward+1), to)
	}
	for bb := capR & promoRank; bb != 0; {
		to := bb.PopLSB()
		addPromotions(ml, Square(int(to)-forward-1), to)
	}

	// En passant. Matching attackers through the reverse capture offsets of
	// the target square also pins the capturer to the one rank en passant is
	// possible from.
	if p.EnPassant != NoSquare {
		epBB := SquareBB(p.EnPassant)
		var attackers Bitboard
		if us == White {
			attackers = (epBB.SouthWest() | epBB.SouthEast()) & pawns
		} else {
			attackers = (epBB.NorthWest() | epBB.NorthEast()) & pawns
		}
		for attackers != 0 {
			ml.Add(NewEnPassant(attackers.PopLSB(), p.EnPassant))
		}
	}
}

func addPromotions(ml *MoveList, from, to Square) {
	ml.Add(NewPromotion(from, to, Queen))
	ml.Add(NewPromotion(from, to, Rook))
	ml.Add(NewPromotion(from, to, Bishop))
	ml.Add(NewPromotion(from, to, Knight))
}

// generateCastling appends the castles available to us. Castling is skipped
// entirely while in check; per direction it needs the right bit, the king
// and rook on their original squares, empty squares between them, and an
// unattacked king path including the destination.
func (p *Position) generateCastling(ml *MoveList, us Color) {
	them := us.Other()
	rights := p.CastlingRights & RightsFromPlacement(&p.Pieces)

	if us == White {
		if rights&(WhiteKingSide|WhiteQueenSide) == 0 || p.IsSquareAttacked(E1, them) {
			return
		}
		if rights&WhiteKingSide != 0 &&
			p.AllOccupied&(SquareBB(F1)|SquareBB(G1)) == 0 &&
			!p.IsSquareAttacked(F1, them) && !p.IsSquareAttacked(G1, them) {
			ml.Add(NewCastling(E1, G1))
		}
		if rights&WhiteQueenSide != 0 &&
			p.AllOccupied&(SquareBB(B1)|SquareBB(C1)|SquareBB(D1)) == 0 &&
			!p.IsSquareAttacked(D1, them) && !p.IsSquareAttacked(C1, them) {
			ml.Add(NewCastling(E1, C1))
		}
		return
	}

	if rights&(BlackKingSide|BlackQueenSide) == 0 || p.IsSquareAttacked(E8, them) {
		return
	}
	if rights&BlackKingSide != 0 &&
		p.AllOccupied&(SquareBB(F8)|SquareBB(G8)) == 0 &&
		!p.IsSquareAttacked(F8, them) && !p.IsSquareAttacked(G8, them) {
		ml.Add(NewCastling(E8, G8))
	}
	if rights&BlackQueenSide != 0 &&
		p.AllOccupied&(SquareBB(B8)|SquareBB(C8)|SquareBB(D8)) == 0 &&
		!p.IsSquareAttacked(D8, them) && !p.IsSquareAttacked(C8, them) {
		ml.Add(NewCastling(E8, C8))
	}
}

// MoveFromSquares builds a Move from raw coordinates, classifying castling,
// en passant and promotion from board context the way the coordinate move
// surface expects. It reports false for out-of-range squares or an empty
// origin; it does not check legality.
func (p *Position) MoveFromSquares(from, to Square, promo PieceType) (Move, bool) {
	if !from.IsValid() || !to.IsValid() {
		return NoMove, false
	}
	piece := p.PieceAt(from)
	if piece == NoPiece {
		return NoMove, false
	}

	pt := piece.Type()
	if pt == Pawn && promo >= Knight && promo <= Queen {
		return NewPromotion(from, to, promo), true
	}
	if pt == King && (from == E1 || from == E8) &&
		(int(to)-int(from) == 2 || int(from)-int(to) == 2) && from.Rank() == to.Rank() {
		return NewCastling(from, to), true
	}
	if pt == Pawn && to == p.EnPassant {
		return NewEnPassant(from, to), true
	}
	return NewMove(from, to), true
}

// HasLegalMoves reports whether the side to move has at least one legal move.
func (p *Position) HasLegalMoves() bool {
	if !p.legalOK {
		p.computeLegalMoves()
	}
	return p.legal.Len() > 0
}

// IsCheckmate reports whether the side to move is checkmated.
func (p *Position) IsCheckmate() bool {
	return !p.HasLegalMoves() && p.InCheck()
}

// IsStalemate reports whether the side to move is stalemated.
func (p *Position) IsStalemate() bool {
	return !p.HasLegalMoves() && !p.InCheck()
}

// GameResult classifies the state of the game for the side to move.
type GameResult uint8

const (
	Ongoing GameResult = iota
	WhiteWins
	BlackWins
	Draw
)

func (r GameResult) String() string {
	switch r {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	}
	return "*"
}

// Result derives the game state from the legal move count: checkmate when
// the side to move has no moves and is in check (the opponent wins),
// stalemate when it has no moves out of check.
func (p *Position) Result() GameResult {
	if p.HasLegalMoves() {
		return Ongoing
	}
	if p.InCheck() {
		if p.SideToMove == White {
			return BlackWins
		}
		return WhiteWins
	}
	return Draw
}
