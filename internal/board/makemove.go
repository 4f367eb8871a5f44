package board

// MakeMove applies m to the position. It validates only the structural
// prerequisites (a piece of the side to move on the origin square, room on
// the undo stack); movement rules are the generator's job. On success the
// exact prior state is recorded so UndoMove can reverse it bit for bit.
func (p *Position) MakeMove(m Move) bool {
	if p.undoLen >= MaxUndoDepth {
		return false
	}

	from, to := m.From(), m.To()
	us := p.SideToMove
	them := us.Other()

	mover := p.PieceAt(from)
	if mover == NoPiece || mover.Color() != us {
		return false
	}
	pt := mover.Type()

	rec := UndoRecord{
		move:           m,
		moved:          pt,
		captured:       NoPieceType,
		capturedSq:     NoSquare,
		rookFrom:       NoSquare,
		rookTo:         NoSquare,
		castlingRights: p.CastlingRights,
		enPassant:      p.EnPassant,
		halfMoveClock:  p.HalfMoveClock,
		fullMoveNumber: p.FullMoveNumber,
	}

	// Remove the victim first. For en passant the pawn sits behind the
	// destination square; castling never captures.
	if !m.IsCastling() {
		capSq := to
		if m.IsEnPassant() {
			if us == White {
				capSq = to - 8
			} else {
				capSq = to + 8
			}
		}
		if victim := p.PieceAt(capSq); victim != NoPiece {
			rec.captured = victim.Type()
			rec.capturedSq = capSq
			p.takePiece(them, victim.Type(), capSq)
		}
	}

	p.takePiece(us, pt, from)
	if m.IsPromotion() {
		p.putPiece(us, m.Promotion(), to)
	} else {
		p.putPiece(us, pt, to)
	}

	if m.IsCastling() {
		rank := from.Rank()
		if to.File() == 6 {
			rec.rookFrom = NewSquare(7, rank)
			rec.rookTo = NewSquare(5, rank)
		} else {
			rec.rookFrom = NewSquare(0, rank)
			rec.rookTo = NewSquare(3, rank)
		}
		p.takePiece(us, Rook, rec.rookFrom)
		p.putPiece(us, Rook, rec.rookTo)
	}

	if pt == Pawn || rec.captured != NoPieceType {
		p.HalfMoveClock = 0
	} else {
		p.HalfMoveClock++
	}
	if us == Black {
		p.FullMoveNumber++
	}

	if pt == Pawn && (int(to)-int(from) == 16 || int(from)-int(to) == 16) {
		p.EnPassant = Square((int(from) + int(to)) / 2)
	} else {
		p.EnPassant = NoSquare
	}

	// Rights only ever decay: the intersection drops any right whose king
	// or rook has left its original square.
	p.CastlingRights &= RightsFromPlacement(&p.Pieces)

	p.SideToMove = them
	p.undo[p.undoLen] = rec
	p.undoLen++
	p.updateOccupied()
	p.legalOK = false
	return true
}

// UndoMove reverses the most recent MakeMove. With no applied moves it does
// nothing.
func (p *Position) UndoMove() {
	if p.undoLen == 0 {
		return
	}
	p.undoLen--
	rec := p.undo[p.undoLen]

	p.SideToMove = p.SideToMove.Other()
	us := p.SideToMove
	m := rec.move
	from, to := m.From(), m.To()

	if m.IsPromotion() {
		p.takePiece(us, m.Promotion(), to)
	} else {
		p.takePiece(us, rec.moved, to)
	}
	p.putPiece(us, rec.moved, from)

	if rec.rookFrom != NoSquare {
		p.takePiece(us, Rook, rec.rookTo)
		p.putPiece(us, Rook, rec.rookFrom)
	}
	if rec.captured != NoPieceType {
		p.putPiece(us.Other(), rec.captured, rec.capturedSq)
	}

	p.CastlingRights = rec.castlingRights
	p.EnPassant = rec.enPassant
	p.HalfMoveClock = rec.halfMoveClock
	p.FullMoveNumber = rec.fullMoveNumber
	p.updateOccupied()
	p.legalOK = false
}
