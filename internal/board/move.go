package board

import "fmt"

// Move packs a chess move into 16 bits:
//
//	bits 0-5:   from square
//	bits 6-11:  to square
//	bits 12-13: promotion piece (0=Knight, 1=Bishop, 2=Rook, 3=Queen)
//	bits 14-15: flag (normal, promotion, en passant, castling)
type Move uint16

const (
	flagNormal    uint16 = 0 << 14
	flagPromotion uint16 = 1 << 14
	flagEnPassant uint16 = 2 << 14
	flagCastling  uint16 = 3 << 14
)

// NoMove is the zero, invalid move.
const NoMove Move = 0

// NewMove builds a plain move.
func NewMove(from, to Square) Move {
	return Move(from) | Move(to)<<6
}

// NewPromotion builds a promotion move; promo must be Knight..Queen.
func NewPromotion(from, to Square, promo PieceType) Move {
	return Move(from) | Move(to)<<6 | Move(promo-Knight)<<12 | Move(flagPromotion)
}

// NewEnPassant builds an en-passant capture.
func NewEnPassant(from, to Square) Move {
	return Move(from) | Move(to)<<6 | Move(flagEnPassant)
}

// NewCastling builds a castling move, expressed as the king's two-file step.
func NewCastling(from, to Square) Move {
	return Move(from) | Move(to)<<6 | Move(flagCastling)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3F)
}

// Promotion returns the promotion piece type; meaningful only when
// IsPromotion reports true.
func (m Move) Promotion() PieceType {
	return PieceType((m>>12)&3) + Knight
}

func (m Move) flag() uint16     { return uint16(m) & 0xC000 }
func (m Move) IsPromotion() bool { return m.flag() == flagPromotion }
func (m Move) IsEnPassant() bool { return m.flag() == flagEnPassant }
func (m Move) IsCastling() bool  { return m.flag() == flagCastling }

// String returns the move in coordinate notation ("e2e4", "e7e8q").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string("nbrq"[m.Promotion()-Knight])
	}
	return s
}

// ParseMove parses coordinate notation against a position, classifying
// castling (king two-file step) and en passant (pawn onto the en-passant
// square) from board context.
func ParseMove(s string, pos *Position) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return NoMove, fmt.Errorf("invalid move string %q", s)
	}
	from := ParseSquare(s[0:2])
	to := ParseSquare(s[2:4])
	if from == NoSquare || to == NoSquare {
		return NoMove, fmt.Errorf("invalid move string %q", s)
	}

	var promo PieceType = NoPieceType
	if len(s) == 5 {
		switch s[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return NoMove, fmt.Errorf("invalid promotion piece %q", s[4])
		}
	}

	m, ok := pos.MoveFromSquares(from, to, promo)
	if !ok {
		return NoMove, fmt.Errorf("no piece to move on %v", from)
	}
	return m, nil
}

// MaxMoves caps a single position's move list. The true chess maximum is
// well below this; Add drops overflow rather than growing.
const MaxMoves = 256

// MoveList is a fixed-capacity move accumulator, kept flat to stay
// allocation-free in the generation hot path.
type MoveList struct {
	moves [MaxMoves]Move
	count int
}

// Add appends a move; past MaxMoves it is dropped.
func (ml *MoveList) Add(m Move) {
	if ml.count >= MaxMoves {
		return
	}
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of accumulated moves.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Clear empties the list.
func (ml *MoveList) Clear() {
	ml.count = 0
}

// Contains reports whether m is in the list.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}

// Slice returns the accumulated moves, backed by the list's own storage.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}

// UndoRecord is the minimal state needed to invert one applied move. It is
// pushed by MakeMove and consumed by UndoMove.
type UndoRecord struct {
	move     Move
	moved    PieceType
	captured PieceType // NoPieceType when nothing was taken
	// capturedSq differs from move.To() only for en-passant captures, where
	// the victim pawn sits one rank behind the destination.
	capturedSq Square
	rookFrom   Square // castling rook origin, NoSquare otherwise
	rookTo     Square

	castlingRights CastlingRights
	enPassant      Square
	halfMoveClock  int
	fullMoveNumber int
}

// MaxUndoDepth bounds the per-position undo stack, far beyond any plausible
// search line. MakeMove fails when the stack is full instead of truncating.
const MaxUndoDepth = 1024
