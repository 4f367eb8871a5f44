package board

// Attack tables for the stepping pieces, filled once at init. Sliding piece
// attacks are computed on demand by walking each ray to its first blocker.
var (
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard
	pawnAttacks   [2][64]Bitboard // capture targets, indexed [Color][Square]
)

func init() {
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)

		// Knight: 2+1 jumps. The file masks reject offsets that would wrap
		// across the a/h edge onto the neighboring rank.
		knightAttacks[sq] = (bb<<17)&notFileA | (bb<<15)&notFileH |
			(bb>>17)&notFileH | (bb>>15)&notFileA |
			(bb<<10)&notFileAB | (bb<<6)&notFileGH |
			(bb>>10)&notFileGH | (bb>>6)&notFileAB

		kingAttacks[sq] = bb.North() | bb.South() | bb.East() | bb.West() |
			bb.NorthEast() | bb.NorthWest() | bb.SouthEast() | bb.SouthWest()

		pawnAttacks[White][sq] = bb.NorthEast() | bb.NorthWest()
		pawnAttacks[Black][sq] = bb.SouthEast() | bb.SouthWest()
	}
}

// KnightAttacks returns the knight attack set from sq.
func KnightAttacks(sq Square) Bitboard {
	return knightAttacks[sq]
}

// KingAttacks returns the king attack set from sq.
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}

// PawnAttacks returns the squares a pawn of color c on sq attacks.
func PawnAttacks(sq Square, c Color) Bitboard {
	return pawnAttacks[c][sq]
}

// slideRay walks from sq in the (df, dr) direction, accumulating squares
// until the board edge or the first occupied square. The blocker square is
// included so captures and attack tests see it.
func slideRay(sq Square, df, dr int, occupied Bitboard) Bitboard {
	var attacks Bitboard
	for f, r := sq.File()+df, sq.Rank()+dr; f >= 0 && f <= 7 && r >= 0 && r <= 7; f, r = f+df, r+dr {
		s := NewSquare(f, r)
		attacks |= SquareBB(s)
		if occupied.IsSet(s) {
			break
		}
	}
	return attacks
}

// BishopAttacks returns the diagonal attack set from sq given the occupancy.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	return slideRay(sq, 1, 1, occupied) |
		slideRay(sq, -1, 1, occupied) |
		slideRay(sq, 1, -1, occupied) |
		slideRay(sq, -1, -1, occupied)
}

// RookAttacks returns the orthogonal attack set from sq given the occupancy.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	return slideRay(sq, 0, 1, occupied) |
		slideRay(sq, 0, -1, occupied) |
		slideRay(sq, 1, 0, occupied) |
		slideRay(sq, -1, 0, occupied)
}

// QueenAttacks is the union of rook and bishop attacks from sq.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return BishopAttacks(sq, occupied) | RookAttacks(sq, occupied)
}

// AttackersByColor returns the pieces of color c that attack sq under the
// given occupancy. Pawns are matched through the reverse capture offsets:
// the squares a c-colored pawn would need to stand on are exactly the
// opposite color's attack set from sq.
func (p *Position) AttackersByColor(sq Square, c Color, occupied Bitboard) Bitboard {
	return (pawnAttacks[c.Other()][sq] & p.Pieces[c][Pawn]) |
		(knightAttacks[sq] & p.Pieces[c][Knight]) |
		(kingAttacks[sq] & p.Pieces[c][King]) |
		(BishopAttacks(sq, occupied) & (p.Pieces[c][Bishop] | p.Pieces[c][Queen])) |
		(RookAttacks(sq, occupied) & (p.Pieces[c][Rook] | p.Pieces[c][Queen]))
}

// IsSquareAttacked reports whether byColor attacks sq. It never mutates the
// position; check detection and castling-path tests both go through here.
func (p *Position) IsSquareAttacked(sq Square, byColor Color) bool {
	return p.AttackersByColor(sq, byColor, p.AllOccupied) != 0
}

// InCheck reports whether the side to move has its king attacked.
func (p *Position) InCheck() bool {
	return p.kingAttacked(p.SideToMove)
}

// kingAttacked reports whether c's king square is attacked by the opponent.
func (p *Position) kingAttacked(c Color) bool {
	ksq := p.Pieces[c][King].LSB()
	if ksq == NoSquare {
		return false
	}
	return p.IsSquareAttacked(ksq, c.Other())
}
