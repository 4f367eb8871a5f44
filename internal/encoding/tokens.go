// Package encoding converts positions into fixed-length integer token
// sequences suitable for feeding a sequence model. Each square contributes
// exactly one token identifying its occupant.
package encoding

import (
	"github.com/mkarren/chesskit/internal/board"
)

const (
	// GroupSize is the number of distinct occupant states per square:
	// six white pieces, six black pieces, empty.
	GroupSize = 13

	// EmptyIndex is the occupant index for an empty square.
	EmptyIndex = 12

	// VocabSize is the total number of distinct tokens (64 * GroupSize).
	VocabSize = 64 * GroupSize
)

// Tokens encodes the piece placement as 64 tokens in square order, A1 first.
// The token for square sq with occupant index i is sq*GroupSize + i, so every
// square owns a disjoint block of GroupSize token values.
func Tokens(pos *board.Position) [64]int32 {
	var out [64]int32
	for sq := board.A1; sq <= board.H8; sq++ {
		idx := EmptyIndex
		if piece := pos.PieceAt(sq); piece != board.NoPiece {
			idx = int(piece.Type()) + 6*int(piece.Color())
		}
		out[sq] = int32(int(sq)*GroupSize + idx)
	}
	return out
}
