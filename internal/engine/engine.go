// Package engine implements move selection on top of the board package: a
// seeded random picker for baseline play and a fixed-depth alpha-beta search
// over the static evaluation.
package engine

import (
	"math/rand"

	"github.com/mkarren/chesskit/internal/board"
)

// Picker chooses a move for the side to move. The second return value is
// false when no legal move exists.
type Picker interface {
	ChooseMove(pos *board.Position) (board.Move, bool)
}

// Random picks uniformly among the legal moves. A fixed seed makes the whole
// game sequence reproducible.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a random picker seeded with the given value.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// ChooseMove picks one of the legal moves at random.
func (r *Random) ChooseMove(pos *board.Position) (board.Move, bool) {
	moves := pos.GenerateLegalMoves()
	if moves.Len() == 0 {
		return board.NoMove, false
	}
	return moves.Get(r.rng.Intn(moves.Len())), true
}
