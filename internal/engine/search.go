package engine

import (
	"github.com/mkarren/chesskit/internal/board"
	"github.com/mkarren/chesskit/internal/eval"
	"github.com/mkarren/chesskit/internal/storage"
)

const (
	// mateScore is offset by the ply so nearer mates score higher.
	mateScore = 1_000_000
	infinity  = mateScore + 1000
)

// Searcher runs a fixed-depth alpha-beta negamax over the static evaluation.
// Static scores are cached by Zobrist key, optionally backed by a persistent
// store shared across runs.
type Searcher struct {
	depth int
	cache map[uint64]int // white-perspective centipawns
	store *storage.Store
}

// NewSearcher returns a searcher with the given depth. Depth must be at
// least 1.
func NewSearcher(depth int) *Searcher {
	if depth < 1 {
		depth = 1
	}
	return &Searcher{
		depth: depth,
		cache: make(map[uint64]int),
	}
}

// WithStore attaches a persistent evaluation store. Cached scores are read
// from and written through to it.
func (s *Searcher) WithStore(store *storage.Store) *Searcher {
	s.store = store
	return s
}

// ChooseMove searches every root move and returns the best one.
func (s *Searcher) ChooseMove(pos *board.Position) (board.Move, bool) {
	moves := pos.GenerateLegalMoves()
	if moves.Len() == 0 {
		return board.NoMove, false
	}

	best := board.NoMove
	alpha := -infinity
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if !pos.MakeMove(m) {
			continue
		}
		score := -s.negamax(pos, s.depth-1, 1, -infinity, -alpha)
		pos.UndoMove()
		if best == board.NoMove || score > alpha {
			alpha = score
			best = m
		}
	}
	return best, best != board.NoMove
}

// negamax returns the score of the position from the side to move's
// perspective. Checkmate and stalemate are detected before the depth cutoff
// so terminal nodes never fall through to the static evaluation.
func (s *Searcher) negamax(pos *board.Position, depth, ply, alpha, beta int) int {
	moves := pos.GenerateLegalMoves()
	if moves.Len() == 0 {
		if pos.InCheck() {
			return -mateScore + ply
		}
		return 0
	}
	if depth <= 0 {
		return s.staticEval(pos)
	}

	for i := 0; i < moves.Len(); i++ {
		if !pos.MakeMove(moves.Get(i)) {
			continue
		}
		score := -s.negamax(pos, depth-1, ply+1, -beta, -alpha)
		pos.UndoMove()
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}
	return alpha
}

// staticEval returns the cached static score from the side to move's
// perspective, computing and caching it on a miss. Store errors are treated
// as misses; the search result never depends on the cache being available.
func (s *Searcher) staticEval(pos *board.Position) int {
	h := pos.Hash()
	white, ok := s.cache[h]
	if !ok && s.store != nil {
		if v, found, err := s.store.GetEval(h); err == nil && found {
			white, ok = v, true
			s.cache[h] = white
		}
	}
	if !ok {
		white = eval.Evaluate(pos)
		s.cache[h] = white
		if s.store != nil {
			_ = s.store.PutEval(h, white)
		}
	}

	if pos.SideToMove == board.Black {
		return -white
	}
	return white
}
