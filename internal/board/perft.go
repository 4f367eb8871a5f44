package board

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Perft counts the leaf nodes of the legal move tree down to the given
// depth. Standard reference counts make this the primary correctness check
// for generation and make/undo.
func Perft(p *Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := p.GenerateLegalMoves()
	if depth == 1 {
		return uint64(moves.Len())
	}

	var nodes uint64
	for i := 0; i < moves.Len(); i++ {
		if !p.MakeMove(moves.Get(i)) {
			continue
		}
		nodes += Perft(p, depth-1)
		p.UndoMove()
	}
	return nodes
}

// Divide returns the per-root-move leaf counts along with the total, in the
// order the root moves are generated. Useful for diffing against another
// engine when a perft count disagrees.
func Divide(p *Position, depth int) (map[Move]uint64, uint64) {
	counts := make(map[Move]uint64)
	var total uint64
	moves := p.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		if !p.MakeMove(m) {
			continue
		}
		n := Perft(p, depth-1)
		p.UndoMove()
		counts[m] = n
		total += n
	}
	return counts, total
}

// ParallelPerft splits the root moves across workers, each searching on its
// own clone of the position. Counts match Perft exactly.
func ParallelPerft(ctx context.Context, p *Position, depth, workers int) (uint64, error) {
	if depth <= 1 || workers <= 1 {
		return Perft(p, depth), nil
	}

	moves := p.GenerateLegalMoves()
	var total atomic.Uint64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			child := p.Clone()
			if !child.MakeMove(m) {
				return nil
			}
			total.Add(Perft(child, depth-1))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return total.Load(), nil
}
