// chesskit command line: perft verification, static evaluation, and
// engine-vs-engine self-play over the board package.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"sort"
	"time"

	"github.com/mkarren/chesskit/internal/board"
	"github.com/mkarren/chesskit/internal/engine"
	"github.com/mkarren/chesskit/internal/eval"
	"github.com/mkarren/chesskit/internal/storage"
)

var (
	mode       = flag.String("mode", "perft", "perft | divide | eval | selfplay")
	fen        = flag.String("fen", board.StartFEN, "position to start from")
	depth      = flag.Int("depth", 5, "search or perft depth")
	workers    = flag.Int("workers", runtime.NumCPU(), "parallel perft workers")
	seed       = flag.Int64("seed", 1, "random picker seed")
	maxMoves   = flag.Int("maxmoves", 200, "self-play half-move cap")
	games      = flag.Int("games", 1, "number of self-play games")
	record     = flag.Bool("record", false, "record self-play results to the data directory")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func main() {
	flag.Parse()

	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	pos, err := board.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("invalid FEN: %v", err)
	}

	switch *mode {
	case "perft":
		runPerft(pos)
	case "divide":
		runDivide(pos)
	case "eval":
		runEval(pos)
	case "selfplay":
		runSelfPlay(pos)
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
}

func runPerft(pos *board.Position) {
	start := time.Now()
	nodes, err := board.ParallelPerft(context.Background(), pos, *depth, *workers)
	if err != nil {
		log.Fatalf("perft failed: %v", err)
	}
	elapsed := time.Since(start)

	nps := float64(nodes) / elapsed.Seconds()
	fmt.Printf("perft(%d) = %d  (%.2fs, %.0f nodes/s)\n", *depth, nodes, elapsed.Seconds(), nps)
}

func runDivide(pos *board.Position) {
	counts, total := board.Divide(pos, *depth)

	moves := make([]board.Move, 0, len(counts))
	for m := range counts {
		moves = append(moves, m)
	}
	sort.Slice(moves, func(i, j int) bool { return moves[i].String() < moves[j].String() })

	for _, m := range moves {
		fmt.Printf("%v: %d\n", m, counts[m])
	}
	fmt.Printf("total: %d\n", total)
}

func runEval(pos *board.Position) {
	fmt.Println(pos)
	fmt.Printf("fen:      %s\n", pos.ToFEN())
	fmt.Printf("hash:     %016x\n", pos.Hash())
	fmt.Printf("material: %+d\n", eval.Material(pos))
	fmt.Printf("static:   %+d\n", eval.Evaluate(pos))
	if pos.InCheck() {
		fmt.Println("side to move is in check")
	}
}

func runSelfPlay(start *board.Position) {
	var store *storage.Store
	if *record {
		var err error
		store, err = storage.Open()
		if err != nil {
			log.Fatalf("open store: %v", err)
		}
		defer store.Close()
	}

	white := engine.NewSearcher(*depth)
	if store != nil {
		white.WithStore(store)
	}
	black := engine.NewRandom(*seed)

	for g := 0; g < *games; g++ {
		pos := start.Clone()
		begin := time.Now()
		result, plies := playGame(pos, white, black)
		elapsed := time.Since(begin)

		log.Printf("game %d: %v in %d half-moves (%.2fs)", g+1, result, plies, elapsed.Seconds())
		if store != nil {
			rec := storage.GameRecord{Result: result.String(), Moves: plies, Duration: elapsed}
			if err := store.RecordGame(rec); err != nil {
				log.Printf("record game: %v", err)
			}
		}
	}

	if store != nil {
		stats, err := store.LoadStats()
		if err != nil {
			log.Fatalf("load stats: %v", err)
		}
		log.Printf("totals: %d games, +%d -%d =%d (draw rate %.0f%%)",
			stats.GamesPlayed, stats.WhiteWins, stats.BlackWins, stats.Draws, stats.DrawRate()*100)
	}
}

// playGame alternates the two pickers until the game ends or the half-move
// cap is reached. Capped games count as draws.
func playGame(pos *board.Position, white, black engine.Picker) (board.GameResult, int) {
	plies := 0
	for plies < *maxMoves {
		if result := pos.Result(); result != board.Ongoing {
			return result, plies
		}

		picker := white
		if pos.SideToMove == board.Black {
			picker = black
		}
		m, ok := picker.ChooseMove(pos)
		if !ok {
			break
		}
		if !pos.MakeMove(m) {
			log.Fatalf("picker produced unplayable move %v", m)
		}
		plies++

		// Stop before the undo stack fills; MakeMove would start failing.
		if pos.UndoDepth() >= board.MaxUndoDepth {
			break
		}
	}
	if result := pos.Result(); result != board.Ongoing {
		return result, plies
	}
	return board.Draw, plies
}
