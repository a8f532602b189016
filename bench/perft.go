package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/bitvariant/board"
)

type Result struct {
	Depth    int
	Nodes    uint64
	Captures uint64
	Elapsed  time.Duration
}

func (r Result) String() string {
	return message.NewPrinter(language.English).
		Sprintf("d=%d nodes=%d rate=%dn/s cap=%d (%.3fs elapsed)",
			r.Depth, r.Nodes, int(float64(r.Nodes)/(r.Elapsed+1).Seconds()), r.Captures, r.Elapsed.Seconds())
}

// Perft counts the leaves of the pseudo-legal move tree below fen. The
// parallel walk shares maps between goroutines. Per-move subtotals are sent to
// out when verbose is set, followed by the summary; out may be nil.
func Perft(depth int, fen string, parallel, verbose bool, maps *board.MoveMaps, out chan string) (Result, error) {
	var nodes, capt uint64
	s, turn, err := board.NewState(
		board.WithFEN(fen),
	)
	if err != nil {
		return Result{}, err
	}
	gen := board.NewGenerator(maps)

	var run perftFunc
	if parallel {
		run = runPerftParallel
	} else {
		run = runPerft
	}

	start := time.Now()
	run(gen, s, turn, depth, true, verbose && out != nil, out, &nodes, &capt)
	res := Result{Depth: depth, Nodes: nodes, Captures: capt, Elapsed: time.Since(start)}

	if out != nil {
		out <- res.String()
	}
	return res, nil
}

type perftFunc func(gen *board.Generator, s board.State, t board.Turn, d int, root, verbose bool, out chan string, nodes, capt *uint64) uint64

func runPerft(gen *board.Generator, s board.State, t board.Turn, d int, root, verbose bool, out chan string, nodes, capt *uint64) uint64 {
	if d == 0 {
		*nodes++
		return 1
	}

	var sum uint64
	for _, next := range gen.StatesForTurn(s, t) {
		var child uint64
		if d != 2 {
			child = runPerft(gen, next, t.Next(), d-1, false, verbose, out, nodes, capt)
		} else {
			leaves := gen.StatesForTurn(next, t.Next())
			child = uint64(len(leaves))
			*nodes += child
			for _, leaf := range leaves {
				if leaf.PieceCount() < next.PieceCount() {
					*capt++
				}
			}
		}
		if d == 1 && next.PieceCount() < s.PieceCount() {
			*capt++
		}
		if verbose && root {
			out <- fmt.Sprintf("%s: %d", coordinate(s, next), child)
		}
		sum += child
	}
	return sum
}

func runPerftParallel(gen *board.Generator, s board.State, t board.Turn, d int, root, verbose bool, out chan string, nodes, capt *uint64) uint64 {
	if d == 0 {
		atomic.AddUint64(nodes, 1)
		return 1
	}

	var sum uint64
	var wg sync.WaitGroup
	for _, next := range gen.StatesForTurn(s, t) {
		next := next
		wg.Add(1)
		go func() {
			defer wg.Done()
			var child uint64
			if d != 2 {
				child = runPerftParallel(gen, next, t.Next(), d-1, false, verbose, out, nodes, capt)
			} else {
				leaves := gen.StatesForTurn(next, t.Next())
				child = uint64(len(leaves))
				atomic.AddUint64(nodes, child)
				for _, leaf := range leaves {
					if leaf.PieceCount() < next.PieceCount() {
						atomic.AddUint64(capt, 1)
					}
				}
			}
			if d == 1 && next.PieceCount() < s.PieceCount() {
				atomic.AddUint64(capt, 1)
			}
			if verbose && root {
				out <- fmt.Sprintf("%s: %d", coordinate(s, next), child)
			}
			atomic.AddUint64(&sum, child)
		}()
	}
	wg.Wait()
	return sum
}

func coordinate(prev, next board.State) string {
	mv, err := board.Diff(prev, next)
	if err != nil {
		return "????"
	}
	return mv.Coordinate()
}
