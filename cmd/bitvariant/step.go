package main

import (
	"fmt"
	"time"

	"github.com/apex/log"

	"github.com/daystram/bitvariant/board"
)

// step plays random successor states and reports generation timings.
func step(fen string, maps *board.MoveMaps, count int, seed uint64) error {
	log.Info("============ step")
	var timesGenerate []time.Duration
	s, t, err := board.NewState(board.WithFEN(fen))
	if err != nil {
		return err
	}
	gen := board.NewGenerator(maps)
	r := board.NewPseudoRand()
	r.Seed(seed)

	for ply := 0; ply < count; ply++ {
		t1 := time.Now()
		states := gen.StatesForTurn(s, t)
		timesGenerate = append(timesGenerate, time.Since(t1))
		if len(states) == 0 {
			log.WithField("side", t.Side()).Info("no successor states")
			break
		}
		next := states[r.Uint64()%uint64(len(states))]
		mv, err := board.Diff(s, next)
		if err != nil {
			return err
		}
		s, t = next, t.Next()

		fmt.Printf("\n===== [#%d] %s: %s\n", ply/2+1, mv.Slice.Side(), mv)
		fmt.Println(s.Draw())
		fmt.Println(s.DebugString(t))
		if mv.IsCapture && mv.Captured.Piece() == board.PieceKing {
			log.WithField("winner", mv.Slice.Side()).Info("king captured")
			break
		}
	}

	var total time.Duration
	for _, d := range timesGenerate {
		total += d
	}
	hits, misses := maps.Stats()
	log.WithFields(log.Fields{
		"plies":  len(timesGenerate),
		"genavg": total / time.Duration(max(len(timesGenerate), 1)),
		"cache":  maps.Len(),
		"hits":   hits,
		"misses": misses,
	}).Info("step done")
	return nil
}
