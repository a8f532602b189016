package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/apex/log"

	"github.com/daystram/bitvariant/board"
	"github.com/daystram/bitvariant/engine"
)

// selfplay lets two bots sharing one set of move maps play each other until a
// king is captured, a side has no successors or plies run out.
func selfplay(fen string, maps *board.MoveMaps, plies int, evalName string, depth uint8, timeout time.Duration, seed uint64) error {
	log.Info("============ selfplay")
	s, t, err := board.NewState(board.WithFEN(fen))
	if err != nil {
		return err
	}
	eval, err := engine.NewEvaluatorFromName(evalName)
	if err != nil {
		return err
	}
	gen := board.NewGenerator(maps)
	bots := map[board.Side]*engine.Bot{}
	for i, side := range board.Sides {
		side := side
		bots[side] = engine.NewBot(eval, depth,
			engine.WithGenerator(gen),
			engine.WithSeed(seed+uint64(i)),
			engine.WithLogger(func(a ...any) {
				log.WithField("side", side).Debug(fmt.Sprint(a...))
			}),
		)
	}
	fmt.Println(s.Draw())
	fmt.Println(s.DebugString(t))

	var history []board.Move
	for ply := 0; ply < plies; ply++ {
		ctx, cancel := context.Background(), context.CancelFunc(func() {})
		if timeout > 0 {
			ctx, cancel = context.WithTimeout(context.Background(), timeout)
		}
		bot := bots[t.Side()]
		next, err := bot.SelectStateContext(ctx, s, t)
		cancel()
		if errors.Is(err, engine.ErrNoSuccessors) {
			log.WithField("side", t.Side()).Info("no successor states")
			break
		}
		if err != nil && !errors.Is(err, engine.ErrSearchTruncated) {
			return err
		}

		mv, err := board.Diff(s, next)
		if err != nil {
			return err
		}
		stats := bot.Stats()
		log.WithFields(log.Fields{
			"move":      mv.Coordinate(),
			"side":      t.Side(),
			"nodes":     stats.Nodes,
			"cutoffs":   stats.Cutoffs,
			"elapsed":   stats.Elapsed,
			"truncated": stats.Truncated,
		}).Info(mv.String())

		history = append(history, mv)
		s, t = next, t.Next()
		fmt.Println(s.Draw())
		fmt.Println(s.DebugString(t))
		if mv.IsCapture && mv.Captured.Piece() == board.PieceKing {
			log.WithField("winner", mv.Slice.Side()).Info("king captured")
			break
		}
	}

	fmt.Println(s.FEN(t))
	fmt.Println(dumpHistory(history))
	return nil
}

func dumpHistory(mvs []board.Move) string {
	builder := strings.Builder{}
	for i, mv := range mvs {
		if mv.Slice.Side() == board.SideWhite {
			_, _ = builder.WriteString(fmt.Sprintf("%d.", i/2+1))
		}
		_, _ = builder.WriteString(mv.String() + " ")
	}
	return strings.TrimSpace(builder.String())
}
