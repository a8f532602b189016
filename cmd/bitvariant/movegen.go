package main

import (
	"fmt"
	"strconv"

	"github.com/apex/log"

	"github.com/daystram/bitvariant/board"
)

func movegen(fen string, maps *board.MoveMaps, draw bool) error {
	log.Info("============ movegen")
	s, t, err := board.NewState(board.WithFEN(fen))
	if err != nil {
		return err
	}
	fmt.Println("to move:", t.Side())
	fmt.Println(s.Dump())
	fmt.Println(s.Draw())
	fmt.Println(s.DebugString(t))

	gen := board.NewGenerator(maps)
	states := gen.StatesForTurn(s, t)
	for i, next := range states {
		mv, err := board.Diff(s, next)
		if err != nil {
			return err
		}
		fmt.Printf("option %*d: [%s] [%s] %s %s %s => %s (cap=%v)\n",
			len(strconv.Itoa(len(states))), i+1, mv.Coordinate(), mv.Algebra(), mv.Slice.Side(), mv.Slice.Piece(), mv.From, mv.To, mv.IsCapture)
		if draw {
			fmt.Println(next.Draw())
			fmt.Println(next.FEN(t.Next()))
		}
	}
	return nil
}
