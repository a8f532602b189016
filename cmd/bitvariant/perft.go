package main

import (
	"github.com/apex/log"

	"github.com/daystram/bitvariant/bench"
	"github.com/daystram/bitvariant/board"
)

func perft(depth int, fen string, maps *board.MoveMaps, parallel bool) error {
	log.Infof("============ perft(%d): parallel=%t", depth, parallel)

	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			log.Info(s)
		}
	}()
	_, err := bench.Perft(depth, fen, parallel, true, maps, out)
	close(out)
	<-done
	return err
}
