package main

import (
	"bufio"
	"os"

	"github.com/apex/log"

	"github.com/daystram/bitvariant/board"
)

func writeSVG(fen, path string, cell int) error {
	s, t, err := board.NewState(board.WithFEN(fen))
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	s.WriteSVG(w, cell, s.FEN(t))
	if err := w.Flush(); err != nil {
		return err
	}
	log.WithFields(log.Fields{"path": path, "fen": s.FEN(t)}).Info("svg written")
	return f.Close()
}
