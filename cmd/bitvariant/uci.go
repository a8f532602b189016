package main

import (
	"os"

	"github.com/daystram/bitvariant/board"
	"github.com/daystram/bitvariant/uci"
)

func runUCI(maps *board.MoveMaps, seed uint64) error {
	return uci.NewInterface(os.Stdin, os.Stdout, maps, seed).Run()
}
