package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/daystram/bitvariant/board"
	"github.com/daystram/bitvariant/position"
)

func TestDumpHistory(t *testing.T) {
	t.Parallel()
	s := board.StartingState()
	var history []board.Move
	for _, n := range []string{"e2e4", "d7d5", "e4d5"} {
		from, to, err := board.ParseCoordinate(n)
		if err != nil {
			t.Fatal("unexpected error:", err)
		}
		var mv board.Move
		s, mv, err = board.Apply(s, from, to)
		if err != nil {
			t.Fatal("unexpected error:", err)
		}
		history = append(history, mv)
	}
	if got, want := dumpHistory(history), "1.e4 d5 2.exd5"; got != want {
		t.Errorf("unexpected history: got=%s want=%s", got, want)
	}
	if !s.GetBitmap(board.SideWhite, board.PiecePawn).Has(position.D5) {
		t.Error("unexpected position after history")
	}
}

func TestWriteSVG(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "board.svg")
	if err := writeSVG(board.DefaultStartingPositionFEN, path, 32); err != nil {
		t.Fatal("unexpected error:", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if got := strings.Count(string(data), "<rect"); got != 64 {
		t.Errorf("unexpected cell count: got=%d want=64", got)
	}
	if err := writeSVG("bad fen", path, 32); err == nil {
		t.Error("error expected: got=nil")
	}
}

func TestSelfplay(t *testing.T) {
	t.Parallel()
	maps := board.NewMoveMaps()
	if err := selfplay("4k3/8/8/8/8/8/3q4/4K3 b - - 0 1", maps, 4, "material", 1, 0, 1); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if maps.Len() == 0 {
		t.Error("unexpected unused move maps")
	}
	if err := selfplay(board.DefaultStartingPositionFEN, maps, 1, "nnue", 1, 0, 1); err == nil {
		t.Error("error expected: got=nil")
	}
}
