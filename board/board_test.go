package board

import (
	"bytes"
	"strings"
	"testing"
)

func TestStateDump(t *testing.T) {
	t.Parallel()
	got := StartingState().Dump()
	for _, want := range []string{" 8 | r | n | b | q | k | b | n | r |", " 1 | R | N | B | Q | K | B | N | R |", "  a   b   c"} {
		if !strings.Contains(got, want) {
			t.Errorf("unexpected dump: missing %q in\n%s", want, got)
		}
	}
	if rows := strings.Count(got, "\n"); rows != 17 {
		t.Errorf("unexpected line count: got=%d want=17", rows)
	}
}

func TestStateDraw(t *testing.T) {
	t.Parallel()
	got := StartingState().Draw()
	for _, want := range []string{"♔", "♚", "♙", "♟"} {
		if !strings.Contains(got, want) {
			t.Errorf("unexpected drawing: missing %q", want)
		}
	}
}

func TestStateDebugString(t *testing.T) {
	t.Parallel()
	got := StartingState().DebugString(1)
	if !strings.Contains(got, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b - - 0 1") {
		t.Errorf("unexpected debug string: got=%s", got)
	}
}

func TestStateWriteSVG(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	StartingState().WriteSVG(&buf, 40, "start")
	got := buf.String()
	if !strings.Contains(got, "<svg") || !strings.Contains(got, "</svg>") {
		t.Fatalf("unexpected svg document: got=%s", got)
	}
	if n := strings.Count(got, "<rect"); n != 64 {
		t.Errorf("unexpected cell count: got=%d want=64", n)
	}
	if n := strings.Count(got, "<text"); n != 32 {
		t.Errorf("unexpected piece count: got=%d want=32", n)
	}
	if !strings.Contains(got, "<title>start</title>") {
		t.Errorf("unexpected title: got=%s", got)
	}
}
