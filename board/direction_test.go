package board

import (
	"testing"

	"github.com/daystram/bitvariant/position"
)

func TestDirectionNextRoundTrip(t *testing.T) {
	t.Parallel()
	for _, d := range Directions {
		d := d
		t.Run(d.String(), func(t *testing.T) {
			t.Parallel()
			for pos := position.Pos(0); pos < TotalCells; pos++ {
				sq := maskCell[pos]
				next := d.Next(sq)
				if d.AtEdge(sq) {
					if next != 0 {
						t.Errorf("unexpected step off edge from %s: got=%s want=0", pos, next)
					}
					continue
				}
				if next.BitCount() != 1 {
					t.Fatalf("unexpected neighbor of %s: got=%s", pos, next)
				}
				if dist := pos.Distance(next.LS1B()); dist != 1 {
					t.Errorf("unexpected wrap from %s to %s: distance=%d", pos, next.LS1B(), dist)
				}
				if back := d.Opposite().Next(next); back != sq {
					t.Errorf("unexpected round trip from %s: got=%s want=%s", pos, back, sq)
				}
			}
		})
	}
}

func TestDirectionNextEmpty(t *testing.T) {
	t.Parallel()
	for _, d := range Directions {
		if got := d.Next(0); got != 0 {
			t.Errorf("unexpected step from empty %s: got=%s", d, got)
		}
	}
}

func TestDirectionEdges(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		pos  position.Pos
		want []Direction
	}{
		{name: "a1", pos: position.A1, want: []Direction{DirectionLeft, DirectionDown, DirectionUpLeft, DirectionDownLeft, DirectionDownRight}},
		{name: "h1", pos: position.H1, want: []Direction{DirectionRight, DirectionDown, DirectionUpRight, DirectionDownLeft, DirectionDownRight}},
		{name: "h8", pos: position.H8, want: []Direction{DirectionRight, DirectionUp, DirectionUpLeft, DirectionUpRight, DirectionDownRight}},
		{name: "e4", pos: position.E4, want: nil},
		{name: "a5", pos: position.A5, want: []Direction{DirectionLeft, DirectionUpLeft, DirectionDownLeft}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			blocked := make(map[Direction]bool)
			for _, d := range tt.want {
				blocked[d] = true
			}
			for _, d := range Directions {
				if got := d.AtEdge(maskCell[tt.pos]); got != blocked[d] {
					t.Errorf("unexpected edge %s: got=%v want=%v", d, got, blocked[d])
				}
			}
		})
	}
}
