package board

import (
	"testing"

	"github.com/daystram/bitvariant/position"
)

func TestGeneratorDestinations(t *testing.T) {
	t.Parallel()
	g := NewGenerator(nil)
	tests := []struct {
		name  string
		state State
		pos   position.Pos
		slice Slice
		want  Bitmap
	}{
		{
			name: "rook boxed by ally and enemies",
			state: State{
				SliceWhiteRook:   NewBitmap(position.C2),
				SliceWhiteBishop: NewBitmap(position.D2),
				SliceBlackPawn:   0xFFF000,
			},
			pos:   position.C2,
			slice: SliceWhiteRook,
			want:  0x40304,
		},
		{
			name:  "knight in corner",
			state: State{SliceWhiteKnight: NewBitmap(position.A1)},
			pos:   position.A1,
			slice: SliceWhiteKnight,
			want:  NewBitmap(position.C2, position.B3),
		},
		{
			name: "knight skips own pieces",
			state: State{
				SliceBlackKnight: NewBitmap(position.A1),
				SliceBlackPawn:   NewBitmap(position.C2),
				SliceWhitePawn:   NewBitmap(position.B3),
			},
			pos:   position.A1,
			slice: SliceBlackKnight,
			want:  NewBitmap(position.B3),
		},
		{
			name: "queen is rook and bishop",
			state: State{
				SliceWhiteQueen: NewBitmap(position.A1),
				SliceWhitePawn:  NewBitmap(position.A2, position.B2),
			},
			pos:   position.A1,
			slice: SliceWhiteQueen,
			want:  0xFE,
		},
		{
			name:  "pawn",
			state: StartingState(),
			pos:   position.E2,
			slice: SliceWhitePawn,
			want:  NewBitmap(position.E3, position.E4),
		},
		{
			name:  "king",
			state: StartingState(),
			pos:   position.E1,
			slice: SliceWhiteKing,
			want:  0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := g.Destinations(tt.state, tt.pos, tt.slice); got != tt.want {
				t.Errorf("unexpected destinations: got=%s want=%s", got, tt.want)
			}
		})
	}
}

func TestGeneratorRookSplit(t *testing.T) {
	t.Parallel()
	s := State{
		SliceWhiteRook:   NewBitmap(position.C2),
		SliceWhiteBishop: NewBitmap(position.D2),
		SliceBlackPawn:   0xFFF000,
	}
	g := NewGenerator(nil)
	states := Split(NewBitmap(position.C2), g.Destinations(s, position.C2, SliceWhiteRook), s, SliceWhiteRook)
	want := []position.Pos{position.C1, position.A2, position.B2, position.C3}
	if len(states) != len(want) {
		t.Fatalf("unexpected state count: got=%d want=%d", len(states), len(want))
	}
	for i, next := range states {
		mv, err := Diff(s, next)
		if err != nil {
			t.Fatal("unexpected error:", err)
		}
		if mv.To != want[i] {
			t.Errorf("unexpected destination %d: got=%s want=%s", i, mv.To, want[i])
		}
		if mv.IsCapture != (mv.To == position.C3) {
			t.Errorf("unexpected capture flag on %s: got=%t", mv.To, mv.IsCapture)
		}
	}
}

func TestGeneratorStartingPosition(t *testing.T) {
	t.Parallel()
	g := NewGenerator(nil)
	s := StartingState()
	tests := []struct {
		name   string
		states []State
	}{
		{name: "white", states: g.WhiteStates(s)},
		{name: "black", states: g.BlackStates(s)},
		{name: "turn 0", states: g.StatesForTurn(s, 0)},
		{name: "turn 1", states: g.StatesForTurn(s, 1)},
	}
	for _, tt := range tests {
		if len(tt.states) != 20 {
			t.Errorf("unexpected %s state count: got=%d want=20", tt.name, len(tt.states))
		}
	}

	// pawn moves come first, knights last
	white := g.WhiteStates(s)
	for i, next := range white {
		mv, err := Diff(s, next)
		if err != nil {
			t.Fatal("unexpected error:", err)
		}
		wantPiece := PiecePawn
		if i >= 16 {
			wantPiece = PieceKnight
		}
		if mv.Slice.Piece() != wantPiece {
			t.Errorf("unexpected piece on state %d: got=%s want=%s", i, mv.Slice.Piece(), wantPiece)
		}
	}
}

func TestGeneratorInvariants(t *testing.T) {
	t.Parallel()
	g := NewGenerator(NewMoveMaps())
	frontier := []State{StartingState()}
	for depth := Turn(0); depth < 3; depth++ {
		var next []State
		for _, s := range frontier {
			ally := s.AllyOccupation(depth)
			for _, child := range g.StatesForTurn(s, depth) {
				if err := child.Validate(); err != nil {
					t.Fatalf("unexpected invalid state after %s: %v", s.FEN(depth), err)
				}
				if child.PieceCount() > s.PieceCount() {
					t.Fatalf("unexpected piece count increase after %s", s.FEN(depth))
				}
				mv, err := Diff(s, child)
				if err != nil {
					t.Fatalf("unexpected error after %s: %v", s.FEN(depth), err)
				}
				if ally.Has(mv.To) {
					t.Fatalf("unexpected capture of own piece: %s after %s", mv.Coordinate(), s.FEN(depth))
				}
				if mv.Slice.Side() != depth.Side() {
					t.Fatalf("unexpected side moved: got=%s want=%s", mv.Slice.Side(), depth.Side())
				}
				next = append(next, child)
			}
		}
		frontier = next
	}
	if len(frontier) != 8902 {
		t.Errorf("unexpected leaf count: got=%d want=8902", len(frontier))
	}
	if hits, _ := g.MoveMaps().Stats(); hits == 0 {
		t.Error("unexpected cold move maps: got=0 hits")
	}
}
