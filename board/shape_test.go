package board

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"github.com/daystram/bitvariant/position"
)

func TestShapeOpenSquares(t *testing.T) {
	t.Parallel()
	const board Bitmap = 0x5555555555555555
	tests := []struct {
		name     string
		shape    Shape
		occupied Bitmap
		pos      position.Pos
		want     Bitmap
	}{
		{name: "cross d2", shape: ShapeCross, occupied: board, pos: position.D2, want: 0x0808080808081408},
		{name: "diagonal d2", shape: ShapeDiagonal, occupied: board, pos: position.D2, want: 0x140014},
		{name: "cross a1 empty", shape: ShapeCross, occupied: 0, pos: position.A1, want: 0x01010101010101FE},
		{name: "diagonal a1 empty", shape: ShapeDiagonal, occupied: 0, pos: position.A1, want: 0x8040201008040200},
		{name: "knight a1", shape: ShapeKnight, occupied: board, pos: position.A1, want: NewBitmap(position.C2, position.B3)},
		{name: "knight h8", shape: ShapeKnight, occupied: 0, pos: position.H8, want: NewBitmap(position.F7, position.G6)},
		{name: "knight b1", shape: ShapeKnight, occupied: 0, pos: position.B1, want: NewBitmap(position.D2, position.A3, position.C3)},
		{name: "king a1", shape: ShapeKing, occupied: board, pos: position.A1, want: NewBitmap(position.B1, position.A2, position.B2)},
		{name: "king h4", shape: ShapeKing, occupied: 0, pos: position.H4, want: NewBitmap(position.G3, position.H3, position.G4, position.G5, position.H5)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.shape.OpenSquares(tt.occupied, tt.pos); got != tt.want {
				t.Errorf("unexpected open squares: got=%s want=%s", got, tt.want)
			}
		})
	}
}

func TestShapeStepTargetsDoNotWrap(t *testing.T) {
	t.Parallel()
	tests := []struct {
		shape Shape
		reach position.Pos
		max   uint8
	}{
		{shape: ShapeKnight, reach: 2, max: 8},
		{shape: ShapeKing, reach: 1, max: 8},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.shape.String(), func(t *testing.T) {
			t.Parallel()
			for pos := position.Pos(0); pos < TotalCells; pos++ {
				targets := tt.shape.OpenSquares(0, pos)
				if targets.BitCount() > tt.max || targets == 0 {
					t.Errorf("unexpected target count from %s: got=%d", pos, targets.BitCount())
				}
				for _, dst := range targets.Positions() {
					if dist := pos.Distance(dst); dist != tt.reach {
						t.Errorf("unexpected target %s from %s: distance=%d", dst, pos, dist)
					}
				}
			}
		})
	}
}

func TestShapeSlidingMatchesReference(t *testing.T) {
	t.Parallel()
	r := NewPseudoRand()
	r.Seed(1)
	for i := 0; i < 200; i++ {
		occupied := Bitmap(r.SparseUint64() | r.SparseUint64())
		for pos := position.Pos(0); pos < TotalCells; pos++ {
			sq := uint8(pos)
			blockers := uint64(occupied &^ maskCell[pos])
			if got, want := ShapeCross.OpenSquares(occupied, pos), Bitmap(dragontoothmg.CalculateRookMoveBitboard(sq, blockers)); got != want {
				t.Fatalf("unexpected cross squares from %s on %s: got=%s want=%s", pos, occupied, got, want)
			}
			if got, want := ShapeDiagonal.OpenSquares(occupied, pos), Bitmap(dragontoothmg.CalculateBishopMoveBitboard(sq, blockers)); got != want {
				t.Fatalf("unexpected diagonal squares from %s on %s: got=%s want=%s", pos, occupied, got, want)
			}
		}
	}
}

func TestShapeRelevantPreservesOpenSquares(t *testing.T) {
	t.Parallel()
	r := NewPseudoRand()
	r.Seed(2)
	for i := 0; i < 100; i++ {
		occupied := Bitmap(r.Uint64() & r.Uint64())
		for _, shape := range Shapes {
			for pos := position.Pos(0); pos < TotalCells; pos++ {
				masked := occupied & shape.Relevant(pos)
				if got, want := shape.OpenSquares(masked, pos), shape.OpenSquares(occupied, pos); got != want {
					t.Fatalf("unexpected %s squares from %s with masked occupancy: got=%s want=%s", shape, pos, got, want)
				}
			}
		}
	}
}
