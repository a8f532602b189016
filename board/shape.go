package board

import (
	"github.com/daystram/bitvariant/position"
)

// Shape is a movement pattern shared by one or more pieces.
type Shape uint8

const (
	ShapeCross Shape = iota
	ShapeDiagonal
	ShapeKnight
	ShapeKing

	shapeCount = 4
)

var Shapes = [shapeCount]Shape{ShapeCross, ShapeDiagonal, ShapeKnight, ShapeKing}

func (s Shape) String() string {
	switch s {
	case ShapeCross:
		return "Cross"
	case ShapeDiagonal:
		return "Diagonal"
	case ShapeKnight:
		return "Knight"
	case ShapeKing:
		return "King"
	default:
		return ""
	}
}

// Sliding reports whether reachability under s depends on occupancy.
func (s Shape) Sliding() bool {
	return s == ShapeCross || s == ShapeDiagonal
}

func (s Shape) directions() []Direction {
	switch s {
	case ShapeCross:
		return DirectionsCross[:]
	case ShapeDiagonal:
		return DirectionsDiagonal[:]
	default:
		return nil
	}
}

// Span is the empty-board reach of s from pos. Sliding spans include pos.
func (s Shape) Span(pos position.Pos) Bitmap {
	switch s {
	case ShapeCross:
		return maskCross[pos]
	case ShapeDiagonal:
		return maskDiagonal[pos]
	case ShapeKnight:
		return maskKnight[pos]
	case ShapeKing:
		return maskKing[pos]
	default:
		return 0
	}
}

// Relevant is the set of squares whose occupancy can change OpenSquares for
// pos. It is empty for stepping shapes.
func (s Shape) Relevant(pos position.Pos) Bitmap {
	if !s.Sliding() {
		return 0
	}
	return Crop(s.Span(pos), maskCell[pos]) &^ maskCell[pos]
}

// Blocked returns the squares lying beyond the first blocker of every ray of s.
func (s Shape) Blocked(occupied Bitmap, pos position.Pos) Bitmap {
	var blocked Bitmap
	for _, d := range s.directions() {
		blocked |= FindBlocked(occupied, maskCell[pos], d)
	}
	return blocked
}

// OpenSquares returns every square a piece moving as s can reach from pos.
// For sliding shapes the first blocker on each ray is reachable regardless of
// its side; friendly squares are removed by the caller.
func (s Shape) OpenSquares(occupied Bitmap, pos position.Pos) Bitmap {
	if !s.Sliding() {
		return s.Span(pos)
	}
	span := s.Span(pos)
	return (s.Blocked(occupied, pos) & span) ^ span ^ maskCell[pos]
}
