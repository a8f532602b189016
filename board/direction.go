package board

// Direction is one of the eight compass steps on the board.
type Direction uint8

const (
	DirectionRight Direction = iota
	DirectionLeft
	DirectionUp
	DirectionDown
	DirectionUpLeft
	DirectionUpRight
	DirectionDownLeft
	DirectionDownRight
)

var (
	Directions         = [8]Direction{DirectionRight, DirectionLeft, DirectionUp, DirectionDown, DirectionUpLeft, DirectionUpRight, DirectionDownLeft, DirectionDownRight}
	DirectionsCross    = [4]Direction{DirectionRight, DirectionLeft, DirectionUp, DirectionDown}
	DirectionsDiagonal = [4]Direction{DirectionUpLeft, DirectionUpRight, DirectionDownLeft, DirectionDownRight}

	directionShift = [8]int{
		DirectionRight:     1,
		DirectionLeft:      -1,
		DirectionUp:        8,
		DirectionDown:      -8,
		DirectionUpLeft:    7,
		DirectionUpRight:   9,
		DirectionDownLeft:  -9,
		DirectionDownRight: -7,
	}
	// a diagonal is blocked when either of its axes is
	directionEdge = [8]Bitmap{
		DirectionRight:     maskFile[7],
		DirectionLeft:      maskFile[0],
		DirectionUp:        maskRank[7],
		DirectionDown:      maskRank[0],
		DirectionUpLeft:    maskRank[7] | maskFile[0],
		DirectionUpRight:   maskRank[7] | maskFile[7],
		DirectionDownLeft:  maskRank[0] | maskFile[0],
		DirectionDownRight: maskRank[0] | maskFile[7],
	}
)

func (d Direction) String() string {
	switch d {
	case DirectionRight:
		return "Right"
	case DirectionLeft:
		return "Left"
	case DirectionUp:
		return "Up"
	case DirectionDown:
		return "Down"
	case DirectionUpLeft:
		return "UpLeft"
	case DirectionUpRight:
		return "UpRight"
	case DirectionDownLeft:
		return "DownLeft"
	case DirectionDownRight:
		return "DownRight"
	default:
		return ""
	}
}

func (d Direction) Shift() int {
	return directionShift[d]
}

// Edge returns the squares from which a step in d would leave the board.
func (d Direction) Edge() Bitmap {
	return directionEdge[d]
}

func (d Direction) AtEdge(sq Bitmap) bool {
	return sq&directionEdge[d] != 0
}

// Next steps every set bit of bm once in d, dropping bits that would wrap.
// For a single square this is its neighbor, or 0 at the edge.
func (d Direction) Next(bm Bitmap) Bitmap {
	bm &^= directionEdge[d]
	s := directionShift[d]
	if s > 0 {
		return bm << s
	}
	return bm >> -s
}

func (d Direction) Opposite() Direction {
	switch d {
	case DirectionRight:
		return DirectionLeft
	case DirectionLeft:
		return DirectionRight
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionUpLeft:
		return DirectionDownRight
	case DirectionUpRight:
		return DirectionDownLeft
	case DirectionDownLeft:
		return DirectionUpRight
	default:
		return DirectionUpLeft
	}
}
