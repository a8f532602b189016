package board

import (
	"errors"
	"fmt"

	"github.com/daystram/bitvariant/position"
)

var (
	ErrNotAMove = errors.New("not a move")
)

// Move describes the difference between a state and one of its successors.
type Move struct {
	From, To position.Pos
	Slice    Slice

	IsCapture bool
	Captured  Slice
}

func (m Move) String() string {
	return m.Algebra()
}

func (m Move) Algebra() string {
	nt := m.Slice.Piece().SymbolAlgebra(SideWhite) // SideWhite because it returns capital symbols
	if m.IsCapture {
		if m.Slice.Piece() == PiecePawn {
			nt += m.From.X().NotationComponentX()
		} else {
			nt += m.From.Notation()
		}
		nt += "x"
	}
	nt += m.To.Notation()
	return nt
}

// Coordinate is the from-to notation, e.g. "e2e4".
func (m Move) Coordinate() string {
	return m.From.Notation() + m.To.Notation()
}

// ParseCoordinate reads a from-to notation such as "g1f3".
func ParseCoordinate(n string) (position.Pos, position.Pos, error) {
	if len(n) != 4 {
		return 0, 0, fmt.Errorf("%w: %q", position.ErrInvalidNotation, n)
	}
	from, err := position.NewPosFromNotation(n[:2])
	if err != nil {
		return 0, 0, err
	}
	to, err := position.NewPosFromNotation(n[2:])
	if err != nil {
		return 0, 0, err
	}
	return from, to, nil
}

// Apply moves whatever stands on from to to, removing anything on to. It does
// not check the move against the generator.
func Apply(s State, from, to position.Pos) (State, Move, error) {
	slice, ok := s.SliceAt(from)
	if !ok {
		return State{}, Move{}, fmt.Errorf("%w: %s is empty", ErrNotAMove, from)
	}
	if from == to {
		return State{}, Move{}, fmt.Errorf("%w: %s to itself", ErrNotAMove, from)
	}
	mv := Move{From: from, To: to, Slice: slice}
	mv.Captured, mv.IsCapture = s.SliceAt(to)
	return Split(maskCell[from], maskCell[to], s, slice)[0], mv, nil
}

// Diff recovers the Move leading from prev to next.
func Diff(prev, next State) (Move, error) {
	vacated := prev.AllOccupation() &^ next.AllOccupation()
	if vacated.BitCount() != 1 {
		return Move{}, fmt.Errorf("%w: %d squares vacated", ErrNotAMove, vacated.BitCount())
	}
	from := vacated.LS1B()
	slice, _ := prev.SliceAt(from)
	arrived := next[slice] &^ prev[slice]
	if arrived.BitCount() != 1 {
		return Move{}, fmt.Errorf("%w: %s did not land on one square", ErrNotAMove, slice)
	}
	applied, mv, err := Apply(prev, from, arrived.LS1B())
	if err != nil {
		return Move{}, err
	}
	if applied != next {
		return Move{}, fmt.Errorf("%w: states differ beyond %s", ErrNotAMove, mv.Coordinate())
	}
	return mv, nil
}
