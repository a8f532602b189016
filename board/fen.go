package board

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/daystram/bitvariant/position"
)

// UnmarshalFEN parses a FEN record. The variant has no castling or en passant,
// so those fields must be "-". The full move clock and side to move give the
// Turn.
func UnmarshalFEN(fen string) (State, Turn, error) {
	var s State
	segments := strings.Split(fen, " ")
	if len(segments) != 6 {
		return State{}, 0, fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}

	rows := strings.Split(segments[0], "/")
	if len(rows) != int(Height) {
		return State{}, 0, fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	for y := position.Pos(0); y < Height; y++ {
		ptrX, ptrY := -1, Height-y-1
		for x := position.Pos(0); x < Width; x++ {
			ptrX++
			if ptrX >= len(rows[ptrY]) {
				return State{}, 0, fmt.Errorf("%w: missing cells", ErrInvalidFEN)
			}
			cell := rune(rows[ptrY][ptrX])
			side, piece := NewPieceFromSymbol(cell)
			if piece == PieceUnknown {
				if cell != '0' && unicode.IsDigit(cell) {
					skip := position.Pos(cell - '0')
					if x+skip-1 < Width {
						x += skip - 1
						continue
					}
					return State{}, 0, fmt.Errorf("%w: skip out of bounds", ErrInvalidFEN)
				}
				return State{}, 0, fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidFEN, string(cell))
			}
			s[NewSlice(side, piece)].Set(position.NewPosFromXY(x, y))
		}
		if ptrX != len(rows[ptrY])-1 {
			return State{}, 0, fmt.Errorf("%w: extra cells", ErrInvalidFEN)
		}
	}

	var black Turn
	switch segments[1] {
	case "w":
	case "b":
		black = 1
	default:
		return State{}, 0, fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}

	if segments[2] != "-" {
		return State{}, 0, fmt.Errorf("%w: castling is not supported", ErrInvalidFEN)
	}
	if segments[3] != "-" {
		return State{}, 0, fmt.Errorf("%w: en passant is not supported", ErrInvalidFEN)
	}

	if _, err := strconv.ParseUint(segments[4], 10, 8); err != nil {
		return State{}, 0, fmt.Errorf("%w: invalid half move clock", ErrInvalidFEN)
	}
	fullMoveClock, err := strconv.ParseUint(segments[5], 10, 16)
	if err != nil || fullMoveClock == 0 || 2*(fullMoveClock-1)+1 > math.MaxUint16 {
		return State{}, 0, fmt.Errorf("%w: invalid full move clock", ErrInvalidFEN)
	}

	return s, Turn(2*(fullMoveClock-1)) + black, nil
}

// MarshalFEN formats s with t's side to move. The half move clock is not
// tracked and is always 0.
func MarshalFEN(s State, t Turn) string {
	builder := strings.Builder{}
	occupied := s.AllOccupation()
	var skip uint8
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		for x := position.Pos(0); x < Width; x++ {
			for skip = 0; x < Width && !occupied.Has(position.NewPosFromXY(x, y)); x++ {
				skip++
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune(skip + '0'))
			}
			if x < Width {
				side, piece := s.GetSideAndPieces(position.NewPosFromXY(x, y))
				_, _ = builder.WriteString(piece.SymbolFEN(side))
			}
		}
		if y > 0 {
			_, _ = builder.WriteRune('/')
		}
	}

	if t.Side() == SideWhite {
		_, _ = builder.WriteString(" w ")
	} else {
		_, _ = builder.WriteString(" b ")
	}
	_, _ = builder.WriteString(fmt.Sprintf("- - 0 %d", t/2+1))

	return builder.String()
}

func (s State) FEN(t Turn) string {
	return MarshalFEN(s, t)
}
