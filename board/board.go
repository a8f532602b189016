package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/bitvariant/position"
)

var (
	colorLabel     = color.New(color.Bold)
	colorCellDark  = color.New(38, 5, 233, 48, 5, 77)
	colorCellLight = color.New(38, 5, 233, 48, 5, 194)
)

func (s State) Dump() string {
	builder := strings.Builder{}
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y+1))
		for x := position.Pos(0); x < Width; x++ {
			side, piece := s.GetSideAndPieces(position.NewPosFromXY(x, y))
			sym := piece.SymbolFEN(side)
			if side == SideUnknown {
				sym = " "
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", x.NotationComponentX()))
	}
	return builder.String()
}

// Draw renders s with unicode pieces on a colored grid. Colors are dropped
// when the output is not a terminal.
func (s State) Draw() string {
	builder := strings.Builder{}
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %d ", y+1))
		for x := position.Pos(0); x < Width; x++ {
			side, piece := s.GetSideAndPieces(position.NewPosFromXY(x, y))
			sym := piece.SymbolUnicode(side, false)
			if piece == PieceUnknown {
				sym = " "
			}
			cell := colorCellLight
			if x%2^y%2 == 0 {
				cell = colorCellDark
			}
			_, _ = builder.WriteString(cell.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %s ", x.NotationComponentX()))
	}
	return builder.String()
}

func (s State) DebugString(t Turn) string {
	return fmt.Sprintf("turn: %4d (%s)\npcs:  %4d\nfen:  %s", t, t.Side(), s.PieceCount(), s.FEN(t))
}
