package board

import (
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo"

	"github.com/daystram/bitvariant/position"
)

const (
	svgColorDark  = "#5fd75f"
	svgColorLight = "#d7ffd7"
)

// WriteSVG renders s as an SVG image with square cells of the given size in
// pixels, rank 8 at the top.
func (s State) WriteSVG(w io.Writer, cell int, title string) {
	canvas := svg.New(w)
	canvas.Start(cell*int(Width), cell*int(Height))
	if title != "" {
		canvas.Title(title)
	}
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		top := int(Height-1-y) * cell
		for x := position.Pos(0); x < Width; x++ {
			left := int(x) * cell
			fill := svgColorLight
			if x%2^y%2 == 0 {
				fill = svgColorDark
			}
			canvas.Rect(left, top, cell, cell, "fill:"+fill)

			side, piece := s.GetSideAndPieces(position.NewPosFromXY(x, y))
			if piece == PieceUnknown {
				continue
			}
			canvas.Text(left+cell/2, top+cell*3/4, piece.SymbolUnicode(side, false),
				"text-anchor:middle;font-family:serif;fill:#121212;font-size:"+strconv.Itoa(cell*3/4)+"px")
		}
	}
	canvas.End()
}
