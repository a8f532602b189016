package board

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/daystram/bitvariant/position"
)

// Bitmap is a little-endian rank-file bitboard. A Bitmap with exactly one
// bit set is used as a square.
type Bitmap uint64

func NewBitmap(positions ...position.Pos) Bitmap {
	var bm Bitmap
	for _, pos := range positions {
		bm.Set(pos)
	}
	return bm
}

func Union(bms ...Bitmap) Bitmap {
	var u Bitmap
	for _, bm := range bms {
		u |= bm
	}
	return u
}

func (bm *Bitmap) Set(pos position.Pos) {
	*bm |= maskCell[pos]
}

func (bm *Bitmap) Unset(pos position.Pos) {
	*bm &^= maskCell[pos]
}

func (bm Bitmap) Has(pos position.Pos) bool {
	return bm&maskCell[pos] != 0
}

func (bm Bitmap) LS1B() position.Pos {
	return position.Pos(bits.TrailingZeros64(uint64(bm)))
}

func (bm Bitmap) BitCount() uint8 {
	return uint8(bits.OnesCount64(uint64(bm)))
}

// Square returns the index of a single-bit Bitmap. Calling it on an empty or
// multi-bit Bitmap is a programming error.
func (bm Bitmap) Square() position.Pos {
	if bm == 0 || bm&(bm-1) != 0 {
		panic(fmt.Sprintf("board: not a square: %s", bm))
	}
	return bm.LS1B()
}

// Squares decomposes bm into single-bit Bitmaps, least significant first.
func (bm Bitmap) Squares() []Bitmap {
	sqs := make([]Bitmap, 0, bm.BitCount())
	for bm != 0 {
		ls1b := bm & -bm
		sqs = append(sqs, ls1b)
		bm ^= ls1b
	}
	return sqs
}

func (bm Bitmap) Positions() []position.Pos {
	positions := make([]position.Pos, 0, bm.BitCount())
	for bm != 0 {
		positions = append(positions, bm.LS1B())
		bm &= bm - 1
	}
	return positions
}

func (bm Bitmap) String() string {
	return fmt.Sprintf("0x%016X", uint64(bm))
}

func (bm Bitmap) Dump(sym ...rune) string {
	builder := strings.Builder{}
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y+1))
		for x := position.Pos(0); x < Width; x++ {
			if bm.Has(position.NewPosFromXY(x, y)) {
				s := "#"
				if len(sym) == 1 {
					s = string(sym[0])
				}
				_, _ = builder.WriteString(fmt.Sprintf(" %s ", s))
			} else {
				_, _ = builder.WriteString(" . ")
			}
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("    ------------------------\n    ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf(" %s ", x.NotationComponentX()))
	}
	return builder.String()
}
