package board

import (
	"github.com/daystram/bitvariant/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = Width * Height

	DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"
)

const (
	forwardDiagonal  Bitmap = 0x_80_40_20_10_08_04_02_01
	backwardDiagonal Bitmap = 0x_01_02_04_08_10_20_40_80

	// CenterFourSquares covers d4, e4, d5 and e5.
	CenterFourSquares Bitmap = 0x_00_00_00_18_18_00_00_00
	// SecondCenterSquares is the ring around CenterFourSquares.
	SecondCenterSquares Bitmap = 0x_00_00_3C_24_24_3C_00_00
)

var (
	maskFile = [Width]Bitmap{
		position.FileA: 0x_01_01_01_01_01_01_01_01,
		position.FileB: 0x_02_02_02_02_02_02_02_02,
		position.FileC: 0x_04_04_04_04_04_04_04_04,
		position.FileD: 0x_08_08_08_08_08_08_08_08,
		position.FileE: 0x_10_10_10_10_10_10_10_10,
		position.FileF: 0x_20_20_20_20_20_20_20_20,
		position.FileG: 0x_40_40_40_40_40_40_40_40,
		position.FileH: 0x_80_80_80_80_80_80_80_80,
	}
	maskRank = [Height]Bitmap{
		position.Rank1: 0x_00_00_00_00_00_00_00_FF,
		position.Rank2: 0x_00_00_00_00_00_00_FF_00,
		position.Rank3: 0x_00_00_00_00_00_FF_00_00,
		position.Rank4: 0x_00_00_00_00_FF_00_00_00,
		position.Rank5: 0x_00_00_00_FF_00_00_00_00,
		position.Rank6: 0x_00_00_FF_00_00_00_00_00,
		position.Rank7: 0x_00_FF_00_00_00_00_00_00,
		position.Rank8: 0x_FF_00_00_00_00_00_00_00,
	}
	maskCell     [TotalCells]Bitmap
	maskCross    [TotalCells]Bitmap
	maskDiagonal [TotalCells]Bitmap
	maskKnight   [TotalCells]Bitmap
	maskKing     [TotalCells]Bitmap

	offsetsKnight = [8]position.Pos{6, 10, 15, 17, -6, -10, -15, -17}
	offsetsKing   = [8]position.Pos{1, 7, 8, 9, -1, -7, -8, -9}

	zobristConstantPiece     [SliceCount][TotalCells]uint64
	zobristConstantSideWhite uint64
)

func init() {
	initMask()
	initZobrist()
}

func initMask() {
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		maskCell[pos] = 1 << pos
	}

	for pos := position.Pos(0); pos < TotalCells; pos++ {
		maskCross[pos] = SquareMask(pos)
		maskDiagonal[pos] = SquareDiagonalMask(pos)
		maskKnight[pos] = stepTargets(pos, offsetsKnight, 2)
		maskKing[pos] = stepTargets(pos, offsetsKing, 1)
	}
}

// stepTargets keeps the offsets that land on the board and stay within reach
// files/ranks of pos, which rejects offsets wrapping around a file boundary.
func stepTargets(pos position.Pos, offsets [8]position.Pos, reach position.Pos) Bitmap {
	var mask Bitmap
	for _, offset := range offsets {
		dst := pos + offset
		if !dst.Valid() {
			continue
		}
		if pos.Distance(dst) > reach {
			continue
		}
		mask |= maskCell[dst]
	}
	return mask
}

func initZobrist() {
	r := NewPseudoRand()
	r.Seed(7)
	for sl := Slice(0); sl < SliceCount; sl++ {
		for pos := position.Pos(0); pos < TotalCells; pos++ {
			zobristConstantPiece[sl][pos] = r.Uint64()
		}
	}
	zobristConstantSideWhite = r.Uint64()
}
