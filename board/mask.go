package board

import (
	"github.com/daystram/bitvariant/position"
)

func FileMask(file position.Pos) Bitmap {
	return maskFile[position.FileA] << file
}

func RankMask(rank position.Pos) Bitmap {
	return maskRank[position.Rank1] << (8 * rank)
}

// SquareMask is the rank and file through pos, pos included.
func SquareMask(pos position.Pos) Bitmap {
	return FileMask(pos.X()) | RankMask(pos.Y())
}

// SquareDiagonalMask is both diagonals through pos, pos included.
func SquareDiagonalMask(pos position.Pos) Bitmap {
	return ForwardDiagonalMask(pos) | BackwardDiagonalMask(pos)
}

// ForwardDiagonalMask is the a1-h8 oriented diagonal through pos.
func ForwardDiagonalMask(pos position.Pos) Bitmap {
	return ShiftFiles(forwardDiagonal, int(pos.X()-pos.Y()))
}

// BackwardDiagonalMask is the h1-a8 oriented diagonal through pos.
func BackwardDiagonalMask(pos position.Pos) Bitmap {
	return ShiftFiles(backwardDiagonal, int(pos.X()+pos.Y()-7))
}

// ShiftFiles moves bm n files to the right (left when negative), dropping
// anything pushed past the board edge.
func ShiftFiles(bm Bitmap, n int) Bitmap {
	return shiftN(bm, n, DirectionRight)
}

// ShiftRanks moves bm n ranks up (down when negative), dropping anything
// pushed past the board edge.
func ShiftRanks(bm Bitmap, n int) Bitmap {
	return shiftN(bm, n, DirectionUp)
}

func shiftN(bm Bitmap, n int, d Direction) Bitmap {
	if n < 0 {
		n, d = -n, d.Opposite()
	}
	for ; n > 0 && bm != 0; n-- {
		bm = d.Next(bm)
	}
	return bm
}

// Crop drops the outer ranks and files of bm, except those origin lies on.
// Bits there can only terminate a ray, never block one.
func Crop(bm, origin Bitmap) Bitmap {
	if origin&maskRank[position.Rank1] == 0 {
		bm &^= maskRank[position.Rank1]
	}
	if origin&maskRank[position.Rank8] == 0 {
		bm &^= maskRank[position.Rank8]
	}
	if origin&maskFile[position.FileA] == 0 {
		bm &^= maskFile[position.FileA]
	}
	if origin&maskFile[position.FileH] == 0 {
		bm &^= maskFile[position.FileH]
	}
	return bm
}
