package board

import (
	"errors"
	"fmt"

	"github.com/daystram/bitvariant/position"
)

const SliceCount = 2 * pieceCount

var (
	ErrInvalidFEN        = errors.New("invalid fen")
	ErrOverlappingSlices = errors.New("overlapping slices")
)

// Slice indexes one (side, piece) bitboard of a State.
type Slice uint8

const (
	SliceWhitePawn Slice = iota
	SliceWhiteBishop
	SliceWhiteKnight
	SliceWhiteRook
	SliceWhiteQueen
	SliceWhiteKing
	SliceBlackPawn
	SliceBlackBishop
	SliceBlackKnight
	SliceBlackRook
	SliceBlackQueen
	SliceBlackKing
)

func NewSlice(s Side, p Piece) Slice {
	return Slice(uint8(s-SideWhite)*pieceCount + uint8(p-PiecePawn))
}

func (sl Slice) Side() Side {
	return SideWhite + Side(sl/pieceCount)
}

func (sl Slice) Piece() Piece {
	return PiecePawn + Piece(sl%pieceCount)
}

func (sl Slice) String() string {
	return sl.Side().String() + sl.Piece().String()
}

// Turn counts plies from the start of the game. White moves on even turns
// and is the maximizing side.
type Turn uint16

func (t Turn) Side() Side {
	if t%2 == 0 {
		return SideWhite
	}
	return SideBlack
}

func (t Turn) Next() Turn {
	return t + 1
}

// State is a board position as twelve disjoint slices. States are values:
// copying one yields an independent position.
type State [SliceCount]Bitmap

type stateConfig struct {
	fen string
}

type StateOption func(*stateConfig)

func WithFEN(fen string) StateOption {
	return func(cfg *stateConfig) {
		cfg.fen = fen
	}
}

// NewState returns the standard starting placement unless another position
// is supplied.
func NewState(opts ...StateOption) (State, Turn, error) {
	cfg := &stateConfig{
		fen: DefaultStartingPositionFEN,
	}
	for _, f := range opts {
		f(cfg)
	}
	return UnmarshalFEN(cfg.fen)
}

// StartingState is the standard starting placement.
func StartingState() State {
	return State{
		SliceWhitePawn:   0x_00_00_00_00_00_00_FF_00,
		SliceWhiteBishop: 0x_00_00_00_00_00_00_00_24,
		SliceWhiteKnight: 0x_00_00_00_00_00_00_00_42,
		SliceWhiteRook:   0x_00_00_00_00_00_00_00_81,
		SliceWhiteQueen:  0x_00_00_00_00_00_00_00_08,
		SliceWhiteKing:   0x_00_00_00_00_00_00_00_10,
		SliceBlackPawn:   0x_00_FF_00_00_00_00_00_00,
		SliceBlackBishop: 0x_24_00_00_00_00_00_00_00,
		SliceBlackKnight: 0x_42_00_00_00_00_00_00_00,
		SliceBlackRook:   0x_81_00_00_00_00_00_00_00,
		SliceBlackQueen:  0x_08_00_00_00_00_00_00_00,
		SliceBlackKing:   0x_10_00_00_00_00_00_00_00,
	}
}

// Validate reports whether any square is held by more than one slice.
func (s State) Validate() error {
	var seen Bitmap
	for sl, bm := range s {
		if overlap := seen & bm; overlap != 0 {
			return fmt.Errorf("%w: %s overlaps at %s", ErrOverlappingSlices, Slice(sl), overlap.LS1B())
		}
		seen |= bm
	}
	return nil
}

// AllOccupation returns every occupied square. It panics when the OR and XOR
// reductions of the slices disagree, which only a generation bug can cause.
func (s State) AllOccupation() Bitmap {
	var or, xor Bitmap
	for _, bm := range s {
		or |= bm
		xor ^= bm
	}
	if or != xor {
		panic(fmt.Sprintf("board: %v: %s", ErrOverlappingSlices, or^xor))
	}
	return or
}

func (s State) SideOccupation(side Side) Bitmap {
	var occ Bitmap
	first := NewSlice(side, PiecePawn)
	for sl := first; sl < first+pieceCount; sl++ {
		occ |= s[sl]
	}
	return occ
}

func (s State) WhiteOccupation() Bitmap {
	return s.SideOccupation(SideWhite)
}

func (s State) BlackOccupation() Bitmap {
	return s.SideOccupation(SideBlack)
}

func (s State) AllyOccupation(t Turn) Bitmap {
	return s.SideOccupation(t.Side())
}

func (s State) EnemyOccupation(t Turn) Bitmap {
	return s.SideOccupation(t.Side().Opposite())
}

func (s State) NotAllyOccupation(t Turn) Bitmap {
	return ^s.AllyOccupation(t)
}

func (s State) EmptySquares() Bitmap {
	return ^s.AllOccupation()
}

func (s State) PieceCount() uint8 {
	var n uint8
	for _, bm := range s {
		n += bm.BitCount()
	}
	return n
}

func (s State) GetBitmap(side Side, p Piece) Bitmap {
	return s[NewSlice(side, p)]
}

// SliceAt returns the slice holding pos.
func (s State) SliceAt(pos position.Pos) (Slice, bool) {
	for sl, bm := range s {
		if bm.Has(pos) {
			return Slice(sl), true
		}
	}
	return 0, false
}

func (s State) GetSideAndPieces(pos position.Pos) (Side, Piece) {
	sl, ok := s.SliceAt(pos)
	if !ok {
		return SideUnknown, PieceUnknown
	}
	return sl.Side(), sl.Piece()
}

// Hash is a Zobrist hash of the placement and the side to move.
func (s State) Hash(t Turn) uint64 {
	var h uint64
	for sl, bm := range s {
		for bm != 0 {
			h ^= zobristConstantPiece[sl][bm.LS1B()]
			bm &= bm - 1
		}
	}
	if t.Side() == SideWhite {
		h ^= zobristConstantSideWhite
	}
	return h
}
