package board

import (
	"github.com/daystram/bitvariant/position"
)

// Generator produces pseudo-legal successor states. Moves that leave a king
// capturable are not filtered.
type Generator struct {
	maps *MoveMaps
}

// NewGenerator returns a Generator reading through maps. A nil maps gets a
// private cache.
func NewGenerator(maps *MoveMaps) *Generator {
	if maps == nil {
		maps = NewMoveMaps()
	}
	return &Generator{maps: maps}
}

func (g *Generator) MoveMaps() *MoveMaps {
	return g.maps
}

// Destinations returns the squares the piece of slice on pos may move to,
// excluding squares held by its own side.
func (g *Generator) Destinations(state State, pos position.Pos, slice Slice) Bitmap {
	side, piece := slice.Side(), slice.Piece()
	if piece == PiecePawn {
		return PawnDestinations(state, side, maskCell[pos])
	}
	occupied := state.AllOccupation()
	var dsts Bitmap
	for _, shape := range piece.Shapes() {
		dsts |= g.maps.Get(shape).Get(pos, occupied)
	}
	return dsts &^ state.SideOccupation(side)
}

// SideStates returns every successor of state with side to move: pawn moves
// first, then the remaining pieces in slice order.
func (g *Generator) SideStates(state State, side Side) []State {
	states := PawnStates(state, side)
	occupied := state.AllOccupation()
	ally := state.SideOccupation(side)
	for _, piece := range Pieces[1:] {
		slice := NewSlice(side, piece)
		for _, pos := range state[slice].Positions() {
			var dsts Bitmap
			for _, shape := range piece.Shapes() {
				dsts |= g.maps.Get(shape).Get(pos, occupied)
			}
			states = append(states, Split(maskCell[pos], dsts&^ally, state, slice)...)
		}
	}
	return states
}

func (g *Generator) WhiteStates(state State) []State {
	return g.SideStates(state, SideWhite)
}

func (g *Generator) BlackStates(state State) []State {
	return g.SideStates(state, SideBlack)
}

func (g *Generator) StatesForTurn(state State, t Turn) []State {
	return g.SideStates(state, t.Side())
}
