package board

import (
	"github.com/daystram/bitvariant/position"
)

type pawnTarget uint8

const (
	pawnTargetEmpty pawnTarget = iota
	pawnTargetEnemy
)

// pawnFamily is one kind of pawn move: a direction stepped steps times,
// landing on target squares, optionally restricted to a rank.
type pawnFamily struct {
	direction Direction
	steps     int
	target    pawnTarget
	rank      Bitmap
}

var pawnFamilies = [2][4]pawnFamily{
	{
		{direction: DirectionUp, steps: 1, target: pawnTargetEmpty},
		{direction: DirectionUp, steps: 2, target: pawnTargetEmpty, rank: maskRank[position.Rank4]},
		{direction: DirectionUpRight, steps: 1, target: pawnTargetEnemy},
		{direction: DirectionUpLeft, steps: 1, target: pawnTargetEnemy},
	},
	{
		{direction: DirectionDown, steps: 1, target: pawnTargetEmpty},
		{direction: DirectionDown, steps: 2, target: pawnTargetEmpty, rank: maskRank[position.Rank5]},
		{direction: DirectionDownRight, steps: 1, target: pawnTargetEnemy},
		{direction: DirectionDownLeft, steps: 1, target: pawnTargetEnemy},
	},
}

// destinations returns where pawns can land. Multi-step pushes re-check target
// after every step so the intermediate square must also be free.
func (f pawnFamily) destinations(pawns, target Bitmap) Bitmap {
	for i := 0; i < f.steps; i++ {
		pawns = f.direction.Next(pawns) & target
	}
	if f.rank != 0 {
		pawns &= f.rank
	}
	return pawns
}

func (f pawnFamily) origin(dst Bitmap) Bitmap {
	return shiftN(dst, f.steps, f.direction.Opposite())
}

func pawnTargets(state State, side Side) (empty, enemy Bitmap) {
	return state.EmptySquares(), state.SideOccupation(side.Opposite())
}

// PawnDestinations returns every square the given pawns of side can move to.
func PawnDestinations(state State, side Side, pawns Bitmap) Bitmap {
	empty, enemy := pawnTargets(state, side)
	var dsts Bitmap
	for _, f := range pawnFamilies[side-SideWhite] {
		target := empty
		if f.target == pawnTargetEnemy {
			target = enemy
		}
		dsts |= f.destinations(pawns, target)
	}
	return dsts
}

// PawnStates returns the pawn successors of state for side, grouped by
// single push, double push, right capture and left capture.
func PawnStates(state State, side Side) []State {
	slice := NewSlice(side, PiecePawn)
	pawns := state[slice]
	if pawns == 0 {
		return nil
	}
	empty, enemy := pawnTargets(state, side)

	var states []State
	for _, f := range pawnFamilies[side-SideWhite] {
		target := empty
		if f.target == pawnTargetEnemy {
			target = enemy
		}
		for _, dst := range f.destinations(pawns, target).Squares() {
			states = append(states, Split(f.origin(dst), dst, state, slice)...)
		}
	}
	return states
}
