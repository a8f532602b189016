package board

// Split produces one successor of state per destination square: origin is
// vacated, whatever stood on the destination is removed, and the destination
// is set in slice. Successors are ordered by ascending destination.
func Split(origin, destinations Bitmap, state State, slice Slice) []State {
	states := make([]State, 0, destinations.BitCount())
	for _, dst := range destinations.Squares() {
		next := state
		for sl := range next {
			next[sl] &^= origin | dst
		}
		next[slice] |= dst
		states = append(states, next)
	}
	return states
}
