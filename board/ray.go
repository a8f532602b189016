package board

// FillBeyond returns every square reachable from origin by stepping in d on an
// empty board, excluding origin itself.
func FillBeyond(origin Bitmap, d Direction) Bitmap {
	var ray Bitmap
	for sq := d.Next(origin); sq != 0; sq = d.Next(sq) {
		ray |= sq
	}
	return ray
}

// FindFirstOccupied walks the ray from origin in d and returns the first
// square set in occupied, or 0 if the ray leaves the board first.
func FindFirstOccupied(occupied, origin Bitmap, d Direction) Bitmap {
	for sq := d.Next(origin); sq != 0; sq = d.Next(sq) {
		if sq&occupied != 0 {
			return sq
		}
	}
	return 0
}

// FindBlocked returns the squares beyond the first blocker from origin in d.
func FindBlocked(occupied, origin Bitmap, d Direction) Bitmap {
	return FillBeyond(FindFirstOccupied(occupied, origin, d), d)
}
