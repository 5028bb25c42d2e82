package cube

// indexOf returns the position of x within ordering. Ordering vectors
// in the coordinate functions are always small (<= 12), so a linear
// scan is simplest and fast enough.
func indexOf[T comparable](ordering []T, x T) int {
	for i, o := range ordering {
		if o == x {
			return i
		}
	}
	panic("cube: element not present in ordering")
}

// positionIndices maps each element of slots to its index within
// ordering, preserving the order of slots.
func positionIndices[T comparable](slots []T, ordering []T) []int {
	idx := make([]int, len(slots))
	for i, s := range slots {
		idx[i] = indexOf(ordering, s)
	}
	return idx
}

// removeFrom returns ordering with every element of remove deleted,
// preserving relative order of what's left. Used by the G3 coordinate
// to shrink the reference set between successive pair ranks.
func removeFrom[T comparable](ordering []T, remove []T) []T {
	out := make([]T, 0, len(ordering)-len(remove))
	for _, o := range ordering {
		drop := false
		for _, r := range remove {
			if o == r {
				drop = true
				break
			}
		}
		if !drop {
			out = append(out, o)
		}
	}
	return out
}

// edgeSlotsOf returns, for each piece in pieces, the slot currently
// holding it (i.e. the inverse lookup applied piece-by-piece).
func edgeSlotsOf(c *Cube, pieces []Edge) []Edge {
	slots := make([]Edge, len(pieces))
	for i, p := range pieces {
		slots[i] = c.EdgeSlot(p)
	}
	return slots
}

// cornerSlotsOf returns, for each piece in pieces, the slot currently
// holding it.
func cornerSlotsOf(c *Cube, pieces []Corner) []Corner {
	slots := make([]Corner, len(pieces))
	for i, p := range pieces {
		slots[i] = c.CornerSlot(p)
	}
	return slots
}
