package cube

// pairedCorners lists the 8 corners in paired order: the two pairs of
// the first tetrad, then the two pairs of the second. G3's coordinate
// tracks where each pair of corners ends up (ignoring swaps within a
// pair) plus the overall corner swap parity, following the strategy
// attributed to Stefan Pochmann's Thistlethwaite write-up.
var pairedCorners = [numCorners]Corner{
	URF, ULB,
	DRB, DLF,
	URB, ULF,
	DRF, DLB,
}

// remainingEdges is the reference ordering for the M-slice edge
// coordinate: the 8 edges not already placed by G2's E-slice
// reduction.
var remainingEdges = [8]Edge{UF, DF, DB, UB, UR, UL, DL, DR}

// G3 reduces further: both tetrads' pairs are placed, the M-slice
// edges sit in the M-slice, and the corner permutation has the parity
// required by G4 (which must equal the, always-equal, edge parity).
var G3 = Stage{
	Name: "G3",
	Size: 2520 * 70 * 2,
	MovePool: []Move{
		U, Uprime, U2,
		D, Dprime, D2,
		L2,
		R2,
		F2,
		B2,
	},
	Index: g3Index,
}

func g3Index(c *Cube) int {
	cornerSlots := cornerSlotsOf(c, pairedCorners[:])

	ordering := append([]Corner(nil), pairedCorners[:]...)
	pair1 := cornerSlots[0:2]
	r1 := CombinationRank(positionIndices(pair1, ordering))
	ordering = removeFrom(ordering, pair1)

	pair2 := cornerSlots[2:4]
	r2 := CombinationRank(positionIndices(pair2, ordering))
	ordering = removeFrom(ordering, pair2)

	pair3 := cornerSlots[4:6]
	r3 := CombinationRank(positionIndices(pair3, ordering))

	pairIdx := (r1*15+r2)*6 + r3

	parity := PermutationParity(positionIndices(cornerSlots, pairedCorners[:]))

	mSliceSlots := edgeSlotsOf(c, MSliceEdges[:])
	mSliceIdx := CombinationRank(positionIndices(mSliceSlots, remainingEdges[:]))

	return (pairIdx*70+mSliceIdx)*2 + parity
}
