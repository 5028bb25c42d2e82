package cube

// G4 is the half-turn-only subgroup: every remaining move is a double
// turn, so solving it is a matter of placing pieces, not reorienting
// them. The coordinate combines a corner descriptor (tetrad
// permutation + locator for the other tetrad) with an edge descriptor
// (E-slice and M-slice permutation ranks, plus a partial S-slice
// descriptor).
var G4 = Stage{
	Name:     "G4",
	Size:     96 * 6912,
	MovePool: []Move{U2, L2, D2, R2, F2, B2},
	Index:    g4Index,
}

func g4Index(c *Cube) int {
	firstTetradSlots := cornerSlotsOf(c, FirstTetrad[:])
	tetradRank := PermutationRank(positionIndices(firstTetradSlots, FirstTetrad[:]))

	urbSlot := c.CornerSlot(URB)
	urbIdx := indexOf(SecondTetrad[:], urbSlot)

	cornerIdx := tetradRank*4 + urbIdx

	eSliceSlots := edgeSlotsOf(c, ESliceEdges[:])
	eSliceIdx := PermutationRank(positionIndices(eSliceSlots, ESliceEdges[:]))

	mSliceSlots := edgeSlotsOf(c, MSliceEdges[:])
	mSliceIdx := PermutationRank(positionIndices(mSliceSlots, MSliceEdges[:]))

	urSlot := indexOf(SSliceEdges[:], c.EdgeSlot(UR))
	ulSlot := indexOf(SSliceEdges[:], c.EdgeSlot(UL))
	order := 0
	if urSlot < ulSlot {
		order = 1
	}
	sSliceIdx := CombinationRank([]int{urSlot, ulSlot})*2 + order

	edgeIdx := (sSliceIdx*24+mSliceIdx)*24 + eSliceIdx

	return edgeIdx*96 + cornerIdx
}
