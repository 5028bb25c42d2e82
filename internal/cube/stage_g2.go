package cube

// G2 additionally orients all corners and places the four E-slice
// edges somewhere within the E-slice (not necessarily in their home
// slots). The coordinate combines a base-3 corner orientation number
// with the combination rank of the E-slice edges' current slots.
var G2 = Stage{
	Name: "G2",
	Size: 2187 * 495,
	MovePool: []Move{
		U, Uprime, U2,
		D, Dprime, D2,
		L, Lprime, L2,
		R, Rprime, R2,
		F2,
		B2,
	},
	Index: g2Index,
}

func g2Index(c *Cube) int {
	cornerOrientIdx := 0
	for i := 0; i < 7; i++ {
		cornerOrientIdx += pow3(i) * int(c.CornerOrientation(Corner(i)))
	}

	eSliceSlots := edgeSlotsOf(c, ESliceEdges[:])
	eSliceIdx := CombinationRank(positionIndices(eSliceSlots, allEdgesOrdering[:]))

	return cornerOrientIdx*495 + eSliceIdx
}

func pow3(n int) int {
	p := 1
	for i := 0; i < n; i++ {
		p *= 3
	}
	return p
}

// allEdgesOrdering is the fixed enumeration order of all 12 edge
// slots, used as the reference ordering when ranking an edge subset.
var allEdgesOrdering = [numEdges]Edge{UR, UB, UL, UF, RF, RB, LB, LF, DR, DB, DL, DF}
