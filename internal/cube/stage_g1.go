package cube

// G1 reduces the cube to the subgroup where all edges are correctly
// oriented. The coordinate treats the orientations of the first 11
// edges as a base-2 number; the 12th is determined by the even-parity
// invariant, so it carries no information.
var G1 = Stage{
	Name:     "G1",
	Size:     2048,
	MovePool: AllMoves[:],
	Index:    g1Index,
}

func g1Index(c *Cube) int {
	idx := 0
	for i := 0; i < 11; i++ {
		idx += (1 << uint(i)) * int(c.EdgeOrientation(Edge(i)))
	}
	return idx
}
