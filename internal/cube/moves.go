package cube

// Move is one of the 18 named face turns: a quarter turn clockwise
// (viewed from outside the named face), its inverse, or its double.
type Move int

const (
	U Move = iota
	Uprime
	U2
	D
	Dprime
	D2
	R
	Rprime
	R2
	L
	Lprime
	L2
	F
	Fprime
	F2
	B
	Bprime
	B2
	numMoves = 18
)

var moveNames = [numMoves]string{
	"U", "U'", "U2",
	"D", "D'", "D2",
	"R", "R'", "R2",
	"L", "L'", "L2",
	"F", "F'", "F2",
	"B", "B'", "B2",
}

func (m Move) String() string {
	return moveNames[m]
}

// AllMoves is the full 18-member move enumeration, U first through B2
// last, grouped by face in U, D, R, L, F, B order.
var AllMoves = [numMoves]Move{U, Uprime, U2, D, Dprime, D2, R, Rprime, R2, L, Lprime, L2, F, Fprime, F2, B, Bprime, B2}

// moveEffect is a precomputed, directly-applicable transform for one
// move: which slot's prior occupant ends up in each slot, and what
// orientation delta that occupant picks up. Precomputing this once per
// move at package init (rather than composing quarter turns at every
// Turn call) keeps the innermost loop of table construction cheap.
type moveEffect struct {
	edgeSrc     [numEdges]Edge
	edgeFlip    [numEdges]uint8 // XORed into orientation
	cornerSrc   [numCorners]Corner
	cornerTwist [numCorners]uint8 // added mod 3 to orientation
}

func identityEffect() moveEffect {
	var eff moveEffect
	for i := range eff.edgeSrc {
		eff.edgeSrc[i] = Edge(i)
	}
	for i := range eff.cornerSrc {
		eff.cornerSrc[i] = Corner(i)
	}
	return eff
}

// quarterTurnEffect builds the moveEffect for a single quarter-turn
// clockwise face move from its 4-cycle and twist/flip data, following
// the table in the cube-model specification: "A->B->C->D->A" means the
// piece previously at slot A occupies slot B after the move.
func quarterTurnEffect(edgeCycle [4]Edge, cornerCycle [4]Corner, cornerTwists [4]uint8, flipEdges bool) moveEffect {
	eff := identityEffect()

	for i := 0; i < 4; i++ {
		from := edgeCycle[i]
		to := edgeCycle[(i+1)%4]
		eff.edgeSrc[to] = from
	}
	if flipEdges {
		for _, slot := range edgeCycle {
			eff.edgeFlip[slot] = 1
		}
	}

	for i := 0; i < 4; i++ {
		from := cornerCycle[i]
		to := cornerCycle[(i+1)%4]
		eff.cornerSrc[to] = from
	}
	for i, slot := range cornerCycle {
		eff.cornerTwist[slot] = cornerTwists[i]
	}

	return eff
}

// compose returns the effect of applying a, then b.
func compose(a, b moveEffect) moveEffect {
	var c moveEffect
	for slot := 0; slot < numEdges; slot++ {
		mid := b.edgeSrc[slot]
		c.edgeSrc[slot] = a.edgeSrc[mid]
		c.edgeFlip[slot] = a.edgeFlip[mid] ^ b.edgeFlip[slot]
	}
	for slot := 0; slot < numCorners; slot++ {
		mid := b.cornerSrc[slot]
		c.cornerSrc[slot] = a.cornerSrc[mid]
		c.cornerTwist[slot] = (a.cornerTwist[mid] + b.cornerTwist[slot]) % 3
	}
	return c
}

var moveEffects [numMoves]moveEffect

func init() {
	baseU := quarterTurnEffect(
		[4]Edge{UR, UB, UL, UF},
		[4]Corner{URF, URB, ULB, ULF},
		[4]uint8{0, 0, 0, 0},
		false,
	)
	baseD := quarterTurnEffect(
		[4]Edge{DR, DF, DL, DB},
		[4]Corner{DRF, DLF, DLB, DRB},
		[4]uint8{0, 0, 0, 0},
		false,
	)
	baseR := quarterTurnEffect(
		[4]Edge{UR, RF, DR, RB},
		[4]Corner{URF, DRF, DRB, URB},
		[4]uint8{1, 2, 1, 2},
		false,
	)
	baseL := quarterTurnEffect(
		[4]Edge{UL, LB, DL, LF},
		[4]Corner{ULF, ULB, DLB, DLF},
		[4]uint8{2, 1, 2, 1},
		false,
	)
	baseF := quarterTurnEffect(
		[4]Edge{UF, LF, DF, RF},
		[4]Corner{URF, ULF, DLF, DRF},
		[4]uint8{2, 1, 2, 1},
		true,
	)
	baseB := quarterTurnEffect(
		[4]Edge{UB, RB, DB, LB},
		[4]Corner{URB, DRB, DLB, ULB},
		[4]uint8{1, 2, 1, 2},
		true,
	)

	set := func(cw, double, ccw Move, base moveEffect) {
		moveEffects[cw] = base
		dbl := compose(base, base)
		moveEffects[double] = dbl
		moveEffects[ccw] = compose(dbl, base)
	}

	set(U, U2, Uprime, baseU)
	set(D, D2, Dprime, baseD)
	set(R, R2, Rprime, baseR)
	set(L, L2, Lprime, baseL)
	set(F, F2, Fprime, baseF)
	set(B, B2, Bprime, baseB)
}

// Turn applies a single move in place.
func (c *Cube) Turn(m Move) {
	eff := moveEffects[m]
	old := *c
	for slot := 0; slot < numEdges; slot++ {
		src := old.Edges[eff.edgeSrc[slot]]
		c.Edges[slot] = Cubie{
			Piece:       src.Piece,
			Orientation: src.Orientation ^ eff.edgeFlip[slot],
		}
	}
	for slot := 0; slot < numCorners; slot++ {
		src := old.Corners[eff.cornerSrc[slot]]
		c.Corners[slot] = Cubie{
			Piece:       src.Piece,
			Orientation: (src.Orientation + eff.cornerTwist[slot]) % 3,
		}
	}
}

// TurnAll applies a sequence of moves in order.
func (c *Cube) TurnAll(moves []Move) {
	for _, m := range moves {
		c.Turn(m)
	}
}
