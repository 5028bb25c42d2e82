// Package cube implements the cubie-level model of a 3x3x3 Rubik's
// cube and the Thistlethwaite group-reduction solver built on top of
// it.
package cube

// Edge names the 12 edge slots/pieces, in the fixed order used
// throughout this package for indexing, ranking, and table coordinates.
type Edge int

const (
	UR Edge = iota
	UB
	UL
	UF
	RF
	RB
	LB
	LF
	DR
	DB
	DL
	DF
	numEdges = 12
)

func (e Edge) String() string {
	return [numEdges]string{"UR", "UB", "UL", "UF", "RF", "RB", "LB", "LF", "DR", "DB", "DL", "DF"}[e]
}

// Corner names the 8 corner slots/pieces, in the fixed order used
// throughout this package.
type Corner int

const (
	URF Corner = iota
	URB
	ULB
	ULF
	DRB
	DRF
	DLF
	DLB
	numCorners = 8
)

func (c Corner) String() string {
	return [numCorners]string{"URF", "URB", "ULB", "ULF", "DRB", "DRF", "DLF", "DLB"}[c]
}

// ESliceEdges, MSliceEdges and SSliceEdges partition the 12 edges into
// the three equatorial rings (E between U/D, M between L/R, S between
// F/B); FirstTetrad and SecondTetrad split the 8 corners into the two
// tetrads fixed by the half-turn-only subgroup G4.
var (
	ESliceEdges = [4]Edge{RF, RB, LB, LF}
	MSliceEdges = [4]Edge{UF, DF, DB, UB}
	SSliceEdges = [4]Edge{UR, UL, DL, DR}

	FirstTetrad  = [4]Corner{URF, ULB, DRB, DLF}
	SecondTetrad = [4]Corner{URB, ULF, DRF, DLB}
)

// Cubie is one entry of the cube's edge or corner array: which piece
// currently occupies the slot, and how that piece is twisted/flipped
// relative to the fixed reference frame.
//
// Orientation is in {0,1} for edges (flip parity) and {0,1,2} for
// corners (clockwise twist mod 3, measured about the body diagonal
// relative to the U/D faces).
type Cubie struct {
	Piece       uint8
	Orientation uint8
}

// Cube is the immutable-by-convention cubie-level state: two slot-
// indexed arrays of (piece, orientation). The solved cube has
// Piece == slot index and Orientation == 0 everywhere.
type Cube struct {
	Edges   [numEdges]Cubie
	Corners [numCorners]Cubie
}

// New returns a solved cube.
func New() *Cube {
	c := &Cube{}
	for i := range c.Edges {
		c.Edges[i] = Cubie{Piece: uint8(i)}
	}
	for i := range c.Corners {
		c.Corners[i] = Cubie{Piece: uint8(i)}
	}
	return c
}

// Clone returns an independent copy so callers (notably the solver's
// neighbour probing and the table builder's search) can mutate the
// copy without disturbing the original.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// IsSolved reports whether every piece sits in its home slot with
// zero orientation.
func (c *Cube) IsSolved() bool {
	for i, e := range c.Edges {
		if int(e.Piece) != i || e.Orientation != 0 {
			return false
		}
	}
	for i, cr := range c.Corners {
		if int(cr.Piece) != i || cr.Orientation != 0 {
			return false
		}
	}
	return true
}

// EdgeOrientation returns the flip parity of whichever piece currently
// occupies the given edge slot.
func (c *Cube) EdgeOrientation(slot Edge) uint8 {
	return c.Edges[slot].Orientation
}

// CornerOrientation returns the twist mod 3 of whichever piece
// currently occupies the given corner slot.
func (c *Cube) CornerOrientation(slot Corner) uint8 {
	return c.Corners[slot].Orientation
}

// EdgeAt returns the piece identity currently occupying an edge slot.
// O(1).
func (c *Cube) EdgeAt(slot Edge) Edge {
	return Edge(c.Edges[slot].Piece)
}

// CornerAt returns the piece identity currently occupying a corner
// slot. O(1).
func (c *Cube) CornerAt(slot Corner) Corner {
	return Corner(c.Corners[slot].Piece)
}

// EdgeSlot finds the slot currently holding the given edge piece. This
// is an inverse lookup and is O(12).
func (c *Cube) EdgeSlot(piece Edge) Edge {
	for slot, e := range c.Edges {
		if Edge(e.Piece) == piece {
			return Edge(slot)
		}
	}
	panic("cube: edge piece not found, state is corrupt")
}

// CornerSlot finds the slot currently holding the given corner piece.
// This is an inverse lookup and is O(8).
func (c *Cube) CornerSlot(piece Corner) Corner {
	for slot, cr := range c.Corners {
		if Corner(cr.Piece) == piece {
			return Corner(slot)
		}
	}
	panic("cube: corner piece not found, state is corrupt")
}
