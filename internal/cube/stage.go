package cube

// Stage describes one step of the Thistlethwaite reduction: the move
// pool allowed while solving it, the size of its coordinate range, and
// the coordinate function itself.
//
// The original implementation this package is derived from ties a
// table to its stage via a zero-sized phantom type parameter; Go has
// no direct equivalent (and no need for one), so a stage is just a
// descriptor value capturing the move pool and an indexer closure.
type Stage struct {
	Name     string
	Size     int
	MovePool []Move
	Index    func(*Cube) int
}

// Stages is the fixed G1 -> G2 -> G3 -> G4 pipeline the solver walks.
var Stages = [4]Stage{G1, G2, G3, G4}
