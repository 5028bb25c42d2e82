package cube

import "testing"

func quarterOf(m Move) Move {
	switch m {
	case U, Uprime, U2:
		return U
	case D, Dprime, D2:
		return D
	case R, Rprime, R2:
		return R
	case L, Lprime, L2:
		return L
	case F, Fprime, F2:
		return F
	case B, Bprime, B2:
		return B
	}
	panic("unreachable")
}

func TestFourQuarterTurnsIsIdentity(t *testing.T) {
	for _, face := range []Move{U, D, R, L, F, B} {
		c := New()
		c.Turn(face)
		c.Turn(face)
		c.Turn(face)
		c.Turn(face)
		if !c.IsSolved() {
			t.Errorf("applying %v four times should return to solved", face)
		}
	}
}

func TestDoubleTurnEqualsTwoQuarterTurns(t *testing.T) {
	pairs := map[Move]Move{U2: U, D2: D, R2: R, L2: L, F2: F, B2: B}
	for double, quarter := range pairs {
		a := New()
		a.Turn(double)

		b := New()
		b.Turn(quarter)
		b.Turn(quarter)

		if *a != *b {
			t.Errorf("%v should equal two applications of %v", double, quarter)
		}
	}
}

func TestPrimeTurnEqualsThreeQuarterTurns(t *testing.T) {
	pairs := map[Move]Move{Uprime: U, Dprime: D, Rprime: R, Lprime: L, Fprime: F, Bprime: B}
	for prime, quarter := range pairs {
		a := New()
		a.Turn(prime)

		b := New()
		b.Turn(quarter)
		b.Turn(quarter)
		b.Turn(quarter)

		if *a != *b {
			t.Errorf("%v should equal three applications of %v", prime, quarter)
		}
	}
}

// TestUCycle pins down the exact slot-level behaviour the cube-model
// specification's move table requires, rather than just structural
// properties.
func TestUCycle(t *testing.T) {
	c := New()
	c.Turn(U)

	wantEdge := map[Edge]Edge{UB: UR, UL: UB, UF: UL, UR: UF}
	for slot, wantPiece := range wantEdge {
		if got := c.EdgeAt(slot); got != wantPiece {
			t.Errorf("after U, edge slot %v holds %v, want %v", slot, got, wantPiece)
		}
	}

	wantCorner := map[Corner]Corner{URB: URF, ULB: URB, ULF: ULB, URF: ULF}
	for slot, wantPiece := range wantCorner {
		if got := c.CornerAt(slot); got != wantPiece {
			t.Errorf("after U, corner slot %v holds %v, want %v", slot, got, wantPiece)
		}
	}

	for slot := Corner(0); int(slot) < numCorners; slot++ {
		if c.CornerOrientation(slot) != 0 {
			t.Errorf("U must not twist any corner, slot %v has orientation %d", slot, c.CornerOrientation(slot))
		}
	}
}

// TestRTwists checks the twist pattern and that R does not reorient
// edges, matching the cube-model specification's table exactly.
func TestRTwists(t *testing.T) {
	c := New()
	c.Turn(R)

	wantTwist := map[Corner]uint8{URF: 1, DRF: 2, DRB: 1, URB: 2}
	for slot, want := range wantTwist {
		if got := c.CornerOrientation(slot); got != want {
			t.Errorf("after R, corner slot %v has orientation %d, want %d", slot, got, want)
		}
	}

	for _, slot := range []Edge{UR, RF, DR, RB} {
		if c.EdgeOrientation(slot) != 0 {
			t.Errorf("R must not flip edge slot %v", slot)
		}
	}
}

// TestFFlipsEdges checks that F both twists corners and flips the
// four edges it cycles.
func TestFFlipsEdges(t *testing.T) {
	c := New()
	c.Turn(F)

	for _, slot := range []Edge{UF, LF, DF, RF} {
		if c.EdgeOrientation(slot) != 1 {
			t.Errorf("after F, edge slot %v should be flipped", slot)
		}
	}

	wantTwist := map[Corner]uint8{URF: 2, ULF: 1, DLF: 2, DRF: 1}
	for slot, want := range wantTwist {
		if got := c.CornerOrientation(slot); got != want {
			t.Errorf("after F, corner slot %v has orientation %d, want %d", slot, got, want)
		}
	}
}

func TestParseScramble(t *testing.T) {
	moves, err := ParseScramble("R U2 F' B2 L")
	if err != nil {
		t.Fatalf("ParseScramble failed: %v", err)
	}
	want := []Move{R, U2, Fprime, B2, L}
	if len(moves) != len(want) {
		t.Fatalf("got %d moves, want %d", len(moves), len(want))
	}
	for i, m := range moves {
		if m != want[i] {
			t.Errorf("move %d = %v, want %v", i, m, want[i])
		}
	}
}

func TestParseScrambleRejectsUnknownNotation(t *testing.T) {
	if _, err := ParseScramble("Rw"); err == nil {
		t.Fatalf("wide-move notation should be rejected, it is out of scope")
	}
	if _, err := ParseScramble("M"); err == nil {
		t.Fatalf("slice-move notation should be rejected, it is out of scope")
	}
}

// TestShortConjugate matches spec.md scenario 5: a short conjugate
// that 3-cycles three corners with twists, leaving everything else
// fixed.
func TestShortConjugate(t *testing.T) {
	c := New()
	moves, err := ParseScramble("R' U L U' R U L' U'")
	if err != nil {
		t.Fatalf("ParseScramble failed: %v", err)
	}
	c.TurnAll(moves)

	invariants(t, c)

	affected := 0
	for slot := Corner(0); int(slot) < numCorners; slot++ {
		if c.CornerAt(slot) != slot || c.CornerOrientation(slot) != 0 {
			affected++
		}
	}
	if affected != 3 {
		t.Errorf("expected exactly 3 displaced corners, got %d", affected)
	}

	for slot := Edge(0); int(slot) < numEdges; slot++ {
		if c.EdgeAt(slot) != slot || c.EdgeOrientation(slot) != 0 {
			t.Errorf("edge slot %v should be undisturbed by this conjugate", slot)
		}
	}
}
