package cube

import (
	"fmt"
	"strings"
)

var moveByName = map[string]Move{
	"U": U, "U'": Uprime, "U2": U2,
	"D": D, "D'": Dprime, "D2": D2,
	"R": R, "R'": Rprime, "R2": R2,
	"L": L, "L'": Lprime, "L2": L2,
	"F": F, "F'": Fprime, "F2": F2,
	"B": B, "B'": Bprime, "B2": B2,
}

// ParseMove parses a single token of the 18-symbol move notation
// (e.g. "R", "U'", "F2"). Wide, slice, and whole-cube rotation
// notation are a different puzzle family's concern and are not
// accepted here.
func ParseMove(token string) (Move, error) {
	m, ok := moveByName[token]
	if !ok {
		return 0, fmt.Errorf("cube: unknown move notation %q", token)
	}
	return m, nil
}

// ParseScramble splits a space-separated scramble string into moves,
// e.g. "R U2 F' B2 L" -> [R, U2, F', B2, L].
func ParseScramble(sequence string) ([]Move, error) {
	sequence = strings.TrimSpace(sequence)
	if sequence == "" {
		return nil, nil
	}

	tokens := strings.Fields(sequence)
	moves := make([]Move, 0, len(tokens))
	for _, tok := range tokens {
		m, err := ParseMove(tok)
		if err != nil {
			return nil, fmt.Errorf("cube: parsing scramble %q: %w", sequence, err)
		}
		moves = append(moves, m)
	}
	return moves, nil
}
