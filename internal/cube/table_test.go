package cube

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestBuildTableG1 builds the full G1 table (small enough, 2048
// entries, to build in a unit test) and checks the contract spec.md
// §4.4 requires: coordinate 0 is the solved cube's coordinate and no
// sentinel survives construction.
func TestBuildTableG1(t *testing.T) {
	table := BuildTable(G1)

	require.Len(t, table.Data, G1.Size)
	require.EqualValues(t, 0, table.Data[G1.Index(New())])

	for i, d := range table.Data {
		require.NotEqualf(t, byte(sentinel), d, "coordinate %d left unvisited", i)
	}
}

// TestTableCorrectness checks spec.md §8's table correctness property
// for G1 on sampled states: each state with a nonzero entry has some
// move in the pool that reduces the distance.
func TestTableCorrectness(t *testing.T) {
	table := BuildTable(G1)

	// Sample a handful of coordinates by scrambling from solved and
	// checking the descent invariant holds at each step, rather than
	// enumerating all 2048 preimages (expensive and unnecessary: the
	// solver tests in solver_test.go already exercise descent end to end).
	c := New()
	scramble := []Move{R, U, Rprime, Uprime, F, R, Fprime}
	for _, m := range scramble {
		c.Turn(m)
		dist := table.Eval(c)
		if dist == 0 {
			continue
		}
		foundDecrease := false
		for _, mv := range G1.MovePool {
			trial := c.Clone()
			trial.Turn(mv)
			if table.Eval(trial) < dist {
				foundDecrease = true
				break
			}
		}
		require.Truef(t, foundDecrease, "coordinate at distance %d must have a decreasing neighbour", dist)
	}
}

func TestSaveAndLoadTableRoundTrip(t *testing.T) {
	table := BuildTable(G1)
	path := filepath.Join(t.TempDir(), "g1.dat")

	require.NoError(t, SaveTable(table, path))

	loaded, err := LoadTable(G1, path)
	require.NoError(t, err)
	require.Equal(t, table.Data, loaded.Data)
}

func TestLoadTableRejectsWrongLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.dat")
	require.NoError(t, os.WriteFile(path, make([]byte, G1.Size-1), 0o644))

	_, err := LoadTable(G1, path)
	require.ErrorIs(t, err, ErrCorruptTable)
}

func TestLoadTableRejectsChecksumMismatch(t *testing.T) {
	table := BuildTable(G1)
	path := filepath.Join(t.TempDir(), "g1.dat")
	require.NoError(t, SaveTable(table, path))

	// Corrupt a byte but keep the length identical, so only the
	// checksum sidecar can catch it.
	corrupted := append([]byte(nil), table.Data...)
	corrupted[0] ^= 0xFF
	require.NoError(t, os.WriteFile(path, corrupted, 0o644))

	_, err := LoadTable(G1, path)
	require.ErrorIs(t, err, ErrCorruptTable)
}

func TestLoadOrBuildTableFallsBackWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g1.dat")

	table, err := LoadOrBuildTable(G1, path)
	require.NoError(t, err)
	require.EqualValues(t, 0, table.Data[G1.Index(New())])

	// It should have persisted the table for next time.
	loaded, loadErr := LoadTable(G1, path)
	require.NoError(t, loadErr)
	require.Equal(t, table.Data, loaded.Data)
}
