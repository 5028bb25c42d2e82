package cube

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/gtank/blake2/blake2b"
)

// sentinel marks a coordinate not yet reached during table
// construction. It must not survive past BuildTable returning.
const sentinel = 0xFF

// ErrCorruptTable is returned (wrapped with the file path)
// when a table file's length, or its checksum sidecar, doesn't match
// what was expected.
var ErrCorruptTable = errors.New("cube: corrupt table file")

// Table is a stage's sealed distance table: Table.Data[i] is the
// minimum number of moves from the stage's move pool needed to bring
// any state with coordinate i to the solved cube's coordinate.
type Table struct {
	Stage Stage
	Data  []byte
}

// Eval looks up the minimal solving distance for cube's coordinate
// under t's stage. O(1) plus the cost of the stage's indexer.
func (t *Table) Eval(c *Cube) byte {
	return t.Data[t.Stage.Index(c)]
}

// BuildTable constructs stage's distance table from scratch by
// iterative-deepening depth-first search outward from the solved
// cube. IDDFS is used instead of a breadth-first search so that the
// search never has to materialize a frontier of cube states; for G2
// and G4, whose coordinate ranges run into the hundreds of thousands,
// a BFS queue of full cube states would dwarf the byte table being
// built.
func BuildTable(stage Stage) *Table {
	data := make([]byte, stage.Size)
	for i := range data {
		data[i] = sentinel
	}

	solved := New()
	data[stage.Index(solved)] = 0
	count := 1

	type frame struct {
		cube  *Cube
		depth int
	}

	for depthLimit := 0; count < stage.Size; {
		depthLimit++
		stack := []frame{{solved, 0}}

		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			for _, m := range stage.MovePool {
				child := top.cube.Clone()
				child.Turn(m)
				idx := stage.Index(child)
				depth := top.depth + 1

				if int(data[idx]) < depth {
					// A shallower path to this coordinate is already
					// known; this branch cannot improve on it.
					continue
				}

				if depth == depthLimit {
					if data[idx] > byte(depth) {
						data[idx] = byte(depth)
						count++
					}
					// At the depth limit: record, but don't descend
					// further this pass.
					continue
				}

				stack = append(stack, frame{child, depth})
			}
		}
	}

	for _, b := range data {
		if b == sentinel {
			panic(fmt.Sprintf("cube: table construction for stage %s left an unvisited coordinate", stage.Name))
		}
	}
	if count > stage.Size {
		panic(fmt.Sprintf("cube: table construction for stage %s visited more coordinates than its size", stage.Name))
	}

	return &Table{Stage: stage, Data: data}
}

// checksum computes a BLAKE2b-256 digest of data. Used as an
// additional corruption check alongside the mandatory length check:
// a file truncated-and-padded back to the right length would pass a
// length check but fail this.
func checksum(data []byte) ([]byte, error) {
	d, err := blake2b.NewDigest(nil, nil, nil, 32)
	if err != nil {
		return nil, err
	}
	if _, err := d.Write(data); err != nil {
		return nil, err
	}
	return d.Sum(nil), nil
}

func sumPath(path string) string {
	return path + ".sum"
}

// SaveTable writes the raw table bytes to path (exactly Stage.Size
// bytes, no header) and a BLAKE2b-256 checksum to a ".sum" sidecar.
// A write failure here is non-fatal to callers holding the in-memory
// table; it is returned so the host can log it.
func SaveTable(t *Table, path string) error {
	if err := os.WriteFile(path, t.Data, 0o644); err != nil {
		return fmt.Errorf("cube: writing table %s: %w", path, err)
	}
	sum, err := checksum(t.Data)
	if err != nil {
		return fmt.Errorf("cube: checksumming table %s: %w", path, err)
	}
	if err := os.WriteFile(sumPath(path), sum, 0o644); err != nil {
		return fmt.Errorf("cube: writing table checksum %s: %w", path, err)
	}
	return nil
}

// LoadTable reads a previously saved table from path, validating its
// length and (if present) its checksum sidecar. A length or checksum
// mismatch is reported as ErrCorruptTable; a missing checksum sidecar
// is not itself an error (the length check still applies).
func LoadTable(stage Stage, path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) != stage.Size {
		return nil, fmt.Errorf("%w: %s has %d bytes, want %d", ErrCorruptTable, path, len(data), stage.Size)
	}

	if want, err := os.ReadFile(sumPath(path)); err == nil {
		got, err := checksum(data)
		if err != nil {
			return nil, err
		}
		if !bytes.Equal(got, want) {
			return nil, fmt.Errorf("%w: %s failed checksum verification", ErrCorruptTable, path)
		}
	}

	return &Table{Stage: stage, Data: data}, nil
}

// LoadOrBuildTable loads stage's table from path if present and
// valid; otherwise it builds the table in memory and attempts to
// persist it to path. A write failure during that fallback is
// returned alongside the (still usable) table, per the "still return
// a working table" contract.
func LoadOrBuildTable(stage Stage, path string) (*Table, error) {
	if path == "" {
		return BuildTable(stage), nil
	}

	table, err := LoadTable(stage, path)
	if err == nil {
		return table, nil
	}

	table = BuildTable(stage)
	if saveErr := SaveTable(table, path); saveErr != nil {
		return table, saveErr
	}
	return table, nil
}
