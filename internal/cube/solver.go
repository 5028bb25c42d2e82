package cube

import "fmt"

// Tables bundles the four stage tables the solver descends through,
// in G1..G4 order.
type Tables [4]*Table

// BuildTables constructs all four stage tables from scratch.
func BuildTables() Tables {
	var t Tables
	for i, stage := range Stages {
		t[i] = BuildTable(stage)
	}
	return t
}

// Solve finds a sequence of moves that brings cube to the solved
// state by greedy descent through G1, G2, G3, G4 in turn. cube is not
// modified; to check the result, apply the returned moves to a clone.
//
// Descent is optimal within each stage because each table holds the
// exact minimal distance to the solved cube's coordinate: for any state at distance
// d > 0, some neighbour under that stage's move pool is at distance
// d - 1, so greedily taking the first such neighbour (in the stage's
// declared move-pool order) never backtracks.
func Solve(cube *Cube, tables Tables) []Move {
	working := cube.Clone()
	var solution []Move

	for _, table := range tables {
		solution = append(solution, descendStage(working, table)...)
	}

	return solution
}

func descendStage(working *Cube, table *Table) []Move {
	var moves []Move
	dist := table.Eval(working)

	for dist > 0 {
		progressed := false
		for _, m := range table.Stage.MovePool {
			trial := working.Clone()
			trial.Turn(m)
			newDist := table.Eval(trial)
			if newDist < dist {
				working.Turn(m)
				moves = append(moves, m)
				dist = newDist
				progressed = true
				break
			}
		}
		if !progressed {
			panic(fmt.Sprintf("cube: stage %s table has no decreasing neighbour at distance %d; table or indexer is corrupt", table.Stage.Name, dist))
		}
	}

	return moves
}
