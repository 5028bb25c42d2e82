package cli

import (
	"fmt"
	"strings"

	"github.com/frederik-kofoed-marqversen/rubiks-cube/internal/cube"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Solve a scrambled cube",
	Long: `Solve a scrambled cube using Thistlethwaite's algorithm.

The scramble is a space-separated sequence of moves in standard
notation (U, U', U2, D, D', D2, R, R', R2, L, L', L2, F, F', F2, B,
B', B2). An empty scramble solves the already-solved cube.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scramble := ""
		if len(args) == 1 {
			scramble = args[0]
		}

		tablesDir, _ := cmd.Flags().GetString("tables")
		verify, _ := cmd.Flags().GetBool("verify")
		headless, _ := cmd.Flags().GetBool("headless")

		moves, err := cube.ParseScramble(scramble)
		if err != nil {
			return fmt.Errorf("parsing scramble: %w", err)
		}

		c := cube.New()
		c.TurnAll(moves)

		if !headless {
			fmt.Fprintf(cmd.OutOrStdout(), "Loading tables from %s (building any that are missing)...\n", describeTablesDir(tablesDir))
		}
		tables, err := cube.LoadOrBuildTables(tablesDir)
		if err != nil {
			// A table failed to persist to disk, not to build; the
			// in-memory tables are still usable, so this is logged and
			// solving continues rather than aborting.
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		}

		solution := cube.Solve(c, tables)

		if verify {
			result := c.Clone()
			result.TurnAll(solution)
			if !result.IsSolved() {
				return fmt.Errorf("internal error: solution did not reach the solved state")
			}
		}

		solutionStr := joinMoves(solution)
		if headless {
			fmt.Fprint(cmd.OutOrStdout(), solutionStr)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Solution (%d moves): %s\n", len(solution), solutionStr)
			if verify {
				fmt.Fprintln(cmd.OutOrStdout(), "Verified: solution reaches the solved state.")
			}
		}
		return nil
	},
}

func joinMoves(moves []cube.Move) string {
	var b strings.Builder
	for i, m := range moves {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(m.String())
	}
	return b.String()
}

func describeTablesDir(dir string) string {
	if dir == "" {
		return "memory (no --tables directory given)"
	}
	return dir
}

func init() {
	solveCmd.Flags().String("tables", "", "Directory holding persisted stage tables (built on the fly if empty)")
	solveCmd.Flags().Bool("verify", false, "Re-apply the solution and confirm it reaches the solved state")
	solveCmd.Flags().Bool("headless", false, "Output only the space-separated solution moves")
}
