// Package cli wires the cobra command tree for the cube binary.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cube",
	Short: "A Thistlethwaite-algorithm Rubik's cube solver",
	Long: `Cube solves a 3x3x3 Rubik's cube by reducing it through
Thistlethwaite's four nested subgroups (G0 > G1 > G2 > G3 > G4), each
step via a precomputed distance table.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(serveCmd)
}
