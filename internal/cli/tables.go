package cli

import (
	"fmt"
	"time"

	"github.com/frederik-kofoed-marqversen/rubiks-cube/internal/cube"
	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables [directory]",
	Short: "Build and persist the four stage tables",
	Long: `Build the G1, G2, G3 and G4 distance tables from scratch and
write them to the given directory as g1.dat..g4.dat, each with a
BLAKE2b-256 checksum sidecar. Intended to be run once so that "cube
solve --tables <directory>" can load instead of rebuild.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		for _, stage := range cube.Stages {
			start := time.Now()
			fmt.Fprintf(cmd.OutOrStdout(), "Building %s (%d coordinates)...\n", stage.Name, stage.Size)
			table := cube.BuildTable(stage)
			path := dir + "/" + stageFileName(stage)
			if err := cube.SaveTable(table, path); err != nil {
				return fmt.Errorf("saving %s: %w", stage.Name, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  wrote %s in %v\n", path, time.Since(start))
		}
		return nil
	},
}

func stageFileName(stage cube.Stage) string {
	switch stage.Name {
	case "G1":
		return "g1.dat"
	case "G2":
		return "g2.dat"
	case "G3":
		return "g3.dat"
	case "G4":
		return "g4.dat"
	default:
		return stage.Name + ".dat"
	}
}
