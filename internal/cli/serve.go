package cli

import (
	"fmt"

	"github.com/frederik-kofoed-marqversen/rubiks-cube/internal/cube"
	"github.com/frederik-kofoed-marqversen/rubiks-cube/internal/web"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the solve API server",
	Long: `Start an HTTP server exposing a JSON solve endpoint, backed by
stage tables built once at startup and shared read-only across
requests.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		host, _ := cmd.Flags().GetString("host")
		tablesDir, _ := cmd.Flags().GetString("tables")

		fmt.Fprintf(cmd.OutOrStdout(), "Loading tables from %s (building any that are missing)...\n", describeTablesDir(tablesDir))
		tables, err := cube.LoadOrBuildTables(tablesDir)
		if err != nil {
			// A table failed to persist to disk, not to build; the
			// in-memory tables are still usable, so this is logged and
			// the server starts anyway rather than aborting.
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		}

		addr := host + ":" + port
		fmt.Fprintf(cmd.OutOrStdout(), "Starting server at http://%s\n", addr)

		server := web.NewServer(tables)
		return server.Start(addr)
	},
}

func init() {
	serveCmd.Flags().StringP("port", "p", "8080", "Port to run the server on")
	serveCmd.Flags().StringP("host", "H", "localhost", "Host to bind the server to")
	serveCmd.Flags().String("tables", "", "Directory holding persisted stage tables (built on the fly if empty)")
}
