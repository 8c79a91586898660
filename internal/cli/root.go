package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vitals-mcp",
	Short: "Vitals MCP - read-only health metrics over the Model Context Protocol",
	Long: `Vitals MCP exposes health metrics (steps, heart rate, sleep,
active energy and a combined summary) as MCP tools to any tool-calling
client.

Data is served from a recorded health-data archive, so the same queries
are reproducible across runs.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}
