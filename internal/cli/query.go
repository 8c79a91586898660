package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/openvitals/vitals-mcp/internal/health"
	"github.com/openvitals/vitals-mcp/internal/provider"
	"github.com/openvitals/vitals-mcp/internal/server"
)

var (
	queryData  string
	queryStart string
	queryEnd   string
)

var queryCmd = &cobra.Command{
	Use:   "query <operation>",
	Short: "Run a single tool operation locally",
	Long: `Dispatches one operation against the archive without going
through the MCP transport. Useful for inspecting report output while
editing archive data.

Example:
  vitals-mcp query get_steps --start 2024-01-01 --end 2024-01-07`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringVar(&queryData, "data", "healthdata.yaml", "Path to the health-data archive")
	queryCmd.Flags().StringVar(&queryStart, "start", "", "Start date (YYYY-MM-DD)")
	queryCmd.Flags().StringVar(&queryEnd, "end", "", "End date (YYYY-MM-DD)")
}

func runQuery(cmd *cobra.Command, args []string) error {
	archive, err := provider.LoadArchive(queryData)
	if err != nil {
		return fmt.Errorf("failed to load health data: %w", err)
	}
	if err := archive.Authorize(context.Background()); err != nil {
		log.Printf("warning: health data authorization failed: %v", err)
	}

	dispatcher := server.NewDispatcher(health.NewService(archive))
	result := dispatcher.Dispatch(context.Background(), args[0], map[string]string{
		"start_date": queryStart,
		"end_date":   queryEnd,
	})

	fmt.Println(result.Text)
	if result.IsError {
		os.Exit(1)
	}
	return nil
}
