package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/openvitals/vitals-mcp/internal/health"
	"github.com/openvitals/vitals-mcp/internal/provider"
	"github.com/openvitals/vitals-mcp/internal/server"
)

var serveData string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve health metric tools over MCP stdio",
	Long: `Loads the health-data archive and serves the tool catalog over
the Model Context Protocol on stdin/stdout until the client disconnects.

stdout carries the protocol; diagnostics go to stderr.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveData, "data", "healthdata.yaml", "Path to the health-data archive")
}

func runServe(cmd *cobra.Command, args []string) error {
	archive, err := provider.LoadArchive(serveData)
	if err != nil {
		return fmt.Errorf("failed to load health data: %w", err)
	}

	// Authorization is best-effort at startup. A denied grant is logged
	// and the server still comes up; queries then fail per request.
	if err := archive.Authorize(context.Background()); err != nil {
		log.Printf("warning: health data authorization failed: %v", err)
	}

	svc := health.NewService(archive)
	srv := server.New(svc, Version)

	log.Printf("vitals-mcp serving %d tools from %s", len(server.Tools()), serveData)
	return srv.ServeStdio()
}
