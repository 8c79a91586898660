package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openvitals/vitals-mcp/internal/server"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tool catalog",
	Long:  `Prints every advertised tool with its description and arguments.`,
	Run:   runTools,
}

func runTools(cmd *cobra.Command, args []string) {
	fmt.Println("Available tools:")
	fmt.Println()
	for _, tool := range server.Tools() {
		fmt.Printf("  %s\n", tool.Name)
		fmt.Printf("    %s\n", tool.Description)
		fmt.Printf("    args: start_date, end_date (YYYY-MM-DD)\n")
		fmt.Println()
	}
}
