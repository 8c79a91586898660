package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/openvitals/vitals-mcp/internal/provider"
)

var doctorData string

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check environment and archive health",
	Long:  `Validates the local environment, loads the health-data archive, and prints client configuration examples.`,
	RunE:  runDoctor,
}

func init() {
	doctorCmd.Flags().StringVar(&doctorData, "data", "healthdata.yaml", "Path to the health-data archive")
}

func runDoctor(cmd *cobra.Command, args []string) error {
	fmt.Println("🩺 Vitals MCP Environment Check")
	fmt.Println()

	fmt.Printf("Go Version:        %s\n", runtime.Version())
	fmt.Printf("OS/Arch:           %s/%s\n\n", runtime.GOOS, runtime.GOARCH)

	if _, err := os.Stat(doctorData); err != nil {
		fmt.Printf("❌ Archive not found: %s\n", doctorData)
		fmt.Printf("   Use --data to point at a health-data archive\n\n")
	} else {
		archive, err := provider.LoadArchive(doctorData)
		if err != nil {
			fmt.Printf("❌ Archive failed to load: %v\n\n", err)
		} else {
			fmt.Printf("✅ Archive loaded: %s\n", doctorData)
			counts := archive.Counts()
			fmt.Printf("   steps=%d active_energy=%d heart_rate=%d sleep=%d\n",
				counts["steps"], counts["active_energy"], counts["heart_rate"], counts["sleep"])
			fmt.Printf("   sleep vocabulary: %s\n\n", archive.SleepVocabulary())

			if err := archive.Authorize(context.Background()); err != nil {
				fmt.Printf("⚠️  Authorization failed: %v\n\n", err)
			} else {
				fmt.Printf("✅ Authorization granted\n\n")
			}
		}
	}

	fmt.Println("📡 Client configuration example:")
	fmt.Println()
	fmt.Println(`  {
    "mcpServers": {
      "vitals": {
        "command": "vitals-mcp",
        "args": ["serve", "--data", "healthdata.yaml"]
      }
    }
  }`)
	fmt.Println()
	fmt.Println("✅ Environment check complete")
	return nil
}
