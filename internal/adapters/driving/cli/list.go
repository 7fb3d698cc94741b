package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/domain"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the technologies RuleForge can detect",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	for _, info := range domain.Categories() {
		cmd.Printf("%s (%s)\n", info.Name, info.ID)
		cmd.Printf("  %s\n", info.Description)
		cmd.Printf("  Detection files: %s\n", strings.Join(info.MarkerFiles, ", "))
		for _, feature := range info.Features {
			cmd.Printf("  - %s\n", feature)
		}
		cmd.Println()
	}
	return nil
}
