package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Detect the technology stack of a project without writing files",
	Long: `Analyze the project at the given path (default: current directory) and
print what was detected. No rule file is written.

Examples:
  ruleforge analyze
  ruleforge analyze ~/work/legacy-portal
  ruleforge analyze --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().Bool("json", false, "print the full attribute map as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path, err := projectPathArg(args)
	if err != nil {
		return err
	}

	det, err := analyzerService.Analyze(cmd.Context(), path)
	if err != nil {
		return err
	}
	if det == nil {
		cmd.Println("No known technology detected.")
		cmd.Printf("Supported types: %s\n", categoryList())
		return nil
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		payload := map[string]any{
			"project_type": det.Category.String(),
			"attributes":   det.Attributes(),
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Project type: %s\n", det.Category)
	if summary := det.Summary(); len(summary) > 0 {
		cmd.Printf("Detected: %s\n", strings.Join(summary, ", "))
	}

	attrs := det.Attributes()
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		cmd.Printf("  %-28s %v\n", k, attrs[k])
	}
	return nil
}
