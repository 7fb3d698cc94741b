package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/domain"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/ports/driving"
)

var generateCmd = &cobra.Command{
	Use:   "generate [path]",
	Short: "Generate a Cursor rule file for a project",
	Long: `Analyze the project at the given path (default: current directory),
detect its technology stack and write an adapted rule file under
.cursor/rules/.

Examples:
  # Generate rules for the current directory
  ruleforge generate

  # Generate rules for a specific project with a custom file name
  ruleforge generate ~/work/shop-backend -o security-rules

  # Skip detection and force a project type
  ruleforge generate --type springboot

  # Merge your own rules into the generated file
  ruleforge generate --custom ./team-rules.mdc`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringP("output", "o", "", "output file name without extension (default: rules)")
	generateCmd.Flags().String("custom", "", "path to an .mdc file with custom rules to merge")
	generateCmd.Flags().StringP("type", "t", "", "project type to use instead of automatic detection")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	path, err := projectPathArg(args)
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	custom, _ := cmd.Flags().GetString("custom")
	typeFlag, _ := cmd.Flags().GetString("type")

	var override domain.Category
	if typeFlag != "" {
		override, err = domain.ParseCategory(typeFlag)
		if err != nil {
			return fmt.Errorf("unknown project type %q, valid types: %s", typeFlag, categoryList())
		}
	}

	result, err := generatorService.Generate(cmd.Context(), driving.GenerateRequest{
		ProjectPath:      path,
		OutputFilename:   output,
		CustomRulesPath:  custom,
		CategoryOverride: override,
	})
	if err != nil {
		return err
	}

	cmd.Printf("Project type: %s\n", result.Category)
	if len(result.Technologies) > 0 {
		cmd.Printf("Detected: %s\n", strings.Join(result.Technologies, ", "))
	}
	cmd.Printf("Rules written to %s (%d bytes)\n", result.OutputPath, result.FileSize)
	return nil
}

// projectPathArg resolves the optional positional path argument.
func projectPathArg(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	return cwd, nil
}

func categoryList() string {
	infos := domain.Categories()
	ids := make([]string, 0, len(infos))
	for _, info := range infos {
		ids = append(ids, string(info.ID))
	}
	return strings.Join(ids, ", ")
}
