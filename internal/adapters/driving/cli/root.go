// Package cli implements the ruleforge command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/VitalyTechSquad/mcp-ruleforge/internal/adapters/driven/config/file"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/adapters/driven/interpreter"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/adapters/driven/rulefile"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/adapters/driven/templates"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/ports/driven"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/ports/driving"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/services"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/logger"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/probes"
)

// version is the CLI version, overridable at build time with -ldflags.
var version = "0.1.0"

var verbose bool

// Services shared by all commands, wired in initServices.
var (
	analyzerService  driving.AnalyzerService
	generatorService driving.GeneratorService
	templateStore    driven.TemplateStore
)

var rootCmd = &cobra.Command{
	Use:   "ruleforge",
	Short: "Detect project technologies and generate Cursor rule files",
	Long: `RuleForge analyzes a project directory, detects its technology stack
(Spring Boot, legacy Spring, Angular, Vue, Python, GitLab CI) and generates
adapted Cursor rule files under .cursor/rules/.

It also runs as an MCP server so AI assistants can drive the same analysis.`,
	PersistentPreRunE: initServices,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print detailed progress to stderr")
}

// initServices wires the adapters and services before any command runs.
// A broken config file degrades to defaults rather than blocking the run.
func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	var templateOverrideDir string
	if cfg, err := file.NewConfigStore(""); err != nil {
		logger.Warn("config unavailable, using defaults: %v", err)
	} else {
		templateOverrideDir = cfg.GetString("templates.dir")
	}

	templateStore = templates.NewStore(templateOverrideDir)
	runner := interpreter.NewRunner()
	analyzerService = services.NewAnalyzer(probes.Defaults(runner))
	generatorService = services.NewGenerator(analyzerService, templateStore, rulefile.NewWriter())
	return nil
}
