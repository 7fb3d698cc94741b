package driving

import (
	"context"

	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/domain"
)

// GenerateRequest carries the parameters of one rule generation run.
type GenerateRequest struct {
	// ProjectPath is the project root directory.
	ProjectPath string
	// OutputFilename is the rule file name; the .mdc extension is enforced.
	// Empty means the default ("rules").
	OutputFilename string
	// CustomRulesPath optionally points to an .mdc file whose content is
	// merged into the generated document.
	CustomRulesPath string
	// CategoryOverride bypasses detection entirely when set.
	CategoryOverride domain.Category
}

// GenerateResult describes a successful rule generation.
type GenerateResult struct {
	// Category is the resolved project category.
	Category domain.Category
	// Detection holds the probe attributes; nil when the category was
	// overridden by the caller.
	Detection *domain.Detection
	// OutputPath is the absolute path of the written rule file.
	OutputPath string
	// RelativePath is OutputPath relative to the project root.
	RelativePath string
	// FileSize is the size of the written file in bytes.
	FileSize int64
	// Technologies is a human-readable summary of what was detected.
	Technologies []string
}

// GeneratorService produces and writes adapted rule files.
type GeneratorService interface {
	// Generate runs detection (unless overridden), loads the category
	// template, adapts it with the detected attributes, merges optional
	// custom rules and writes the result under .cursor/rules/.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error)
}
