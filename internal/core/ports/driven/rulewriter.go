package driven

import (
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/domain"
)

// RuleWriter persists an adapted rule document under a project root.
type RuleWriter interface {
	// Write stores doc as <root>/.cursor/rules/<filename>, enforcing the
	// .mdc extension and creating directories as needed. The write is
	// all-or-nothing: no partial file is left behind on failure.
	// Returns the absolute path of the written file.
	Write(root, filename string, doc *domain.RuleDocument) (string, error)

	// Read loads an existing .mdc file, e.g. caller-supplied custom rules.
	Read(path string) (*domain.RuleDocument, error)
}
