package driven

import (
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/domain"
)

// TemplateStore loads the static rule template for a category.
type TemplateStore interface {
	// Load returns the base rule document for the category.
	// Returns domain.ErrTemplateMissing when no template exists.
	Load(category domain.Category) (*domain.RuleDocument, error)
}
