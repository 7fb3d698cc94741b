// Package adaptation rewrites a base rule template to match what was
// actually detected in a project. Each category has its own adapter that
// appends detection headers, feature summaries and targeted find/symbols
// blocks to the template body. Categories without version or feature
// analysis (Vue, GitLab CI) pass through unchanged.
package adaptation

import (
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/domain"
)

// Adapt appends detection-specific rule blocks to doc based on det. The
// document is modified in place. A nil detection or one without attribute
// data leaves the document untouched.
func Adapt(doc *domain.RuleDocument, det *domain.Detection) {
	if doc == nil || det == nil {
		return
	}
	switch {
	case det.SpringBoot != nil:
		adaptSpringBoot(doc, det.SpringBoot)
	case det.JavaLegacy != nil:
		adaptJavaLegacy(doc, det.JavaLegacy)
	case det.Angular != nil:
		adaptAngular(doc, det.Angular)
	case det.Python != nil:
		adaptPython(doc, det.Python)
	}
}
