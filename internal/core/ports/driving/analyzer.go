package driving

import (
	"context"

	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/domain"
)

// AnalyzerService runs the detection pipeline against a project directory.
type AnalyzerService interface {
	// Analyze inspects the project at root and returns the first matching
	// detection. Returns (nil, nil) when no probe matches: "unknown" is a
	// valid outcome, not an error. Returns domain.ErrInvalidPath when root
	// does not exist or is not a directory.
	Analyze(ctx context.Context, root string) (*domain.Detection, error)
}
