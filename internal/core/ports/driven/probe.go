package driven

import (
	"context"

	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/domain"
)

// Probe is a single detection heuristic. Implementations inspect the
// filesystem under root for the marker files of one category and extract
// category-specific attributes.
type Probe interface {
	// Name returns the probe identifier, used in logs.
	Name() string

	// TryDetect returns a Detection when the project matches this probe's
	// category, or (nil, nil) when it does not. Absence of optional marker
	// files is a non-match, never an error. A returned error is treated by
	// the pipeline as a non-match; it never aborts the run.
	TryDetect(ctx context.Context, root string) (*domain.Detection, error)
}
