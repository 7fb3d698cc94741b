package services

import (
	"context"
	"fmt"
	"os"

	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/domain"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/ports/driven"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/ports/driving"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/logger"
)

// Ensure Analyzer implements the interface.
var _ driving.AnalyzerService = (*Analyzer)(nil)

// Analyzer runs detection probes against a project directory in order and
// returns the first match. A probe that errors is logged and skipped, so a
// broken manifest in one ecosystem never hides a match in another.
type Analyzer struct {
	probes []driven.Probe
}

// NewAnalyzer creates an analyzer over the given probes. Probe order is
// detection priority.
func NewAnalyzer(probes []driven.Probe) *Analyzer {
	return &Analyzer{probes: probes}
}

// Analyze inspects root and returns the detection of the first matching
// probe, or (nil, nil) when no probe matches.
func (a *Analyzer) Analyze(ctx context.Context, root string) (*domain.Detection, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("project path %s: %w", root, domain.ErrInvalidPath)
	}

	logger.Info("analyzing project at %s", root)
	for _, probe := range a.probes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		det, err := probe.TryDetect(ctx, root)
		if err != nil {
			logger.Warn("probe %s failed: %v", probe.Name(), err)
			continue
		}
		if det != nil {
			logger.Info("detected %s project", det.Category)
			return det, nil
		}
	}

	logger.Info("no known technology detected in %s", root)
	return nil, nil
}
