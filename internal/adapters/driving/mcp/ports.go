package mcp

import (
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/ports/driven"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/ports/driving"
)

// Ports aggregates all port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Analyzer detects project technologies.
	Analyzer driving.AnalyzerService

	// Generator produces and writes rule files.
	Generator driving.GeneratorService

	// Templates serves base rule templates as MCP resources.
	Templates driven.TemplateStore
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Analyzer == nil {
		return ErrMissingAnalyzerService
	}
	if p.Generator == nil {
		return ErrMissingGeneratorService
	}
	// Templates is optional; the template resources degrade gracefully.
	return nil
}
