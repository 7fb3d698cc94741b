package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/VitalyTechSquad/mcp-ruleforge/internal/adaptation"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/domain"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/ports/driven"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/ports/driving"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/logger"
)

// defaultFilename is used when the caller gives no output filename.
const defaultFilename = "rules"

// Ensure Generator implements the interface.
var _ driving.GeneratorService = (*Generator)(nil)

// Generator turns a detection into a written rule file: load the category
// template, adapt it to the detected attributes, merge optional custom
// rules and persist the result.
type Generator struct {
	analyzer  driving.AnalyzerService
	templates driven.TemplateStore
	writer    driven.RuleWriter
}

// NewGenerator creates a generator service.
func NewGenerator(analyzer driving.AnalyzerService, templates driven.TemplateStore, writer driven.RuleWriter) *Generator {
	return &Generator{
		analyzer:  analyzer,
		templates: templates,
		writer:    writer,
	}
}

// Generate produces the rule file described by req.
func (g *Generator) Generate(ctx context.Context, req driving.GenerateRequest) (*driving.GenerateResult, error) {
	// The override path skips detection, so the project root must be
	// checked here or the writer would create it from scratch.
	if info, err := os.Stat(req.ProjectPath); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("project path %s: %w", req.ProjectPath, domain.ErrInvalidPath)
	}

	category, det, err := g.resolveCategory(ctx, req)
	if err != nil {
		return nil, err
	}

	doc, err := g.templates.Load(category)
	if err != nil {
		return nil, fmt.Errorf("load template for %s: %w", category, err)
	}

	adaptation.Adapt(doc, det)

	if req.CustomRulesPath != "" {
		if err := g.mergeCustomRules(doc, req.CustomRulesPath); err != nil {
			return nil, err
		}
	}

	filename := req.OutputFilename
	if filename == "" {
		filename = defaultFilename
	}
	outputPath, err := g.writer.Write(req.ProjectPath, filename, doc)
	if err != nil {
		return nil, err
	}

	result := &driving.GenerateResult{
		Category:     category,
		Detection:    det,
		OutputPath:   outputPath,
		Technologies: det.Summary(),
	}
	if rel, err := filepath.Rel(req.ProjectPath, outputPath); err == nil {
		result.RelativePath = rel
	}
	if info, err := os.Stat(outputPath); err == nil {
		result.FileSize = info.Size()
	}

	logger.Info("generated %s rules at %s", category, outputPath)
	return result, nil
}

// resolveCategory picks the category either from the caller override or by
// running detection. An unmatched project is an error here: there is no
// template to generate from.
func (g *Generator) resolveCategory(ctx context.Context, req driving.GenerateRequest) (domain.Category, *domain.Detection, error) {
	if req.CategoryOverride != "" {
		if !req.CategoryOverride.Valid() {
			return "", nil, fmt.Errorf("category %q: %w", req.CategoryOverride, domain.ErrUnknownCategory)
		}
		logger.Debug("category overridden to %s, skipping detection", req.CategoryOverride)
		return req.CategoryOverride, nil, nil
	}

	det, err := g.analyzer.Analyze(ctx, req.ProjectPath)
	if err != nil {
		return "", nil, err
	}
	if det == nil {
		return "", nil, fmt.Errorf("project %s: %w", req.ProjectPath, domain.ErrNoMatch)
	}
	return det.Category, det, nil
}

// mergeCustomRules folds a caller-supplied .mdc file into doc. Custom
// frontmatter replaces the template's, custom body is appended.
func (g *Generator) mergeCustomRules(doc *domain.RuleDocument, path string) error {
	custom, err := g.writer.Read(path)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCustomRulesMissing, err)
	}
	if custom.Frontmatter != "" {
		doc.Frontmatter = custom.Frontmatter
	}
	if custom.Body != "" {
		doc.AppendBlock(custom.Body)
	}
	logger.Debug("merged custom rules from %s", path)
	return nil
}
