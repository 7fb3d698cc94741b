package mcp

import (
	"context"

	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/domain"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/ports/driving"
)

// mockAnalyzerService returns canned detections.
type mockAnalyzerService struct {
	det *domain.Detection
	err error
}

func (m *mockAnalyzerService) Analyze(_ context.Context, _ string) (*domain.Detection, error) {
	return m.det, m.err
}

// mockGeneratorService returns canned generation results and records the
// last request.
type mockGeneratorService struct {
	result  *driving.GenerateResult
	err     error
	lastReq driving.GenerateRequest
}

func (m *mockGeneratorService) Generate(_ context.Context, req driving.GenerateRequest) (*driving.GenerateResult, error) {
	m.lastReq = req
	return m.result, m.err
}

// mockTemplateStore serves a single fixed document for every category.
type mockTemplateStore struct {
	doc *domain.RuleDocument
	err error
}

func (m *mockTemplateStore) Load(_ domain.Category) (*domain.RuleDocument, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.doc == nil {
		return nil, domain.ErrTemplateMissing
	}
	return m.doc.Clone(), nil
}
