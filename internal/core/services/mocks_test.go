package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/domain"
)

// mockProbe returns a fixed detection or error.
type mockProbe struct {
	name  string
	det   *domain.Detection
	err   error
	calls int
}

func (m *mockProbe) Name() string { return m.name }

func (m *mockProbe) TryDetect(_ context.Context, _ string) (*domain.Detection, error) {
	m.calls++
	return m.det, m.err
}

// mockAnalyzer answers Analyze with canned results.
type mockAnalyzer struct {
	det *domain.Detection
	err error
}

func (m *mockAnalyzer) Analyze(_ context.Context, _ string) (*domain.Detection, error) {
	return m.det, m.err
}

// mockTemplateStore serves one document per category.
type mockTemplateStore struct {
	docs map[domain.Category]*domain.RuleDocument
}

func (m *mockTemplateStore) Load(category domain.Category) (*domain.RuleDocument, error) {
	doc, ok := m.docs[category]
	if !ok {
		return nil, domain.ErrTemplateMissing
	}
	return doc.Clone(), nil
}

// mockWriter writes documents to real files under a temp root so size and
// relative-path reporting can be exercised.
type mockWriter struct {
	writeErr error
	readDoc  *domain.RuleDocument
	readErr  error
	lastDoc  *domain.RuleDocument
}

func (m *mockWriter) Write(root, filename string, doc *domain.RuleDocument) (string, error) {
	if m.writeErr != nil {
		return "", m.writeErr
	}
	m.lastDoc = doc
	dir := filepath.Join(root, ".cursor", "rules")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, filename+".mdc")
	if err := os.WriteFile(path, []byte(doc.Encode()), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func (m *mockWriter) Read(_ string) (*domain.RuleDocument, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	if m.readDoc == nil {
		return nil, errors.New("no document configured")
	}
	return m.readDoc, nil
}
