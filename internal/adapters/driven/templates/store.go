// Package templates provides the embedded base rule templates, one per
// supported technology, with optional user overrides from disk.
package templates

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/domain"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/ports/driven"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/logger"
)

//go:embed templates/*.mdc
var embedded embed.FS

// templateFiles maps each category to its embedded template file.
var templateFiles = map[domain.Category]string{
	domain.CategorySpringBoot:       "spring_boot.mdc",
	domain.CategoryJavaLegacySpring: "java_legacy_spring.mdc",
	domain.CategoryAngular:          "angular.mdc",
	domain.CategoryVue:              "vue.mdc",
	domain.CategoryPython:           "python.mdc",
	domain.CategoryGitLabCI:         "gitlab_ci.mdc",
}

// Ensure Store implements the interface.
var _ driven.TemplateStore = (*Store)(nil)

// Store loads rule templates. A template in overrideDir shadows the
// embedded one with the same filename, so users can replace base rules
// without rebuilding.
type Store struct {
	mu          sync.RWMutex
	overrideDir string
	cache       map[domain.Category]*domain.RuleDocument
}

// NewStore creates a template store. If overrideDir is empty, defaults to
// ~/.ruleforge/templates/ when the home directory resolves, otherwise
// overrides are disabled.
func NewStore(overrideDir string) *Store {
	if overrideDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			overrideDir = filepath.Join(home, ".ruleforge", "templates")
		}
	}
	return &Store{
		overrideDir: overrideDir,
		cache:       make(map[domain.Category]*domain.RuleDocument),
	}
}

// Load returns the base template for category. The caller receives a copy
// and may mutate it freely.
func (s *Store) Load(category domain.Category) (*domain.RuleDocument, error) {
	s.mu.RLock()
	if doc, ok := s.cache[category]; ok {
		s.mu.RUnlock()
		return doc.Clone(), nil
	}
	s.mu.RUnlock()

	filename, ok := templateFiles[category]
	if !ok {
		return nil, fmt.Errorf("category %q: %w", category, domain.ErrTemplateMissing)
	}

	raw, err := s.read(filename)
	if err != nil {
		return nil, err
	}
	doc := domain.ParseRuleDocument(raw)

	s.mu.Lock()
	s.cache[category] = doc
	s.mu.Unlock()
	return doc.Clone(), nil
}

func (s *Store) read(filename string) (string, error) {
	if s.overrideDir != "" {
		overridePath := filepath.Join(s.overrideDir, filename)
		if data, err := os.ReadFile(overridePath); err == nil {
			logger.Debug("templates: using override %s", overridePath)
			return string(data), nil
		}
	}

	data, err := embedded.ReadFile("templates/" + filename)
	if err != nil {
		return "", fmt.Errorf("embedded template %s: %w", filename, domain.ErrTemplateMissing)
	}
	return string(data), nil
}
