package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/domain"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/ports/driving"
)

func newGenerator(analyzer *mockAnalyzer, store *mockTemplateStore, writer *mockWriter) *Generator {
	if store == nil {
		store = &mockTemplateStore{docs: map[domain.Category]*domain.RuleDocument{
			domain.CategorySpringBoot: {
				Frontmatter: "description: Spring Boot rules\nalwaysApply: true",
				Body:        "# Spring Boot base\n",
			},
			domain.CategoryVue: {Body: "# Vue base\n"},
		}}
	}
	if writer == nil {
		writer = &mockWriter{}
	}
	return NewGenerator(analyzer, store, writer)
}

func springBootDetection() *domain.Detection {
	return &domain.Detection{
		Category: domain.CategorySpringBoot,
		SpringBoot: &domain.SpringBootAttrs{
			Version:          "2.7.5",
			MajorVersion:     2,
			IsModern:         true,
			SecurityPriority: domain.PriorityMedium,
		},
	}
}

func TestGenerator_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("detection drives template choice and adaptation", func(t *testing.T) {
		writer := &mockWriter{}
		gen := newGenerator(&mockAnalyzer{det: springBootDetection()}, nil, writer)
		projectDir := t.TempDir()

		result, err := gen.Generate(ctx, driving.GenerateRequest{ProjectPath: projectDir})
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, domain.CategorySpringBoot, result.Category)
		require.NotNil(t, result.Detection)
		assert.NotEmpty(t, result.Technologies)
		assert.Contains(t, result.OutputPath, ".cursor")
		assert.Equal(t, filepath.Join(".cursor", "rules", "rules.mdc"), result.RelativePath)
		assert.Positive(t, result.FileSize)

		require.NotNil(t, writer.lastDoc)
		assert.Contains(t, writer.lastDoc.Body, "# Spring Boot base")
		assert.Contains(t, writer.lastDoc.Body, "Spring Boot 2.7.5")
	})

	t.Run("category override skips detection", func(t *testing.T) {
		gen := newGenerator(&mockAnalyzer{err: domain.ErrInvalidPath}, nil, nil)

		result, err := gen.Generate(ctx, driving.GenerateRequest{
			ProjectPath:      t.TempDir(),
			CategoryOverride: domain.CategoryVue,
		})
		require.NoError(t, err)

		assert.Equal(t, domain.CategoryVue, result.Category)
		assert.Nil(t, result.Detection)
	})

	t.Run("invalid override returns ErrUnknownCategory", func(t *testing.T) {
		gen := newGenerator(&mockAnalyzer{}, nil, nil)

		_, err := gen.Generate(ctx, driving.GenerateRequest{
			ProjectPath:      t.TempDir(),
			CategoryOverride: domain.Category("cobol"),
		})
		assert.ErrorIs(t, err, domain.ErrUnknownCategory)
	})

	t.Run("no detection returns ErrNoMatch", func(t *testing.T) {
		gen := newGenerator(&mockAnalyzer{}, nil, nil)

		_, err := gen.Generate(ctx, driving.GenerateRequest{ProjectPath: t.TempDir()})
		assert.ErrorIs(t, err, domain.ErrNoMatch)
	})

	t.Run("analyzer error propagates", func(t *testing.T) {
		probeErr := errors.New("probe exploded")
		gen := newGenerator(&mockAnalyzer{err: probeErr}, nil, nil)

		_, err := gen.Generate(ctx, driving.GenerateRequest{ProjectPath: t.TempDir()})
		assert.ErrorIs(t, err, probeErr)
	})

	t.Run("missing project path fails before detection", func(t *testing.T) {
		analyzer := &mockAnalyzer{}
		gen := newGenerator(analyzer, nil, nil)

		_, err := gen.Generate(ctx, driving.GenerateRequest{
			ProjectPath: filepath.Join(t.TempDir(), "does", "not", "exist"),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidPath)
	})

	t.Run("override does not bypass the path check", func(t *testing.T) {
		gen := newGenerator(&mockAnalyzer{}, nil, nil)

		missing := filepath.Join(t.TempDir(), "gone")
		_, err := gen.Generate(ctx, driving.GenerateRequest{
			ProjectPath:      missing,
			CategoryOverride: domain.CategoryVue,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidPath)
		assert.NoDirExists(t, filepath.Join(missing, ".cursor"))
	})

	t.Run("file as project path is invalid", func(t *testing.T) {
		gen := newGenerator(&mockAnalyzer{}, nil, nil)

		path := filepath.Join(t.TempDir(), "pom.xml")
		require.NoError(t, os.WriteFile(path, []byte("<project/>"), 0o644))
		_, err := gen.Generate(ctx, driving.GenerateRequest{
			ProjectPath:      path,
			CategoryOverride: domain.CategorySpringBoot,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidPath)
	})

	t.Run("missing template propagates ErrTemplateMissing", func(t *testing.T) {
		store := &mockTemplateStore{docs: map[domain.Category]*domain.RuleDocument{}}
		gen := newGenerator(&mockAnalyzer{det: springBootDetection()}, store, nil)

		_, err := gen.Generate(ctx, driving.GenerateRequest{ProjectPath: t.TempDir()})
		assert.ErrorIs(t, err, domain.ErrTemplateMissing)
	})

	t.Run("custom rules replace frontmatter and extend body", func(t *testing.T) {
		writer := &mockWriter{readDoc: &domain.RuleDocument{
			Frontmatter: "description: Team conventions",
			Body:        "# Team rules\n- no wildcard imports",
		}}
		gen := newGenerator(&mockAnalyzer{det: springBootDetection()}, nil, writer)

		_, err := gen.Generate(ctx, driving.GenerateRequest{
			ProjectPath:     t.TempDir(),
			CustomRulesPath: "custom.mdc",
		})
		require.NoError(t, err)

		assert.Equal(t, "description: Team conventions", writer.lastDoc.Frontmatter)
		assert.Contains(t, writer.lastDoc.Body, "# Team rules")
		assert.Contains(t, writer.lastDoc.Body, "# Spring Boot base")
	})

	t.Run("unreadable custom rules return ErrCustomRulesMissing", func(t *testing.T) {
		writer := &mockWriter{readErr: domain.ErrCustomRulesMissing}
		gen := newGenerator(&mockAnalyzer{det: springBootDetection()}, nil, writer)

		_, err := gen.Generate(ctx, driving.GenerateRequest{
			ProjectPath:     t.TempDir(),
			CustomRulesPath: "missing.mdc",
		})
		assert.ErrorIs(t, err, domain.ErrCustomRulesMissing)
	})

	t.Run("output filename is honoured", func(t *testing.T) {
		writer := &mockWriter{}
		gen := newGenerator(&mockAnalyzer{det: springBootDetection()}, nil, writer)

		result, err := gen.Generate(ctx, driving.GenerateRequest{
			ProjectPath:    t.TempDir(),
			OutputFilename: "spring",
		})
		require.NoError(t, err)
		assert.Contains(t, result.OutputPath, "spring")
	})
}
