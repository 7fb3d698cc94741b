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
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/ports/driven"
)

func TestAnalyzer_Analyze(t *testing.T) {
	ctx := context.Background()

	t.Run("missing path returns ErrInvalidPath", func(t *testing.T) {
		analyzer := NewAnalyzer(nil)
		det, err := analyzer.Analyze(ctx, filepath.Join(t.TempDir(), "nope"))
		assert.Nil(t, det)
		assert.ErrorIs(t, err, domain.ErrInvalidPath)
	})

	t.Run("file path returns ErrInvalidPath", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "file.txt")
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		analyzer := NewAnalyzer(nil)
		_, err := analyzer.Analyze(ctx, path)
		assert.ErrorIs(t, err, domain.ErrInvalidPath)
	})

	t.Run("first matching probe wins", func(t *testing.T) {
		first := &mockProbe{name: "first", det: &domain.Detection{Category: domain.CategorySpringBoot}}
		second := &mockProbe{name: "second", det: &domain.Detection{Category: domain.CategoryPython}}
		analyzer := NewAnalyzer([]driven.Probe{first, second})

		det, err := analyzer.Analyze(ctx, t.TempDir())
		require.NoError(t, err)
		require.NotNil(t, det)

		assert.Equal(t, domain.CategorySpringBoot, det.Category)
		assert.Equal(t, 1, first.calls)
		assert.Zero(t, second.calls)
	})

	t.Run("erroring probe is skipped", func(t *testing.T) {
		broken := &mockProbe{name: "broken", err: errors.New("bad manifest")}
		working := &mockProbe{name: "working", det: &domain.Detection{Category: domain.CategoryVue}}
		analyzer := NewAnalyzer([]driven.Probe{broken, working})

		det, err := analyzer.Analyze(ctx, t.TempDir())
		require.NoError(t, err)
		require.NotNil(t, det)
		assert.Equal(t, domain.CategoryVue, det.Category)
	})

	t.Run("no probe matching is not an error", func(t *testing.T) {
		quiet := &mockProbe{name: "quiet"}
		analyzer := NewAnalyzer([]driven.Probe{quiet})

		det, err := analyzer.Analyze(ctx, t.TempDir())
		require.NoError(t, err)
		assert.Nil(t, det)
	})

	t.Run("cancelled context aborts the run", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		probe := &mockProbe{name: "never", det: &domain.Detection{Category: domain.CategoryVue}}
		analyzer := NewAnalyzer([]driven.Probe{probe})

		_, err := analyzer.Analyze(cancelled, t.TempDir())
		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, probe.calls)
	})
}
