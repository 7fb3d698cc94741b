package rulefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/domain"
)

func TestWriter_Write(t *testing.T) {
	writer := NewWriter()
	doc := &domain.RuleDocument{
		Frontmatter: "description: test rules",
		Body:        "# Rules\n- rule one",
	}

	t.Run("creates the rules directory and appends the extension", func(t *testing.T) {
		root := t.TempDir()

		path, err := writer.Write(root, "rules", doc)
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(root, ".cursor", "rules", "rules.mdc"), path)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, doc.Encode(), string(data))
	})

	t.Run("keeps an existing mdc extension", func(t *testing.T) {
		root := t.TempDir()

		path, err := writer.Write(root, "team.MDC", doc)
		require.NoError(t, err)
		assert.Equal(t, "team.MDC", filepath.Base(path))
	})

	t.Run("overwrites a previous rule file", func(t *testing.T) {
		root := t.TempDir()

		_, err := writer.Write(root, "rules", &domain.RuleDocument{Body: "old"})
		require.NoError(t, err)
		path, err := writer.Write(root, "rules", &domain.RuleDocument{Body: "new"})
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))
	})

	t.Run("unwritable root reports ErrWriteFailed", func(t *testing.T) {
		root := t.TempDir()
		blocked := filepath.Join(root, "blocked")
		require.NoError(t, os.WriteFile(blocked, []byte("a file, not a directory"), 0o644))

		_, err := writer.Write(blocked, "rules", doc)
		assert.ErrorIs(t, err, domain.ErrWriteFailed)
	})

	t.Run("no temp files are left behind", func(t *testing.T) {
		root := t.TempDir()

		_, err := writer.Write(root, "rules", doc)
		require.NoError(t, err)

		entries, err := os.ReadDir(filepath.Join(root, ".cursor", "rules"))
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "rules.mdc", entries[0].Name())
	})
}

func TestWriter_Read(t *testing.T) {
	writer := NewWriter()

	t.Run("round-trips a written document", func(t *testing.T) {
		root := t.TempDir()
		doc := &domain.RuleDocument{
			Frontmatter: "description: custom",
			Body:        "# Custom rules",
		}
		path, err := writer.Write(root, "custom", doc)
		require.NoError(t, err)

		got, err := writer.Read(path)
		require.NoError(t, err)
		assert.Equal(t, doc.Frontmatter, got.Frontmatter)
		assert.Equal(t, doc.Body, got.Body)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := writer.Read(filepath.Join(t.TempDir(), "absent.mdc"))
		assert.Error(t, err)
	})
}
