package templates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/domain"
)

func TestStore_Load(t *testing.T) {
	t.Run("every supported category has an embedded template", func(t *testing.T) {
		store := NewStore(t.TempDir())
		for _, info := range domain.Categories() {
			doc, err := store.Load(info.ID)
			require.NoError(t, err, "category %s", info.ID)
			assert.NotEmpty(t, doc.Body, "category %s", info.ID)
			assert.NotEmpty(t, doc.Frontmatter, "category %s", info.ID)
		}
	})

	t.Run("unknown category returns ErrTemplateMissing", func(t *testing.T) {
		store := NewStore(t.TempDir())
		_, err := store.Load(domain.Category("cobol"))
		assert.ErrorIs(t, err, domain.ErrTemplateMissing)
	})

	t.Run("override file shadows the embedded template", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "vue.mdc"),
			[]byte("---\ndescription: custom vue\n---\n\n# My Vue rules\n"), 0o644))
		store := NewStore(dir)

		doc, err := store.Load(domain.CategoryVue)
		require.NoError(t, err)
		assert.Equal(t, "description: custom vue", doc.Frontmatter)
		assert.Contains(t, doc.Body, "# My Vue rules")
	})

	t.Run("loaded documents are independent copies", func(t *testing.T) {
		store := NewStore(t.TempDir())

		first, err := store.Load(domain.CategoryPython)
		require.NoError(t, err)
		first.AppendBlock("# mutated")

		second, err := store.Load(domain.CategoryPython)
		require.NoError(t, err)
		assert.NotContains(t, second.Body, "# mutated")
	})

	t.Run("cache survives override removal", func(t *testing.T) {
		dir := t.TempDir()
		override := filepath.Join(dir, "angular.mdc")
		require.NoError(t, os.WriteFile(override,
			[]byte("---\ndescription: pinned\n---\n\n# Pinned\n"), 0o644))
		store := NewStore(dir)

		_, err := store.Load(domain.CategoryAngular)
		require.NoError(t, err)
		require.NoError(t, os.Remove(override))

		doc, err := store.Load(domain.CategoryAngular)
		require.NoError(t, err)
		assert.Equal(t, "description: pinned", doc.Frontmatter)
	})
}
