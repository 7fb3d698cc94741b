package vue

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/domain"
)

func TestProbe_TryDetect(t *testing.T) {
	ctx := context.Background()
	probe := New()

	t.Run("vue dependency in package.json", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"),
			[]byte(`{"dependencies": {"vue": "^3.4.0"}}`), 0o644))

		det, err := probe.TryDetect(ctx, dir)
		require.NoError(t, err)
		require.NotNil(t, det)
		require.NotNil(t, det.Vue)

		assert.Equal(t, domain.CategoryVue, det.Category)
		assert.Equal(t, "^3.4.0", det.Vue.Version)
		assert.False(t, det.Vue.IsNuxt)
	})

	t.Run("nuxt dependency alongside vue flags nuxt", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"),
			[]byte(`{"dependencies": {"vue": "^3.4.0", "nuxt": "^3.10.0"}}`), 0o644))

		det, err := probe.TryDetect(ctx, dir)
		require.NoError(t, err)
		require.NotNil(t, det)
		assert.True(t, det.Vue.IsNuxt)
	})

	t.Run("nuxt dependency without vue is not conclusive on its own", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"),
			[]byte(`{"dependencies": {"nuxt": "^3.10.0"}}`), 0o644))

		det, err := probe.TryDetect(ctx, dir)
		require.NoError(t, err)
		assert.Nil(t, det)
	})

	t.Run("package.json without vue falls through to config files", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"),
			[]byte(`{"dependencies": {"react": "^18.0.0"}}`), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "vue.config.js"),
			[]byte("module.exports = {}\n"), 0o644))

		det, err := probe.TryDetect(ctx, dir)
		require.NoError(t, err)
		require.NotNil(t, det)
		assert.Empty(t, det.Vue.Version)
	})

	t.Run("nuxt config file flags nuxt", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "nuxt.config.js"),
			[]byte("export default {}\n"), 0o644))

		det, err := probe.TryDetect(ctx, dir)
		require.NoError(t, err)
		require.NotNil(t, det)
		assert.True(t, det.Vue.IsNuxt)
	})

	t.Run("loose single-file components match", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "src", "components"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "components", "App.vue"),
			[]byte("<template><div/></template>\n"), 0o644))

		det, err := probe.TryDetect(ctx, dir)
		require.NoError(t, err)
		require.NotNil(t, det)
		assert.Equal(t, domain.CategoryVue, det.Category)
	})

	t.Run("empty directory does not match", func(t *testing.T) {
		det, err := probe.TryDetect(ctx, t.TempDir())
		require.NoError(t, err)
		assert.Nil(t, det)
	})
}
