package gitlabci

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/domain"
)

func writePipeline(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitlab-ci.yml"), []byte(content), 0o644))
}

func TestProbe_TryDetect(t *testing.T) {
	ctx := context.Background()
	probe := New()

	t.Run("no pipeline file does not match", func(t *testing.T) {
		det, err := probe.TryDetect(ctx, t.TempDir())
		require.NoError(t, err)
		assert.Nil(t, det)
	})

	t.Run("stages and jobs are counted", func(t *testing.T) {
		dir := t.TempDir()
		writePipeline(t, dir, `stages:
  - build
  - test
  - deploy

variables:
  CI_DEBUG: "false"

build-job:
  stage: build
  script:
    - make build

test-job:
  stage: test
  script:
    - make test

.hidden-template:
  script:
    - echo skipped
`)

		det, err := probe.TryDetect(ctx, dir)
		require.NoError(t, err)
		require.NotNil(t, det)
		require.NotNil(t, det.GitLabCI)

		assert.Equal(t, domain.CategoryGitLabCI, det.Category)
		assert.Equal(t, []string{"build", "test", "deploy"}, det.GitLabCI.Stages)
		assert.Equal(t, 2, det.GitLabCI.JobCount)
		assert.False(t, det.GitLabCI.UsesImage)
	})

	t.Run("docker image is flagged", func(t *testing.T) {
		dir := t.TempDir()
		writePipeline(t, dir, `image: docker:24.0

services:
  - docker:dind

build:
  script:
    - docker build .
`)

		det, err := probe.TryDetect(ctx, dir)
		require.NoError(t, err)
		require.NotNil(t, det)

		assert.True(t, det.GitLabCI.UsesImage)
		assert.True(t, det.GitLabCI.UsesDocker)
	})

	t.Run("job-level image counts for docker", func(t *testing.T) {
		dir := t.TempDir()
		writePipeline(t, dir, `test:
  image: docker:stable
  script:
    - docker info
`)

		det, err := probe.TryDetect(ctx, dir)
		require.NoError(t, err)
		require.NotNil(t, det)
		assert.True(t, det.GitLabCI.UsesDocker)
	})

	t.Run("malformed yaml still matches with empty attributes", func(t *testing.T) {
		dir := t.TempDir()
		writePipeline(t, dir, "stages: [build\n  bad: {indent")

		det, err := probe.TryDetect(ctx, dir)
		require.NoError(t, err)
		require.NotNil(t, det)
		assert.Empty(t, det.GitLabCI.Stages)
		assert.Zero(t, det.GitLabCI.JobCount)
	})
}
