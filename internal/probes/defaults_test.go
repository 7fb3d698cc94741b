package probes

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/domain"
)

// noInterpreter satisfies the runner port without touching the host, so
// the python probe degrades to manifest-only detection.
type noInterpreter struct{}

func (noInterpreter) Version(context.Context, string, time.Duration) (string, error) {
	return "", errors.New("no interpreter available")
}

func (noInterpreter) LookPath(string) (string, bool) { return "", false }

const bootPOM = `<?xml version="1.0" encoding="UTF-8"?>
<project>
  <parent>
    <groupId>org.springframework.boot</groupId>
    <artifactId>spring-boot-starter-parent</artifactId>
    <version>3.2.0</version>
  </parent>
  <groupId>com.example</groupId>
  <artifactId>demo</artifactId>
</project>`

const ciYAML = `stages:
  - build
build:
  script:
    - mvn package
`

func detect(t *testing.T, root string) *domain.Detection {
	t.Helper()
	ctx := context.Background()
	for _, probe := range Defaults(noInterpreter{}) {
		det, err := probe.TryDetect(ctx, root)
		require.NoError(t, err)
		if det != nil {
			return det
		}
	}
	return nil
}

func TestDefaults_Priority(t *testing.T) {
	write := func(t *testing.T, dir, name, content string) {
		t.Helper()
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	t.Run("spring boot outranks a ci file in the same tree", func(t *testing.T) {
		dir := t.TempDir()
		write(t, dir, "pom.xml", bootPOM)
		write(t, dir, ".gitlab-ci.yml", ciYAML)

		det := detect(t, dir)
		require.NotNil(t, det)
		assert.Equal(t, domain.CategorySpringBoot, det.Category)
	})

	t.Run("python outranks a ci file in the same tree", func(t *testing.T) {
		dir := t.TempDir()
		write(t, dir, "requirements.txt", "flask==2.3.0\n")
		write(t, dir, ".gitlab-ci.yml", ciYAML)

		det := detect(t, dir)
		require.NotNil(t, det)
		assert.Equal(t, domain.CategoryPython, det.Category)
	})

	t.Run("ci file matches when nothing else does", func(t *testing.T) {
		dir := t.TempDir()
		write(t, dir, ".gitlab-ci.yml", ciYAML)

		det := detect(t, dir)
		require.NotNil(t, det)
		assert.Equal(t, domain.CategoryGitLabCI, det.Category)
	})
}
