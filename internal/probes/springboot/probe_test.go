package springboot

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/domain"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

const pomWithParent = `<?xml version="1.0" encoding="UTF-8"?>
<project>
  <modelVersion>4.0.0</modelVersion>
  <parent>
    <groupId>org.springframework.boot</groupId>
    <artifactId>spring-boot-starter-parent</artifactId>
    <version>%VERSION%</version>
  </parent>
  <groupId>com.example</groupId>
  <artifactId>demo</artifactId>
  <dependencies>
    <dependency>
      <groupId>org.springframework.boot</groupId>
      <artifactId>spring-boot-starter-web</artifactId>
    </dependency>
    <dependency>
      <groupId>org.springframework.boot</groupId>
      <artifactId>spring-boot-starter-security</artifactId>
    </dependency>
    <dependency>
      <groupId>com.h2database</groupId>
      <artifactId>h2</artifactId>
    </dependency>
  </dependencies>
</project>`

func pomVersion(version string) string {
	return strings.ReplaceAll(pomWithParent, "%VERSION%", version)
}

func TestProbe_TryDetect(t *testing.T) {
	ctx := context.Background()
	probe := New()

	t.Run("starter parent 2.7.5 is stable", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "pom.xml", pomVersion("2.7.5"))

		det, err := probe.TryDetect(ctx, dir)
		require.NoError(t, err)
		require.NotNil(t, det)
		require.NotNil(t, det.SpringBoot)

		assert.Equal(t, domain.CategorySpringBoot, det.Category)
		assert.Equal(t, "2.7.5", det.SpringBoot.Version)
		assert.Equal(t, 2, det.SpringBoot.MajorVersion)
		assert.True(t, det.SpringBoot.IsModern)
		assert.False(t, det.SpringBoot.IsLegacy)
		assert.Equal(t, domain.PriorityMedium, det.SpringBoot.SecurityPriority)
	})

	t.Run("starter parent 1.4.2 is legacy with high priority", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "pom.xml", pomVersion("1.4.2.RELEASE"))

		det, err := probe.TryDetect(ctx, dir)
		require.NoError(t, err)
		require.NotNil(t, det)

		assert.Equal(t, 1, det.SpringBoot.MajorVersion)
		assert.True(t, det.SpringBoot.IsLegacy)
		assert.Equal(t, domain.PriorityHigh, det.SpringBoot.SecurityPriority)
	})

	t.Run("version 3 requires java 17", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "pom.xml", pomVersion("3.2.0"))

		det, err := probe.TryDetect(ctx, dir)
		require.NoError(t, err)
		require.NotNil(t, det)

		assert.True(t, det.SpringBoot.IsLatest)
		assert.True(t, det.SpringBoot.RequiresJava17)
		assert.Equal(t, domain.PriorityLow, det.SpringBoot.SecurityPriority)
	})

	t.Run("dependency flags are collected", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "pom.xml", pomVersion("2.7.5"))

		det, err := probe.TryDetect(ctx, dir)
		require.NoError(t, err)
		require.NotNil(t, det)

		assert.True(t, det.SpringBoot.UsesSpringSecurity)
		assert.True(t, det.SpringBoot.DatabaseH2)
		assert.True(t, det.SpringBoot.H2ConsoleRisk)
		assert.False(t, det.SpringBoot.UsesActuator)
	})

	t.Run("malformed pom degrades without error", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "pom.xml", "<project><unclosed>")

		det, err := probe.TryDetect(ctx, dir)
		require.NoError(t, err)
		assert.Nil(t, det)
	})

	t.Run("gradle plugin matches", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "build.gradle", `plugins {
  id 'org.springframework.boot' version '3.1.0'
}`)

		det, err := probe.TryDetect(ctx, dir)
		require.NoError(t, err)
		require.NotNil(t, det)
		assert.Equal(t, domain.CategorySpringBoot, det.Category)
	})

	t.Run("application config alone is a weak match", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "src/main/resources/application.properties", "server.port=8080\n")

		det, err := probe.TryDetect(ctx, dir)
		require.NoError(t, err)
		require.NotNil(t, det)
		assert.Empty(t, det.SpringBoot.Version)
	})

	t.Run("h2 console risk read from application.yml", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "pom.xml", pomVersion("2.7.5"))
		writeFile(t, dir, "src/main/resources/application.yml", `spring:
  h2:
    console:
      enabled: true
`)

		det, err := probe.TryDetect(ctx, dir)
		require.NoError(t, err)
		require.NotNil(t, det)
		assert.True(t, det.SpringBoot.H2ConsoleRisk)
	})

	t.Run("empty directory does not match", func(t *testing.T) {
		det, err := probe.TryDetect(ctx, t.TempDir())
		require.NoError(t, err)
		assert.Nil(t, det)
	})
}
