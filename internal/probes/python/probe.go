// Package python detects Python projects and the frameworks they use.
// Detection is file driven: packaging manifests and entry points mark a
// project as Python, and source scans surface framework usage plus the
// security smells that matter for generated guidance (debug mode,
// hardcoded secrets, risky packages).
package python

import (
	"context"
	"io/fs"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/domain"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/ports/driven"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/logger"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/probes/scan"
)

// indicatorFiles mark a directory as a Python project. Order is kept in
// the reported indicator list.
var indicatorFiles = []string{
	"requirements.txt", "setup.py", "pyproject.toml",
	"Pipfile", "poetry.lock", "manage.py", "app.py", "main.py",
}

// pyFileThreshold is the loose-file fallback: a tree with this many .py
// files counts as a Python project even without manifests.
const pyFileThreshold = 3

var (
	secretKeyPattern  = regexp.MustCompile(`SECRET_KEY\s*=\s*['"][\w\-]+['"]`)
	pinnedVersion     = regexp.MustCompile(`(?i)^(django|flask|fastapi)==([0-9.]+)`)
	riskyRequirements = []string{"pycrypto", "md5", "pickle"}
)

var _ driven.Probe = (*Probe)(nil)

// Probe detects Python projects. The interpreter runner is injected so
// tests never shell out.
type Probe struct {
	runner driven.InterpreterRunner
}

// New creates a Python probe using the given interpreter runner.
func New(runner driven.InterpreterRunner) *Probe {
	return &Probe{runner: runner}
}

// Name returns the probe identifier.
func (p *Probe) Name() string { return "python" }

// TryDetect matches when any indicator file exists, or when the tree holds
// at least three .py files.
func (p *Probe) TryDetect(ctx context.Context, root string) (*domain.Detection, error) {
	attrs := &domain.PythonAttrs{}
	for _, name := range indicatorFiles {
		if scan.FileExists(filepath.Join(root, name)) {
			attrs.Indicators = append(attrs.Indicators, name)
		}
	}
	if len(attrs.Indicators) == 0 && !p.hasLooseSources(root) {
		return nil, nil
	}
	logger.Debug("python: indicators: %v", attrs.Indicators)

	p.checkDjango(root, attrs)
	p.checkFlask(root, attrs)
	p.checkFastAPI(root, attrs)
	p.readRequirements(root, attrs)
	p.readPyproject(root, attrs)
	p.readPipfile(root, attrs)
	p.checkServerAndTooling(root, attrs)
	p.resolveInterpreter(ctx, root, attrs)
	classify(attrs)

	return &domain.Detection{Category: domain.CategoryPython, Python: attrs}, nil
}

func (p *Probe) hasLooseSources(root string) bool {
	count := 0
	_ = scan.Walk(root, func(rel string, _ fs.DirEntry) error {
		if strings.HasSuffix(rel, ".py") {
			count++
			if count >= pyFileThreshold {
				return scan.ErrStop
			}
		}
		return nil
	})
	return count >= pyFileThreshold
}

func (p *Probe) has(attrs *domain.PythonAttrs, indicator string) bool {
	for _, ind := range attrs.Indicators {
		if ind == indicator {
			return true
		}
	}
	return false
}

// checkDjango treats manage.py as the Django marker, then inspects
// settings.py for debug mode, database engines and hardcoded secrets.
func (p *Probe) checkDjango(root string, attrs *domain.PythonAttrs) {
	if !p.has(attrs, "manage.py") {
		return
	}
	attrs.IsDjango = true
	attrs.Frameworks = append(attrs.Frameworks, "Django")

	var settingsPath string
	_ = scan.Walk(root, func(rel string, _ fs.DirEntry) error {
		if filepath.Base(rel) == "settings.py" {
			settingsPath = filepath.Join(root, rel)
			return scan.ErrStop
		}
		return nil
	})
	if settingsPath == "" {
		return
	}
	attrs.DjangoSettingsPath = settingsPath

	content, ok := scan.ReadText(settingsPath)
	if !ok {
		return
	}
	if strings.Contains(content, "DEBUG = True") {
		attrs.DebugEnabled = true
		logger.Warn("python: DEBUG=True in %s", settingsPath)
	}
	switch {
	case strings.Contains(content, "sqlite3"):
		attrs.DatabaseSQLite = true
	case strings.Contains(content, "postgresql") || strings.Contains(content, "psycopg"):
		attrs.DatabasePostgres = true
	case strings.Contains(content, "mysql"):
		attrs.DatabaseMySQL = true
	}
	if secretKeyPattern.MatchString(content) {
		attrs.HardcodedSecret = true
		logger.Warn("python: hardcoded SECRET_KEY in %s", settingsPath)
	}
}

func (p *Probe) checkFlask(root string, attrs *domain.PythonAttrs) {
	if !p.has(attrs, "app.py") {
		return
	}
	content, ok := scan.ReadText(filepath.Join(root, "app.py"))
	if !ok {
		return
	}
	if !strings.Contains(content, "from flask import") && !strings.Contains(content, "import flask") {
		return
	}
	attrs.IsFlask = true
	attrs.Frameworks = append(attrs.Frameworks, "Flask")
	if strings.Contains(content, "debug=True") || strings.Contains(content, "app.debug = True") {
		attrs.DebugEnabled = true
		logger.Warn("python: Flask debug mode enabled")
	}
}

func (p *Probe) checkFastAPI(root string, attrs *domain.PythonAttrs) {
	if !p.has(attrs, "main.py") {
		return
	}
	content, ok := scan.ReadText(filepath.Join(root, "main.py"))
	if !ok {
		return
	}
	if strings.Contains(content, "from fastapi import") || strings.Contains(content, "import fastapi") {
		attrs.IsFastAPI = true
		attrs.Frameworks = append(attrs.Frameworks, "FastAPI")
	}
}

// readRequirements collects pinned requirements, framework versions and
// packages with known weaknesses.
func (p *Probe) readRequirements(root string, attrs *domain.PythonAttrs) {
	if !p.has(attrs, "requirements.txt") {
		return
	}
	content, ok := scan.ReadText(filepath.Join(root, "requirements.txt"))
	if !ok {
		return
	}
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		attrs.Requirements = append(attrs.Requirements, line)

		if m := pinnedVersion.FindStringSubmatch(line); m != nil {
			switch strings.ToLower(m[1]) {
			case "django":
				attrs.DjangoVersion = m[2]
			case "flask":
				attrs.FlaskVersion = m[2]
			case "fastapi":
				attrs.FastAPIVersion = m[2]
			}
			continue
		}
		lower := strings.ToLower(line)
		for _, risky := range riskyRequirements {
			if strings.Contains(lower, risky) {
				attrs.RiskyPackages = append(attrs.RiskyPackages, line)
				break
			}
		}
	}
	if len(attrs.RiskyPackages) > 0 {
		logger.Warn("python: risky packages: %v", attrs.RiskyPackages)
	}
}

func (p *Probe) checkServerAndTooling(root string, attrs *domain.PythonAttrs) {
	attrs.HasWSGI = scan.FileExists(filepath.Join(root, "wsgi.py"))
	attrs.HasASGI = scan.FileExists(filepath.Join(root, "asgi.py"))
	attrs.HasPytest = scan.FileExists(filepath.Join(root, "pytest.ini"))
	attrs.HasTox = scan.FileExists(filepath.Join(root, "tox.ini"))
	attrs.HasConftest = scan.FileExists(filepath.Join(root, "conftest.py"))
	attrs.HasDocker = scan.FileExists(filepath.Join(root, "Dockerfile"))
}

// classify derives the security priority. Debug mode outweighs everything,
// then secrets and risky dependencies.
func classify(attrs *domain.PythonAttrs) {
	switch {
	case attrs.DebugEnabled:
		attrs.SecurityPriority = domain.PriorityHigh
	case attrs.HardcodedSecret || len(attrs.RiskyPackages) > 0:
		attrs.SecurityPriority = domain.PriorityMedium
	default:
		attrs.SecurityPriority = domain.PriorityLow
	}
}
