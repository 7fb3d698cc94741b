package python

import (
	"context"
	"path/filepath"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/domain"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/logger"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/probes/scan"
)

// versionTimeout bounds each `python --version` invocation.
const versionTimeout = 5 * time.Second

var (
	interpreterOutput = regexp.MustCompile(`Python\s+(\d+\.\d+\.?\d*)`)
	versionPrefix     = regexp.MustCompile(`^(\d+\.\d+\.?\d*)`)
	versionInSpec     = regexp.MustCompile(`(\d+\.\d+\.?\d*)`)
	pythonRequires    = regexp.MustCompile(`python_requires\s*=\s*["']([^"']+)["']`)
)

// venvDirs are checked in order for a project-local interpreter.
var venvDirs = []string{".venv", "venv", "env", ".env"}

// resolveInterpreter fills attrs.Interpreter using the first source that
// yields a version. Priority: project virtualenv, then pinned config files,
// then the system interpreter. Every failure degrades to the next source.
func (p *Probe) resolveInterpreter(ctx context.Context, root string, attrs *domain.PythonAttrs) {
	if p.runner == nil {
		return
	}
	if p.fromVenv(ctx, root, attrs) {
		return
	}
	if p.fromPyenvFile(root, attrs) {
		return
	}
	if p.fromPyprojectRequires(root, attrs) {
		return
	}
	if p.fromPipfileRequires(root, attrs) {
		return
	}
	if p.fromSetupPy(root, attrs) {
		return
	}
	p.fromSystem(ctx, attrs)
}

func interpreterName() (binDir, exe string) {
	if runtime.GOOS == "windows" {
		return "Scripts", "python.exe"
	}
	return "bin", "python"
}

func (p *Probe) fromVenv(ctx context.Context, root string, attrs *domain.PythonAttrs) bool {
	binDir, exe := interpreterName()
	for _, name := range venvDirs {
		venvDir := filepath.Join(root, name)
		candidate := filepath.Join(venvDir, binDir, exe)
		if !scan.FileExists(candidate) {
			continue
		}
		logger.Debug("python: virtualenv found at %s", venvDir)
		out, err := p.runner.Version(ctx, candidate, versionTimeout)
		if err != nil {
			logger.Warn("python: querying venv interpreter %s: %v", candidate, err)
			continue
		}
		if v := parseInterpreterOutput(out); v != "" {
			setInterpreter(attrs, v, "", candidate, "venv")
			attrs.Interpreter.IsVenv = true
			attrs.Interpreter.VenvPath = venvDir
			return true
		}
	}
	return false
}

func (p *Probe) fromPyenvFile(root string, attrs *domain.PythonAttrs) bool {
	content, ok := scan.ReadText(filepath.Join(root, ".python-version"))
	if !ok {
		return false
	}
	m := versionPrefix.FindStringSubmatch(strings.TrimSpace(content))
	if m == nil {
		return false
	}
	setInterpreter(attrs, m[1], "", "", "pyenv")
	return true
}

func (p *Probe) fromPyprojectRequires(root string, attrs *domain.PythonAttrs) bool {
	doc, ok := parsePyproject(root)
	if !ok {
		return false
	}
	spec := doc.Project.RequiresPython
	if spec == "" {
		if v, ok := doc.Tool.Poetry.Dependencies["python"]; ok {
			spec, _ = v.(string)
		}
	}
	return setFromSpec(attrs, spec, "pyproject")
}

func (p *Probe) fromPipfileRequires(root string, attrs *domain.PythonAttrs) bool {
	doc, ok := parsePipfile(root)
	if !ok {
		return false
	}
	if doc.Requires.PythonVersion == "" {
		return false
	}
	setInterpreter(attrs, doc.Requires.PythonVersion, "", "", "pipfile")
	return true
}

func (p *Probe) fromSetupPy(root string, attrs *domain.PythonAttrs) bool {
	content, ok := scan.ReadText(filepath.Join(root, "setup.py"))
	if !ok {
		return false
	}
	m := pythonRequires.FindStringSubmatch(content)
	if m == nil {
		return false
	}
	return setFromSpec(attrs, m[1], "setup.py")
}

func (p *Probe) fromSystem(ctx context.Context, attrs *domain.PythonAttrs) {
	names := []string{"python3", "python"}
	if runtime.GOOS == "windows" {
		names = []string{"python", "python3"}
	}
	for _, name := range names {
		path, ok := p.runner.LookPath(name)
		if !ok {
			continue
		}
		out, err := p.runner.Version(ctx, path, versionTimeout)
		if err != nil {
			logger.Warn("python: querying %s: %v", path, err)
			continue
		}
		if v := parseInterpreterOutput(out); v != "" {
			setInterpreter(attrs, v, "", path, "system")
			return
		}
	}
	logger.Debug("python: no interpreter resolved")
}

// setFromSpec extracts the concrete version out of requirement expressions
// like ">=3.8", "^3.9" or "~3.10".
func setFromSpec(attrs *domain.PythonAttrs, spec, source string) bool {
	if spec == "" {
		return false
	}
	m := versionInSpec.FindStringSubmatch(spec)
	if m == nil {
		return false
	}
	setInterpreter(attrs, m[1], spec, "", source)
	return true
}

func parseInterpreterOutput(out string) string {
	m := interpreterOutput.FindStringSubmatch(strings.TrimSpace(out))
	if m == nil {
		return ""
	}
	return m[1]
}

func setInterpreter(attrs *domain.PythonAttrs, version, spec, path, source string) {
	info := &attrs.Interpreter
	info.Version = version
	info.VersionSpec = spec
	info.Path = path
	info.Source = source

	parts := strings.Split(version, ".")
	if len(parts) >= 1 {
		info.MajorVersion, _ = strconv.Atoi(parts[0])
	}
	if len(parts) >= 2 {
		info.MinorVersion, _ = strconv.Atoi(strings.TrimSuffix(parts[1], "."))
	}
}
