package python

import (
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/domain"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/logger"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/probes/scan"
)

// pyprojectTOML covers the fields the probe needs from pyproject.toml.
// Poetry dependency values may be plain strings or tables, so they are
// decoded as any and narrowed on use.
type pyprojectTOML struct {
	Project struct {
		RequiresPython string `toml:"requires-python"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Dependencies map[string]any `toml:"dependencies"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

type pipfileTOML struct {
	Requires struct {
		PythonVersion string `toml:"python_version"`
	} `toml:"requires"`
	Packages map[string]any `toml:"packages"`
}

func (p *Probe) readPyproject(root string, attrs *domain.PythonAttrs) {
	if !p.has(attrs, "pyproject.toml") {
		return
	}
	attrs.IsPoetry = true

	doc, ok := parsePyproject(root)
	if !ok {
		return
	}
	if v, ok := doc.Tool.Poetry.Dependencies["django"]; ok {
		if s, ok := v.(string); ok && s != "" {
			attrs.DjangoVersion = s
		}
		if !attrs.IsDjango {
			attrs.IsDjango = true
			attrs.Frameworks = append(attrs.Frameworks, "Django")
		}
	}
}

func parsePyproject(root string) (*pyprojectTOML, bool) {
	content, ok := scan.ReadText(filepath.Join(root, "pyproject.toml"))
	if !ok {
		return nil, false
	}
	var doc pyprojectTOML
	if err := toml.Unmarshal([]byte(content), &doc); err != nil {
		logger.Warn("python: parsing pyproject.toml: %v", err)
		return nil, false
	}
	return &doc, true
}

func (p *Probe) readPipfile(root string, attrs *domain.PythonAttrs) {
	if !p.has(attrs, "Pipfile") {
		return
	}
	attrs.IsPipenv = true

	doc, ok := parsePipfile(root)
	if !ok {
		return
	}
	if _, ok := doc.Packages["django"]; ok && !attrs.IsDjango {
		attrs.IsDjango = true
		attrs.Frameworks = append(attrs.Frameworks, "Django")
	}
}

func parsePipfile(root string) (*pipfileTOML, bool) {
	content, ok := scan.ReadText(filepath.Join(root, "Pipfile"))
	if !ok {
		return nil, false
	}
	var doc pipfileTOML
	if err := toml.Unmarshal([]byte(content), &doc); err != nil {
		logger.Warn("python: parsing Pipfile: %v", err)
		return nil, false
	}
	return &doc, true
}
