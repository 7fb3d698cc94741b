// Package vue detects Vue.js projects from package.json, build tool
// configuration files or loose .vue single-file components.
package vue

import (
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/domain"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/ports/driven"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/logger"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/probes/scan"
)

var _ driven.Probe = (*Probe)(nil)

// Probe detects Vue.js projects.
type Probe struct{}

// New creates a Vue probe.
func New() *Probe { return &Probe{} }

// Name returns the probe identifier.
func (p *Probe) Name() string { return "vue" }

type packageJSON struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// TryDetect looks for a vue dependency first, then for Vue build configs,
// then falls back to scanning for single-file components.
func (p *Probe) TryDetect(_ context.Context, root string) (*domain.Detection, error) {
	if det := p.fromPackageJSON(root); det != nil {
		return det, nil
	}

	for _, name := range []string{"vue.config.js", "vite.config.js", "nuxt.config.js"} {
		if scan.FileExists(filepath.Join(root, name)) {
			attrs := &domain.VueAttrs{IsNuxt: name == "nuxt.config.js"}
			logger.Debug("vue: matched via %s", name)
			return &domain.Detection{Category: domain.CategoryVue, Vue: attrs}, nil
		}
	}

	if p.hasComponents(root) {
		return &domain.Detection{Category: domain.CategoryVue, Vue: &domain.VueAttrs{}}, nil
	}
	return nil, nil
}

func (p *Probe) fromPackageJSON(root string) *domain.Detection {
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		return nil
	}
	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		logger.Warn("vue: parsing package.json: %v", err)
		return nil
	}

	// Only the vue dependency itself is conclusive here. A nuxt dep
	// without it falls through to the config file checks.
	var attrs domain.VueAttrs
	if v, ok := pkg.Dependencies["vue"]; ok {
		attrs.Version = v
	} else if v, ok := pkg.DevDependencies["vue"]; ok {
		attrs.Version = v
	} else {
		return nil
	}
	if _, ok := pkg.Dependencies["nuxt"]; ok {
		attrs.IsNuxt = true
	} else if _, ok := pkg.DevDependencies["nuxt"]; ok {
		attrs.IsNuxt = true
	}
	return &domain.Detection{Category: domain.CategoryVue, Vue: &attrs}
}

// hasComponents reports whether any .vue file exists in the tree.
func (p *Probe) hasComponents(root string) bool {
	found := false
	_ = scan.Walk(root, func(rel string, _ fs.DirEntry) error {
		if strings.HasSuffix(rel, ".vue") {
			found = true
			return scan.ErrStop
		}
		return nil
	})
	return found
}
