// Package angular detects Angular workspaces from angular.json and the
// @angular/core dependency in package.json, deriving which framework
// features the installed major version supports.
package angular

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/domain"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/ports/driven"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/logger"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/probes/scan"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/version"
)

var _ driven.Probe = (*Probe)(nil)

// Probe detects Angular projects.
type Probe struct{}

// New creates an Angular probe.
func New() *Probe { return &Probe{} }

// Name returns the probe identifier.
func (p *Probe) Name() string { return "angular" }

// packageJSON is the subset of package.json the probe inspects.
type packageJSON struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

func (pj *packageJSON) dep(name string) (string, bool) {
	if v, ok := pj.Dependencies[name]; ok {
		return v, true
	}
	v, ok := pj.DevDependencies[name]
	return v, ok
}

// angularJSON is the subset of angular.json the probe inspects.
type angularJSON struct {
	Schema string `json:"$schema"`
}

// TryDetect matches when package.json declares @angular/core. angular.json
// is optional and only contributes the CLI schema hint.
func (p *Probe) TryDetect(_ context.Context, root string) (*domain.Detection, error) {
	pkgPath := filepath.Join(root, "package.json")
	data, err := os.ReadFile(pkgPath)
	if err != nil {
		return nil, nil
	}
	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		logger.Warn("angular: parsing package.json: %v", err)
		return nil, nil
	}

	coreVersion, ok := pkg.dep("@angular/core")
	if !ok {
		return nil, nil
	}

	attrs := &domain.AngularAttrs{CoreVersion: coreVersion}
	if info, parsed := version.Parse(coreVersion); parsed {
		attrs.MajorVersion = info.Major
		attrs.SupportsStandalone = info.Major >= 14
		attrs.SupportsSignals = info.Major >= 16
		attrs.NewControlFlow = info.Major >= 17
	}

	p.readWorkspaceConfig(root, attrs)

	if _, ok := pkg.dep("@angular/material"); ok {
		attrs.UsesMaterial = true
	}
	if _, ok := pkg.dep("@ngrx/store"); ok {
		attrs.UsesNgRx = true
	}
	if _, ok := pkg.dep("@angular/pwa"); ok {
		attrs.IsPWA = true
	}
	if _, ok := pkg.dep("@nguniversal/express-engine"); ok {
		attrs.HasSSR = true
	} else if _, ok := pkg.dep("@angular/ssr"); ok {
		attrs.HasSSR = true
	}

	return &domain.Detection{Category: domain.CategoryAngular, Angular: attrs}, nil
}

// readWorkspaceConfig pulls the CLI schema from angular.json. Recent CLI
// generations reference a versioned schema path, which flags the workspace
// as created by a modern CLI even when package.json pins loosely.
func (p *Probe) readWorkspaceConfig(root string, attrs *domain.AngularAttrs) {
	content, ok := scan.ReadText(filepath.Join(root, "angular.json"))
	if !ok {
		return
	}
	var aj angularJSON
	if err := json.Unmarshal([]byte(content), &aj); err != nil {
		logger.Warn("angular: parsing angular.json: %v", err)
		return
	}
	attrs.CLISchema = aj.Schema
	for _, marker := range []string{"15", "16", "17", "18"} {
		if strings.Contains(aj.Schema, marker) {
			attrs.CLIModern = true
			break
		}
	}
}
