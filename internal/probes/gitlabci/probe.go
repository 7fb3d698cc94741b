// Package gitlabci detects GitLab CI configuration. The probe is the
// least specific one and runs last: a pipeline file can accompany any
// project type, so it only matches when nothing more concrete did.
package gitlabci

import (
	"context"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/domain"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/ports/driven"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/logger"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/probes/scan"
)

// reservedKeys are top-level pipeline keywords that are not job names.
var reservedKeys = map[string]struct{}{
	"stages": {}, "variables": {}, "default": {}, "include": {},
	"workflow": {}, "image": {}, "services": {}, "before_script": {},
	"after_script": {}, "cache": {}, "pages": {},
}

var _ driven.Probe = (*Probe)(nil)

// Probe detects GitLab CI pipelines.
type Probe struct{}

// New creates a GitLab CI probe.
func New() *Probe { return &Probe{} }

// Name returns the probe identifier.
func (p *Probe) Name() string { return "gitlab_ci" }

// TryDetect matches on the presence of .gitlab-ci.yml. A pipeline that
// fails to parse still matches, with empty attributes.
func (p *Probe) TryDetect(_ context.Context, root string) (*domain.Detection, error) {
	content, ok := scan.ReadText(filepath.Join(root, ".gitlab-ci.yml"))
	if !ok {
		return nil, nil
	}

	attrs := &domain.GitLabCIAttrs{}
	var doc map[string]any
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		logger.Warn("gitlabci: parsing .gitlab-ci.yml: %v", err)
		return &domain.Detection{Category: domain.CategoryGitLabCI, GitLabCI: attrs}, nil
	}

	if stages, ok := doc["stages"].([]any); ok {
		for _, s := range stages {
			if name, ok := s.(string); ok {
				attrs.Stages = append(attrs.Stages, name)
			}
		}
	}
	if _, ok := doc["image"]; ok {
		attrs.UsesImage = true
	}

	for key, value := range doc {
		if _, reserved := reservedKeys[key]; reserved || strings.HasPrefix(key, ".") {
			continue
		}
		// Jobs are mappings; scalar top-level keys are configuration.
		if _, isMap := value.(map[string]any); isMap {
			attrs.JobCount++
		}
	}

	attrs.UsesDocker = mentionsDocker(doc)
	return &domain.Detection{Category: domain.CategoryGitLabCI, GitLabCI: attrs}, nil
}

// mentionsDocker reports whether the pipeline uses a docker image or a
// docker:dind service anywhere.
func mentionsDocker(node any) bool {
	switch v := node.(type) {
	case string:
		return strings.Contains(v, "docker")
	case []any:
		for _, item := range v {
			if mentionsDocker(item) {
				return true
			}
		}
	case map[string]any:
		for key, item := range v {
			if key != "image" && key != "services" {
				if m, ok := item.(map[string]any); ok {
					if mentionsDocker(m["image"]) || mentionsDocker(m["services"]) {
						return true
					}
				}
				continue
			}
			if mentionsDocker(item) {
				return true
			}
		}
	}
	return false
}
