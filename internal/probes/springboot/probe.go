// Package springboot detects modern Spring Boot projects from Maven or
// Gradle build manifests and Spring Boot application config files.
package springboot

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/domain"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/ports/driven"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/logger"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/probes/maven"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/probes/scan"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/version"
)

const starterParent = "spring-boot-starter-parent"

// Ensure Probe implements the interface.
var _ driven.Probe = (*Probe)(nil)

// Probe detects Spring Boot projects.
type Probe struct{}

// New creates a Spring Boot probe.
func New() *Probe { return &Probe{} }

// Name returns the probe identifier.
func (p *Probe) Name() string { return "springboot" }

// TryDetect checks pom.xml for the Spring Boot starter parent or starter
// dependencies, falls back to build.gradle content and finally to the
// presence of application config files as a weak indicator.
func (p *Probe) TryDetect(_ context.Context, root string) (*domain.Detection, error) {
	if det := p.fromMaven(root); det != nil {
		return det, nil
	}
	if det := p.fromGradle(root); det != nil {
		return det, nil
	}
	if det := p.fromAppConfig(root); det != nil {
		return det, nil
	}
	return nil, nil
}

func (p *Probe) fromMaven(root string) *domain.Detection {
	pomPath := filepath.Join(root, "pom.xml")
	if !scan.FileExists(pomPath) {
		return nil
	}

	pom, err := maven.Parse(pomPath)
	if err != nil {
		// Malformed manifest: degrade to the remaining signals.
		logger.Warn("springboot: parsing %s: %v", pomPath, err)
		return nil
	}

	if pom.Parent.ArtifactID == starterParent {
		attrs := &domain.SpringBootAttrs{Version: pom.Parent.Version}
		classifyVersion(attrs)
		scanDependencies(pom, attrs)
		p.enrichFromAppYAML(root, attrs)
		logger.Debug("springboot: starter parent found, version %q", attrs.Version)
		return &domain.Detection{Category: domain.CategorySpringBoot, SpringBoot: attrs}
	}

	for _, dep := range pom.Dependencies {
		if dep.GroupID == "org.springframework.boot" && strings.Contains(dep.ArtifactID, "spring-boot-starter") {
			attrs := &domain.SpringBootAttrs{
				Version: pom.Properties.Get("spring-boot.version"),
			}
			classifyVersion(attrs)
			scanDependencies(pom, attrs)
			p.enrichFromAppYAML(root, attrs)
			logger.Debug("springboot: starter dependency found: %s", dep.ArtifactID)
			return &domain.Detection{Category: domain.CategorySpringBoot, SpringBoot: attrs}
		}
	}
	return nil
}

func (p *Probe) fromGradle(root string) *domain.Detection {
	content, ok := scan.ReadText(filepath.Join(root, "build.gradle"))
	if !ok {
		return nil
	}
	if strings.Contains(content, "org.springframework.boot") ||
		strings.Contains(content, "spring-boot-gradle-plugin") {
		logger.Debug("springboot: Gradle plugin detected")
		attrs := &domain.SpringBootAttrs{}
		p.enrichFromAppYAML(root, attrs)
		return &domain.Detection{Category: domain.CategorySpringBoot, SpringBoot: attrs}
	}
	return nil
}

// fromAppConfig matches on the presence of a Spring Boot application config
// file alone. A weak indicator, checked after the build manifests.
func (p *Probe) fromAppConfig(root string) *domain.Detection {
	resources := filepath.Join(root, "src", "main", "resources")
	for _, name := range []string{"application.properties", "application.yml", "application.yaml"} {
		if scan.FileExists(filepath.Join(resources, name)) {
			logger.Debug("springboot: found %s", name)
			attrs := &domain.SpringBootAttrs{}
			p.enrichFromAppYAML(root, attrs)
			return &domain.Detection{Category: domain.CategorySpringBoot, SpringBoot: attrs}
		}
	}
	return nil
}

// classifyVersion derives the major version and security priority.
// Spring Boot 1.x is legacy with known weaknesses, 2.x is the mature
// stable line, 3.x requires Java 17 and ships current security defaults.
func classifyVersion(attrs *domain.SpringBootAttrs) {
	if attrs.Version == "" {
		return
	}
	major := version.Major(attrs.Version)
	if major == 0 {
		return
	}
	attrs.MajorVersion = major
	switch {
	case major == 1:
		attrs.IsLegacy = true
		attrs.SecurityPriority = domain.PriorityHigh
	case major == 2:
		attrs.IsModern = true
		attrs.SecurityPriority = domain.PriorityMedium
	case major >= 3:
		attrs.IsLatest = true
		attrs.RequiresJava17 = true
		attrs.SecurityPriority = domain.PriorityLow
	}
}

func scanDependencies(pom *maven.POM, attrs *domain.SpringBootAttrs) {
	for _, dep := range pom.Dependencies {
		switch {
		case dep.GroupID == "org.springframework.boot" && dep.ArtifactID == "spring-boot-starter-security":
			attrs.UsesSpringSecurity = true
		case dep.GroupID == "org.springframework.boot" && dep.ArtifactID == "spring-boot-starter-data-jpa":
			attrs.UsesSpringDataJPA = true
		case dep.GroupID == "org.springframework.boot" && dep.ArtifactID == "spring-boot-starter-actuator":
			attrs.UsesActuator = true
		case dep.GroupID == "org.springframework.boot" && dep.ArtifactID == "spring-boot-starter-webflux":
			attrs.UsesWebFlux = true
		case strings.Contains(dep.GroupID, "org.springframework.cloud"):
			attrs.UsesSpringCloud = true
		case dep.GroupID == "mysql" && strings.Contains(dep.ArtifactID, "mysql-connector"):
			attrs.DatabaseMySQL = true
		case dep.GroupID == "org.postgresql" && strings.Contains(dep.ArtifactID, "postgresql"):
			attrs.DatabasePostgreSQL = true
		case dep.GroupID == "com.h2database" && strings.Contains(dep.ArtifactID, "h2"):
			attrs.DatabaseH2 = true
			attrs.H2ConsoleRisk = true
		}
	}
}

// appYAML is the subset of application.yml relevant to risk flags.
type appYAML struct {
	Spring struct {
		H2 struct {
			Console struct {
				Enabled bool `yaml:"enabled"`
			} `yaml:"console"`
		} `yaml:"h2"`
	} `yaml:"spring"`
}

// enrichFromAppYAML reads application.yml/.yaml for insecure settings left
// enabled. A parse failure adds no attributes.
func (p *Probe) enrichFromAppYAML(root string, attrs *domain.SpringBootAttrs) {
	resources := filepath.Join(root, "src", "main", "resources")
	for _, name := range []string{"application.yml", "application.yaml"} {
		data, err := os.ReadFile(filepath.Join(resources, name))
		if err != nil {
			continue
		}
		var cfg appYAML
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			logger.Warn("springboot: parsing %s: %v", name, err)
			continue
		}
		if cfg.Spring.H2.Console.Enabled {
			attrs.DatabaseH2 = true
			attrs.H2ConsoleRisk = true
		}
		return
	}
}
