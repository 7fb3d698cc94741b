// Package javalegacy detects pre-Boot Spring Framework web applications:
// WEB-INF layouts, web.xml deployment descriptors, Spring XML configs and
// JSP views, with dependency risk flags mined from the build manifest.
package javalegacy

import (
	"context"
	"encoding/xml"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/domain"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/ports/driven"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/logger"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/probes/maven"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/probes/scan"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/version"
)

// springVersionProperties are the property names legacy POMs commonly use
// to pin the Spring Framework version, in lookup order.
var springVersionProperties = []string{
	"spring.version",
	"spring-framework.version",
	"springframework.version",
	"spring.framework.version",
	"org.springframework.version",
}

var gradleSpringVersion = regexp.MustCompile(`springframework['"]:\s*['"]([0-9.]+)`)

// jspSamples is how many JSP paths are kept for reporting.
const jspSamples = 3

// Ensure Probe implements the interface.
var _ driven.Probe = (*Probe)(nil)

// Probe detects legacy Spring Framework + JSP projects.
type Probe struct{}

// New creates a legacy Spring probe.
func New() *Probe { return &Probe{} }

// Name returns the probe identifier.
func (p *Probe) Name() string { return "java_legacy_spring" }

// TryDetect requires a WEB-INF directory plus either a web.xml or a Spring
// XML config anywhere in the tree. Build manifests enrich the match with
// framework versions and risk flags but are never required.
func (p *Probe) TryDetect(_ context.Context, root string) (*domain.Detection, error) {
	webInf := filepath.Join(root, "src", "main", "webapp", "WEB-INF")
	if !scan.DirExists(webInf) {
		// Older Eclipse projects use WebContent.
		webInf = filepath.Join(root, "WebContent", "WEB-INF")
		if !scan.DirExists(webInf) {
			return nil, nil
		}
	}
	logger.Debug("javalegacy: found WEB-INF at %s", webInf)

	attrs := &domain.JavaLegacyAttrs{WebInfPath: webInf}
	p.scanTree(root, attrs)

	hasWebXML := scan.FileExists(filepath.Join(webInf, "web.xml"))
	if !hasWebXML && !attrs.SpringXMLFound {
		return nil, nil
	}

	p.enrichFromMaven(root, attrs)
	p.enrichFromGradle(root, attrs)
	if hasWebXML {
		p.enrichFromWebXML(webInf, attrs)
	}
	classifySpringVersion(attrs)

	return &domain.Detection{Category: domain.CategoryJavaLegacySpring, JavaLegacy: attrs}, nil
}

// springConfigPatterns match the conventional names of Spring XML
// configuration files at any depth.
var springConfigPatterns = []string{
	"**/applicationContext*.xml",
	"**/spring-servlet.xml",
	"**/*-context.xml",
}

// scanTree counts JSP views and finds Spring XML configuration.
func (p *Probe) scanTree(root string, attrs *domain.JavaLegacyAttrs) {
	attrs.JSPFileCount, attrs.JSPFiles = scan.Count(root, 0, jspSamples,
		"**/*.jsp", "**/*.jspf", "**/*.jspx")

	if rel, ok := scan.FindFirst(root, springConfigPatterns...); ok {
		attrs.SpringXMLFound = true
		attrs.SpringXMLConfig = rel
		logger.Debug("javalegacy: Spring XML config: %s", rel)
	}
}

func (p *Probe) enrichFromMaven(root string, attrs *domain.JavaLegacyAttrs) {
	pomPath := filepath.Join(root, "pom.xml")
	if !scan.FileExists(pomPath) {
		return
	}
	attrs.IsMaven = true

	pom, err := maven.Parse(pomPath)
	if err != nil {
		// Parse failure degrades to "no attributes from this file".
		logger.Warn("javalegacy: parsing %s: %v", pomPath, err)
		return
	}

	for _, prop := range springVersionProperties {
		if v := pom.Properties.Get(prop); v != "" {
			attrs.SpringVersion = v
			break
		}
	}

	for _, dep := range pom.Dependencies {
		switch {
		case dep.GroupID == "org.springframework":
			if attrs.SpringVersion == "" && dep.Version != "" {
				attrs.SpringVersion = dep.Version
			}
			switch {
			case strings.Contains(dep.ArtifactID, "spring-security"):
				attrs.UsesSpringSecurity = true
			case strings.Contains(dep.ArtifactID, "spring-webmvc"):
				attrs.UsesSpringWebMVC = true
			case strings.Contains(dep.ArtifactID, "spring-orm"):
				attrs.UsesSpringORM = true
			}
		case dep.GroupID == "org.hibernate" && strings.Contains(dep.ArtifactID, "hibernate"):
			attrs.UsesHibernate = true
			attrs.HibernateVersion = dep.Version
		case dep.GroupID == "org.apache.struts" || strings.Contains(dep.ArtifactID, "struts"):
			attrs.UsesStruts = true
			if dep.Version != "" {
				attrs.StrutsVersion = dep.Version
				attrs.StrutsRisk = true
			}
		case dep.GroupID == "log4j" && strings.Contains(dep.ArtifactID, "log4j"):
			attrs.UsesLog4j = true
			attrs.Log4jVersion = dep.Version
			if strings.HasPrefix(dep.Version, "1.") {
				attrs.Log4jRisk = true
			}
		case dep.GroupID == "mysql" && strings.Contains(dep.ArtifactID, "mysql-connector"):
			attrs.DatabaseMySQL = true
		case dep.GroupID == "oracle" && strings.Contains(dep.ArtifactID, "ojdbc"):
			attrs.DatabaseOracle = true
		case dep.GroupID == "com.microsoft.sqlserver" && strings.Contains(dep.ArtifactID, "mssql-jdbc"):
			attrs.DatabaseSQLServer = true
		}
	}
}

func (p *Probe) enrichFromGradle(root string, attrs *domain.JavaLegacyAttrs) {
	content, ok := scan.ReadText(filepath.Join(root, "build.gradle"))
	if !ok {
		return
	}
	attrs.IsGradle = true
	if m := gradleSpringVersion.FindStringSubmatch(content); m != nil && attrs.SpringVersion == "" {
		attrs.SpringVersion = m[1]
	}
}

// webApp carries the version attribute of the web-app root element.
type webApp struct {
	XMLName xml.Name `xml:"web-app"`
	Version string   `xml:"version,attr"`
}

// enrichFromWebXML reads the servlet spec version from the deployment
// descriptor. The version indicates how old the project's web stack is:
// below 2.5 is very legacy, below 3.0 legacy.
func (p *Probe) enrichFromWebXML(webInf string, attrs *domain.JavaLegacyAttrs) {
	data, err := os.ReadFile(filepath.Join(webInf, "web.xml"))
	if err != nil {
		return
	}
	var wa webApp
	if err := xml.Unmarshal(data, &wa); err != nil {
		logger.Warn("javalegacy: parsing web.xml: %v", err)
		return
	}
	if wa.Version == "" {
		return
	}
	attrs.ServletVersion = wa.Version
	if info, ok := version.Parse(wa.Version); ok {
		switch {
		case info.Major < 2 || (info.Major == 2 && info.Minor < 5):
			attrs.ServletVeryLegacy = true
		case info.Major == 2:
			attrs.ServletLegacy = true
		}
	}
}

// classifySpringVersion derives the framework risk level. Thresholds:
// below 2.5 critical, below 3.2 high, 3.x medium, later low.
func classifySpringVersion(attrs *domain.JavaLegacyAttrs) {
	if attrs.SpringVersion == "" {
		return
	}
	info, ok := version.Parse(attrs.SpringVersion)
	if !ok {
		return
	}
	attrs.SpringMajorVersion = info.Major
	attrs.SpringMinorVersion = info.Minor

	switch {
	case info.Major == 1 || (info.Major == 2 && info.Minor < 5):
		attrs.SecurityPriority = domain.PriorityCritical
		attrs.IsVeryLegacy = true
	case info.Major == 2 || (info.Major == 3 && info.Minor < 2):
		attrs.SecurityPriority = domain.PriorityHigh
		attrs.IsLegacy = true
	case info.Major == 3:
		attrs.SecurityPriority = domain.PriorityMedium
		attrs.IsOld = true
	default:
		attrs.SecurityPriority = domain.PriorityLow
	}
}
