package adaptation

import (
	"fmt"
	"strings"

	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/domain"
)

func adaptSpringBoot(doc *domain.RuleDocument, a *domain.SpringBootAttrs) {
	if a.Version != "" {
		doc.AppendBlock(detectionHeader("Spring Boot " + a.Version))
		switch {
		case a.MajorVersion == 1:
			doc.AppendBlock(`# WARNING: LEGACY version detected
# This release has known vulnerabilities and limited support.
# Upgrading to a modern version is strongly recommended.`)
		case a.MajorVersion == 2:
			doc.AppendBlock(`# STABLE version detected
# Spring Boot 2.x is a mature release with active security support.`)
		case a.MajorVersion >= 3:
			doc.AppendBlock(`# MODERN version detected
# Spring Boot 3.x ships the latest security features.
# Requires Java 17+ and Spring Framework 6+.`)
		}
	} else if a.MajorVersion > 0 {
		doc.AppendBlock(detectionHeader(fmt.Sprintf("Spring Boot %d.x", a.MajorVersion)))
	}

	if features := springBootFeatures(a); len(features) > 0 {
		doc.AppendBlock(fmt.Sprintf(`# DETECTED FEATURES: %s
# Rules have been adapted automatically for these technologies.`, strings.Join(features, ", ")))
	}

	if text := springBootPriorityText(a.SecurityPriority); text != "" {
		doc.AppendBlock("# SECURITY PRIORITY: " + text)
	}

	if a.MajorVersion > 0 {
		switch {
		case a.IsLegacy:
			doc.AppendBlock(springBoot1Block)
		case a.IsModern:
			doc.AppendBlock(springBoot2Block)
		case a.IsLatest:
			doc.AppendBlock(springBoot3Block)
		}
	}

	if a.UsesSpringSecurity {
		doc.AppendBlock(springSecurityBlock)
	}
	if a.UsesActuator {
		doc.AppendBlock(actuatorBlock)
	}
	if a.UsesSpringDataJPA {
		doc.AppendBlock(dataJPABlock)
	}
	if a.DatabaseH2 && a.H2ConsoleRisk {
		doc.AppendBlock(h2ConsoleBlock)
	}
	if a.UsesWebFlux {
		doc.AppendBlock(webFluxBlock)
	}
	if a.UsesSpringCloud {
		doc.AppendBlock(springCloudBlock)
	}
	if a.SecurityPriority == domain.PriorityHigh {
		doc.AppendBlock(highPriorityBlock)
	}
}

func springBootFeatures(a *domain.SpringBootAttrs) []string {
	var features []string
	if a.UsesSpringSecurity {
		features = append(features, "Spring Security")
	}
	if a.UsesSpringDataJPA {
		features = append(features, "Spring Data JPA")
	}
	if a.UsesActuator {
		features = append(features, "Spring Boot Actuator")
	}
	if a.UsesWebFlux {
		features = append(features, "Spring WebFlux")
	}
	if a.UsesSpringCloud {
		features = append(features, "Spring Cloud")
	}
	if a.DatabaseH2 {
		features = append(features, "H2 Database")
	}
	if a.DatabaseMySQL {
		features = append(features, "MySQL")
	}
	if a.DatabasePostgreSQL {
		features = append(features, "PostgreSQL")
	}
	return features
}

func springBootPriorityText(p domain.SecurityPriority) string {
	switch p {
	case domain.PriorityHigh:
		return "HIGH - Requires immediate security review"
	case domain.PriorityMedium:
		return "MEDIUM - Apply security best practices"
	case domain.PriorityLow:
		return "LOW - Modern version with sane defaults"
	}
	return ""
}

func detectionHeader(subject string) string {
	const bar = "# ============================================================================="
	return bar + "\n# AUTOMATIC DETECTION: " + subject + "\n" + bar
}

const springBoot1Block = `# CRITICAL rules for Spring Boot 1.x (LEGACY)
find:
  - label: "application.properties"
    description: "CRITICAL LEGACY: Look for obsolete security settings and hardcoded credentials."
  - label: "SecurityConfiguration.java"
    description: "CRITICAL LEGACY: Legacy security configuration. Check for obsolete settings."

symbols:
  - label: "HttpSecurity"
    description: "CRITICAL LEGACY: HTTP Security v4 configuration. Check for obsolete settings."
  - label: "@EnableGlobalMethodSecurity"
    description: "LEGACY: Obsolete annotation in Spring Boot 1.x. Migrate to modern configuration."
  - label: "WebSecurityConfigurerAdapter"
    description: "CRITICAL LEGACY: Obsolete adapter. High risk of insecure configuration."
  - label: "authorizeRequests()"
    description: "LEGACY: Obsolete authorization method. Verify secure configuration."`

const springBoot2Block = `# Rules for Spring Boot 2.x (MODERN)
symbols:
  - label: "@EnableWebSecurity"
    description: "SECURITY: Modern Spring Security 5+ configuration. Verify complete setup."
  - label: "SecurityFilterChain"
    description: "MODERN: Security filter chain bean. Verify proper configuration."
  - label: "authorizeHttpRequests()"
    description: "MODERN: Current HTTP authorization method. Verify access rules."`

const springBoot3Block = `# Rules for Spring Boot 3.x (LATEST)
find:
  - label: "SecurityConfig.java"
    description: "MODERN: Spring Boot 3+ security configuration. Check usage of new features."

symbols:
  - label: "requestMatchers()"
    description: "MODERN: New request matching method in Spring Security 6+."
  - label: "@EnableMethodSecurity"
    description: "MODERN: New method security annotation in Spring Boot 3+."
  - label: "Observation"
    description: "NEW: Spring Boot 3+ observability API. Verify no sensitive data exposure."`

const springSecurityBlock = `# Rules for Spring Security
find:
  - label: "UserDetailsService.java"
    description: "SECURITY: User details service. Verify secure implementation."
  - label: "PasswordEncoder.java"
    description: "CRITICAL: Password encoder. Verify secure algorithms (BCrypt)."

symbols:
  - label: "@PreAuthorize"
    description: "AUTHORIZATION: Fine-grained access control. Verify safe SpEL expressions."
  - label: "BCryptPasswordEncoder"
    description: "SECURITY: Secure password encoder. Verify proper configuration."
  - label: "NoOpPasswordEncoder"
    description: "CRITICAL: Encoder WITHOUT hashing. NEVER use in production."`

const actuatorBlock = `# CRITICAL rules for Spring Boot Actuator
find:
  - label: "application.properties"
    description: "CRITICAL ACTUATOR: Verify endpoints are protected in production."

symbols:
  - label: "management.endpoints.web.exposure.include"
    description: "CRITICAL: Exposed endpoints. Verify the value is not '*' in production."
  - label: "/actuator/health"
    description: "ENDPOINT: Health check. Verify it exposes no sensitive information."
  - label: "/actuator/env"
    description: "CRITICAL: Environment endpoint. HIGH RISK of secret exposure."
  - label: "/actuator/configprops"
    description: "CRITICAL: Configuration properties. May expose credentials."`

const dataJPABlock = `# Rules for Spring Data JPA
symbols:
  - label: "@Query"
    description: "CRITICAL: Custom queries. Check native queries against SQL injection."
  - label: "nativeQuery = true"
    description: "CRITICAL: Native SQL query. HIGH RISK of SQL injection without parameters."
  - label: "EntityManager.createQuery"
    description: "CRITICAL: Dynamic query. Verify use of prepared parameters."`

const h2ConsoleBlock = `# CRITICAL rules for H2 Database
find:
  - label: "application.properties"
    description: "CRITICAL H2: Verify h2.console.enabled=false in production."

symbols:
  - label: "spring.h2.console.enabled"
    description: "CRITICAL: H2 console. NEVER enable in production (direct DB access)."
  - label: "/h2-console"
    description: "CRITICAL: H2 console endpoint. Verify it is disabled in production."`

const webFluxBlock = `# Rules for Spring WebFlux (reactive)
symbols:
  - label: "ServerRequest"
    description: "REACTIVE: Reactive request. Verify input validation."
  - label: "ServerResponse"
    description: "REACTIVE: Reactive response. Verify security headers."
  - label: "@EnableWebFluxSecurity"
    description: "SECURITY: Reactive security configuration. Verify complete setup."`

const springCloudBlock = `# Rules for Spring Cloud
find:
  - label: "bootstrap.yml"
    description: "CLOUD CONFIG: Bootstrap configuration. Check secrets and secure endpoints."

symbols:
  - label: "@EnableConfigServer"
    description: "CONFIG SERVER: Configuration server. Verify authentication and encryption."
  - label: "spring.cloud.config.uri"
    description: "CONFIG: Config server URI. Verify secure connection (HTTPS)."`

const highPriorityBlock = `# Additional rules for HIGH security priority
symbols:
  - label: "LEGACY_CONFIG"
    description: "CRITICAL: Legacy configuration that may carry known vulnerabilities."
  - label: "deprecated"
    description: "OBSOLETE: Code marked deprecated. Check for urgent updates."`
