package adaptation

import (
	"fmt"
	"strings"

	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/domain"
)

func adaptJavaLegacy(doc *domain.RuleDocument, a *domain.JavaLegacyAttrs) {
	if a.SpringVersion != "" {
		doc.AppendBlock(detectionHeader("Spring Framework " + a.SpringVersion))
		switch {
		case a.IsVeryLegacy:
			doc.AppendBlock(`# CRITICAL ALERT: VERY LEGACY version detected
# This release has known CRITICAL vulnerabilities.
# URGENT upgrade required. High security risk.`)
		case a.IsLegacy:
			doc.AppendBlock(`# HIGH WARNING: LEGACY version detected
# This release has documented known vulnerabilities.
# Plan a priority upgrade.`)
		case a.IsOld:
			doc.AppendBlock(`# OLD version detected
# Consider an upgrade for security improvements.
# Apply available security patches.`)
		default:
			doc.AppendBlock(`# Reasonably modern Spring Framework version
# Keep the project current with security patches.`)
		}
	} else if a.SpringMajorVersion > 0 {
		doc.AppendBlock(detectionHeader(fmt.Sprintf("Spring Framework %d.x", a.SpringMajorVersion)))
	}

	if features := javaLegacyFeatures(a); len(features) > 0 {
		doc.AppendBlock(fmt.Sprintf(`# DETECTED TECHNOLOGIES: %s
# Rules have been adapted automatically for these technologies.`, strings.Join(features, ", ")))
	}

	if text := javaLegacyPriorityText(a.SecurityPriority); text != "" {
		doc.AppendBlock("# SECURITY PRIORITY: " + text)
	}

	if a.ServletVersion != "" {
		doc.AppendBlock("# SERVLET API: version " + a.ServletVersion + " detected")
		if a.ServletVeryLegacy {
			doc.AppendBlock("# Servlet API VERY LEGACY. Review web security configuration.")
		} else if a.ServletLegacy {
			doc.AppendBlock("# Servlet API LEGACY. Check for modern configuration options.")
		}
	}

	switch a.SpringMajorVersion {
	case 1:
		doc.AppendBlock(springFramework1Block)
	case 2:
		doc.AppendBlock(springFramework2Block)
	case 3:
		doc.AppendBlock(springFramework3Block)
	}

	if a.UsesSpringSecurity {
		doc.AppendBlock(legacySecurityBlock)
	}
	if a.UsesStruts {
		doc.AppendBlock(strutsBlock(a.StrutsVersion))
	}
	if a.UsesHibernate {
		doc.AppendBlock(hibernateBlock(a.HibernateVersion))
	}
	if a.UsesLog4j && a.Log4jRisk {
		doc.AppendBlock(log4jBlock(a.Log4jVersion))
	}
	if a.JSPFileCount > 0 {
		doc.AppendBlock(jspBlock(a.JSPFileCount))
	}
	if dbs := legacyDatabases(a); len(dbs) > 0 {
		doc.AppendBlock(jdbcBlock(dbs))
	}
	if a.IsMaven {
		doc.AppendBlock(mavenBlock)
	}
	if a.IsGradle {
		doc.AppendBlock(gradleBlock)
	}
	if a.SecurityPriority == domain.PriorityCritical {
		doc.AppendBlock(criticalPriorityBlock)
	}
}

func javaLegacyFeatures(a *domain.JavaLegacyAttrs) []string {
	var features []string
	if a.UsesSpringSecurity {
		features = append(features, "Spring Security")
	}
	if a.UsesSpringWebMVC {
		features = append(features, "Spring WebMVC")
	}
	if a.UsesSpringORM {
		features = append(features, "Spring ORM")
	}
	if a.UsesHibernate {
		features = append(features, "Hibernate ORM")
	}
	if a.UsesStruts {
		features = append(features, "Apache Struts (warning)")
	}
	if a.UsesLog4j {
		features = append(features, "Log4j (warning)")
	}
	if a.DatabaseMySQL {
		features = append(features, "MySQL")
	}
	if a.DatabaseOracle {
		features = append(features, "Oracle DB")
	}
	if a.DatabaseSQLServer {
		features = append(features, "SQL Server")
	}
	if a.JSPFileCount > 0 {
		features = append(features, fmt.Sprintf("JSP files (%d)", a.JSPFileCount))
	}
	return features
}

func javaLegacyPriorityText(p domain.SecurityPriority) string {
	switch p {
	case domain.PriorityCritical:
		return "CRITICAL - Requires immediate security action"
	case domain.PriorityHigh:
		return "HIGH - Plan an urgent security review"
	case domain.PriorityMedium:
		return "MEDIUM - Apply security best practices"
	case domain.PriorityLow:
		return "LOW - Keep current security practices"
	}
	return ""
}

func legacyDatabases(a *domain.JavaLegacyAttrs) []string {
	var dbs []string
	if a.DatabaseMySQL {
		dbs = append(dbs, "MySQL")
	}
	if a.DatabaseOracle {
		dbs = append(dbs, "Oracle")
	}
	if a.DatabaseSQLServer {
		dbs = append(dbs, "SQL Server")
	}
	return dbs
}

const springFramework1Block = `# CRITICAL rules for Spring Framework 1.x
find:
  - label: "**/*-servlet.xml"
    description: "CRITICAL 1.x: Legacy servlet configuration. Check for obsolete security settings."
  - label: "web.xml"
    description: "CRITICAL 1.x: Very legacy web descriptor. Check security filters and settings."

symbols:
  - label: "SimpleFormController"
    description: "LEGACY 1.x: Obsolete controller. High risk of validation vulnerabilities."
  - label: "MultiActionController"
    description: "LEGACY 1.x: Multi-action controller. Verify input validation."
  - label: "AbstractCommandController"
    description: "LEGACY 1.x: Abstract command controller. Verify safe data binding."
  - label: "BeanNameViewResolver"
    description: "LEGACY 1.x: View resolver. Verify no exposure of sensitive beans."`

const springFramework2Block = `# Rules for Spring Framework 2.x
find:
  - label: "applicationContext.xml"
    description: "LEGACY 2.x: XML configuration. Check security beans and datasources."

symbols:
  - label: "@Controller"
    description: "LEGACY 2.x: Annotation-based controller. Verify input validation."
  - label: "@RequestMapping"
    description: "LEGACY 2.x: Request mapping. Verify allowed HTTP methods."
  - label: "FormBackingObject"
    description: "LEGACY 2.x: Form backing object. Verify safe data binding."
  - label: "ModelAndView"
    description: "LEGACY 2.x: Model and view. Verify no sensitive data exposure."`

const springFramework3Block = `# Rules for Spring Framework 3.x
symbols:
  - label: "@RequestMapping"
    description: "3.x: Improved request mapping. Check method and path configuration."
  - label: "@PathVariable"
    description: "3.x: Path variables. Verify validation of URL parameters."
  - label: "@RequestParam"
    description: "3.x: Request parameters. Verify validation and sanitization."
  - label: "@ModelAttribute"
    description: "3.x: Model attributes. Verify safe data binding."`

const legacySecurityBlock = `# Rules for legacy Spring Security
find:
  - label: "security-context.xml"
    description: "LEGACY SECURITY: Spring Security XML configuration. Check for obsolete settings."
  - label: "spring-security.xml"
    description: "LEGACY SECURITY: Main security file. Check authentication and authorization."

symbols:
  - label: "<security:http>"
    description: "XML SECURITY: Legacy HTTP configuration. Check CSRF and session management."
  - label: "<security:authentication-manager>"
    description: "XML AUTH: Legacy manager. Check provider configuration."
  - label: "<security:user-service>"
    description: "XML USERS: User service in XML. Look for hardcoded credentials."
  - label: "<security:password-encoder>"
    description: "XML ENCODING: Password encoder. Verify secure algorithms."`

func strutsBlock(version string) string {
	return fmt.Sprintf(`# CRITICAL rules for Apache Struts %s
find:
  - label: "struts-config.xml"
    description: "CRITICAL STRUTS: Struts configuration. HIGH RISK of S2-XXX vulnerabilities."
  - label: "struts.xml"
    description: "CRITICAL STRUTS: Struts 2 configuration. Check version against known CVEs."

symbols:
  - label: "ActionSupport"
    description: "STRUTS: Action base class. Verify input validation."
  - label: "ActionForm"
    description: "STRUTS: Action forms. Verify validation and safe binding."
  - label: "ognl:"
    description: "CRITICAL STRUTS: OGNL expressions. HIGH RISK of remote code execution."
  - label: "%%{"
    description: "CRITICAL STRUTS: OGNL syntax. May allow malicious code execution."`, version)
}

func hibernateBlock(version string) string {
	return fmt.Sprintf(`# Rules for Hibernate %s
find:
  - label: "hibernate.cfg.xml"
    description: "HIBERNATE: Main configuration. Check credentials and connection settings."
  - label: "**/*.hbm.xml"
    description: "HIBERNATE: Mapping files. Check entity configuration."

symbols:
  - label: "createQuery("
    description: "CRITICAL HIBERNATE: Dynamic queries. Check against HQL injection."
  - label: "createSQLQuery("
    description: "CRITICAL HIBERNATE: Native SQL queries. HIGH RISK of SQL injection."
  - label: "Session.get("
    description: "HIBERNATE: Entity lookup. Verify access authorization."
  - label: "SessionFactory"
    description: "HIBERNATE: Session factory. Verify secure configuration."`, version)
}

func log4jBlock(version string) string {
	return fmt.Sprintf(`# CRITICAL rules for Log4j %s (KNOWN VULNERABILITY)
find:
  - label: "log4j.properties"
    description: "CRITICAL LOG4J: Log4j 1.x configuration. CHECK against known vulnerabilities."
  - label: "log4j.xml"
    description: "CRITICAL LOG4J: XML configuration. Risk of Log4Shell and related issues."

symbols:
  - label: "Logger.getLogger"
    description: "LOG4J 1.x: Legacy logger. Verify no logging of sensitive data."
  - label: "log.debug"
    description: "LOGGING: Debug logs. Verify no sensitive information exposure."
  - label: "log.info"
    description: "LOGGING: Info logs. Verify log content is safe."`, version)
}

func jspBlock(count int) string {
	return fmt.Sprintf(`# Rules for JSP (%d files detected)
find:
  - label: "**/*.jsp"
    description: "CRITICAL JSP: JSP pages. Look for XSS, unescaped expressions and business logic."
  - label: "**/*.jspf"
    description: "CRITICAL JSP: JSP fragments. Verify safe includes and validation."

symbols:
  - label: "<%%="
    description: "CRITICAL JSP: Output expressions. HIGH RISK of XSS when unescaped."
  - label: "<jsp:include"
    description: "JSP: Page inclusion. Verify safe paths and validation."
  - label: "<jsp:forward"
    description: "JSP: Page forwarding. Verify valid, authorized targets."
  - label: "request.getParameter"
    description: "CRITICAL JSP: HTTP parameters. Verify validation before use."
  - label: "pageContext.setAttribute"
    description: "JSP: Context attributes. Verify no sensitive data exposure."`, count)
}

func jdbcBlock(dbs []string) string {
	return fmt.Sprintf(`# Rules for databases: %s
symbols:
  - label: "DriverManager.getConnection"
    description: "CRITICAL DB: Direct connection. Verify credentials are not hardcoded."
  - label: "Statement.executeQuery"
    description: "CRITICAL DB: Direct query. HIGH RISK of SQL injection."
  - label: "Statement.execute"
    description: "CRITICAL DB: SQL execution. Verify use of PreparedStatement."
  - label: "PreparedStatement.setString"
    description: "DB: Prepared parameters. Safe approach against SQL injection."`, strings.Join(dbs, ", "))
}

const mavenBlock = `# Rules for Maven
find:
  - label: "pom.xml"
    description: "MAVEN: Project configuration. Check dependencies for vulnerabilities."
  - label: "settings.xml"
    description: "MAVEN: User configuration. Verify no credential exposure."`

const gradleBlock = `# Rules for Gradle
find:
  - label: "build.gradle"
    description: "GRADLE: Build script. Check dependencies and secure configuration."
  - label: "gradle.properties"
    description: "GRADLE: Properties. Verify no credential exposure."`

const criticalPriorityBlock = `# Additional rules for CRITICAL priority
symbols:
  - label: "FIXME"
    description: "CRITICAL: Code marked for repair. May indicate known vulnerabilities."
  - label: "TODO"
    description: "PENDING: Unfinished work. Check impact on security."
  - label: "XXX"
    description: "WARNING: Problem marker. Review for potential vulnerabilities."
  - label: "HACK"
    description: "CRITICAL: Temporary workaround. High vulnerability risk."`
