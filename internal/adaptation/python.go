package adaptation

import (
	"fmt"
	"strings"

	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/domain"
)

func adaptPython(doc *domain.RuleDocument, a *domain.PythonAttrs) {
	if len(a.Frameworks) > 0 || len(a.Indicators) > 0 || a.Interpreter.Version != "" {
		doc.AppendBlock(detectionHeader("Python project"))
		if a.Interpreter.Version != "" {
			doc.AppendBlock(interpreterBlock(&a.Interpreter))
		}
		if len(a.Frameworks) > 0 {
			doc.AppendBlock(fmt.Sprintf(`# DETECTED FRAMEWORKS: %s
# Rules have been adapted automatically for these frameworks.`, strings.Join(a.Frameworks, ", ")))
		}
		if len(a.Indicators) > 0 {
			doc.AppendBlock("# INDICATORS FOUND: " + strings.Join(a.Indicators, ", "))
		}
	}

	if text := pythonPriorityText(a.SecurityPriority); text != "" {
		doc.AppendBlock("# SECURITY PRIORITY: " + text)
	}

	if a.IsDjango {
		doc.AppendBlock(djangoBlock(orUnknown(a.DjangoVersion)))
		if a.DebugEnabled {
			doc.AppendBlock(djangoDebugBlock)
		}
		if a.HardcodedSecret {
			doc.AppendBlock(secretKeyBlock)
		}
		switch {
		case a.DatabaseSQLite:
			doc.AppendBlock(sqliteBlock)
		case a.DatabasePostgres:
			doc.AppendBlock(postgresBlock)
		case a.DatabaseMySQL:
			doc.AppendBlock(mysqlBlock)
		}
	}

	if a.IsFlask {
		doc.AppendBlock(flaskBlock(orUnknown(a.FlaskVersion)))
		if a.DebugEnabled {
			doc.AppendBlock(flaskDebugBlock)
		}
	}

	if a.IsFastAPI {
		doc.AppendBlock(fastAPIBlock(orUnknown(a.FastAPIVersion)))
	}

	if a.IsPoetry {
		doc.AppendBlock(poetryBlock)
	}
	if a.IsPipenv {
		doc.AppendBlock(pipenvBlock)
	}
	if len(a.Requirements) > 0 && len(a.RiskyPackages) > 0 {
		doc.AppendBlock(riskyPackagesBlock(a.RiskyPackages))
	}
	if a.HasWSGI {
		doc.AppendBlock(wsgiBlock)
	}
	if a.HasASGI {
		doc.AppendBlock(asgiBlock)
	}
	if a.HasPytest {
		doc.AppendBlock(pytestBlock)
	}
	if a.HasTox {
		doc.AppendBlock(toxBlock)
	}
	if a.HasDocker {
		doc.AppendBlock(dockerBlock)
	}
}

// interpreterBlock renders the resolved interpreter with its source and
// version-based advisories.
func interpreterBlock(info *domain.InterpreterInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# PYTHON: version %s", info.Version)
	if info.Path != "" {
		fmt.Fprintf(&b, "\n# PATH: %s", info.Path)
	}
	fmt.Fprintf(&b, "\n# SOURCE: %s", sourceLabel(info.Source))
	if info.IsVenv && info.VenvPath != "" {
		fmt.Fprintf(&b, "\n# VENV: %s", info.VenvPath)
	}
	switch {
	case info.MajorVersion == 2:
		b.WriteString("\n# WARNING: Python 2.x is END OF LIFE. Migrate to Python 3.x urgently.")
	case info.MajorVersion == 3 && info.MinorVersion > 0 && info.MinorVersion < 8:
		fmt.Fprintf(&b, "\n# WARNING: Python 3.%d has limited support. Consider upgrading.", info.MinorVersion)
	case info.MajorVersion == 3 && info.MinorVersion >= 11:
		fmt.Fprintf(&b, "\n# Python 3.%d is a modern version with performance improvements.", info.MinorVersion)
	}
	return b.String()
}

func sourceLabel(source string) string {
	switch source {
	case "venv":
		return "virtual environment"
	case "pyenv":
		return ".python-version file (pyenv)"
	case "pyproject":
		return "pyproject.toml"
	case "pipfile":
		return "Pipfile"
	case "setup.py":
		return "setup.py"
	case "system":
		return "system interpreter"
	}
	return source
}

func pythonPriorityText(p domain.SecurityPriority) string {
	switch p {
	case domain.PriorityHigh:
		return "HIGH - Insecure configuration detected"
	case domain.PriorityMedium:
		return "MEDIUM - Review dependencies and configuration"
	case domain.PriorityLow:
		return "LOW - Standard configuration detected"
	}
	return ""
}

func orUnknown(version string) string {
	if version == "" {
		return "(version not detected)"
	}
	return version
}

func djangoBlock(version string) string {
	return fmt.Sprintf(`# Rules for Django %s
find:
  - label: "settings/**/*.py"
    description: "CRITICAL DJANGO: Per-environment settings. Verify no secret exposure."
  - label: "**/migrations/*.py"
    description: "DJANGO: Database migrations. Verify no sensitive data in migrations."
  - label: "**/templatetags/*.py"
    description: "DJANGO: Template tags. Verify no sensitive data exposure in templates."

symbols:
  - label: "django.db.models.Model"
    description: "DJANGO: Data models. Check validations and sensitive fields."
  - label: "django.contrib.admin"
    description: "CRITICAL DJANGO: Admin interface. Check permissions and exposed fields."
  - label: "django.shortcuts.render"
    description: "DJANGO: Template rendering. Check context and exposed data."
  - label: "HttpResponse"
    description: "DJANGO: HTTP responses. Verify security headers."
  - label: "JsonResponse"
    description: "DJANGO: JSON responses. Verify no sensitive information exposure."`, version)
}

const djangoDebugBlock = `# WARNING: DEBUG=True detected
symbols:
  - label: "DEBUG = True"
    description: "CRITICAL DJANGO: Debug enabled. NEVER use in production."`

const secretKeyBlock = `# CRITICAL: hardcoded SECRET_KEY detected
symbols:
  - label: "SECRET_KEY = "
    description: "CRITICAL DJANGO: Hardcoded secret key. Use environment variables."`

const sqliteBlock = `# SQLite database detected
find:
  - label: "db.sqlite3"
    description: "DJANGO SQLite: SQLite database. Verify it is not versioned in production."`

const postgresBlock = `# PostgreSQL database detected
symbols:
  - label: "psycopg2"
    description: "DJANGO PostgreSQL: PostgreSQL driver. Verify secure connections."`

const mysqlBlock = `# MySQL database detected
symbols:
  - label: "MySQLdb"
    description: "DJANGO MySQL: MySQL driver. Verify secure connections and configuration."`

func flaskBlock(version string) string {
	return fmt.Sprintf(`# Rules for Flask %s
symbols:
  - label: "Flask(__name__)"
    description: "FLASK: Flask application. Verify secure configuration."
  - label: "@app.route"
    description: "FLASK: Application routes. Verify authentication and validation."
  - label: "request.form"
    description: "CRITICAL FLASK: Form data. Verify validation and sanitization."
  - label: "request.args"
    description: "CRITICAL FLASK: URL parameters. Verify validation against injection."
  - label: "request.json"
    description: "FLASK: JSON data. Verify structure and content validation."
  - label: "session["
    description: "FLASK: Sessions. Verify secure cookie configuration."
  - label: "render_template"
    description: "FLASK: Template rendering. Verify automatic escaping is enabled."
  - label: "make_response"
    description: "FLASK: HTTP responses. Verify security headers."`, version)
}

const flaskDebugBlock = `# WARNING: Flask debug mode detected
symbols:
  - label: "debug=True"
    description: "CRITICAL FLASK: Debug enabled. NEVER use in production."
  - label: "app.debug = True"
    description: "CRITICAL FLASK: Debug configured. Verify it never reaches production."`

func fastAPIBlock(version string) string {
	return fmt.Sprintf(`# Rules for FastAPI %s
symbols:
  - label: "FastAPI()"
    description: "FASTAPI: FastAPI application. Check CORS and middleware configuration."
  - label: "@app.get"
    description: "FASTAPI: GET endpoints. Verify parameter validation."
  - label: "@app.post"
    description: "CRITICAL FASTAPI: POST endpoints. Verify body validation and authentication."
  - label: "@app.put"
    description: "FASTAPI: PUT endpoints. Verify authorization and validation."
  - label: "@app.delete"
    description: "CRITICAL FASTAPI: DELETE endpoints. Verify strict authorization."
  - label: "Depends("
    description: "FASTAPI: Dependency injection. Verify dependency validation."
  - label: "HTTPException"
    description: "FASTAPI: HTTP exceptions. Verify no internal information exposure."
  - label: "Request"
    description: "FASTAPI: Request object. Verify input data validation."`, version)
}

const poetryBlock = `# Poetry project detected
find:
  - label: "pyproject.toml"
    description: "POETRY: Poetry configuration. Check dependencies and versions."`

const pipenvBlock = `# Pipenv project detected
find:
  - label: "Pipfile"
    description: "PIPENV: Pipenv configuration. Check dependencies and settings."
  - label: "Pipfile.lock"
    description: "PIPENV: Lock file. Verify dependency integrity."`

func riskyPackagesBlock(packages []string) string {
	return fmt.Sprintf(`# WARNING: risky packages detected
# Problematic packages: %s
symbols:
  - label: "import pickle"
    description: "CRITICAL: pickle package detected. Verify safe usage."
  - label: "import md5"
    description: "VULNERABLE: MD5 detected. Use stronger algorithms."`, strings.Join(packages, ", "))
}

const wsgiBlock = `# WSGI configuration detected
find:
  - label: "wsgi.py"
    description: "WSGI: WSGI server configuration. Verify production setup."`

const asgiBlock = `# ASGI configuration detected
find:
  - label: "asgi.py"
    description: "ASGI: ASGI server configuration. Verify safe async setup."`

const pytestBlock = `# Pytest testing framework detected
find:
  - label: "pytest.ini"
    description: "TESTING: Pytest configuration. Verify no test credential exposure."
  - label: "conftest.py"
    description: "TESTING: Fixture configuration. Verify fixtures are safe."`

const toxBlock = `# Tox detected for testing
find:
  - label: "tox.ini"
    description: "TESTING: Tox configuration. Verify safe test commands."`

const dockerBlock = `# Docker detected
find:
  - label: "Dockerfile"
    description: "DOCKER: Docker configuration. Verify non-root user and safe secrets."
  - label: "docker-compose.yml"
    description: "DOCKER: Orchestration. Verify network and volume configuration."`
