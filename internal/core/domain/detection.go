package domain

// Detection is the outcome of one analysis run. It is a tagged variant:
// exactly one attribute record is non-nil, and it is the one matching
// Category. Mixing attribute records across categories is not representable.
type Detection struct {
	Category Category

	SpringBoot *SpringBootAttrs
	JavaLegacy *JavaLegacyAttrs
	Angular    *AngularAttrs
	Vue        *VueAttrs
	Python     *PythonAttrs
	GitLabCI   *GitLabCIAttrs
}

// SpringBootAttrs holds attributes extracted by the Spring Boot probe.
type SpringBootAttrs struct {
	Version      string
	MajorVersion int

	IsLegacy       bool // 1.x
	IsModern       bool // 2.x
	IsLatest       bool // 3.x+
	RequiresJava17 bool

	UsesSpringSecurity bool
	UsesSpringDataJPA  bool
	UsesActuator       bool
	UsesWebFlux        bool
	UsesSpringCloud    bool

	DatabaseMySQL      bool
	DatabasePostgreSQL bool
	DatabaseH2         bool
	H2ConsoleRisk      bool

	SecurityPriority SecurityPriority
}

// JavaLegacyAttrs holds attributes extracted by the legacy Spring probe.
type JavaLegacyAttrs struct {
	WebInfPath      string
	SpringXMLConfig string
	SpringXMLFound  bool
	JSPFiles        []string // first few JSP paths, for reporting
	JSPFileCount    int

	IsMaven  bool
	IsGradle bool

	SpringVersion      string
	SpringMajorVersion int
	SpringMinorVersion int
	IsVeryLegacy       bool
	IsLegacy           bool
	IsOld              bool

	ServletVersion    string
	ServletVeryLegacy bool
	ServletLegacy     bool

	UsesSpringSecurity bool
	UsesSpringWebMVC   bool
	UsesSpringORM      bool

	UsesHibernate    bool
	HibernateVersion string
	UsesStruts       bool
	StrutsVersion    string
	StrutsRisk       bool
	UsesLog4j        bool
	Log4jVersion     string
	Log4jRisk        bool

	DatabaseMySQL     bool
	DatabaseOracle    bool
	DatabaseSQLServer bool

	SecurityPriority SecurityPriority
}

// AngularAttrs holds attributes extracted by the Angular probe.
type AngularAttrs struct {
	CLISchema    string
	CLIModern    bool
	CoreVersion  string
	MajorVersion int

	SupportsStandalone bool // 14+
	SupportsSignals    bool // 16+
	NewControlFlow     bool // 17+

	UsesMaterial bool
	UsesNgRx     bool
	IsPWA        bool
	HasSSR       bool
}

// VueAttrs holds attributes extracted by the Vue probe.
type VueAttrs struct {
	Version string
	IsNuxt  bool
}

// PythonAttrs holds attributes extracted by the Python probe.
type PythonAttrs struct {
	Indicators []string
	Frameworks []string

	IsDjango           bool
	DjangoVersion      string
	DjangoSettingsPath string
	IsFlask            bool
	FlaskVersion       string
	IsFastAPI          bool
	FastAPIVersion     string

	DebugEnabled      bool
	HardcodedSecret   bool
	Requirements      []string
	RiskyPackages     []string
	IsPoetry          bool
	IsPipenv          bool
	HasWSGI           bool
	HasASGI           bool
	HasPytest         bool
	HasTox            bool
	HasConftest       bool
	HasDocker         bool
	DatabaseSQLite    bool
	DatabasePostgres  bool
	DatabaseMySQL     bool

	Interpreter InterpreterInfo

	SecurityPriority SecurityPriority
}

// InterpreterInfo describes the Python interpreter resolved for a project.
// Source is one of "venv", "pyenv", "pyproject", "pipfile", "setup.py",
// "system" or empty when nothing was resolved.
type InterpreterInfo struct {
	Version      string
	VersionSpec  string // raw requirement expression, when version came from config
	Path         string
	Source       string
	MajorVersion int
	MinorVersion int
	IsVenv       bool
	VenvPath     string
}

// GitLabCIAttrs holds attributes extracted by the GitLab CI probe.
type GitLabCIAttrs struct {
	Stages     []string
	JobCount   int
	UsesImage  bool
	UsesDocker bool // docker:dind service or docker image
}

// Attributes flattens the active attribute record into a string-keyed map
// for transport output. Keys follow the probe-specific naming used in the
// operation results.
func (d *Detection) Attributes() map[string]any {
	if d == nil {
		return map[string]any{}
	}
	m := map[string]any{}
	switch {
	case d.SpringBoot != nil:
		a := d.SpringBoot
		putStr(m, "spring_boot_version", a.Version)
		putInt(m, "spring_boot_major_version", a.MajorVersion)
		putBool(m, "is_legacy", a.IsLegacy)
		putBool(m, "is_modern", a.IsModern)
		putBool(m, "is_latest", a.IsLatest)
		putBool(m, "requires_java17", a.RequiresJava17)
		putBool(m, "uses_spring_security", a.UsesSpringSecurity)
		putBool(m, "uses_spring_data_jpa", a.UsesSpringDataJPA)
		putBool(m, "uses_actuator", a.UsesActuator)
		putBool(m, "uses_webflux", a.UsesWebFlux)
		putBool(m, "uses_spring_cloud", a.UsesSpringCloud)
		putBool(m, "database_mysql", a.DatabaseMySQL)
		putBool(m, "database_postgresql", a.DatabasePostgreSQL)
		putBool(m, "database_h2", a.DatabaseH2)
		putBool(m, "h2_console_risk", a.H2ConsoleRisk)
		putPriority(m, a.SecurityPriority)
	case d.JavaLegacy != nil:
		a := d.JavaLegacy
		putStr(m, "web_inf_path", a.WebInfPath)
		putStr(m, "spring_xml_config", a.SpringXMLConfig)
		m["spring_xml_found"] = a.SpringXMLFound
		m["jsp_files_count"] = a.JSPFileCount
		putBool(m, "is_maven", a.IsMaven)
		putBool(m, "is_gradle", a.IsGradle)
		putStr(m, "spring_framework_version", a.SpringVersion)
		putInt(m, "spring_major_version", a.SpringMajorVersion)
		if a.SpringVersion != "" || a.SpringMajorVersion > 0 {
			m["spring_minor_version"] = a.SpringMinorVersion
		}
		putBool(m, "is_very_legacy", a.IsVeryLegacy)
		putBool(m, "is_legacy", a.IsLegacy)
		putBool(m, "is_old", a.IsOld)
		putStr(m, "servlet_version", a.ServletVersion)
		putBool(m, "servlet_very_legacy", a.ServletVeryLegacy)
		putBool(m, "servlet_legacy", a.ServletLegacy)
		m["uses_spring_security"] = a.UsesSpringSecurity
		m["uses_spring_webmvc"] = a.UsesSpringWebMVC
		m["uses_spring_orm"] = a.UsesSpringORM
		m["uses_hibernate"] = a.UsesHibernate
		putStr(m, "hibernate_version", a.HibernateVersion)
		m["uses_struts"] = a.UsesStruts
		putStr(m, "struts_version", a.StrutsVersion)
		putBool(m, "struts_security_risk", a.StrutsRisk)
		putBool(m, "uses_log4j", a.UsesLog4j)
		putStr(m, "log4j_version", a.Log4jVersion)
		putBool(m, "log4j_security_risk", a.Log4jRisk)
		putBool(m, "database_mysql", a.DatabaseMySQL)
		putBool(m, "database_oracle", a.DatabaseOracle)
		putBool(m, "database_sqlserver", a.DatabaseSQLServer)
		putPriority(m, a.SecurityPriority)
	case d.Angular != nil:
		a := d.Angular
		putStr(m, "angular_cli_version", a.CLISchema)
		putBool(m, "angular_cli_modern", a.CLIModern)
		putStr(m, "angular_core_version", a.CoreVersion)
		putInt(m, "angular_major_version", a.MajorVersion)
		putBool(m, "supports_standalone", a.SupportsStandalone)
		putBool(m, "supports_signals", a.SupportsSignals)
		putBool(m, "new_control_flow", a.NewControlFlow)
		putBool(m, "uses_angular_material", a.UsesMaterial)
		putBool(m, "uses_ngrx", a.UsesNgRx)
		putBool(m, "is_pwa", a.IsPWA)
		putBool(m, "has_ssr", a.HasSSR)
	case d.Vue != nil:
		a := d.Vue
		putStr(m, "vue_version", a.Version)
		putBool(m, "is_nuxt", a.IsNuxt)
	case d.Python != nil:
		a := d.Python
		if len(a.Indicators) > 0 {
			m["python_indicators"] = a.Indicators
		}
		m["frameworks_detected"] = a.Frameworks
		putBool(m, "is_django", a.IsDjango)
		putStr(m, "django_version", a.DjangoVersion)
		putStr(m, "django_settings_path", a.DjangoSettingsPath)
		putBool(m, "is_flask", a.IsFlask)
		putStr(m, "flask_version", a.FlaskVersion)
		putBool(m, "is_fastapi", a.IsFastAPI)
		putStr(m, "fastapi_version", a.FastAPIVersion)
		putBool(m, "debug_enabled", a.DebugEnabled)
		putBool(m, "hardcoded_secret_key", a.HardcodedSecret)
		if len(a.Requirements) > 0 {
			m["requirements"] = a.Requirements
		}
		if len(a.RiskyPackages) > 0 {
			m["risky_packages"] = a.RiskyPackages
		}
		putBool(m, "is_poetry", a.IsPoetry)
		putBool(m, "is_pipenv", a.IsPipenv)
		putBool(m, "has_wsgi", a.HasWSGI)
		putBool(m, "has_asgi", a.HasASGI)
		putBool(m, "has_pytest", a.HasPytest)
		putBool(m, "has_tox", a.HasTox)
		putBool(m, "has_conftest", a.HasConftest)
		putBool(m, "has_docker", a.HasDocker)
		putBool(m, "database_sqlite", a.DatabaseSQLite)
		putBool(m, "database_postgresql", a.DatabasePostgres)
		putBool(m, "database_mysql", a.DatabaseMySQL)
		putStr(m, "python_version", a.Interpreter.Version)
		putStr(m, "python_version_required", a.Interpreter.VersionSpec)
		putStr(m, "python_path", a.Interpreter.Path)
		putStr(m, "python_source", a.Interpreter.Source)
		if a.Interpreter.Version != "" {
			m["python_major_version"] = a.Interpreter.MajorVersion
			m["python_minor_version"] = a.Interpreter.MinorVersion
			m["is_venv"] = a.Interpreter.IsVenv
		}
		putStr(m, "venv_path", a.Interpreter.VenvPath)
		putPriority(m, a.SecurityPriority)
	case d.GitLabCI != nil:
		a := d.GitLabCI
		if len(a.Stages) > 0 {
			m["stages"] = a.Stages
		}
		putInt(m, "job_count", a.JobCount)
		putBool(m, "uses_image", a.UsesImage)
		putBool(m, "uses_docker", a.UsesDocker)
	}
	return m
}

func putStr(m map[string]any, key, val string) {
	if val != "" {
		m[key] = val
	}
}

func putInt(m map[string]any, key string, val int) {
	if val != 0 {
		m[key] = val
	}
}

func putBool(m map[string]any, key string, val bool) {
	if val {
		m[key] = val
	}
}

func putPriority(m map[string]any, p SecurityPriority) {
	if p != PriorityNone {
		m["security_priority"] = p.String()
	}
}
