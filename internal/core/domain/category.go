package domain

// Category identifies a detectable project kind.
type Category string

const (
	// CategoryUnknown means no probe recognised the project.
	CategoryUnknown Category = ""
	// CategorySpringBoot is a modern Spring Boot project (1.x-3.x).
	CategorySpringBoot Category = "springboot"
	// CategoryJavaLegacySpring is a pre-Boot Spring Framework + JSP web app.
	CategoryJavaLegacySpring Category = "java_legacy_spring"
	// CategoryAngular is an Angular frontend application.
	CategoryAngular Category = "angular"
	// CategoryVue is a Vue.js frontend application.
	CategoryVue Category = "vue"
	// CategoryPython is a Python project, optionally with a web framework.
	CategoryPython Category = "python"
	// CategoryGitLabCI is a repository carrying a GitLab CI/CD pipeline.
	CategoryGitLabCI Category = "gitlab_ci"
)

// String returns the category identifier, or "unknown" for the zero value.
func (c Category) String() string {
	if c == CategoryUnknown {
		return "unknown"
	}
	return string(c)
}

// Valid reports whether c is one of the supported categories.
func (c Category) Valid() bool {
	switch c {
	case CategorySpringBoot, CategoryJavaLegacySpring, CategoryAngular,
		CategoryVue, CategoryPython, CategoryGitLabCI:
		return true
	}
	return false
}

// ParseCategory converts a user-supplied string into a Category.
// Returns ErrUnknownCategory for anything outside the closed set.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return CategoryUnknown, ErrUnknownCategory
	}
	return c, nil
}

// CategoryInfo describes a supported category for the listing operation.
type CategoryInfo struct {
	// ID is the category identifier.
	ID Category
	// Name is the human-readable display name.
	Name string
	// Description provides a brief explanation of what the category covers.
	Description string
	// MarkerFiles lists the filenames whose presence drives detection.
	MarkerFiles []string
	// Features lists what the probe extracts for this category.
	Features []string
}

// Categories returns the static registry of supported categories in
// detection priority order. More specific probes come first so a narrow
// signature is never masked by a broad one.
func Categories() []CategoryInfo {
	return []CategoryInfo{
		{
			ID:          CategorySpringBoot,
			Name:        "Spring Boot",
			Description: "Modern Spring Boot projects (versions 1.x, 2.x, 3.x)",
			MarkerFiles: []string{"pom.xml", "build.gradle", "application.properties"},
			Features: []string{
				"Full version detection",
				"Spring Security analysis",
				"Spring Data JPA detection",
				"Spring Boot Actuator alerts",
				"Version-specific security rules",
			},
		},
		{
			ID:          CategoryJavaLegacySpring,
			Name:        "Java Legacy Spring",
			Description: "Legacy Java web applications with Spring Framework and JSP",
			MarkerFiles: []string{"web.xml", "applicationContext.xml", "*.jsp"},
			Features: []string{
				"Legacy Spring Framework detection",
				"Critical vulnerability analysis",
				"Log4j 1.x detection",
				"Struts detection",
				"Security prioritisation",
			},
		},
		{
			ID:          CategoryAngular,
			Name:        "Angular",
			Description: "Angular applications (versions 14+)",
			MarkerFiles: []string{"angular.json", "package.json"},
			Features: []string{
				"Major version detection",
				"Standalone components support",
				"Signals API detection (v16+)",
				"New control flow syntax (v17+)",
				"NgRx and Angular Material analysis",
			},
		},
		{
			ID:          CategoryVue,
			Name:        "Vue.js",
			Description: "Vue.js applications (2.x and 3.x)",
			MarkerFiles: []string{"package.json", "vue.config.js", "vite.config.js"},
			Features: []string{
				"Version detection",
				"Nuxt.js support",
				"XSS security rules",
				"Composition API patterns",
			},
		},
		{
			ID:          CategoryPython,
			Name:        "Python",
			Description: "Python projects with web frameworks",
			MarkerFiles: []string{"requirements.txt", "pyproject.toml", "manage.py", ".python-version", "Pipfile"},
			Features: []string{
				"Automatic Python version detection",
				"Interpreter path resolution",
				"Virtual environment support (venv, .venv, env)",
				"pyenv support (.python-version)",
				"Django detection",
				"Flask detection",
				"FastAPI detection",
				"Dependency analysis",
				"PEP 8 rules",
			},
		},
		{
			ID:          CategoryGitLabCI,
			Name:        "GitLab CI/CD",
			Description: "GitLab CI/CD pipelines",
			MarkerFiles: []string{".gitlab-ci.yml"},
			Features: []string{
				"Pipeline analysis",
				"DevSecOps best practices",
				"Secret detection",
				"Docker configuration",
			},
		},
	}
}
