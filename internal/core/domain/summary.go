package domain

import "fmt"

// Summary returns a short human-readable list of the main technologies
// found in this detection, for result messages.
func (d *Detection) Summary() []string {
	var out []string
	if d == nil {
		return out
	}
	switch {
	case d.SpringBoot != nil:
		if d.SpringBoot.Version != "" {
			out = append(out, fmt.Sprintf("Spring Boot %s", d.SpringBoot.Version))
		} else if d.SpringBoot.MajorVersion > 0 {
			out = append(out, fmt.Sprintf("Spring Boot %d.x", d.SpringBoot.MajorVersion))
		} else {
			out = append(out, "Spring Boot")
		}
	case d.JavaLegacy != nil:
		if d.JavaLegacy.SpringVersion != "" {
			out = append(out, fmt.Sprintf("Spring Framework %s", d.JavaLegacy.SpringVersion))
		} else {
			out = append(out, "Java Legacy Spring")
		}
	case d.Angular != nil:
		if d.Angular.MajorVersion > 0 {
			out = append(out, fmt.Sprintf("Angular %d", d.Angular.MajorVersion))
		} else {
			out = append(out, "Angular")
		}
	case d.Vue != nil:
		if d.Vue.IsNuxt {
			out = append(out, "Nuxt.js")
		}
		out = append(out, "Vue.js")
	case d.Python != nil:
		out = append(out, d.Python.Frameworks...)
		if d.Python.Interpreter.Version != "" {
			out = append(out, fmt.Sprintf("Python %s", d.Python.Interpreter.Version))
		} else if len(d.Python.Frameworks) == 0 {
			out = append(out, "Python")
		}
	case d.GitLabCI != nil:
		out = append(out, "GitLab CI/CD")
	}
	return out
}
