// Package version provides tolerant parsing of version expressions found
// in build manifests. Source ecosystems use varied spec syntaxes (ranges,
// carets, tildes, wildcards), so parsing extracts the leading numeric
// MAJOR.MINOR[.PATCH] prefix and coerces it through semver.
package version

import (
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// numericPrefix matches the first MAJOR.MINOR[.PATCH] sequence in a
// version expression such as "^2.7", "~3.10", ">=3.8,<4" or "2.7.5.RELEASE".
var numericPrefix = regexp.MustCompile(`(\d+)\.(\d+)(?:\.(\d+))?`)

// majorOnly matches a bare leading major number, e.g. "3.x" or "17".
var majorOnly = regexp.MustCompile(`(\d+)`)

// Info holds the numeric components recovered from a version expression.
type Info struct {
	// Raw is the original expression the components were extracted from.
	Raw string
	// Canonical is the MAJOR.MINOR.PATCH string recognised by semver.
	Canonical string
	Major     int
	Minor     int
	Patch     int
}

// Parse extracts the leading numeric version from expr.
// Returns ok=false when no MAJOR.MINOR pair is present.
func Parse(expr string) (Info, bool) {
	m := numericPrefix.FindString(expr)
	if m == "" {
		return Info{Raw: expr}, false
	}

	v, err := semver.NewVersion(m)
	if err != nil {
		return Info{Raw: expr}, false
	}

	return Info{
		Raw:       expr,
		Canonical: v.String(),
		Major:     int(v.Major()),
		Minor:     int(v.Minor()),
		Patch:     int(v.Patch()),
	}, true
}

// Major extracts only the leading major number from expr, tolerating
// expressions like "3.x", "^17" or "17.0.1". Returns 0 when absent.
func Major(expr string) int {
	m := majorOnly.FindString(expr)
	if m == "" {
		return 0
	}
	v, err := semver.NewVersion(m)
	if err != nil {
		return 0
	}
	return int(v.Major())
}
