// Package probes assembles the detection pipeline. Each technology has
// its own subpackage; this package only fixes their order.
package probes

import (
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/ports/driven"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/probes/angular"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/probes/gitlabci"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/probes/javalegacy"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/probes/python"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/probes/springboot"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/probes/vue"
)

// Defaults returns the probes in detection order. More specific probes run
// first: a Spring Boot project also has a pom.xml a generic Java check
// would match, and a CI file can sit in any repository, so gitlab_ci goes
// last.
func Defaults(runner driven.InterpreterRunner) []driven.Probe {
	return []driven.Probe{
		springboot.New(),
		javalegacy.New(),
		angular.New(),
		vue.New(),
		python.New(runner),
		gitlabci.New(),
	}
}
