package adaptation

import (
	"fmt"

	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/domain"
)

func adaptAngular(doc *domain.RuleDocument, a *domain.AngularAttrs) {
	if a.MajorVersion > 0 {
		doc.AppendBlock(fmt.Sprintf("# Detected: Angular %d", a.MajorVersion))
		if a.SupportsStandalone {
			doc.AppendBlock(standaloneBlock)
		}
		if a.SupportsSignals {
			doc.AppendBlock(signalsBlock)
		}
		if a.NewControlFlow {
			doc.AppendBlock(controlFlowBlock)
		}
	}

	if a.UsesMaterial {
		doc.AppendBlock(materialBlock)
	}
	if a.UsesNgRx {
		doc.AppendBlock(ngrxBlock)
	}
	if a.IsPWA {
		doc.AppendBlock(pwaBlock)
	}
	if a.HasSSR {
		doc.AppendBlock(ssrBlock)
	}
}

const standaloneBlock = `# Symbols for Angular 14+
symbols:
  - label: "bootstrapApplication"
    description: "Bootstrap function for standalone applications (Angular 14+)."
  - label: "@Component (standalone: true)"
    description: "Standalone components that need no NgModule."`

const signalsBlock = `# Symbols for Angular 16+
symbols:
  - label: "signal()"
    description: "Signals API for reactive state management (Angular 16+)."
  - label: "computed()"
    description: "Computed values derived from signals (Angular 16+)."
  - label: "effect()"
    description: "Signal-driven side effects (Angular 16+)."`

const controlFlowBlock = `# Symbols for Angular 17+
symbols:
  - label: "@if"
    description: "New control flow syntax for conditionals (Angular 17+)."
  - label: "@for"
    description: "New control flow syntax for loops (Angular 17+)."
  - label: "@switch"
    description: "New control flow syntax for switch statements (Angular 17+)."`

const materialBlock = `# Files for Angular Material
find:
  - label: "angular-material.module.ts"
    description: "Angular Material module configuration."`

const ngrxBlock = `# Symbols for NgRx
symbols:
  - label: "@Injectable() Store"
    description: "NgRx store service for state management."
  - label: "createAction"
    description: "NgRx action factory."
  - label: "createReducer"
    description: "NgRx reducer factory."`

const pwaBlock = `# Files for PWA
find:
  - label: "manifest.json"
    description: "PWA application manifest."
  - label: "ngsw-config.json"
    description: "Angular Service Worker configuration."`

const ssrBlock = `# Files for SSR
find:
  - label: "app.server.ts"
    description: "Server configuration for SSR."
  - label: "main.server.ts"
    description: "Server entry point for SSR."`
