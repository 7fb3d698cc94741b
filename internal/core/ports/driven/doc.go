// Package driven defines interfaces for infrastructure the core depends on:
// detection probes, template storage, rule file writing and interpreter
// invocation. These are the "driven" ports in hexagonal architecture
// terminology - the application drives them.
//
// Implementations live in internal/probes and internal/adapters/driven.
package driven
