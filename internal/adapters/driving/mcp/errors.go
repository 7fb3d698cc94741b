// Package mcp provides an MCP (Model Context Protocol) server adapter for RuleForge.
// It enables AI assistants like Claude to analyze projects and generate Cursor rule files.
package mcp

import "errors"

// ErrMissingAnalyzerService is returned when the analyzer service is not provided.
var ErrMissingAnalyzerService = errors.New("mcp: analyzer service is required")

// ErrMissingGeneratorService is returned when the generator service is not provided.
var ErrMissingGeneratorService = errors.New("mcp: generator service is required")
