package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/domain"
)

// uriScheme is the custom URI scheme for RuleForge resources.
const uriScheme = "ruleforge://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource listing the supported technologies.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "technologies",
		Name:        "technologies",
		Description: "All technologies RuleForge can detect, with marker files and features",
		MIMEType:    "application/json",
	}, s.handleTechnologiesResource)

	// Template for base rule templates per category.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "templates/{category}",
		Name:        "rule-template",
		Description: "Base rule template for a technology category, before adaptation",
		MIMEType:    "text/plain",
	}, s.handleTemplateResource)
}

// handleTechnologiesResource returns the supported technology registry.
func (s *Server) handleTechnologiesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type entry struct {
		ID          string   `json:"id"`
		Name        string   `json:"name"`
		Description string   `json:"description"`
		MarkerFiles []string `json:"marker_files"`
		Features    []string `json:"features"`
	}

	infos := domain.Categories()
	entries := make([]entry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, entry{
			ID:          string(info.ID),
			Name:        info.Name,
			Description: info.Description,
			MarkerFiles: info.MarkerFiles,
			Features:    info.Features,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling technologies: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleTemplateResource returns the embedded base template for a category.
func (s *Server) handleTemplateResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Templates == nil {
		return nil, fmt.Errorf("template resources are not available")
	}

	raw := strings.TrimPrefix(req.Params.URI, uriScheme+"templates/")
	category, err := domain.ParseCategory(raw)
	if err != nil {
		return nil, fmt.Errorf("resource %s: %w", req.Params.URI, err)
	}

	doc, err := s.ports.Templates.Load(category)
	if err != nil {
		return nil, fmt.Errorf("loading template for %s: %w", category, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     doc.Encode(),
		}},
	}, nil
}
