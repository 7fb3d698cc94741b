package mcp

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/domain"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/ports/driving"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/logger"
)

// GenerateRulesInput is the input schema for the generate_rules tool.
type GenerateRulesInput struct {
	ProjectPath     string `json:"project_path,omitempty" jsonschema:"path to the project to analyze (defaults to the Cursor workspace or current directory)"`
	OutputFilename  string `json:"output_filename,omitempty" jsonschema:"output file name without extension (default: rules)"`
	CustomRulesPath string `json:"custom_rules_path,omitempty" jsonschema:"path to an .mdc file with custom rules to merge"`
	ProjectType     string `json:"project_type,omitempty" jsonschema:"project type to use instead of automatic detection"`
	Verbose         bool   `json:"verbose,omitempty" jsonschema:"emit detailed progress to stderr"`
}

// GenerateRulesOutput is the output schema for the generate_rules tool.
type GenerateRulesOutput struct {
	Success      bool            `json:"success"`
	ProjectPath  string          `json:"project_path,omitempty"`
	ProjectType  string          `json:"project_type,omitempty"`
	OutputFile   string          `json:"output_file,omitempty"`
	Technologies []string        `json:"technologies_detected,omitempty"`
	Message      string          `json:"message,omitempty"`
	Details      *GenerateDetail `json:"details,omitempty"`
	Error        string          `json:"error,omitempty"`
	Suggestion   string          `json:"suggestion,omitempty"`
}

// GenerateDetail carries secondary facts about the written file.
type GenerateDetail struct {
	FileSize     int64  `json:"file_size"`
	RelativePath string `json:"relative_path"`
}

// AnalyzeProjectInput is the input schema for the analyze_project tool.
type AnalyzeProjectInput struct {
	ProjectPath string `json:"project_path,omitempty" jsonschema:"path to the project to analyze (defaults to the Cursor workspace or current directory)"`
	Verbose     bool   `json:"verbose,omitempty" jsonschema:"emit detailed progress to stderr"`
}

// AnalyzeProjectOutput is the output schema for the analyze_project tool.
type AnalyzeProjectOutput struct {
	Success      bool           `json:"success"`
	ProjectPath  string         `json:"project_path,omitempty"`
	ProjectType  string         `json:"project_type,omitempty"`
	Technologies map[string]any `json:"detected_technologies,omitempty"`
	Message      string         `json:"message,omitempty"`
	Error        string         `json:"error,omitempty"`
	Suggestion   string         `json:"suggestion,omitempty"`
}

// DetectTechnologyInput is the input schema for the detect_technology tool.
type DetectTechnologyInput struct {
	ProjectPath string `json:"project_path,omitempty" jsonschema:"path to the project to inspect (defaults to the Cursor workspace or current directory)"`
}

// DetectTechnologyOutput is the output schema for the detect_technology tool.
type DetectTechnologyOutput struct {
	Success     bool            `json:"success"`
	ProjectPath string          `json:"project_path,omitempty"`
	Technology  *TechnologyInfo `json:"technology,omitempty"`
	RawDetails  map[string]any  `json:"raw_details,omitempty"`
	Error       string          `json:"error,omitempty"`
}

// TechnologyInfo is the curated view of one detection.
type TechnologyInfo struct {
	ProjectType string         `json:"project_type"`
	Details     map[string]any `json:"details"`
}

// ListTechnologiesInput is the (empty) input schema for
// list_supported_technologies.
type ListTechnologiesInput struct{}

// ListTechnologiesOutput is the output schema for list_supported_technologies.
type ListTechnologiesOutput struct {
	Success      bool                          `json:"success"`
	Technologies map[string]SupportedTechnology `json:"supported_technologies"`
	Total        int                           `json:"total_technologies"`
}

// SupportedTechnology describes one supported category.
type SupportedTechnology struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	DetectionFiles []string `json:"detection_files"`
	Features       []string `json:"features"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate_rules",
		Description: "Analyze a project and generate an adapted Cursor rule file under .cursor/rules/",
	}, s.handleGenerateRules)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_project",
		Description: "Detect the technology and version of a project without writing any files",
	}, s.handleAnalyzeProject)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "detect_technology",
		Description: "Return a curated summary of the technologies detected in a project",
	}, s.handleDetectTechnology)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_supported_technologies",
		Description: "List all technologies RuleForge can detect and generate rules for",
	}, s.handleListTechnologies)
}

// resolveProjectPath picks the project root: the explicit parameter, then
// the CURSOR_WORKSPACE environment variable, then the working directory.
func resolveProjectPath(provided string) string {
	if provided != "" {
		if abs, err := filepath.Abs(provided); err == nil {
			return abs
		}
		return provided
	}
	if ws := os.Getenv("CURSOR_WORKSPACE"); ws != "" {
		return ws
	}
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	return "."
}

// handleGenerateRules handles the generate_rules tool invocation. Expected
// failures come back as structured results, never as protocol errors.
func (s *Server) handleGenerateRules(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GenerateRulesInput,
) (*mcp.CallToolResult, GenerateRulesOutput, error) {
	logger.SetVerbose(input.Verbose)
	path := resolveProjectPath(input.ProjectPath)

	req := driving.GenerateRequest{
		ProjectPath:     path,
		OutputFilename:  input.OutputFilename,
		CustomRulesPath: input.CustomRulesPath,
		CategoryOverride: domain.Category(input.ProjectType),
	}

	result, err := s.ports.Generator.Generate(ctx, req)
	if err != nil {
		return nil, generateFailure(path, err), nil
	}

	output := GenerateRulesOutput{
		Success:      true,
		ProjectPath:  path,
		ProjectType:  result.Category.String(),
		OutputFile:   result.OutputPath,
		Technologies: result.Technologies,
		Message:      fmt.Sprintf("Rules generated successfully at: %s", result.OutputPath),
		Details: &GenerateDetail{
			FileSize:     result.FileSize,
			RelativePath: result.RelativePath,
		},
	}
	if len(output.Technologies) == 0 {
		output.Technologies = []string{"Basic analysis completed"}
	}
	return nil, output, nil
}

func generateFailure(path string, err error) GenerateRulesOutput {
	out := GenerateRulesOutput{
		Success:     false,
		ProjectPath: path,
		Error:       err.Error(),
	}
	switch {
	case errors.Is(err, domain.ErrInvalidPath):
		out.Error = fmt.Sprintf("path %q does not exist or is not a directory", path)
	case errors.Is(err, domain.ErrNoMatch):
		out.Error = "could not detect the project type"
		out.Suggestion = "specify the project type manually with the 'project_type' parameter"
	case errors.Is(err, domain.ErrUnknownCategory):
		out.Suggestion = "use list_supported_technologies to see valid project types"
	}
	return out
}

// handleAnalyzeProject handles the analyze_project tool invocation.
func (s *Server) handleAnalyzeProject(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeProjectInput,
) (*mcp.CallToolResult, AnalyzeProjectOutput, error) {
	logger.SetVerbose(input.Verbose)
	path := resolveProjectPath(input.ProjectPath)

	det, err := s.ports.Analyzer.Analyze(ctx, path)
	if err != nil {
		out := AnalyzeProjectOutput{Success: false, ProjectPath: path, Error: err.Error()}
		if errors.Is(err, domain.ErrInvalidPath) {
			out.Error = fmt.Sprintf("path %q does not exist or is not a directory", path)
		}
		return nil, out, nil
	}
	if det == nil {
		return nil, AnalyzeProjectOutput{
			Success:     false,
			ProjectPath: path,
			Error:       "could not detect the project type automatically",
			Suggestion:  "try specifying the type manually, or check that the project has recognizable configuration files",
		}, nil
	}

	return nil, AnalyzeProjectOutput{
		Success:      true,
		ProjectPath:  path,
		ProjectType:  det.Category.String(),
		Technologies: det.Attributes(),
		Message:      fmt.Sprintf("Project detected: %s", det.Category),
	}, nil
}

// handleDetectTechnology handles the detect_technology tool invocation.
func (s *Server) handleDetectTechnology(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DetectTechnologyInput,
) (*mcp.CallToolResult, DetectTechnologyOutput, error) {
	path := resolveProjectPath(input.ProjectPath)

	det, err := s.ports.Analyzer.Analyze(ctx, path)
	if err != nil {
		out := DetectTechnologyOutput{Success: false, ProjectPath: path, Error: err.Error()}
		if errors.Is(err, domain.ErrInvalidPath) {
			out.Error = fmt.Sprintf("path %q does not exist or is not a directory", path)
		}
		return nil, out, nil
	}
	if det == nil {
		return nil, DetectTechnologyOutput{
			Success:     false,
			ProjectPath: path,
			Error:       "no recognized technologies detected",
		}, nil
	}

	return nil, DetectTechnologyOutput{
		Success:     true,
		ProjectPath: path,
		Technology: &TechnologyInfo{
			ProjectType: det.Category.String(),
			Details:     curatedDetails(det),
		},
		RawDetails: det.Attributes(),
	}, nil
}

// curatedDetails maps the attributes most useful at a glance, per category.
func curatedDetails(det *domain.Detection) map[string]any {
	details := map[string]any{}
	switch {
	case det.SpringBoot != nil:
		a := det.SpringBoot
		if a.Version != "" {
			details["version"] = a.Version
		}
		if a.UsesSpringSecurity {
			details["spring_security"] = true
		}
		if a.UsesSpringDataJPA {
			details["spring_data_jpa"] = true
		}
		if a.UsesActuator {
			details["actuator"] = true
		}
	case det.Angular != nil:
		a := det.Angular
		if a.MajorVersion > 0 {
			details["version"] = a.MajorVersion
		}
		if a.SupportsStandalone {
			details["standalone_components"] = true
		}
		if a.SupportsSignals {
			details["signals_api"] = true
		}
	case det.Python != nil:
		a := det.Python
		if a.Interpreter.Version != "" {
			details["python_version"] = a.Interpreter.Version
		}
		if a.Interpreter.Path != "" {
			details["python_path"] = a.Interpreter.Path
		}
		if a.Interpreter.Source != "" {
			details["python_source"] = a.Interpreter.Source
		}
		if a.Interpreter.IsVenv {
			details["is_venv"] = true
		}
		if a.Interpreter.VenvPath != "" {
			details["venv_path"] = a.Interpreter.VenvPath
		}
		if len(a.Frameworks) > 0 {
			details["frameworks"] = a.Frameworks
		}
		if a.IsDjango {
			details["django"] = true
		}
		if a.IsFlask {
			details["flask"] = true
		}
		if a.IsFastAPI {
			details["fastapi"] = true
		}
	case det.JavaLegacy != nil:
		a := det.JavaLegacy
		if a.SpringVersion != "" {
			details["spring_version"] = a.SpringVersion
		}
		details["security_priority"] = a.SecurityPriority.String()
		if a.JSPFileCount > 0 {
			details["jsp_files"] = a.JSPFileCount
		}
	}
	return details
}

// handleListTechnologies handles the list_supported_technologies tool.
func (s *Server) handleListTechnologies(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListTechnologiesInput,
) (*mcp.CallToolResult, ListTechnologiesOutput, error) {
	infos := domain.Categories()
	out := ListTechnologiesOutput{
		Success:      true,
		Technologies: make(map[string]SupportedTechnology, len(infos)),
		Total:        len(infos),
	}
	for _, info := range infos {
		out.Technologies[string(info.ID)] = SupportedTechnology{
			Name:           info.Name,
			Description:    info.Description,
			DetectionFiles: info.MarkerFiles,
			Features:       info.Features,
		}
	}
	return nil, out, nil
}
