// Package rulefile writes adapted rule documents into a project's
// .cursor/rules directory and reads existing .mdc files back.
package rulefile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/domain"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/ports/driven"
	"github.com/VitalyTechSquad/mcp-ruleforge/internal/logger"
)

// rulesSubdir is where Cursor expects project rule files.
const rulesSubdir = ".cursor/rules"

// Ensure Writer implements the interface.
var _ driven.RuleWriter = (*Writer)(nil)

// Writer persists rule documents on the local filesystem.
type Writer struct{}

// NewWriter creates a filesystem rule writer.
func NewWriter() *Writer { return &Writer{} }

// Write stores doc under <root>/.cursor/rules/<filename>. A filename
// without the .mdc extension gets it appended. The content lands in a
// temporary file first and is renamed into place, so a failed write never
// leaves a truncated rule file.
func (w *Writer) Write(root, filename string, doc *domain.RuleDocument) (string, error) {
	if !strings.EqualFold(filepath.Ext(filename), ".mdc") {
		filename += ".mdc"
	}

	dir := filepath.Join(root, filepath.FromSlash(rulesSubdir))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create rules directory %s: %w: %v", dir, domain.ErrWriteFailed, err)
	}

	target := filepath.Join(dir, filename)
	tmp, err := os.CreateTemp(dir, filename+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("create temp file in %s: %w: %v", dir, domain.ErrWriteFailed, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(doc.Encode()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("write %s: %w: %v", target, domain.ErrWriteFailed, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("close %s: %w: %v", target, domain.ErrWriteFailed, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("rename into %s: %w: %v", target, domain.ErrWriteFailed, err)
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		abs = target
	}
	logger.Debug("rulefile: wrote %s", abs)
	return abs, nil
}

// Read loads an .mdc file from disk.
func (w *Writer) Read(path string) (*domain.RuleDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule file %s: %w", path, err)
	}
	return domain.ParseRuleDocument(string(data)), nil
}
