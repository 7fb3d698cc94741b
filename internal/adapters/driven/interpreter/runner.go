// Package interpreter shells out to interpreter binaries to answer
// version queries. Every invocation carries a hard timeout so a wedged
// binary cannot stall project analysis.
package interpreter

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/VitalyTechSquad/mcp-ruleforge/internal/core/ports/driven"
)

// Ensure Runner implements the interface.
var _ driven.InterpreterRunner = (*Runner)(nil)

// Runner executes interpreter binaries on the host.
type Runner struct{}

// NewRunner creates an exec-backed interpreter runner.
func NewRunner() *Runner { return &Runner{} }

// Version runs `<path> --version` and returns trimmed combined output.
// Some interpreters print the version to stderr, so both streams are
// captured together.
func (r *Runner) Version(ctx context.Context, path string, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, path, "--version")
	out, err := cmd.CombinedOutput()
	if ctx.Err() == context.DeadlineExceeded {
		return "", fmt.Errorf("%s --version timed out after %s", path, timeout)
	}
	if err != nil {
		return "", fmt.Errorf("%s --version: %w", path, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// LookPath resolves name against PATH.
func (r *Runner) LookPath(name string) (string, bool) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", false
	}
	return path, true
}
