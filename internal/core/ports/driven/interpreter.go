package driven

import (
	"context"
	"time"
)

// InterpreterRunner invokes an external interpreter binary to query its
// version. The single implementation shells out; tests substitute fakes.
type InterpreterRunner interface {
	// Version runs `<path> --version` with a hard timeout and returns the
	// combined output. Returns an error on timeout, missing binary or
	// non-zero exit; callers degrade to "not detected".
	Version(ctx context.Context, path string, timeout time.Duration) (string, error)

	// LookPath resolves a bare command name against PATH.
	// Returns ok=false when the command is not installed.
	LookPath(name string) (string, bool)
}
