// Where: internal/app/exit.go
// What: Exit code policy and error reporting helpers.
// Why: Keep child exit codes, cancellations, and internal errors distinct.
package app

import (
	"fmt"
	"io"

	"github.com/yuseki/stackctl/internal/compose"
)

const (
	// ExitOK is returned on success.
	ExitOK = 0
	// ExitError is returned for internal errors and failed checks.
	ExitError = 1
	// ExitCancelled is reserved for a guarded action declined by the
	// operator, so callers can tell cancellation from failure.
	ExitCancelled = 3
)

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintf(out, "✗ %v\n", err)
	return ExitError
}

// exitFromChild converts a dispatch result into the process exit code.
// A nonzero child exit passes through verbatim; the child has already
// written its diagnostics to stderr, so nothing is reprinted.
func exitFromChild(out io.Writer, err error) int {
	if err == nil {
		return ExitOK
	}
	if compose.IsChildExit(err) {
		return compose.ExitCode(err)
	}
	return exitWithError(out, err)
}
