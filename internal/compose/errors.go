// Where: internal/compose/errors.go
// What: Child exit status extraction.
// Why: Propagate runtime exit codes verbatim instead of collapsing them to 1.
package compose

import (
	"errors"
	"os/exec"
)

// ExitCode maps a runner error to the process exit code to report.
// A nonzero child exit is the invocation's result, not an internal
// error, so its code passes through unchanged.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}

// IsChildExit reports whether the error is a nonzero child exit, as
// opposed to a failure to spawn or an internal error.
func IsChildExit(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}
