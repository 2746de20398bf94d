// Where: internal/compose/runtime.go
// What: Runtime binary availability check.
// Why: Surface a missing runtime immediately instead of per-verb exec failures.
package compose

import (
	"errors"
	"fmt"
	"os/exec"
)

// ErrRuntimeUnavailable indicates the orchestration binary cannot be invoked.
var ErrRuntimeUnavailable = errors.New("container runtime unavailable")

// lookPath is swappable for tests.
var lookPath = exec.LookPath

// EnsureRuntime verifies the runtime binary is on PATH.
func EnsureRuntime() error {
	if _, err := lookPath(RuntimeBinary); err != nil {
		return fmt.Errorf("%w: %q not found in PATH", ErrRuntimeUnavailable, RuntimeBinary)
	}
	return nil
}
