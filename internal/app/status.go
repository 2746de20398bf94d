// Where: internal/app/status.go
// What: Status command handler.
package app

import (
	"fmt"
	"io"
)

// runStatus executes the 'status' (ps) command which lists the stack's
// services through the runtime.
func runStatus(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.Status.Runner == nil {
		fmt.Fprintln(out, "status: not implemented")
		return ExitError
	}

	target, err := resolveTarget(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	req := StatusRequest{
		Target:    target,
		All:       cli.Status.All,
		ExtraArgs: cli.Status.ExtraArgs,
	}
	if err := deps.Status.Runner.Status(req); err != nil {
		return exitFromChild(out, err)
	}
	return ExitOK
}
