// Where: internal/app/restart.go
// What: Restart command handler.
package app

import (
	"fmt"
	"io"
	"os"
)

// runRestart executes the 'restart' command for the named services, or
// all services when none are named and no selection is made.
func runRestart(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.Restart.Restarter == nil {
		fmt.Fprintln(out, "restart: not implemented")
		return ExitError
	}

	target, err := resolveTarget(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	services := cli.Restart.Services
	if len(services) == 0 && isTerminal(os.Stdin) && deps.Restart.Lister != nil {
		selected, code, done := pickService(deps, deps.Restart.Lister, target, out,
			"Select service to restart", true)
		if done {
			return code
		}
		if selected != "" {
			services = []string{selected}
		}
	}

	req := RestartRequest{Target: target, Services: services}
	if err := deps.Restart.Restarter.Restart(req); err != nil {
		return exitFromChild(out, err)
	}
	return ExitOK
}
