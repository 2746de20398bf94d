// Where: internal/app/shell.go
// What: Shell command handler.
// Why: Attach interactive sessions to running services.
package app

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// runShell executes the 'shell' command which attaches an interactive
// session to one service. The session blocks until the operator exits
// it; that is the intended behavior, not a defect.
func runShell(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.Shell.Sheller == nil {
		fmt.Fprintln(out, "shell: not implemented")
		return ExitError
	}

	target, err := resolveTarget(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	service := strings.TrimSpace(cli.Shell.Service)
	if service == "" && isTerminal(os.Stdin) && deps.Shell.Lister != nil {
		selected, code, done := pickService(deps, deps.Shell.Lister, target, out,
			"Select service to attach to", false)
		if done {
			return code
		}
		service = selected
	}
	if service == "" {
		return exitWithError(out, fmt.Errorf("service is required: stackctl shell <service>"))
	}

	req := ShellRequest{Target: target, Service: service}
	if err := deps.Shell.Sheller.Shell(req); err != nil {
		return exitFromChild(out, err)
	}
	return ExitOK
}
