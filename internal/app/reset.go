// Where: internal/app/reset.go
// What: Reset-data command handler.
// Why: Guard the database drop behind explicit confirmation.
package app

import (
	"fmt"
	"io"

	"github.com/yuseki/stackctl/internal/ui"
)

// runResetData executes the 'reset-data' command which drops the
// primary data store. Guarded: the dispatcher is invoked at most once,
// and only after an affirmative answer.
func runResetData(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.Reset.Resetter == nil {
		fmt.Fprintln(out, "reset-data: not implemented")
		return ExitError
	}

	target, err := resolveTarget(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	fmt.Fprintf(out, "WARNING! This will drop the primary database of environment %q.\n", target.Env.Name)
	proceed, code := confirmGuarded(deps, out, cli.ResetData.Yes, "Are you sure you want to continue?")
	if !proceed {
		return code
	}

	if err := deps.Reset.Resetter.ResetData(target); err != nil {
		return exitFromChild(out, err)
	}

	ui.New(out).Success("data store reset")
	return ExitOK
}
