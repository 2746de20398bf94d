// Where: internal/app/down.go
// What: Down command handler.
package app

import (
	"fmt"
	"io"

	"github.com/yuseki/stackctl/internal/ui"
)

// runDown executes the 'down' command which stops and removes all
// services for the resolved environment. Volumes are untouched; that is
// what the guarded remove-volumes verb is for.
func runDown(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.Down.Downer == nil {
		fmt.Fprintln(out, "down: not implemented")
		return ExitError
	}

	target, err := resolveTarget(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	req := DownRequest{
		Target:    target,
		ExtraArgs: cli.Down.ExtraArgs,
	}
	if err := deps.Down.Downer.Down(req); err != nil {
		return exitFromChild(out, err)
	}

	ui.New(out).Success(fmt.Sprintf("environment %q is down", target.Env.Name))
	return ExitOK
}
