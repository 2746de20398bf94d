// Where: internal/app/up.go
// What: Up command handler.
package app

import (
	"fmt"
	"io"

	"github.com/yuseki/stackctl/internal/config"
	"github.com/yuseki/stackctl/internal/ui"
)

// runUp executes the 'up' command which starts all services for the
// resolved environment.
func runUp(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.Up.Upper == nil {
		fmt.Fprintln(out, "up: not implemented")
		return ExitError
	}

	target, err := resolveTarget(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	req := UpRequest{
		Target:    target,
		Detach:    cli.Up.Detach,
		Build:     cli.Up.Build,
		ExtraArgs: cli.Up.ExtraArgs,
	}
	if err := deps.Up.Upper.Up(req); err != nil {
		return exitFromChild(out, err)
	}

	config.RememberMode(target.Env.Name)
	if req.Detach {
		ui.New(out).Success(fmt.Sprintf("environment %q is up", target.Env.Name))
	}
	return ExitOK
}
