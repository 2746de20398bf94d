// Where: internal/app/volumes.go
// What: Remove-volumes command handler.
// Why: Guard persisted-volume deletion behind explicit confirmation.
package app

import (
	"fmt"
	"io"

	"github.com/docker/go-units"
	"github.com/yuseki/stackctl/internal/ui"
)

// runRemoveVolumes executes the 'remove-volumes' command: compose down
// with --volumes, then an SDK prune of any project volumes left behind.
func runRemoveVolumes(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.Volumes.Downer == nil || deps.Volumes.Pruner == nil {
		fmt.Fprintln(out, "remove-volumes: not implemented")
		return ExitError
	}

	target, err := resolveTarget(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	fmt.Fprintln(out, "WARNING! This will remove:")
	fmt.Fprintf(out, "  - all containers of environment %q\n", target.Env.Name)
	fmt.Fprintln(out, "  - all persisted volumes of the environment")
	fmt.Fprintln(out, "")
	proceed, code := confirmGuarded(deps, out, cli.RemoveVolumes.Yes, "Are you sure you want to continue?")
	if !proceed {
		return code
	}

	if err := deps.Volumes.Downer.Down(DownRequest{Target: target, RemoveVolumes: true}); err != nil {
		return exitFromChild(out, err)
	}

	deleted, reclaimed, err := deps.Volumes.Pruner.PruneVolumes(target.Stack.Project)
	if err != nil {
		return exitWithError(out, err)
	}

	console := ui.New(out)
	for _, name := range deleted {
		console.ItemPlain("deleted volume " + name)
	}
	console.Success(fmt.Sprintf("volumes removed (%s reclaimed)", units.HumanSize(float64(reclaimed))))
	return ExitOK
}
