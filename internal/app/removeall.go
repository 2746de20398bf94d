// Where: internal/app/removeall.go
// What: Remove-all command handler.
// Why: Guard full environment teardown behind explicit confirmation.
package app

import (
	"fmt"
	"io"

	"github.com/docker/go-units"
	"github.com/yuseki/stackctl/internal/ui"
)

// runRemoveAll executes the 'remove-all' command which deletes the
// environment's containers, networks, volumes, and images.
func runRemoveAll(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.RemoveAll.Downer == nil || deps.RemoveAll.Pruner == nil {
		fmt.Fprintln(out, "remove-all: not implemented")
		return ExitError
	}

	target, err := resolveTarget(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	fmt.Fprintln(out, "WARNING! This will remove:")
	fmt.Fprintf(out, "  - all containers of environment %q\n", target.Env.Name)
	fmt.Fprintln(out, "  - all networks of the environment")
	fmt.Fprintln(out, "  - all persisted volumes of the environment")
	fmt.Fprintln(out, "  - all images built for the environment")
	if deps.RemoveAll.Lister != nil {
		if containers, err := deps.RemoveAll.Lister.List(target.Stack.Project); err == nil && len(containers) > 0 {
			fmt.Fprintf(out, "Affected containers (%d):\n", len(containers))
			for _, ctr := range containers {
				fmt.Fprintf(out, "  - %s (%s, %s)\n", ctr.Name, ctr.Service, ctr.State)
			}
		}
	}
	fmt.Fprintln(out, "")

	proceed, code := confirmGuarded(deps, out, cli.RemoveAll.Yes, "Are you sure you want to continue?")
	if !proceed {
		return code
	}

	if err := deps.RemoveAll.Downer.Down(DownRequest{Target: target, RemoveVolumes: true}); err != nil {
		return exitFromChild(out, err)
	}

	report, err := deps.RemoveAll.Pruner.Prune(PruneRequest{Target: target, AllImages: true})
	if err != nil {
		return exitWithError(out, err)
	}

	console := ui.New(out)
	console.Item("Containers", len(report.ContainersDeleted))
	console.Item("Networks", len(report.NetworksDeleted))
	console.Item("Volumes", len(report.VolumesDeleted))
	console.Item("Images", len(report.ImagesDeleted))
	console.Success(fmt.Sprintf("environment removed (%s reclaimed)", units.HumanSize(float64(report.SpaceReclaimed))))
	return ExitOK
}
