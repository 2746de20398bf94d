// Where: internal/app/build.go
// What: Build command handler.
package app

import (
	"fmt"
	"io"
)

// runBuild executes the 'build' command which rebuilds the images of
// the named services, or every service when none are named.
func runBuild(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.Build.Builder == nil {
		fmt.Fprintln(out, "build: not implemented")
		return ExitError
	}

	target, err := resolveTarget(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	req := BuildRequest{
		Target:   target,
		NoCache:  cli.Build.NoCache,
		Services: cli.Build.Services,
	}
	if err := deps.Build.Builder.Build(req); err != nil {
		return exitFromChild(out, err)
	}
	return ExitOK
}
