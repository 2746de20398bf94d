// Where: internal/compose/build.go
// What: docker compose build helpers.
// Why: Rebuild one or more service images through the runtime.
package compose

import (
	"context"
	"fmt"
)

// BuildOptions contains configuration for rebuilding service images.
type BuildOptions struct {
	Stack     Stack
	NoCache   bool
	Services  []string
	ExtraArgs []string
}

// BuildProject runs docker compose build for the selected services,
// or all services when none are named.
func BuildProject(ctx context.Context, runner CommandRunner, opts BuildOptions) error {
	if runner == nil {
		return fmt.Errorf("command runner is nil")
	}
	if err := opts.Stack.validate(); err != nil {
		return err
	}

	args := append(opts.Stack.args(), "build")
	if opts.NoCache {
		args = append(args, "--no-cache")
	}
	args = append(args, opts.Services...)
	args = append(args, opts.ExtraArgs...)

	return runner.Run(ctx, opts.Stack.Root, RuntimeBinary, args...)
}
