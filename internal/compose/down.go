// Where: internal/compose/down.go
// What: docker compose down helpers.
// Why: Stop and remove services, optionally with their volumes.
package compose

import (
	"context"
	"fmt"
)

// DownOptions contains configuration for stopping services.
type DownOptions struct {
	Stack         Stack
	RemoveVolumes bool
	ExtraArgs     []string
}

// DownProject runs docker compose down for the resolved stack.
func DownProject(ctx context.Context, runner CommandRunner, opts DownOptions) error {
	if runner == nil {
		return fmt.Errorf("command runner is nil")
	}
	if err := opts.Stack.validate(); err != nil {
		return err
	}

	args := append(opts.Stack.args(), "down")
	if opts.RemoveVolumes {
		args = append(args, "--volumes")
	}
	args = append(args, opts.ExtraArgs...)

	return runner.Run(ctx, opts.Stack.Root, RuntimeBinary, args...)
}
