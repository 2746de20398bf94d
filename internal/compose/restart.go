// Where: internal/compose/restart.go
// What: docker compose restart helpers.
package compose

import (
	"context"
	"fmt"
)

// RestartOptions contains configuration for restarting services.
type RestartOptions struct {
	Stack     Stack
	Services  []string
	ExtraArgs []string
}

// RestartProject restarts the selected services, or all when none are named.
func RestartProject(ctx context.Context, runner CommandRunner, opts RestartOptions) error {
	if runner == nil {
		return fmt.Errorf("command runner is nil")
	}
	if err := opts.Stack.validate(); err != nil {
		return err
	}

	args := append(opts.Stack.args(), "restart")
	args = append(args, opts.Services...)
	args = append(args, opts.ExtraArgs...)

	return runner.Run(ctx, opts.Stack.Root, RuntimeBinary, args...)
}
