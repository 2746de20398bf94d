// Where: internal/compose/ps.go
// What: docker compose ps helpers.
package compose

import (
	"context"
	"fmt"
)

// PsOptions contains configuration for listing running services.
type PsOptions struct {
	Stack     Stack
	All       bool
	ExtraArgs []string
}

// PsProject lists the stack's services. With All set, stopped
// containers are included.
func PsProject(ctx context.Context, runner CommandRunner, opts PsOptions) error {
	if runner == nil {
		return fmt.Errorf("command runner is nil")
	}
	if err := opts.Stack.validate(); err != nil {
		return err
	}

	args := append(opts.Stack.args(), "ps")
	if opts.All {
		args = append(args, "-a")
	}
	args = append(args, opts.ExtraArgs...)

	return runner.Run(ctx, opts.Stack.Root, RuntimeBinary, args...)
}
