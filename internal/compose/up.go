// Where: internal/compose/up.go
// What: docker compose up helpers.
// Why: Provide a minimal, testable interface for starting services.
package compose

import (
	"context"
	"fmt"
)

// UpOptions contains configuration for starting services.
type UpOptions struct {
	Stack     Stack
	Detach    bool
	Build     bool
	ExtraArgs []string
}

// UpProject runs docker compose up for the resolved stack.
func UpProject(ctx context.Context, runner CommandRunner, opts UpOptions) error {
	if runner == nil {
		return fmt.Errorf("command runner is nil")
	}
	if err := opts.Stack.validate(); err != nil {
		return err
	}

	args := append(opts.Stack.args(), "up")
	if opts.Detach {
		args = append(args, "-d")
	}
	if opts.Build {
		args = append(args, "--build")
	}
	args = append(args, opts.ExtraArgs...)

	return runner.Run(ctx, opts.Stack.Root, RuntimeBinary, args...)
}
