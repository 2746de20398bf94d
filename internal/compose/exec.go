// Where: internal/compose/exec.go
// What: docker compose exec helpers.
// Why: Attach interactive sessions and run in-container commands.
package compose

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// ExecOptions contains configuration for executing a command inside a
// running service container.
type ExecOptions struct {
	Stack       Stack
	Service     string
	Interactive bool
	Command     []string
}

// ExecService runs a command inside the named service container. With
// Interactive set the child gets the caller's terminal; otherwise the
// TTY is disabled (-T) so output can be piped or captured.
func ExecService(ctx context.Context, runner CommandRunner, opts ExecOptions) error {
	args, err := execArgs(opts)
	if err != nil {
		return err
	}
	if runner == nil {
		return fmt.Errorf("command runner is nil")
	}
	return runner.Run(ctx, opts.Stack.Root, RuntimeBinary, args...)
}

// ExecServiceTo runs a command inside the named service container and
// streams its stdout to the given writer. The TTY is always disabled
// so the stream stays byte-clean.
func ExecServiceTo(ctx context.Context, runner CommandRunner, out io.Writer, opts ExecOptions) error {
	opts.Interactive = false
	args, err := execArgs(opts)
	if err != nil {
		return err
	}
	if runner == nil {
		return fmt.Errorf("command runner is nil")
	}
	return runner.RunTo(ctx, opts.Stack.Root, out, RuntimeBinary, args...)
}

func execArgs(opts ExecOptions) ([]string, error) {
	if err := opts.Stack.validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(opts.Service) == "" {
		return nil, fmt.Errorf("service is required")
	}
	if len(opts.Command) == 0 {
		return nil, fmt.Errorf("command is required")
	}

	args := append(opts.Stack.args(), "exec")
	if !opts.Interactive {
		args = append(args, "-T")
	}
	args = append(args, opts.Service)
	args = append(args, opts.Command...)
	return args, nil
}
