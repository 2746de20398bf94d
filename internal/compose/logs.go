// Where: internal/compose/logs.go
// What: docker compose logs and service listing helpers.
// Why: Provide log access and service discovery via the runtime.
package compose

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"
)

// LogsOptions contains configuration for viewing service logs.
type LogsOptions struct {
	Stack      Stack
	Follow     bool
	Tail       int
	Timestamps bool
	Service    string
	ExtraArgs  []string
}

// LogsProject runs docker compose logs with the given follow/tail options.
// With Follow set it blocks until the child exits or is interrupted.
func LogsProject(ctx context.Context, runner CommandRunner, opts LogsOptions) error {
	if runner == nil {
		return fmt.Errorf("command runner is nil")
	}
	if err := opts.Stack.validate(); err != nil {
		return err
	}

	args := append(opts.Stack.args(), "logs")
	if opts.Follow {
		args = append(args, "--follow")
	}
	if opts.Tail > 0 {
		args = append(args, "--tail", fmt.Sprintf("%d", opts.Tail))
	}
	if opts.Timestamps {
		args = append(args, "--timestamps")
	}
	if svc := strings.TrimSpace(opts.Service); svc != "" {
		args = append(args, svc)
	}
	args = append(args, opts.ExtraArgs...)

	return runner.Run(ctx, opts.Stack.Root, RuntimeBinary, args...)
}

// ListServices returns the services defined in the stack's compose file.
func ListServices(ctx context.Context, runner CommandRunner, stack Stack) ([]string, error) {
	if runner == nil {
		return nil, fmt.Errorf("command runner is nil")
	}
	if err := stack.validate(); err != nil {
		return nil, err
	}

	args := append(stack.args(), "config", "--services")
	output, err := runner.RunOutput(ctx, stack.Root, RuntimeBinary, args...)
	if err != nil {
		return nil, err
	}

	var services []string
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			services = append(services, line)
		}
	}
	return services, scanner.Err()
}
