// Where: internal/app/health.go
// What: Health command handler.
// Why: Report gateway and backend health independently.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/yuseki/stackctl/internal/config"
	"github.com/yuseki/stackctl/internal/health"
)

// runHealth executes the 'health' command which probes the HTTP health
// endpoints of the gateway and backend. Each endpoint is checked even
// when another fails; the exit code is nonzero if any is unhealthy.
func runHealth(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.Health.Checker == nil {
		fmt.Fprintln(out, "health: not implemented")
		return ExitError
	}

	target, err := resolveTarget(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	gatewayPort, backendPort := config.ServicePorts(target.Stack.EnvFile)
	endpoints := []health.Endpoint{
		{Name: config.ServiceGateway, URL: fmt.Sprintf("http://localhost:%s/health", gatewayPort)},
		{Name: config.ServiceBackend, URL: fmt.Sprintf("http://localhost:%s/health", backendPort)},
	}

	results := deps.Health.Checker.Check(context.Background(), endpoints)
	for _, result := range results {
		switch {
		case result.Healthy():
			fmt.Fprintf(out, "✅ %-10s %s\n", result.Endpoint.Name, "ok")
		case result.Err != nil:
			fmt.Fprintf(out, "✗ %-10s %v\n", result.Endpoint.Name, result.Err)
		default:
			fmt.Fprintf(out, "✗ %-10s HTTP %d\n", result.Endpoint.Name, result.StatusCode)
		}
	}

	if !health.AllHealthy(results) {
		return ExitError
	}
	return ExitOK
}
