// Where: internal/app/logs.go
// What: Logs command handler.
// Why: Provide log access via docker compose with CLI flags.
package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yuseki/stackctl/internal/interaction"
)

// runLogs executes the 'logs' command which streams container logs with
// optional follow, tail, and timestamp options. With no service argument
// on a terminal, a picker over the stack's services is offered.
func runLogs(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.Logs.Logger == nil {
		fmt.Fprintln(out, "logs: not implemented")
		return ExitError
	}

	target, err := resolveTarget(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	req := LogsRequest{
		Target:     target,
		Follow:     cli.Logs.Follow,
		Tail:       cli.Logs.Tail,
		Timestamps: cli.Logs.Timestamps,
		Service:    strings.TrimSpace(cli.Logs.Service),
	}

	if req.Service == "" && isTerminal(os.Stdin) && deps.Logs.Lister != nil {
		selected, code, done := pickService(deps, deps.Logs.Lister, target, out,
			"Select service to view logs", true)
		if done {
			return code
		}
		req.Service = selected
	}

	if err := deps.Logs.Logger.Logs(req); err != nil {
		return exitFromChild(out, err)
	}
	return ExitOK
}

// pickService offers an interactive service selection. done is true when
// the handler should return code instead of continuing.
func pickService(deps Dependencies, lister ServiceLister, target Target, out io.Writer, title string, includeAll bool) (selected string, code int, done bool) {
	services, err := lister.ListServices(target)
	if err != nil {
		return "", exitWithError(out, err), true
	}
	if len(services) == 0 {
		return "", 0, false
	}
	if deps.Prompter == nil {
		return "", exitWithError(out, fmt.Errorf("prompter not configured")), true
	}

	var options []interaction.SelectOption
	if includeAll {
		options = append(options, interaction.SelectOption{Label: "All services", Value: ""})
	}
	for _, svc := range services {
		options = append(options, interaction.SelectOption{Label: svc, Value: svc})
	}

	choice, err := deps.Prompter.SelectValue(title, options)
	if err != nil {
		return "", exitWithError(out, err), true
	}
	return choice, 0, false
}
