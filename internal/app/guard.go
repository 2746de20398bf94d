// Where: internal/app/guard.go
// What: Confirmation gate for destructive verbs.
// Why: Single-shot prompt; anything but an affirmative answer cancels.
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/yuseki/stackctl/internal/interaction"
)

var isTerminal = interaction.IsTerminal

// confirmGuarded runs the confirmation gate for a destructive verb.
// It returns proceed=true exactly when the operator affirmed (or passed
// --yes). On decline the returned exit code is ExitCancelled; the
// caller must perform zero side effects in that case. The gate asks at
// most once per invocation.
func confirmGuarded(deps Dependencies, out io.Writer, yes bool, message string) (proceed bool, code int) {
	if yes {
		return true, ExitOK
	}
	if !isTerminal(os.Stdin) {
		return false, exitWithError(out, fmt.Errorf("confirmation required: re-run with --yes in non-interactive mode"))
	}

	confirm := deps.Confirm
	if confirm == nil {
		confirm = interaction.PromptYesNo
	}
	ok, err := confirm(message)
	if err != nil {
		return false, exitWithError(out, err)
	}
	if !ok {
		fmt.Fprintln(out, "Cancelled.")
		return false, ExitCancelled
	}
	return true, ExitOK
}
