// Where: internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/yuseki/stackctl/internal/compose"
	"github.com/yuseki/stackctl/internal/config"
	"github.com/yuseki/stackctl/internal/version"
)

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	Env     string `short:"e" name:"env" help:"Environment: dev or prod (default: dev)"`
	EnvFile string `name:"env-file" help:"Override the environment file passed to the runtime"`

	Up            UpCmd            `cmd:"" help:"Start all services"`
	Down          DownCmd          `cmd:"" help:"Stop all services"`
	Build         BuildCmd         `cmd:"" help:"Rebuild service images"`
	Logs          LogsCmd          `cmd:"" help:"Stream service logs"`
	Restart       RestartCmd       `cmd:"" help:"Restart services"`
	Shell         ShellCmd         `cmd:"" help:"Attach an interactive session to a service"`
	Status        StatusCmd        `cmd:"" aliases:"ps" help:"List running services"`
	ResetData     ResetDataCmd     `cmd:"" name:"reset-data" help:"Drop the primary data store (destructive)"`
	RemoveVolumes RemoveVolumesCmd `cmd:"" name:"remove-volumes" help:"Delete persisted volumes (destructive)"`
	RemoveAll     RemoveAllCmd     `cmd:"" name:"remove-all" help:"Delete containers, networks, volumes, and images (destructive)"`
	BackupData    BackupDataCmd    `cmd:"" name:"backup-data" help:"Snapshot the primary data store to a timestamped archive"`
	Health        HealthCmd        `cmd:"" help:"Query gateway and backend health endpoints"`
	Config        ConfigCmd        `cmd:"" help:"Manage configuration"`
	Version       VersionCmd       `cmd:"" help:"Show version information"`
}

type VersionCmd struct{}

type (
	UpCmd struct {
		Build     bool     `help:"Rebuild images before starting"`
		Detach    bool     `short:"d" default:"true" negatable:"" help:"Run in background"`
		ExtraArgs []string `arg:"" optional:"" name:"args" help:"Extra arguments passed to the runtime"`
	}
	DownCmd struct {
		ExtraArgs []string `arg:"" optional:"" name:"args" help:"Extra arguments passed to the runtime"`
	}
	BuildCmd struct {
		NoCache  bool     `name:"no-cache" help:"Do not use cache when building images"`
		Services []string `arg:"" optional:"" name:"services" help:"Services to build (default: all)"`
	}
	LogsCmd struct {
		Service    string `arg:"" optional:"" help:"Service name (default: all)"`
		Follow     bool   `short:"f" help:"Follow logs"`
		Tail       int    `help:"Tail the latest N lines"`
		Timestamps bool   `help:"Show timestamps"`
	}
	RestartCmd struct {
		Services []string `arg:"" optional:"" name:"services" help:"Services to restart (default: all)"`
	}
	ShellCmd struct {
		Service string `arg:"" optional:"" help:"Service to attach to"`
	}
	StatusCmd struct {
		All       bool     `short:"a" help:"Include stopped containers"`
		ExtraArgs []string `arg:"" optional:"" name:"args" help:"Extra arguments passed to the runtime"`
	}
	ResetDataCmd struct {
		Yes bool `short:"y" help:"Skip confirmation prompt"`
	}
	RemoveVolumesCmd struct {
		Yes bool `short:"y" help:"Skip confirmation prompt"`
	}
	RemoveAllCmd struct {
		Yes bool `short:"y" help:"Skip confirmation prompt"`
	}
	BackupDataCmd struct {
		Dir string `help:"Backup directory (default: <root>/backups)"`
	}
	HealthCmd struct{}
	ConfigCmd struct {
		SetRoot ConfigSetRootCmd `cmd:"" name:"set-root" help:"Record the deployment root path"`
		Show    ConfigShowCmd    `cmd:"" help:"Show the global configuration"`
	}
	ConfigSetRootCmd struct {
		Path string `arg:"" help:"Path inside the deployment"`
	}
	ConfigShowCmd struct{}
)

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. Returns the process exit code.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}

	if err := config.EnsureGlobalConfig(); err != nil {
		return exitWithError(out, err)
	}

	if deps.RootResolver == nil {
		deps.RootResolver = config.ResolveRoot
	}

	if len(args) == 0 {
		return runNoArgs(out)
	}

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name("stackctl"),
		kong.Description("Deployment orchestration for the gateway/backend/database stack."),
	)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(out, err)
	}

	command := ctx.Command()
	if requiresRuntime(command) {
		check := deps.RuntimeCheck
		if check == nil {
			check = compose.EnsureRuntime
		}
		if err := check(); err != nil {
			return exitWithError(out, err)
		}
	}

	if exitCode, handled := dispatchCommand(command, cli, deps, out); handled {
		return exitCode
	}

	fmt.Fprintln(out, "unknown command")
	return ExitError
}

type commandHandler func(CLI, Dependencies, io.Writer) int

type prefixHandler struct {
	prefix  string
	handler commandHandler
}

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"up":             runUp,
		"down":           runDown,
		"status":         runStatus,
		"reset-data":     runResetData,
		"remove-volumes": runRemoveVolumes,
		"remove-all":     runRemoveAll,
		"backup-data":    runBackupData,
		"health":         runHealth,
		"config show":    runConfigShow,
		"version":        func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(out) },
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps, out), true
	}

	prefixHandlers := []prefixHandler{
		{prefix: "up", handler: runUp},
		{prefix: "down", handler: runDown},
		{prefix: "build", handler: runBuild},
		{prefix: "logs", handler: runLogs},
		{prefix: "restart", handler: runRestart},
		{prefix: "shell", handler: runShell},
		{prefix: "status", handler: runStatus},
		{prefix: "config set-root", handler: runConfigSetRoot},
	}

	for _, entry := range prefixHandlers {
		if strings.HasPrefix(command, entry.prefix) {
			return entry.handler(cli, deps, out), true
		}
	}

	return 0, false
}

// requiresRuntime reports whether the command spawns the orchestration
// binary, so a missing runtime can be surfaced before any work starts.
func requiresRuntime(command string) bool {
	verb := command
	if idx := strings.IndexByte(command, ' '); idx >= 0 {
		verb = command[:idx]
	}
	switch verb {
	case "up", "down", "build", "logs", "restart", "shell", "status",
		"reset-data", "remove-volumes", "remove-all", "backup-data":
		return true
	}
	return false
}

func runNoArgs(out io.Writer) int {
	fmt.Fprintln(out, "stackctl — deployment orchestration for the gateway/backend/database stack")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Usage: stackctl [-e dev|prod] <command>")
	fmt.Fprintln(out, "Run 'stackctl --help' for the full command list.")
	return ExitOK
}

func runVersion(out io.Writer) int {
	fmt.Fprintf(out, "stackctl %s\n", version.GetVersion())
	return ExitOK
}
