// Where: internal/app/config_cmd.go
// What: Config command handlers.
// Why: Manage the global configuration from the CLI.
package app

import (
	"io"

	"github.com/yuseki/stackctl/internal/config"
	"github.com/yuseki/stackctl/internal/ui"
)

// runConfigSetRoot validates and records the deployment root path.
func runConfigSetRoot(cli CLI, _ Dependencies, out io.Writer) int {
	root, err := config.ResolveRootFromPath(cli.Config.SetRoot.Path)
	if err != nil {
		return exitWithError(out, err)
	}

	path, err := config.GlobalConfigPath()
	if err != nil {
		return exitWithError(out, err)
	}
	cfg, err := config.LoadGlobalConfig(path)
	if err != nil {
		cfg = config.DefaultGlobalConfig()
	}
	cfg.RootPath = root
	if err := config.SaveGlobalConfig(path, cfg); err != nil {
		return exitWithError(out, err)
	}

	ui.New(out).Success("deployment root set: " + root)
	return ExitOK
}

// runConfigShow prints the global configuration.
func runConfigShow(_ CLI, _ Dependencies, out io.Writer) int {
	path, err := config.GlobalConfigPath()
	if err != nil {
		return exitWithError(out, err)
	}
	cfg, err := config.LoadGlobalConfig(path)
	if err != nil {
		return exitWithError(out, err)
	}

	console := ui.New(out)
	console.Header("⚙️", "Global configuration:")
	console.Item("Path", path)
	console.Item("Root", cfg.RootPath)
	console.Item("Last mode", cfg.LastMode)
	return ExitOK
}
