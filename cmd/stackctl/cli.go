// Where: cmd/stackctl/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"io"
	"os"
	"time"

	"github.com/yuseki/stackctl/internal/app"
	"github.com/yuseki/stackctl/internal/compose"
	"github.com/yuseki/stackctl/internal/config"
	"github.com/yuseki/stackctl/internal/health"
	"github.com/yuseki/stackctl/internal/interaction"
)

var (
	getwd           = os.Getwd
	newDockerClient = compose.NewDockerClient
)

// buildDependencies constructs all runtime dependencies required by the
// CLI: the subprocess runner, the Docker client, and the per-command
// adapters. Returns the dependencies, a closer for cleanup, and any
// initialization error.
func buildDependencies() (app.Dependencies, io.Closer, error) {
	workDir, err := getwd()
	if err != nil {
		return app.Dependencies{}, nil, err
	}

	client, err := newDockerClient()
	if err != nil {
		return app.Dependencies{}, nil, err
	}

	runner := compose.ExecRunner{}
	lister := app.NewServiceLister(runner)
	downer := app.NewDowner(runner)

	deps := app.Dependencies{
		WorkDir:      workDir,
		Out:          os.Stdout,
		Now:          time.Now,
		Prompter:     interaction.HuhPrompter{},
		Confirm:      interaction.PromptYesNo,
		RootResolver: config.ResolveRoot,
		RuntimeCheck: compose.EnsureRuntime,
		Up:           app.UpDeps{Upper: app.NewUpper(runner)},
		Down:         app.DownDeps{Downer: downer},
		Build:        app.BuildDeps{Builder: app.NewBuilder(runner)},
		Logs: app.LogsDeps{
			Logger: app.NewLogger(runner),
			Lister: lister,
		},
		Restart: app.RestartDeps{
			Restarter: app.NewRestarter(runner),
			Lister:    lister,
		},
		Shell: app.ShellDeps{
			Sheller: app.NewSheller(runner),
			Lister:  lister,
		},
		Status: app.StatusDeps{Runner: app.NewStatusRunner(runner)},
		Reset:  app.ResetDeps{Resetter: app.NewDataResetter(runner)},
		Volumes: app.VolumesDeps{
			Downer: downer,
			Pruner: app.NewVolumePruner(client),
		},
		RemoveAll: app.RemoveAllDeps{
			Downer: downer,
			Pruner: app.NewPruner(client),
			Lister: app.NewContainerLister(client),
		},
		Backup: app.BackupDeps{Backupper: app.NewBackupper(runner)},
		Health: app.HealthDeps{Checker: health.NewChecker()},
	}

	return deps, asCloser(client), nil
}

// asCloser attempts to cast the Docker client to an io.Closer.
// Returns nil if the client does not implement the Closer interface.
func asCloser(client compose.DockerClient) io.Closer {
	if closer, ok := client.(io.Closer); ok {
		return closer
	}
	return nil
}
