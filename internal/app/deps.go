// Where: internal/app/deps.go
// What: Dependency wiring for command execution.
// Why: Centralize adapter construction over the compose helpers.
package app

import (
	"context"
	"io"
	"path/filepath"
	"time"

	"github.com/yuseki/stackctl/internal/backup"
	"github.com/yuseki/stackctl/internal/compose"
	"github.com/yuseki/stackctl/internal/config"
	"github.com/yuseki/stackctl/internal/health"
	"github.com/yuseki/stackctl/internal/interaction"
)

// Dependencies holds all injected dependencies required for CLI command
// execution. This structure enables dependency injection for testing and
// allows swapping implementations of various subsystems.
type Dependencies struct {
	WorkDir      string
	Out          io.Writer
	Now          func() time.Time
	Prompter     interaction.Prompter
	Confirm      func(message string) (bool, error)
	RootResolver func(string) (string, error)
	RuntimeCheck func() error
	Up           UpDeps
	Down         DownDeps
	Build        BuildDeps
	Logs         LogsDeps
	Restart      RestartDeps
	Shell        ShellDeps
	Status       StatusDeps
	Reset        ResetDeps
	Volumes      VolumesDeps
	RemoveAll    RemoveAllDeps
	Backup       BackupDeps
	Health       HealthDeps
}

type (
	UpDeps      struct{ Upper Upper }
	DownDeps    struct{ Downer Downer }
	BuildDeps   struct{ Builder Builder }
	LogsDeps    struct {
		Logger Logger
		Lister ServiceLister
	}
	RestartDeps struct {
		Restarter Restarter
		Lister    ServiceLister
	}
	ShellDeps struct {
		Sheller Sheller
		Lister  ServiceLister
	}
	StatusDeps struct{ Runner StatusRunner }
	ResetDeps  struct{ Resetter DataResetter }
	VolumesDeps struct {
		Downer Downer
		Pruner VolumePruner
	}
	RemoveAllDeps struct {
		Downer Downer
		Pruner Pruner
		Lister ContainerLister
	}
	BackupDeps struct{ Backupper Backupper }
	HealthDeps struct{ Checker HealthChecker }
)

// Request types carry a fully resolved Target plus per-verb options.
type (
	UpRequest struct {
		Target    Target
		Detach    bool
		Build     bool
		ExtraArgs []string
	}
	DownRequest struct {
		Target        Target
		RemoveVolumes bool
		ExtraArgs     []string
	}
	BuildRequest struct {
		Target   Target
		NoCache  bool
		Services []string
	}
	LogsRequest struct {
		Target     Target
		Follow     bool
		Tail       int
		Timestamps bool
		Service    string
	}
	RestartRequest struct {
		Target   Target
		Services []string
	}
	ShellRequest struct {
		Target  Target
		Service string
	}
	StatusRequest struct {
		Target    Target
		All       bool
		ExtraArgs []string
	}
	PruneRequest struct {
		Target    Target
		AllImages bool
	}
	BackupRequest struct {
		Target Target
		Dir    string
		Now    func() time.Time
	}
)

type (
	Upper        interface{ Up(req UpRequest) error }
	Downer       interface{ Down(req DownRequest) error }
	Builder      interface{ Build(req BuildRequest) error }
	Logger       interface{ Logs(req LogsRequest) error }
	Restarter    interface{ Restart(req RestartRequest) error }
	Sheller      interface{ Shell(req ShellRequest) error }
	StatusRunner interface{ Status(req StatusRequest) error }
	DataResetter interface{ ResetData(target Target) error }
	Backupper    interface {
		Backup(req BackupRequest) (string, error)
	}
	ServiceLister interface {
		ListServices(target Target) ([]string, error)
	}
	ContainerLister interface {
		List(project string) ([]compose.ContainerInfo, error)
	}
	VolumePruner interface {
		PruneVolumes(project string) ([]string, uint64, error)
	}
	Pruner interface {
		Prune(req PruneRequest) (compose.PruneReport, error)
	}
	HealthChecker interface {
		Check(ctx context.Context, endpoints []health.Endpoint) []health.Result
	}
)

// NewUpper creates an Upper that starts the stack via docker compose.
func NewUpper(runner compose.CommandRunner) Upper {
	return upperFunc(func(req UpRequest) error {
		return compose.UpProject(context.Background(), runner, compose.UpOptions{
			Stack:     req.Target.Stack,
			Detach:    req.Detach,
			Build:     req.Build,
			ExtraArgs: req.ExtraArgs,
		})
	})
}

type upperFunc func(req UpRequest) error

func (fn upperFunc) Up(req UpRequest) error { return fn(req) }

// NewDowner creates a Downer that stops and removes the stack's
// containers via docker compose.
func NewDowner(runner compose.CommandRunner) Downer {
	return downerFunc(func(req DownRequest) error {
		return compose.DownProject(context.Background(), runner, compose.DownOptions{
			Stack:         req.Target.Stack,
			RemoveVolumes: req.RemoveVolumes,
			ExtraArgs:     req.ExtraArgs,
		})
	})
}

type downerFunc func(req DownRequest) error

func (fn downerFunc) Down(req DownRequest) error { return fn(req) }

// NewBuilder creates a Builder that rebuilds service images.
func NewBuilder(runner compose.CommandRunner) Builder {
	return builderFunc(func(req BuildRequest) error {
		return compose.BuildProject(context.Background(), runner, compose.BuildOptions{
			Stack:    req.Target.Stack,
			NoCache:  req.NoCache,
			Services: req.Services,
		})
	})
}

type builderFunc func(req BuildRequest) error

func (fn builderFunc) Build(req BuildRequest) error { return fn(req) }

// NewLogger creates a Logger that streams service logs.
func NewLogger(runner compose.CommandRunner) Logger {
	return loggerFunc(func(req LogsRequest) error {
		return compose.LogsProject(context.Background(), runner, compose.LogsOptions{
			Stack:      req.Target.Stack,
			Follow:     req.Follow,
			Tail:       req.Tail,
			Timestamps: req.Timestamps,
			Service:    req.Service,
		})
	})
}

type loggerFunc func(req LogsRequest) error

func (fn loggerFunc) Logs(req LogsRequest) error { return fn(req) }

// NewServiceLister creates a ServiceLister backed by compose config.
func NewServiceLister(runner compose.CommandRunner) ServiceLister {
	return serviceListerFunc(func(target Target) ([]string, error) {
		return compose.ListServices(context.Background(), runner, target.Stack)
	})
}

type serviceListerFunc func(target Target) ([]string, error)

func (fn serviceListerFunc) ListServices(target Target) ([]string, error) { return fn(target) }

// NewRestarter creates a Restarter for one or more services.
func NewRestarter(runner compose.CommandRunner) Restarter {
	return restarterFunc(func(req RestartRequest) error {
		return compose.RestartProject(context.Background(), runner, compose.RestartOptions{
			Stack:    req.Target.Stack,
			Services: req.Services,
		})
	})
}

type restarterFunc func(req RestartRequest) error

func (fn restarterFunc) Restart(req RestartRequest) error { return fn(req) }

// NewSheller creates a Sheller that attaches an interactive session.
// The database service gets an authenticated mongosh; everything else
// gets a plain shell. Credentials travel as discrete argv tokens.
func NewSheller(runner compose.CommandRunner) Sheller {
	return shellerFunc(func(req ShellRequest) error {
		command := []string{"/bin/sh"}
		if req.Service == config.ServiceDatabase {
			creds, err := config.LoadCredentials(req.Target.Stack.EnvFile)
			if err != nil {
				return err
			}
			command = []string{
				"mongosh",
				"-u", creds.Username,
				"-p", creds.Password,
				"--authenticationDatabase", "admin",
				creds.Database,
			}
		}
		return compose.ExecService(context.Background(), runner, compose.ExecOptions{
			Stack:       req.Target.Stack,
			Service:     req.Service,
			Interactive: true,
			Command:     command,
		})
	})
}

type shellerFunc func(req ShellRequest) error

func (fn shellerFunc) Shell(req ShellRequest) error { return fn(req) }

// NewStatusRunner creates a StatusRunner backed by docker compose ps.
func NewStatusRunner(runner compose.CommandRunner) StatusRunner {
	return statusRunnerFunc(func(req StatusRequest) error {
		return compose.PsProject(context.Background(), runner, compose.PsOptions{
			Stack:     req.Target.Stack,
			All:       req.All,
			ExtraArgs: req.ExtraArgs,
		})
	})
}

type statusRunnerFunc func(req StatusRequest) error

func (fn statusRunnerFunc) Status(req StatusRequest) error { return fn(req) }

// NewDataResetter creates a DataResetter that drops the primary database
// inside the database service container.
func NewDataResetter(runner compose.CommandRunner) DataResetter {
	return dataResetterFunc(func(target Target) error {
		creds, err := config.LoadCredentials(target.Stack.EnvFile)
		if err != nil {
			return err
		}
		command := []string{
			"mongosh",
			"-u", creds.Username,
			"-p", creds.Password,
			"--authenticationDatabase", "admin",
			"--quiet",
			creds.Database,
			"--eval", "db.dropDatabase()",
		}
		return compose.ExecService(context.Background(), runner, compose.ExecOptions{
			Stack:   target.Stack,
			Service: config.ServiceDatabase,
			Command: command,
		})
	})
}

type dataResetterFunc func(target Target) error

func (fn dataResetterFunc) ResetData(target Target) error { return fn(target) }

// NewVolumePruner creates a VolumePruner backed by the Docker SDK.
func NewVolumePruner(client compose.DockerClient) VolumePruner {
	return volumePrunerFunc(func(project string) ([]string, uint64, error) {
		return compose.PruneProjectVolumes(context.Background(), client, project)
	})
}

type volumePrunerFunc func(project string) ([]string, uint64, error)

func (fn volumePrunerFunc) PruneVolumes(project string) ([]string, uint64, error) {
	return fn(project)
}

// NewPruner creates a Pruner backed by the Docker SDK.
func NewPruner(client compose.DockerClient) Pruner {
	return prunerFunc(func(req PruneRequest) (compose.PruneReport, error) {
		return compose.PruneProject(context.Background(), client, compose.PruneOptions{
			Project:   req.Target.Stack.Project,
			AllImages: req.AllImages,
		})
	})
}

type prunerFunc func(req PruneRequest) (compose.PruneReport, error)

func (fn prunerFunc) Prune(req PruneRequest) (compose.PruneReport, error) { return fn(req) }

// NewContainerLister creates a ContainerLister backed by the Docker SDK.
func NewContainerLister(client compose.DockerClient) ContainerLister {
	return containerListerFunc(func(project string) ([]compose.ContainerInfo, error) {
		return compose.ListProjectContainers(context.Background(), client, project)
	})
}

type containerListerFunc func(project string) ([]compose.ContainerInfo, error)

func (fn containerListerFunc) List(project string) ([]compose.ContainerInfo, error) {
	return fn(project)
}

// NewBackupper creates a Backupper that streams mongodump archives to
// the backup directory.
func NewBackupper(runner compose.CommandRunner) Backupper {
	return backupperFunc(func(req BackupRequest) (string, error) {
		creds, err := config.LoadCredentials(req.Target.Stack.EnvFile)
		if err != nil {
			return "", err
		}
		dir := req.Dir
		if dir == "" {
			dir = filepath.Join(req.Target.Stack.Root, "backups")
		}
		return backup.Run(context.Background(), runner, creds, backup.Options{
			Stack:   req.Target.Stack,
			Service: config.ServiceDatabase,
			Dir:     dir,
			Now:     req.Now,
		})
	})
}

type backupperFunc func(req BackupRequest) (string, error)

func (fn backupperFunc) Backup(req BackupRequest) (string, error) { return fn(req) }
