package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yuseki/stackctl/internal/compose"
	"github.com/yuseki/stackctl/internal/health"
	"github.com/yuseki/stackctl/internal/interaction"
)

type fakeUpper struct {
	calls int
	last  UpRequest
	err   error
}

func (f *fakeUpper) Up(req UpRequest) error { f.calls++; f.last = req; return f.err }

type fakeDowner struct {
	calls int
	last  DownRequest
	err   error
}

func (f *fakeDowner) Down(req DownRequest) error { f.calls++; f.last = req; return f.err }

type fakeBuilder struct {
	calls int
	last  BuildRequest
	err   error
}

func (f *fakeBuilder) Build(req BuildRequest) error { f.calls++; f.last = req; return f.err }

type fakeLogger struct {
	calls int
	last  LogsRequest
	err   error
}

func (f *fakeLogger) Logs(req LogsRequest) error { f.calls++; f.last = req; return f.err }

type fakeRestarter struct {
	calls int
	last  RestartRequest
	err   error
}

func (f *fakeRestarter) Restart(req RestartRequest) error { f.calls++; f.last = req; return f.err }

type fakeSheller struct {
	calls int
	last  ShellRequest
	err   error
}

func (f *fakeSheller) Shell(req ShellRequest) error { f.calls++; f.last = req; return f.err }

type fakeStatusRunner struct {
	calls int
	last  StatusRequest
	err   error
}

func (f *fakeStatusRunner) Status(req StatusRequest) error { f.calls++; f.last = req; return f.err }

type fakeResetter struct {
	calls int
	err   error
}

func (f *fakeResetter) ResetData(Target) error { f.calls++; return f.err }

type fakeVolumePruner struct {
	calls   int
	project string
}

func (f *fakeVolumePruner) PruneVolumes(project string) ([]string, uint64, error) {
	f.calls++
	f.project = project
	return []string{"stackctl-dev_mongo-data"}, 2048, nil
}

type fakePruner struct {
	calls int
	last  PruneRequest
}

func (f *fakePruner) Prune(req PruneRequest) (compose.PruneReport, error) {
	f.calls++
	f.last = req
	return compose.PruneReport{SpaceReclaimed: 4096}, nil
}

type fakeContainerLister struct{}

func (fakeContainerLister) List(string) ([]compose.ContainerInfo, error) { return nil, nil }

type fakeServiceLister struct {
	services []string
	calls    int
}

func (f *fakeServiceLister) ListServices(Target) ([]string, error) {
	f.calls++
	return f.services, nil
}

type fakeBackupper struct {
	calls int
	last  BackupRequest
	path  string
	err   error
}

func (f *fakeBackupper) Backup(req BackupRequest) (string, error) {
	f.calls++
	f.last = req
	return f.path, f.err
}

type fakeChecker struct {
	results []health.Result
	seen    []health.Endpoint
}

func (f *fakeChecker) Check(_ context.Context, endpoints []health.Endpoint) []health.Result {
	f.seen = endpoints
	if f.results != nil {
		return f.results
	}
	results := make([]health.Result, len(endpoints))
	for i, ep := range endpoints {
		results[i] = health.Result{Endpoint: ep, StatusCode: 200}
	}
	return results
}

type fakePrompter struct {
	choice string
}

func (f fakePrompter) SelectValue(_ string, _ []interaction.SelectOption) (string, error) {
	return f.choice, nil
}

// testRoot creates a deployment root with both compose files and an env
// file carrying database credentials.
func testRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range []string{"docker-compose.yml", "docker-compose.prod.yml"} {
		if err := os.WriteFile(filepath.Join(root, name), []byte("services: {}\n"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	env := "MONGO_INITDB_ROOT_USERNAME=admin\nMONGO_INITDB_ROOT_PASSWORD=pw\nGATEWAY_PORT=9443\n"
	if err := os.WriteFile(filepath.Join(root, ".env"), []byte(env), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	return root
}

// testDeps builds Dependencies wired with fresh fakes against root.
// The runtime check always passes and confirmation always affirms
// unless a test overrides Confirm.
func testDeps(t *testing.T, root string) Dependencies {
	t.Helper()
	t.Setenv("STACKCTL_CONFIG_PATH", filepath.Join(t.TempDir(), "config.yaml"))
	t.Setenv("STACKCTL_ENV", "")
	t.Setenv("STACKCTL_ROOT", "")

	return Dependencies{
		WorkDir:      root,
		Now:          nil,
		Prompter:     fakePrompter{},
		Confirm:      func(string) (bool, error) { return true, nil },
		RootResolver: func(string) (string, error) { return root, nil },
		RuntimeCheck: func() error { return nil },
		Up:           UpDeps{Upper: &fakeUpper{}},
		Down:         DownDeps{Downer: &fakeDowner{}},
		Build:        BuildDeps{Builder: &fakeBuilder{}},
		Logs:         LogsDeps{Logger: &fakeLogger{}, Lister: &fakeServiceLister{}},
		Restart:      RestartDeps{Restarter: &fakeRestarter{}, Lister: &fakeServiceLister{}},
		Shell:        ShellDeps{Sheller: &fakeSheller{}, Lister: &fakeServiceLister{}},
		Status:       StatusDeps{Runner: &fakeStatusRunner{}},
		Reset:        ResetDeps{Resetter: &fakeResetter{}},
		Volumes:      VolumesDeps{Downer: &fakeDowner{}, Pruner: &fakeVolumePruner{}},
		RemoveAll:    RemoveAllDeps{Downer: &fakeDowner{}, Pruner: &fakePruner{}, Lister: fakeContainerLister{}},
		Backup:       BackupDeps{Backupper: &fakeBackupper{path: "/deploy/backups/x.archive.gz"}},
		Health:       HealthDeps{Checker: &fakeChecker{}},
	}
}

// forceTerminal overrides TTY detection for the duration of a test.
func forceTerminal(t *testing.T, value bool) {
	t.Helper()
	orig := isTerminal
	t.Cleanup(func() { isTerminal = orig })
	isTerminal = func(*os.File) bool { return value }
}
