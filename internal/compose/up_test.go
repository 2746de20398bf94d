// Where: internal/compose/up_test.go
// What: Tests for compose up/down/build/restart argument construction.
// Why: Ensure command lines are stable and passthrough args keep order.
package compose

import (
	"context"
	"reflect"
	"testing"
)

func devStack() Stack {
	return Stack{
		Root:        "/deploy",
		Project:     "stackctl-dev",
		ComposeFile: "/deploy/docker-compose.yml",
		EnvFile:     "/deploy/.env",
	}
}

func baseArgs() []string {
	return []string{
		"compose",
		"-p", "stackctl-dev",
		"-f", "/deploy/docker-compose.yml",
		"--env-file", "/deploy/.env",
	}
}

func TestUpProjectArgs(t *testing.T) {
	runner := &fakeRunner{}
	opts := UpOptions{
		Stack:     devStack(),
		Detach:    true,
		Build:     true,
		ExtraArgs: []string{"--scale", "backend=2"},
	}
	if err := UpProject(context.Background(), runner, opts); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got := runner.last()
	if got.dir != "/deploy" || got.name != "docker" {
		t.Fatalf("unexpected invocation: %s %s", got.dir, got.name)
	}
	want := append(baseArgs(), "up", "-d", "--build", "--scale", "backend=2")
	if !reflect.DeepEqual(got.args, want) {
		t.Fatalf("args = %v, want %v", got.args, want)
	}
}

func TestUpProjectWithoutEnvFile(t *testing.T) {
	runner := &fakeRunner{}
	stack := devStack()
	stack.EnvFile = ""
	if err := UpProject(context.Background(), runner, UpOptions{Stack: stack}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := []string{"compose", "-p", "stackctl-dev", "-f", "/deploy/docker-compose.yml", "up"}
	if !reflect.DeepEqual(runner.last().args, want) {
		t.Fatalf("args = %v, want %v", runner.last().args, want)
	}
}

func TestUpProjectRejectsPartialStack(t *testing.T) {
	runner := &fakeRunner{}
	if err := UpProject(context.Background(), runner, UpOptions{Stack: Stack{Root: "/deploy"}}); err == nil {
		t.Fatal("expected error for missing compose file")
	}
	if len(runner.calls) != 0 {
		t.Fatalf("expected no subprocess, got %d calls", len(runner.calls))
	}
}

func TestDownProjectArgs(t *testing.T) {
	runner := &fakeRunner{}
	opts := DownOptions{Stack: devStack(), RemoveVolumes: true}
	if err := DownProject(context.Background(), runner, opts); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := append(baseArgs(), "down", "--volumes")
	if !reflect.DeepEqual(runner.last().args, want) {
		t.Fatalf("args = %v, want %v", runner.last().args, want)
	}
}

func TestBuildProjectArgs(t *testing.T) {
	runner := &fakeRunner{}
	opts := BuildOptions{
		Stack:    devStack(),
		NoCache:  true,
		Services: []string{"gateway", "backend"},
	}
	if err := BuildProject(context.Background(), runner, opts); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := append(baseArgs(), "build", "--no-cache", "gateway", "backend")
	if !reflect.DeepEqual(runner.last().args, want) {
		t.Fatalf("args = %v, want %v", runner.last().args, want)
	}
}

func TestRestartProjectArgs(t *testing.T) {
	runner := &fakeRunner{}
	opts := RestartOptions{Stack: devStack(), Services: []string{"gateway"}}
	if err := RestartProject(context.Background(), runner, opts); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := append(baseArgs(), "restart", "gateway")
	if !reflect.DeepEqual(runner.last().args, want) {
		t.Fatalf("args = %v, want %v", runner.last().args, want)
	}
}

func TestPsProjectArgs(t *testing.T) {
	runner := &fakeRunner{}
	opts := PsOptions{Stack: devStack(), All: true, ExtraArgs: []string{"--format", "json"}}
	if err := PsProject(context.Background(), runner, opts); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := append(baseArgs(), "ps", "-a", "--format", "json")
	if !reflect.DeepEqual(runner.last().args, want) {
		t.Fatalf("args = %v, want %v", runner.last().args, want)
	}
}

func TestNilRunnerRejected(t *testing.T) {
	if err := UpProject(context.Background(), nil, UpOptions{Stack: devStack()}); err == nil {
		t.Fatal("expected error for nil runner")
	}
}
