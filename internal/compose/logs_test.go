// Where: internal/compose/logs_test.go
// What: Tests for compose logs helpers and service listing.
package compose

import (
	"context"
	"reflect"
	"testing"
)

func TestLogsProjectArgs(t *testing.T) {
	runner := &fakeRunner{}
	opts := LogsOptions{
		Stack:      devStack(),
		Follow:     true,
		Tail:       50,
		Timestamps: true,
		Service:    "gateway",
	}
	if err := LogsProject(context.Background(), runner, opts); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got := runner.last()
	if got.dir != "/deploy" || got.name != "docker" {
		t.Fatalf("unexpected invocation: %s %s", got.dir, got.name)
	}
	want := append(baseArgs(), "logs", "--follow", "--tail", "50", "--timestamps", "gateway")
	if !reflect.DeepEqual(got.args, want) {
		t.Fatalf("args = %v, want %v", got.args, want)
	}
}

func TestLogsProjectAllServices(t *testing.T) {
	runner := &fakeRunner{}
	if err := LogsProject(context.Background(), runner, LogsOptions{Stack: devStack()}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := append(baseArgs(), "logs")
	if !reflect.DeepEqual(runner.last().args, want) {
		t.Fatalf("args = %v, want %v", runner.last().args, want)
	}
}

func TestListServices(t *testing.T) {
	runner := &fakeRunner{out: []byte("gateway\nbackend\ndatabase\n\n")}
	services, err := ListServices(context.Background(), runner, devStack())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := []string{"gateway", "backend", "database"}
	if !reflect.DeepEqual(services, want) {
		t.Fatalf("services = %v, want %v", services, want)
	}

	wantArgs := append(baseArgs(), "config", "--services")
	if !reflect.DeepEqual(runner.last().args, wantArgs) {
		t.Fatalf("args = %v, want %v", runner.last().args, wantArgs)
	}
}
