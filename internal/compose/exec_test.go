// Where: internal/compose/exec_test.go
// What: Tests for compose exec argument construction.
package compose

import (
	"bytes"
	"context"
	"reflect"
	"testing"
)

func TestExecServiceInteractive(t *testing.T) {
	runner := &fakeRunner{}
	opts := ExecOptions{
		Stack:       devStack(),
		Service:     "backend",
		Interactive: true,
		Command:     []string{"/bin/sh"},
	}
	if err := ExecService(context.Background(), runner, opts); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := append(baseArgs(), "exec", "backend", "/bin/sh")
	if !reflect.DeepEqual(runner.last().args, want) {
		t.Fatalf("args = %v, want %v", runner.last().args, want)
	}
}

func TestExecServiceNonInteractiveDisablesTTY(t *testing.T) {
	runner := &fakeRunner{}
	opts := ExecOptions{
		Stack:   devStack(),
		Service: "database",
		Command: []string{"mongosh", "--eval", "db.dropDatabase()"},
	}
	if err := ExecService(context.Background(), runner, opts); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := append(baseArgs(), "exec", "-T", "database", "mongosh", "--eval", "db.dropDatabase()")
	if !reflect.DeepEqual(runner.last().args, want) {
		t.Fatalf("args = %v, want %v", runner.last().args, want)
	}
}

func TestExecServiceToStreamsStdout(t *testing.T) {
	runner := &fakeRunner{out: []byte("archive-bytes")}
	var buf bytes.Buffer
	opts := ExecOptions{
		Stack:       devStack(),
		Service:     "database",
		Interactive: true, // forced off for captured output
		Command:     []string{"mongodump", "--archive"},
	}
	if err := ExecServiceTo(context.Background(), runner, &buf, opts); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if buf.String() != "archive-bytes" {
		t.Fatalf("unexpected stream: %q", buf.String())
	}
	want := append(baseArgs(), "exec", "-T", "database", "mongodump", "--archive")
	if !reflect.DeepEqual(runner.last().args, want) {
		t.Fatalf("args = %v, want %v", runner.last().args, want)
	}
}

func TestExecServiceRequiresServiceAndCommand(t *testing.T) {
	runner := &fakeRunner{}
	if err := ExecService(context.Background(), runner, ExecOptions{Stack: devStack(), Command: []string{"sh"}}); err == nil {
		t.Fatal("expected error for missing service")
	}
	if err := ExecService(context.Background(), runner, ExecOptions{Stack: devStack(), Service: "backend"}); err == nil {
		t.Fatal("expected error for missing command")
	}
	if len(runner.calls) != 0 {
		t.Fatalf("expected no subprocess, got %d calls", len(runner.calls))
	}
}
