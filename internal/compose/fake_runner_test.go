package compose

import (
	"context"
	"io"
)

type call struct {
	dir  string
	name string
	args []string
}

type fakeRunner struct {
	calls []call
	out   []byte
	err   error
}

func (f *fakeRunner) record(dir, name string, args []string) {
	f.calls = append(f.calls, call{dir: dir, name: name, args: append([]string{}, args...)})
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) error {
	f.record(dir, name, args)
	return f.err
}

func (f *fakeRunner) RunOutput(_ context.Context, dir, name string, args ...string) ([]byte, error) {
	f.record(dir, name, args)
	return f.out, f.err
}

func (f *fakeRunner) RunQuiet(ctx context.Context, dir, name string, args ...string) error {
	return f.Run(ctx, dir, name, args...)
}

func (f *fakeRunner) RunTo(_ context.Context, dir string, w io.Writer, name string, args ...string) error {
	f.record(dir, name, args)
	if len(f.out) > 0 {
		_, _ = w.Write(f.out)
	}
	return f.err
}

func (f *fakeRunner) last() call {
	if len(f.calls) == 0 {
		return call{}
	}
	return f.calls[len(f.calls)-1]
}
