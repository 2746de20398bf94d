// Where: internal/compose/stack.go
// What: Compose invocation target and base argument construction.
// Why: Keep every verb's command line anchored to one resolved stack.
package compose

import "fmt"

// RuntimeBinary is the orchestration runtime this package delegates to.
const RuntimeBinary = "docker"

// Stack identifies a compose project and the files backing it. It is
// fully resolved before any subprocess is spawned; a partial stack is
// rejected by validate.
type Stack struct {
	Root        string
	Project     string
	ComposeFile string
	EnvFile     string
}

func (s Stack) validate() error {
	if s.Root == "" {
		return fmt.Errorf("stack root is required")
	}
	if s.ComposeFile == "" {
		return fmt.Errorf("compose file is required")
	}
	return nil
}

// args returns the fixed leading arguments shared by every compose verb.
// Passthrough arguments always follow these, in caller order.
func (s Stack) args() []string {
	args := []string{"compose"}
	if s.Project != "" {
		args = append(args, "-p", s.Project)
	}
	args = append(args, "-f", s.ComposeFile)
	if s.EnvFile != "" {
		args = append(args, "--env-file", s.EnvFile)
	}
	return args
}
