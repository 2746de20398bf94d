// Where: internal/app/target.go
// What: Invocation target resolution.
// Why: Resolve the environment fully before any subprocess is spawned.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuseki/stackctl/internal/compose"
	"github.com/yuseki/stackctl/internal/config"
	"github.com/yuseki/stackctl/internal/envutil"
)

// Target is a fully resolved invocation context: the environment plus
// the absolute paths the runtime will be pointed at. Read-only once
// built; no partially resolved target ever reaches a dispatcher.
type Target struct {
	Env   config.Environment
	Stack compose.Stack
}

// resolveTarget resolves the requested mode (flag, then STACKCTL_ENV,
// then the dev default) against the deployment root.
func resolveTarget(cli CLI, deps Dependencies) (Target, error) {
	mode := strings.TrimSpace(cli.Env)
	if mode == "" {
		mode = envutil.Get("ENV")
	}
	env, err := config.Resolve(mode)
	if err != nil {
		return Target{}, err
	}

	root, err := deps.RootResolver(deps.WorkDir)
	if err != nil {
		return Target{}, err
	}

	composeFile := filepath.Join(root, env.ComposeFile)
	if _, err := os.Stat(composeFile); err != nil {
		return Target{}, fmt.Errorf("compose file not found: %s", composeFile)
	}

	envFile := cli.EnvFile
	if envFile != "" {
		if abs, err := filepath.Abs(envFile); err == nil {
			envFile = abs
		}
		if _, err := os.Stat(envFile); err != nil {
			return Target{}, fmt.Errorf("env file not found: %s", envFile)
		}
	} else {
		envFile = filepath.Join(root, env.EnvFile)
		if _, err := os.Stat(envFile); err != nil {
			// The shared env file is optional for non-credentialed verbs;
			// the runtime then falls back to its own defaults.
			envFile = ""
		}
	}

	return Target{
		Env: env,
		Stack: compose.Stack{
			Root:        root,
			Project:     env.Project(),
			ComposeFile: composeFile,
			EnvFile:     envFile,
		},
	}, nil
}
