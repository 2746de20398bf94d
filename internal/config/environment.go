// Where: internal/config/environment.go
// What: Environment resolution.
// Why: Map a deployment mode to its compose/env file bundle.
package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	ModeDev  = "dev"
	ModeProd = "prod"
)

// Well-known service names in the deployment. They are defaults for
// interactive flows; validity of any service name is left to the runtime.
const (
	ServiceGateway  = "gateway"
	ServiceBackend  = "backend"
	ServiceDatabase = "database"
)

// ErrUnknownMode indicates an environment selector outside {dev, prod}.
var ErrUnknownMode = errors.New("unknown mode")

// Environment bundles the compose file and env file backing a deployment
// mode. Immutable once resolved for a run.
type Environment struct {
	Name        string
	ComposeFile string
	EnvFile     string
}

// Project returns the compose project name for the environment, keeping
// dev and prod resources isolated from each other.
func (e Environment) Project() string {
	return "stackctl-" + e.Name
}

// Resolve maps a mode string to its Environment. An empty mode defaults
// to dev. Any other value outside {dev, prod} fails with ErrUnknownMode:
// a typo silently landing on dev while the operator believes they hit
// prod is the worse failure.
func Resolve(mode string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", ModeDev:
		return Environment{
			Name:        ModeDev,
			ComposeFile: "docker-compose.yml",
			EnvFile:     ".env",
		}, nil
	case ModeProd:
		return Environment{
			Name:        ModeProd,
			ComposeFile: "docker-compose.prod.yml",
			EnvFile:     ".env",
		}, nil
	default:
		return Environment{}, fmt.Errorf("%w: %q (expected dev or prod)", ErrUnknownMode, mode)
	}
}
