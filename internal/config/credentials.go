// Where: internal/config/credentials.go
// What: Database credential loading from the environment file.
// Why: Read credentials through a structured parser instead of text scanning.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
)

const (
	keyDBUsername = "MONGO_INITDB_ROOT_USERNAME"
	keyDBPassword = "MONGO_INITDB_ROOT_PASSWORD"
	keyDBName     = "MONGO_DB"

	defaultDBName = "app"
)

// Credentials holds database access values read from the env file.
// They are only ever passed as discrete argv tokens, never interpolated
// into a shell string.
type Credentials struct {
	Username string
	Password string
	Database string
}

// LoadCredentials parses the env file at path and extracts the database
// credentials. Username and password are required; the database name
// falls back to a default when unset.
func LoadCredentials(path string) (Credentials, error) {
	if strings.TrimSpace(path) == "" {
		return Credentials{}, fmt.Errorf("env file is required for database credentials")
	}
	values, err := godotenv.Read(path)
	if err != nil {
		return Credentials{}, fmt.Errorf("read env file %s: %w", path, err)
	}

	creds := Credentials{
		Username: strings.TrimSpace(values[keyDBUsername]),
		Password: strings.TrimSpace(values[keyDBPassword]),
		Database: strings.TrimSpace(values[keyDBName]),
	}
	if creds.Username == "" || creds.Password == "" {
		return Credentials{}, fmt.Errorf("%s and %s must be set in %s", keyDBUsername, keyDBPassword, path)
	}
	if creds.Database == "" {
		creds.Database = defaultDBName
	}
	return creds, nil
}

const (
	keyGatewayPort = "GATEWAY_PORT"
	keyBackendPort = "BACKEND_PORT"

	defaultGatewayPort = "8080"
	defaultBackendPort = "3000"
)

// ServicePorts returns the published gateway and backend HTTP ports from
// the env file, with documented defaults when the file or keys are absent.
func ServicePorts(path string) (gateway, backend string) {
	gateway, backend = defaultGatewayPort, defaultBackendPort
	if strings.TrimSpace(path) == "" {
		return gateway, backend
	}
	values, err := godotenv.Read(path)
	if err != nil {
		return gateway, backend
	}
	if v := strings.TrimSpace(values[keyGatewayPort]); v != "" {
		gateway = v
	}
	if v := strings.TrimSpace(values[keyBackendPort]); v != "" {
		backend = v
	}
	return gateway, backend
}
