// Where: internal/config/global.go
// What: Global config load/save helpers.
// Why: Manage ~/.stackctl/config.yaml consistently.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/yuseki/stackctl/internal/envutil"
	"gopkg.in/yaml.v3"
)

const homeDir = ".stackctl"

// GlobalConfig represents the ~/.stackctl/config.yaml global configuration.
// It records where the deployment lives and the mode last brought up.
type GlobalConfig struct {
	Version  int    `yaml:"version"`
	RootPath string `yaml:"root_path,omitempty"`
	LastMode string `yaml:"last_mode,omitempty"`
}

// DefaultGlobalConfig returns an initialized GlobalConfig with version set.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{Version: 1}
}

// GlobalConfigPath returns the path to the global config file.
// Respects STACKCTL_CONFIG_PATH and STACKCTL_CONFIG_HOME overrides.
func GlobalConfigPath() (string, error) {
	if override := strings.TrimSpace(envutil.Get("CONFIG_PATH")); override != "" {
		path := override
		if !filepath.IsAbs(path) {
			if abs, err := filepath.Abs(path); err == nil {
				path = abs
			}
		}
		return path, nil
	}
	if override := strings.TrimSpace(envutil.Get("CONFIG_HOME")); override != "" {
		return filepath.Join(override, "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, homeDir, "config.yaml"), nil
}

// EnsureGlobalConfig creates the global config file if it doesn't exist.
func EnsureGlobalConfig() error {
	path, err := GlobalConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return SaveGlobalConfig(path, DefaultGlobalConfig())
		}
		return err
	}
	return nil
}

// LoadGlobalConfig reads and parses the global configuration file.
func LoadGlobalConfig(path string) (GlobalConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return GlobalConfig{}, err
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return GlobalConfig{}, err
	}
	return cfg, nil
}

// SaveGlobalConfig writes a GlobalConfig to the specified path.
func SaveGlobalConfig(path string, cfg GlobalConfig) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, payload, 0o644)
}

// RememberMode records the mode most recently brought up, for operator
// reference in 'config show'. Best effort: failures are ignored.
func RememberMode(mode string) {
	path, err := GlobalConfigPath()
	if err != nil {
		return
	}
	cfg, err := LoadGlobalConfig(path)
	if err != nil {
		cfg = DefaultGlobalConfig()
	}
	cfg.LastMode = mode
	_ = SaveGlobalConfig(path, cfg)
}
