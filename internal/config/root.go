// Where: internal/config/root.go
// What: Deployment root discovery logic.
// Why: Centralize logic to find the deployment root from env, file system, or config.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuseki/stackctl/internal/envutil"
)

// rootMarker is the file whose presence identifies the deployment root.
const rootMarker = "docker-compose.yml"

// ResolveRoot determines the deployment root path.
// Priority:
// 1. STACKCTL_ROOT environment variable (validated as root or searched upward)
// 2. Upward search for docker-compose.yml from startDir
// 3. root_path in global config (~/.stackctl/config.yaml)
func ResolveRoot(startDir string) (string, error) {
	if root := strings.TrimSpace(envutil.Get("ROOT")); root != "" {
		if found, ok := findRoot(root); ok {
			return found, nil
		}
	}

	if startDir != "" {
		if found, ok := findRoot(startDir); ok {
			return found, nil
		}
	}

	if cfgPath, err := GlobalConfigPath(); err == nil {
		if cfg, err := LoadGlobalConfig(cfgPath); err == nil && cfg.RootPath != "" {
			if found, ok := findRoot(cfg.RootPath); ok {
				return found, nil
			}
		}
	}

	return "", fmt.Errorf("deployment root not found. Run 'stackctl config set-root <path>' or set %s", envutil.Key("ROOT"))
}

// ResolveRootFromPath determines the deployment root using only the supplied path.
func ResolveRootFromPath(path string) (string, error) {
	if root, ok := findRoot(path); ok {
		return root, nil
	}
	return "", fmt.Errorf("no %s found at or above %s", rootMarker, path)
}

// findRoot searches upward from the given path for a directory
// containing docker-compose.yml.
func findRoot(path string) (string, bool) {
	dir, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, rootMarker)); err == nil {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false
}
