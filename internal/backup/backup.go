// Where: internal/backup/backup.go
// What: Data store snapshot helpers.
// Why: Stream mongodump archives to uniquely named local files.
package backup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/yuseki/stackctl/internal/compose"
	"github.com/yuseki/stackctl/internal/config"
)

const stampLayout = "20060102-150405"

// Options configures one backup run.
type Options struct {
	Stack   compose.Stack
	Service string
	Dir     string
	Now     func() time.Time
}

// Run dumps the primary database of the stack's database service into a
// gzipped archive under opts.Dir. The filename carries a timestamp from
// the injected clock; a name collision within the same second gets a
// numeric suffix, so no run ever overwrites an earlier archive.
// Returns the path of the written file.
func Run(ctx context.Context, runner compose.CommandRunner, creds config.Credentials, opts Options) (string, error) {
	if runner == nil {
		return "", fmt.Errorf("command runner is nil")
	}
	if opts.Dir == "" {
		return "", fmt.Errorf("backup directory is required")
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	service := opts.Service
	if service == "" {
		service = config.ServiceDatabase
	}

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	file, path, err := createArchive(opts.Dir, now())
	if err != nil {
		return "", err
	}

	dumpErr := compose.ExecServiceTo(ctx, runner, file, compose.ExecOptions{
		Stack:   opts.Stack,
		Service: service,
		Command: dumpCommand(creds),
	})
	closeErr := file.Close()

	if dumpErr != nil {
		// Do not leave a truncated archive behind.
		_ = os.Remove(path)
		return "", dumpErr
	}
	if closeErr != nil {
		return "", closeErr
	}
	return path, nil
}

// createArchive opens a new archive file, suffixing the name until it
// does not collide. O_EXCL guarantees uniqueness even across processes.
func createArchive(dir string, at time.Time) (*os.File, string, error) {
	stamp := at.Format(stampLayout)
	for i := 0; ; i++ {
		name := stamp + ".archive.gz"
		if i > 0 {
			name = fmt.Sprintf("%s-%d.archive.gz", stamp, i)
		}
		path := filepath.Join(dir, name)
		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return file, path, nil
		}
		if !os.IsExist(err) {
			return nil, "", fmt.Errorf("create archive: %w", err)
		}
	}
}

// dumpCommand builds the in-container mongodump argv. Credentials travel
// as discrete tokens; nothing here passes through a shell.
func dumpCommand(creds config.Credentials) []string {
	return []string{
		"mongodump",
		"--archive",
		"--gzip",
		"--db", creds.Database,
		"-u", creds.Username,
		"-p", creds.Password,
		"--authenticationDatabase", "admin",
	}
}
