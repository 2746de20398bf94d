// Where: internal/app/backup.go
// What: Backup-data command handler.
package app

import (
	"fmt"
	"io"

	"github.com/yuseki/stackctl/internal/ui"
)

// runBackupData executes the 'backup-data' command which snapshots the
// primary data store to a timestamped archive. Not destructive, so not
// gated; every run writes a fresh file.
func runBackupData(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.Backup.Backupper == nil {
		fmt.Fprintln(out, "backup-data: not implemented")
		return ExitError
	}

	target, err := resolveTarget(cli, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	req := BackupRequest{
		Target: target,
		Dir:    cli.BackupData.Dir,
		Now:    deps.Now,
	}
	path, err := deps.Backup.Backupper.Backup(req)
	if err != nil {
		return exitFromChild(out, err)
	}

	ui.New(out).Success("backup written: " + path)
	return ExitOK
}
