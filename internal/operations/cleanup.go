package operations

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

// artifactPattern matches compressed backup artifacts:
// <name>_YYYYMMDD_HHMMSS.sql.gz. Anything else in the backup directory,
// including uncompressed leftovers, is never swept.
var artifactPattern = regexp.MustCompile(`^.+_\d{8}_\d{6}\.sql\.gz$`)

// Cleanup deletes compressed artifacts whose modification time is older
// than the given number of days and returns how many were removed.
// Zero days sweeps every artifact currently in the directory. The scan is
// non-recursive.
func (op *Operator) Cleanup(days int) (int, error) {
	op.log.Info("starting cleanup", "retention_days", days)

	cutoff := time.Now().AddDate(0, 0, -days)

	entries, err := os.ReadDir(op.cfg.Backup.Directory)
	if err != nil {
		if os.IsNotExist(err) {
			op.log.Info("backup directory does not exist, nothing to clean",
				"path", op.cfg.Backup.Directory,
			)
			return 0, nil
		}
		return 0, fmt.Errorf("read backup directory: %w", err)
	}

	deleted := 0
	for _, entry := range entries {
		if entry.IsDir() || !artifactPattern.MatchString(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}

		path := filepath.Join(op.cfg.Backup.Directory, entry.Name())
		if err := os.Remove(path); err != nil {
			op.log.Error("failed to delete old backup",
				"path", path,
				"error", err.Error(),
			)
			continue
		}
		op.log.Info("deleted old backup", "path", path)
		deleted++
	}

	op.log.Info("cleanup completed", "deleted", deleted)
	return deleted, nil
}
