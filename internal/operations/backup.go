package operations

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// AllDatabasesName is the artifact base name used when no single database
// is targeted.
const AllDatabasesName = "all_databases"

// Backup dumps one database, or every database on the server when name is
// empty, then compresses the artifact in place. It returns a Report with
// the final compressed path. The timestamp is taken once, when the
// filename is built; two backups of the same target within the same
// second overwrite each other.
func (op *Operator) Backup(ctx context.Context, name string) (*Report, error) {
	if err := EnsureDir(op.cfg.Backup.Directory, op.log); err != nil {
		return nil, err
	}

	target := name
	if target == "" {
		target = AllDatabasesName
	}
	timestamp := time.Now().Format(op.cfg.Backup.TimestampFormat)
	dumpPath := filepath.Join(
		op.cfg.Backup.Directory,
		fmt.Sprintf("%s_%s.sql", target, timestamp),
	)

	start := time.Now()
	if err := op.db.Dump(ctx, name, dumpPath); err != nil {
		op.log.Error("backup failed",
			"target", target,
			"error", err.Error(),
		)
		// Do not strand a partial artifact the sweeper will never match.
		RemoveFile(dumpPath, op.log)
		return nil, fmt.Errorf("backup failed for %q: %w", target, err)
	}

	compressedPath, err := CompressGzip(dumpPath)
	if err != nil {
		op.log.Error("backup compression failed",
			"target", target,
			"path", dumpPath,
			"error", err.Error(),
		)
		return nil, fmt.Errorf("compress backup file: %w", err)
	}

	// The compressed artifact must exist and be non-empty before the
	// backup counts as a success.
	info, err := os.Stat(compressedPath)
	if err != nil {
		return nil, fmt.Errorf("stat compressed artifact: %w", err)
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("compressed artifact %q is empty", compressedPath)
	}

	report := &Report{
		Target:    target,
		FilePath:  compressedPath,
		SizeBytes: info.Size(),
		Duration:  time.Since(start),
	}

	op.log.Info("backup completed",
		"target", target,
		"path", report.FilePath,
		"size_bytes", report.SizeBytes,
		"duration", report.Duration.String(),
	)
	return report, nil
}
