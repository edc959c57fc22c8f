package operations

import (
	"context"
	"fmt"
	"os"
)

// Restore loads a backup file into the server. When name is given the
// target database is created first (if absent) and the load is scoped to
// it; otherwise the dump content itself selects the databases, as an
// all-databases dump does.
//
// Decompression is a separate stage with its own error check, so a bad
// archive surfaces before the load tool ever starts.
func (op *Operator) Restore(ctx context.Context, file, name string) error {
	if _, err := os.Stat(file); err != nil {
		op.log.Error("restore source not found", "file", file)
		return fmt.Errorf("backup file %q not found: %w", file, err)
	}

	loadPath := file
	compressed, err := DetectGzip(file)
	if err != nil {
		return fmt.Errorf("inspect backup file: %w", err)
	}
	if compressed {
		decPath, err := DecompressGzip(file)
		if err != nil {
			op.log.Error("decompression failed",
				"file", file,
				"error", err.Error(),
			)
			return fmt.Errorf("decompress backup file: %w", err)
		}
		defer RemoveFile(decPath, op.log)
		loadPath = decPath
	}

	if name != "" {
		if err := op.db.EnsureDatabase(ctx, name); err != nil {
			op.log.Error("create target database failed",
				"database", name,
				"error", err.Error(),
			)
			return err
		}
	}

	if err := op.db.Load(ctx, loadPath, name); err != nil {
		op.log.Error("restore failed",
			"file", file,
			"database", name,
			"error", err.Error(),
		)
		return fmt.Errorf("restore from %q failed: %w", file, err)
	}

	op.log.Info("restore completed",
		"file", file,
		"database", name,
	)
	return nil
}
