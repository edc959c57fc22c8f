package operations

import (
	"fmt"
	"os"

	"github.com/hbenali/mybak/internal/logger"
)

// EnsureDir creates path and any missing parents, logging the creation.
// A second call on an existing directory is a silent no-op.
func EnsureDir(path string, log logger.Logger) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", path, err)
	}
	log.Info("created directory", "path", path)
	return nil
}

// RemoveFile deletes path, logging a failure instead of propagating it.
func RemoveFile(path string, log logger.Logger) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Warn("failed to remove file",
			"path", path,
			"error", err.Error(),
		)
	}
}
