package operations

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Artifact is one backup file found in the backup directory.
type Artifact struct {
	Name      string
	SizeBytes int64
	ModTime   time.Time
}

// ListArtifacts enumerates *.sql and *.sql.gz files in the backup
// directory, non-recursively. A missing directory yields an empty list.
func (op *Operator) ListArtifacts() ([]Artifact, error) {
	entries, err := os.ReadDir(op.cfg.Backup.Directory)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read backup directory: %w", err)
	}

	var artifacts []Artifact
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".sql") && !strings.HasSuffix(name, ".sql.gz") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		artifacts = append(artifacts, Artifact{
			Name:      name,
			SizeBytes: info.Size(),
			ModTime:   info.ModTime(),
		})
	}
	return artifacts, nil
}

// List writes the backup inventory to w, one artifact per line.
func (op *Operator) List(w io.Writer) error {
	artifacts, err := op.ListArtifacts()
	if err != nil {
		return err
	}

	if len(artifacts) == 0 {
		fmt.Fprintf(w, "no backup files in %s\n", op.cfg.Backup.Directory)
		return nil
	}

	for _, a := range artifacts {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			a.Name,
			humanize.Bytes(uint64(a.SizeBytes)),
			a.ModTime.Format("2006-01-02 15:04:05"),
		)
	}
	fmt.Fprintf(w, "%d file(s) in %s\n",
		len(artifacts),
		filepath.Clean(op.cfg.Backup.Directory),
	)
	return nil
}
