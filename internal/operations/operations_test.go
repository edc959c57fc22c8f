package operations

import (
	"context"
	"os"

	"github.com/hbenali/mybak/internal/config"
	"github.com/hbenali/mybak/internal/logger"
)

// fakeDB stands in for the mysql adapter so operation tests never need a
// database server or its client tools.
type fakeDB struct {
	dumpErr   error
	loadErr   error
	ensureErr error

	dumpCalls   int
	loadCalls   int
	ensureCalls []string
	loadPath    string
	loadTarget  string
	payload     string
}

func (f *fakeDB) Engine() string { return "fake" }

func (f *fakeDB) Dump(_ context.Context, _, outputPath string) error {
	f.dumpCalls++
	payload := f.payload
	if f.dumpErr != nil {
		// A failed dump tool still leaves a partial file behind.
		payload = "-- partial"
	}
	if err := os.WriteFile(outputPath, []byte(payload), 0o644); err != nil {
		return err
	}
	return f.dumpErr
}

func (f *fakeDB) Load(_ context.Context, inputPath, database string) error {
	f.loadCalls++
	f.loadPath = inputPath
	f.loadTarget = database
	return f.loadErr
}

func (f *fakeDB) EnsureDatabase(_ context.Context, database string) error {
	f.ensureCalls = append(f.ensureCalls, database)
	return f.ensureErr
}

func newTestOperator(backupDir string, db *fakeDB) *Operator {
	cfg := config.Config{
		Backup: config.BackupConfig{
			Directory:       backupDir,
			TimestampFormat: "20060102_150405",
		},
		Retention: config.RetentionConfig{Days: 30},
	}
	return NewOperator(cfg, db, logger.Global())
}
