package database

import (
	"context"
	"errors"
)

var (
	ErrTimeout       = errors.New("operation timed out")
	ErrBackupFailed  = errors.New("backup failed")
	ErrRestoreFailed = errors.New("restore failed")
)

// Database abstracts a server whose dump and load client tools this
// program drives. An empty database name selects the engine's
// "every database on the server" mode.
type Database interface {
	Engine() string
	Dump(ctx context.Context, database, outputPath string) error
	Load(ctx context.Context, inputPath, database string) error
	EnsureDatabase(ctx context.Context, database string) error
}
