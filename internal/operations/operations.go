package operations

import (
	"time"

	"github.com/hbenali/mybak/internal/config"
	"github.com/hbenali/mybak/internal/database"
	"github.com/hbenali/mybak/internal/logger"
)

// Operator runs the backup, restore, list, and cleanup operations against
// one database adapter. It holds no state across operations; the process
// exits after a single command.
type Operator struct {
	cfg config.Config
	db  database.Database
	log logger.Logger
}

// NewOperator wires an Operator from explicit configuration.
func NewOperator(cfg config.Config, db database.Database, log logger.Logger) *Operator {
	return &Operator{
		cfg: cfg,
		db:  db,
		log: log,
	}
}

// Report describes one completed backup.
type Report struct {
	Target    string
	FilePath  string
	SizeBytes int64
	Duration  time.Duration
}
