package database

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/hbenali/mybak/internal/config"
	"github.com/hbenali/mybak/internal/logger"
)

const mysqlEngine = "mysql"

// MySQLOption lets you override default settings on a MySQL.
type MySQLOption func(*MySQL)

// MySQL drives mysqldump and the mysql client for backup and restore.
// Credentials are plain configuration; an empty Username or Password is
// omitted from the invocation entirely rather than passed as an empty
// flag, so trust-based authentication keeps working.
type MySQL struct {
	Username string
	Password string
	Host     string
	Port     string
	Timeout  time.Duration
	Logger   logger.Logger
}

// NewMySQL returns a MySQL configured from cfg plus any overrides.
func NewMySQL(cfg config.Config, opts ...MySQLOption) *MySQL {
	m := &MySQL{
		Host:     cfg.MySQL.Host,
		Port:     cfg.MySQL.Port,
		Username: cfg.MySQL.Username,
		Password: cfg.MySQL.Password,
		Timeout:  cfg.Backup.ToolTimeout,
		Logger:   logger.Global(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WithMySQLHost overrides the host.
func WithMySQLHost(host string) MySQLOption {
	return func(m *MySQL) {
		if host != "" {
			m.Host = host
		}
	}
}

// WithMySQLPort overrides the port.
func WithMySQLPort(port string) MySQLOption {
	return func(m *MySQL) {
		if port != "" {
			m.Port = port
		}
	}
}

// WithMySQLCredentials sets username and password.
func WithMySQLCredentials(user, pass string) MySQLOption {
	return func(m *MySQL) {
		m.Username = user
		m.Password = pass
	}
}

// WithMySQLTimeout bounds each client-tool invocation. Zero means the
// process waits for the tool indefinitely.
func WithMySQLTimeout(timeout time.Duration) MySQLOption {
	return func(m *MySQL) {
		m.Timeout = timeout
	}
}

// Engine returns the engine name.
func (m *MySQL) Engine() string { return mysqlEngine }

// connArgs is the argv prefix shared by every client-tool invocation.
// Arguments stay a discrete slice end to end; nothing is ever handed to a
// shell, so hostile database or file names cannot break out.
func (m *MySQL) connArgs() []string {
	args := []string{
		"-h", m.Host,
		"-P", m.Port,
	}
	if m.Username != "" {
		args = append(args, "-u", m.Username)
	}
	return args
}

// env returns the tool environment. The password travels via MYSQL_PWD so
// it never shows up in the process list.
func (m *MySQL) env() []string {
	env := os.Environ()
	if m.Password != "" {
		env = append(env, "MYSQL_PWD="+m.Password)
	}
	return env
}

// opContext derives the per-invocation context. A zero timeout preserves
// the unbounded wait.
func (m *MySQL) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if m.Timeout > 0 {
		return context.WithTimeoutCause(ctx, m.Timeout, ErrTimeout)
	}
	return context.WithCancel(ctx)
}

// dumpArgs builds the mysqldump argv for one database, or for every
// database on the server when database is empty.
func (m *MySQL) dumpArgs(database, outputPath string) []string {
	args := append(m.connArgs(),
		"--single-transaction",
		"--quick",
		"--lock-tables=false",
		"--result-file="+outputPath,
	)
	if database == "" {
		return append(args, "--all-databases")
	}
	return append(args, database)
}

// loadArgs builds the mysql argv for a load, scoped to database when one
// is named.
func (m *MySQL) loadArgs(database string) []string {
	args := m.connArgs()
	if database != "" {
		args = append(args, database)
	}
	return args
}

// Dump runs mysqldump into outputPath. The flags ask for a consistent
// snapshot without table locks and stream rows instead of buffering them.
func (m *MySQL) Dump(ctx context.Context, database, outputPath string) error {
	ctx, cancel := m.opContext(ctx)
	defer cancel()

	cmd := exec.CommandContext(ctx, "mysqldump", m.dumpArgs(database, outputPath)...)
	cmd.Env = m.env()
	cmd.Stdout = io.Discard
	cmd.Stderr = os.Stderr

	target := database
	if target == "" {
		target = "all databases"
	}
	m.Logger.Info("dump started",
		"engine", mysqlEngine,
		"target", target,
		"path", outputPath,
	)
	start := time.Now()
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: mysqldump: %w", ErrBackupFailed, err)
	}
	m.Logger.Info("dump completed",
		"engine", mysqlEngine,
		"target", target,
		"duration", time.Since(start).String(),
	)
	return nil
}

// Load streams inputPath into the mysql client. With a database name the
// load is scoped to it; without one the dump content itself must carry
// the CREATE DATABASE / USE statements, as an all-databases dump does.
func (m *MySQL) Load(ctx context.Context, inputPath, database string) error {
	ctx, cancel := m.opContext(ctx)
	defer cancel()

	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open dump file: %w", err)
	}
	defer file.Close()

	cmd := exec.CommandContext(ctx, "mysql", m.loadArgs(database)...)
	cmd.Env = m.env()
	cmd.Stdin = file
	cmd.Stdout = io.Discard
	cmd.Stderr = os.Stderr

	m.Logger.Info("load started",
		"engine", mysqlEngine,
		"database", database,
		"source", inputPath,
	)
	start := time.Now()
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: mysql: %w", ErrRestoreFailed, err)
	}
	m.Logger.Info("load completed",
		"engine", mysqlEngine,
		"database", database,
		"duration", time.Since(start).String(),
	)
	return nil
}

// EnsureDatabase creates database on the server when it does not exist
// yet. Runs as its own statement, separately from any load.
func (m *MySQL) EnsureDatabase(ctx context.Context, database string) error {
	ctx, cancel := m.opContext(ctx)
	defer cancel()

	stmt := fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", quoteIdentifier(database))
	cmd := exec.CommandContext(ctx, "mysql", append(m.connArgs(), "-e", stmt)...)
	cmd.Env = m.env()
	cmd.Stdout = io.Discard
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("create database %q: %w", database, err)
	}
	return nil
}

// quoteIdentifier backtick-quotes a MySQL identifier, doubling any
// embedded backticks.
func quoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}
