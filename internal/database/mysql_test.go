package database

import (
	"strings"
	"testing"

	"github.com/hbenali/mybak/internal/config"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	return config.Config{
		MySQL: config.MySQLConfig{
			Host:     "db.example.com",
			Port:     "3306",
			Username: "backup",
			Password: "secret",
		},
	}
}

func TestDumpArgs_SingleDatabase(t *testing.T) {
	m := NewMySQL(testConfig())
	args := m.dumpArgs("mydb", "/var/backups/mysql/mydb_20250101_120000.sql")

	require.Equal(t, []string{
		"-h", "db.example.com",
		"-P", "3306",
		"-u", "backup",
		"--single-transaction",
		"--quick",
		"--lock-tables=false",
		"--result-file=/var/backups/mysql/mydb_20250101_120000.sql",
		"mydb",
	}, args)
}

func TestDumpArgs_AllDatabases(t *testing.T) {
	m := NewMySQL(testConfig())
	args := m.dumpArgs("", "/tmp/all.sql")

	require.Equal(t, "--all-databases", args[len(args)-1])
	require.NotContains(t, args, "")
}

func TestConnArgs_EmptyUsernameOmitted(t *testing.T) {
	m := NewMySQL(testConfig(), WithMySQLCredentials("", ""))

	args := m.connArgs()
	require.NotContains(t, args, "-u")
	require.NotContains(t, args, "")
}

func TestEnv_PasswordHandling(t *testing.T) {
	m := NewMySQL(testConfig())
	require.Contains(t, m.env(), "MYSQL_PWD=secret")

	// Empty password means trust auth: no MYSQL_PWD at all, not an
	// empty one.
	m = NewMySQL(testConfig(), WithMySQLCredentials("backup", ""))
	for _, kv := range m.env() {
		require.False(t, strings.HasPrefix(kv, "MYSQL_PWD="))
	}
}

func TestLoadArgs_Scoping(t *testing.T) {
	m := NewMySQL(testConfig())

	scoped := m.loadArgs("mydb")
	require.Equal(t, "mydb", scoped[len(scoped)-1])

	// Unscoped load carries no database argument.
	require.Equal(t, m.connArgs(), m.loadArgs(""))
}

func TestQuoteIdentifier(t *testing.T) {
	require.Equal(t, "`mydb`", quoteIdentifier("mydb"))
	require.Equal(t, "`my``db`", quoteIdentifier("my`db"))
}

func TestOptions_EmptyOverridesIgnored(t *testing.T) {
	m := NewMySQL(testConfig(),
		WithMySQLHost(""),
		WithMySQLPort(""),
	)
	require.Equal(t, "db.example.com", m.Host)
	require.Equal(t, "3306", m.Port)
}
