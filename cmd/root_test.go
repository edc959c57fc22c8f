package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeTestConfig points every path the commands touch at a temp dir.
func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	yaml := `
backup:
  directory: "` + filepath.Join(dir, "backups") + `"
log:
  file: "` + filepath.Join(dir, "mybak.log") + `"
`
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	return path
}

// executeRoot drives rootCmd with the privilege gate stubbed open and
// captures everything cobra prints.
func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	orig := runningAsRoot
	runningAsRoot = func() bool { return true }
	t.Cleanup(func() { runningAsRoot = orig })

	// Undo what an earlier run's RunE may have silenced.
	rootCmd.SilenceUsage = false
	for _, c := range rootCmd.Commands() {
		c.SilenceUsage = false
	}

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRouter_NoArgumentsPrintsUsageAndFails(t *testing.T) {
	out, err := executeRoot(t, "-c", writeTestConfig(t))
	require.Error(t, err)
	require.Contains(t, err.Error(), "a command is required")
	require.Contains(t, out, "Usage:")
}

func TestRouter_UnknownCommandFails(t *testing.T) {
	out, err := executeRoot(t, "frobnicate")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown command")
	require.Contains(t, out, "--help")
}

func TestRouter_RestoreRequiresFileArgument(t *testing.T) {
	out, err := executeRoot(t, "restore")
	require.Error(t, err)
	require.Contains(t, out, "Usage:")
	require.Contains(t, out, "restore <file> [database]")
}

func TestRouter_PrivilegeGateBlocksUnprivileged(t *testing.T) {
	orig := runningAsRoot
	runningAsRoot = func() bool { return false }
	t.Cleanup(func() { runningAsRoot = orig })

	rootCmd.SilenceUsage = false
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"-c", writeTestConfig(t), "list"})

	err := rootCmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "administrative privileges")
}

func TestExecute_ExitCodes(t *testing.T) {
	orig := runningAsRoot
	runningAsRoot = func() bool { return true }
	t.Cleanup(func() { runningAsRoot = orig })

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)

	rootCmd.SetArgs([]string{"frobnicate"})
	require.Equal(t, 1, Execute())

	rootCmd.SetArgs([]string{"-c", writeTestConfig(t), "help"})
	require.Equal(t, 0, Execute())
}
