package cmd

import (
	"errors"

	"github.com/hbenali/mybak/internal/config"
	"github.com/hbenali/mybak/internal/database"
	"github.com/hbenali/mybak/internal/logger"
	"github.com/hbenali/mybak/internal/operations"
	"github.com/spf13/cobra"
)

// runningAsRoot is a variable so tests can stub the privilege gate.
var runningAsRoot = processIsElevated

var (
	// configFile is the path to the YAML configuration.
	configFile string
	cfg        config.Config
	log        logger.Logger

	// rootCmd is the base command for mybak.
	rootCmd = &cobra.Command{
		Use:   "mybak",
		Short: "Backup and restore MySQL databases",
		Long: `mybak backs up MySQL databases with mysqldump, compresses the
dumps, restores them with the mysql client, and prunes old
artifacts from the backup directory.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Privilege gate comes first: no directory or log side
			// effects before it passes.
			if !runningAsRoot() {
				return errors.New("mybak must be run with administrative privileges")
			}
			if err := cfg.Load(configFile); err != nil {
				return err
			}
			l, err := logger.Init(cfg.Log.File)
			if err != nil {
				return err
			}
			log = l
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if err := cmd.Help(); err != nil {
				return err
			}
			return errors.New("a command is required")
		},
	}
)

// Execute runs the root command and returns the process exit code.
// cobra prints the error, plus usage for precondition errors; commands
// silence usage once their arguments have validated.
func Execute() int {
	defer logger.Cleanup()
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

// newOperator wires the operator every subcommand runs through.
func newOperator() *operations.Operator {
	return operations.NewOperator(cfg, database.NewMySQL(cfg), log)
}

func init() {
	rootCmd.PersistentFlags().
		StringVarP(&configFile, "config", "c", "/etc/mybak/config.yaml", "path to YAML config file")

	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(cleanupCmd)
}
