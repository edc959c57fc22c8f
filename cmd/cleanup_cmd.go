package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup [days]",
	Short: "Delete compressed backups older than the given number of days",
	Long: `cleanup deletes compressed backup artifacts whose modification time is
older than the given number of days (default from configuration, 30).
Zero deletes every compressed artifact in the backup directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		days := cfg.Retention.Days
		if len(args) == 1 && args[0] != "" {
			parsed, err := strconv.Atoi(args[0])
			if err != nil || parsed < 0 {
				return fmt.Errorf("invalid days value %q", args[0])
			}
			days = parsed
		}
		cmd.SilenceUsage = true

		_, err := newOperator().Cleanup(days)
		return err
	},
}
