package cmd

import (
	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup [database]",
	Short: "Back up one database, or every database when none is named",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Past argument validation; a failing backup is not a usage error.
		cmd.SilenceUsage = true

		var name string
		if len(args) == 1 {
			name = args[0]
		}

		_, err := newOperator().Backup(cmd.Context(), name)
		return err
	},
}
