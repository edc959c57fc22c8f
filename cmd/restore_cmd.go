package cmd

import (
	"github.com/spf13/cobra"
)

var restoreCmd = &cobra.Command{
	Use:   "restore <file> [database]",
	Short: "Restore a backup file, optionally into a named database",
	Long: `restore loads a backup file through the mysql client. With a database
argument the database is created first if it does not exist and the load
is scoped to it. Without one, the dump content itself must select the
databases, as an all-databases backup does. Compressed files are detected
by content and decompressed before loading.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		file := args[0]
		var name string
		if len(args) == 2 {
			name = args[1]
		}

		return newOperator().Restore(cmd.Context(), file, name)
	},
}
