package db_cmd

import (
	"github.com/spf13/cobra"
)

func Init() *cobra.Command {
	dbCmd := &cobra.Command{
		Use:   "db",
		Args:  cobra.NoArgs,
		Short: "inspects the state database",
		Run: func(cmd *cobra.Command, args []string) {
		},
	}
	dbCmd.AddCommand(
		initDBInfoCmd(),
		initContractCmd(),
		initRollsCmd(),
		initGovCmd(),
	)
	dbCmd.InitDefaultHelpCmd()
	return dbCmd
}
