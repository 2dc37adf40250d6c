package init_cmd

import (
	"github.com/spf13/cobra"
)

func Init() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init",
		Args:  cobra.NoArgs,
		Short: "initializes the state database and related files",
		Run: func(cmd *cobra.Command, args []string) {
		},
	}
	initCmd.AddCommand(
		initGenesisDBCmd(),
		initConstantsFileCmd(),
	)
	initCmd.InitDefaultHelpCmd()
	return initCmd
}
