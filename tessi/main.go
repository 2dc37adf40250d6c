package main

import (
	"os"

	"github.com/daruolis/tessera/global"
	"github.com/daruolis/tessera/tessi/db_cmd"
	"github.com/daruolis/tessera/tessi/glb"
	"github.com/daruolis/tessera/tessi/init_cmd"
	"github.com/daruolis/tessera/tessi/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tessi",
		Short: "tessi is the database utility of tessera",
		Long:  global.BannerString(),
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	err := viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	glb.AssertNoError(err)
	rootCmd.PersistentFlags().Bool("trace", false, "trace raw store operations")
	err = viper.BindPFlag("trace", rootCmd.PersistentFlags().Lookup("trace"))
	glb.AssertNoError(err)

	rootCmd.AddCommand(
		init_cmd.Init(),
		db_cmd.Init(),
		version.CmdVersion(),
	)
	rootCmd.InitDefaultHelpCmd()

	if err = rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
