package init_cmd

import (
	"os"

	"github.com/daruolis/tessera/global"
	"github.com/daruolis/tessera/protocol"
	"github.com/daruolis/tessera/tessi/glb"
	"github.com/spf13/cobra"
)

func initConstantsFileCmd() *cobra.Command {
	constantsCmd := &cobra.Command{
		Use:   "constants",
		Short: "writes the default (sandbox) protocol constants file",
		Args:  cobra.NoArgs,
		Run:   runInitConstants,
	}
	constantsCmd.InitDefaultHelpCmd()
	return constantsCmd
}

func runInitConstants(_ *cobra.Command, _ []string) {
	if glb.FileExists(global.ConstantsFileName) {
		if !glb.YesNoPrompt("file '"+global.ConstantsFileName+"' already exists. Overwrite?", false) {
			glb.Fatalf("exit: file '%s' already exists", global.ConstantsFileName)
		}
	}
	err := os.WriteFile(global.ConstantsFileName, protocol.DefaultConstants().YAML(), 0644)
	glb.AssertNoError(err)
	glb.Infof("sandbox protocol constants have been written to '%s'", global.ConstantsFileName)
}
