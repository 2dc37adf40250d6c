package init_cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/daruolis/tessera/global"
	"github.com/daruolis/tessera/protocol"
	"github.com/daruolis/tessera/storage"
	"github.com/daruolis/tessera/tessi/glb"
	"github.com/lunfardo314/unitrie/adaptors/badger_adaptor"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var constantsFile string

func initGenesisDBCmd() *cobra.Command {
	genesisCmd := &cobra.Command{
		Use: "genesis_db",
		Short: fmt.Sprintf("creates the state DB and commits the genesis state with protocol constants "+
			"taken from file '%s' (default) or from the file specified with flag -c", global.ConstantsFileName),
		Args: cobra.NoArgs,
		Run:  runGenesis,
	}
	genesisCmd.PersistentFlags().StringVarP(&constantsFile, "constants", "c", global.ConstantsFileName, "protocol constants YAML file")
	err := viper.BindPFlag("constants", genesisCmd.PersistentFlags().Lookup("constants"))
	glb.AssertNoError(err)

	return genesisCmd
}

func runGenesis(_ *cobra.Command, _ []string) {
	glb.DirMustNotExistOrBeEmpty(global.MultiStateDBName)

	glb.Infof("reading protocol constants from file '%s'", constantsFile)
	data, err := os.ReadFile(constantsFile)
	glb.AssertNoError(err)

	constants, err := protocol.ConstantsFromYAML(data)
	glb.AssertNoError(err)

	glb.Infof("Will be creating genesis state with the following protocol constants:")
	glb.Infof(constants.Lines("      ").String())
	if !glb.YesNoPrompt("Proceed?", true) {
		glb.Fatalf("exit: genesis database creation canceled")
	}

	stateDB := badger_adaptor.MustCreateOrOpenBadgerDB(global.MultiStateDBName)
	defer func() { _ = stateDB.Close() }()

	ctx, err := storage.InitStateStore(badger_adaptor.New(stateDB), constants, protocol.Timestamp(time.Now().Unix()))
	glb.AssertNoError(err)

	glb.Infof("genesis state has been created in database '%s'", global.MultiStateDBName)
	glb.Infof("genesis root: %s", ctx.Root().String())
}
