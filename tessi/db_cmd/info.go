package db_cmd

import (
	"errors"

	"github.com/daruolis/tessera/storage"
	"github.com/daruolis/tessera/storage/schema"
	"github.com/daruolis/tessera/tessi/glb"
	"github.com/spf13/cobra"
)

var maxRecordsDBInfo int

func initDBInfoCmd() *cobra.Command {
	dbInfoCmd := &cobra.Command{
		Use:   "info",
		Short: "displays general info of the state DB",
		Args:  cobra.NoArgs,
		Run:   runDbInfoCmd,
	}
	dbInfoCmd.PersistentFlags().IntVarP(&maxRecordsDBInfo, "records", "r", 10, "maximum commit records to list. -1 means all")

	dbInfoCmd.InitDefaultHelpCmd()
	return dbInfoCmd
}

func runDbInfoCmd(_ *cobra.Command, _ []string) {
	glb.InitStateStoreDB()
	defer glb.CloseDatabases()

	ctx, rec := glb.MustLatestContext()
	glb.Infof("latest committed level: %d", rec.Level)
	glb.Infof("latest root: %s", rec.Root.String())
	glb.Infof("sandboxed: %v, prevalidation: %v", ctx.Sandboxed(), ctx.Prevalidation())

	glb.Infof("----------------- protocol constants -----------------")
	glb.Infof(ctx.Constants().Lines("   ").String())

	if level, err := schema.Head.Level.Get(ctx); err == nil {
		ts, err := schema.Head.Timestamp.Get(ctx)
		glb.AssertNoError(err)
		glb.Infof("head: level %d, timestamp %d, cycle %d", level, ts, ctx.Constants().CycleOfLevel(level))
	} else if errors.Is(err, storage.ErrNotFound) {
		glb.Infof("head slots are not set yet")
	} else {
		glb.AssertNoError(err)
	}

	glb.Infof("----------------- commit records ---------------------")
	count := 0
	err := storage.IterateCommitRecords(glb.StateStore(), func(r storage.CommitRecord) bool {
		glb.Infof("%s", r.Lines("   ").Join(", "))
		count++
		return maxRecordsDBInfo < 0 || count < maxRecordsDBInfo
	})
	glb.AssertNoError(err)
}
