package db_cmd

import (
	"crypto/ed25519"
	"encoding/hex"

	"github.com/daruolis/tessera/protocol"
	"github.com/daruolis/tessera/storage/schema"
	"github.com/daruolis/tessera/tessi/glb"
	"github.com/daruolis/tessera/util"
	"github.com/spf13/cobra"
)

func initRollsCmd() *cobra.Command {
	rollsCmd := &cobra.Command{
		Use:   "rolls",
		Short: "displays roll allocation of the latest state",
		Args:  cobra.NoArgs,
		Run:   runRollsCmd,
	}
	rollsCmd.InitDefaultHelpCmd()
	return rollsCmd
}

func runRollsCmd(_ *cobra.Command, _ []string) {
	glb.InitStateStoreDB()
	defer glb.CloseDatabases()

	ctx, _ := glb.MustLatestContext()

	next, err := schema.Rolls.Next.Get(ctx)
	glb.AssertNoError(err)
	glb.Infof("next roll to allocate: %s", next.String())

	if limbo, found, err := schema.Rolls.LimboHead.Get(ctx); err == nil && found {
		glb.Infof("limbo head: %s", limbo.String())
	} else {
		glb.AssertNoError(err)
		glb.Infof("limbo is empty")
	}

	count := 0
	perOwner := make(map[string]int)
	err = schema.Rolls.Owner.Iterate(ctx, func(r protocol.RollID, pk ed25519.PublicKey) bool {
		glb.Verbosef("%s owned by %s", r.String(), hex.EncodeToString(pk))
		perOwner[hex.EncodeToString(pk)]++
		count++
		return true
	})
	glb.AssertNoError(err)
	glb.Infof("total %d allocated roll(s) across %d owner(s)", count, len(perOwner))
	for _, owner := range util.KeysSorted(perOwner, func(k1, k2 string) bool { return k1 < k2 }) {
		glb.Infof("   %s: %d roll(s)", owner, perOwner[owner])
	}
}
