package db_cmd

import (
	"github.com/daruolis/tessera/protocol"
	"github.com/daruolis/tessera/storage/schema"
	"github.com/daruolis/tessera/tessi/glb"
	"github.com/spf13/cobra"
)

func initGovCmd() *cobra.Command {
	govCmd := &cobra.Command{
		Use:   "gov",
		Short: "displays governance state of the current voting period",
		Args:  cobra.NoArgs,
		Run:   runGovCmd,
	}
	govCmd.InitDefaultHelpCmd()
	return govCmd
}

func runGovCmd(_ *cobra.Command, _ []string) {
	glb.InitStateStoreDB()
	defer glb.CloseDatabases()

	ctx, _ := glb.MustLatestContext()

	kind, err := schema.Votes.PeriodKind.Get(ctx)
	glb.AssertNoError(err)
	quorum, err := schema.Votes.Quorum.Get(ctx)
	glb.AssertNoError(err)
	listingsSize, err := schema.Votes.ListingsSize.Get(ctx)
	glb.AssertNoError(err)

	glb.Infof("voting period: %s", kind.String())
	glb.Infof("quorum: %d, listings size: %d rolls", quorum, listingsSize)

	if proposal, found, err := schema.Votes.CurrentProposal.Get(ctx); err == nil && found {
		glb.Infof("current proposal: %s", proposal.String())
	} else {
		glb.AssertNoError(err)
		glb.Infof("no current proposal")
	}

	glb.Infof("----------------- pending proposals ------------------")
	err = schema.Votes.Proposals.Iterate(ctx, func(h protocol.ProtocolHash) bool {
		glb.Infof("   %s", h.String())
		return true
	})
	glb.AssertNoError(err)

	yay, nay, pass := 0, 0, 0
	err = schema.Votes.Ballots.Iterate(ctx, func(pkh protocol.PublicKeyHash, b protocol.Ballot) bool {
		rolls, err2 := schema.Votes.Listings.Get(ctx, pkh)
		glb.AssertNoError(err2)
		switch b {
		case protocol.BallotYay:
			yay += int(rolls)
		case protocol.BallotNay:
			nay += int(rolls)
		case protocol.BallotPass:
			pass += int(rolls)
		}
		glb.Verbosef("   %s voted %s with %d roll(s)", pkh.String(), b.String(), rolls)
		return true
	})
	glb.AssertNoError(err)
	glb.Infof("ballots (in rolls): yay %d, nay %d, pass %d", yay, nay, pass)
}
