package db_cmd

import (
	"errors"

	"github.com/daruolis/tessera/protocol"
	"github.com/daruolis/tessera/storage"
	"github.com/daruolis/tessera/storage/schema"
	"github.com/daruolis/tessera/tessi/glb"
	"github.com/spf13/cobra"
)

func initContractCmd() *cobra.Command {
	contractCmd := &cobra.Command{
		Use:   "contract <contract id>",
		Short: "displays the state of one contract",
		Args:  cobra.ExactArgs(1),
		Run:   runContractCmd,
	}
	contractCmd.InitDefaultHelpCmd()
	return contractCmd
}

func runContractCmd(_ *cobra.Command, args []string) {
	glb.InitStateStoreDB()
	defer glb.CloseDatabases()

	id, err := protocol.ContractIDFromString(args[0])
	glb.AssertNoError(err)

	ctx, _ := glb.MustLatestContext()
	if !schema.Contracts.Existing.Has(ctx, id) {
		glb.Fatalf("contract %s does not exist", id.String())
	}

	balance, err := schema.Contracts.Balance.Get(ctx, id)
	glb.AssertNoError(err)
	manager, err := schema.Contracts.Manager.Get(ctx, id)
	glb.AssertNoError(err)
	counter, err := schema.Contracts.Counter.Get(ctx, id)
	glb.AssertNoError(err)
	spendable, err := schema.Contracts.Spendable.Get(ctx, id)
	glb.AssertNoError(err)
	delegatable, err := schema.Contracts.Delegatable.Get(ctx, id)
	glb.AssertNoError(err)

	glb.Infof("contract %s", id.String())
	glb.Infof("   balance:     %s", balance.String())
	glb.Infof("   manager:     %s", manager.String())
	glb.Infof("   counter:     %d", counter)
	glb.Infof("   spendable:   %v, delegatable: %v", spendable, delegatable)

	if delegate, found, err := schema.Contracts.Delegate.Get(ctx, id); err == nil && found {
		glb.Infof("   delegate:    %s", delegate.String())
	} else {
		glb.AssertNoError(err)
		glb.Infof("   delegate:    none")
	}
	if code, found, err := schema.Contracts.Code.Get(ctx, id); err == nil && found {
		glb.Infof("   code:        %d bytes", len(code))
		stor, found, err := schema.Contracts.Storage.Get(ctx, id)
		glb.AssertNoError(err)
		if found {
			glb.Infof("   storage:     %d bytes", len(stor))
		}
	} else {
		glb.AssertNoError(err)
	}

	if head, found, err := schema.Rolls.ContractHead.Get(ctx, id); err == nil && found {
		glb.Infof("   rolls:       %s", rollListString(ctx, head))
	} else {
		glb.AssertNoError(err)
	}
	change, err := schema.Rolls.Change.Get(ctx, id)
	if err == nil {
		glb.Infof("   roll change: %s", change.String())
	} else if !errors.Is(err, storage.ErrNotFound) {
		glb.AssertNoError(err)
	}
}

// rollListString walks the successor chain starting from the given roll
func rollListString(ctx *storage.Context, head protocol.RollID) string {
	ret := head.String()
	for {
		next, found, err := schema.Rolls.Successor.Get(ctx, head)
		glb.AssertNoError(err)
		if !found {
			return ret
		}
		ret += " -> " + next.String()
		head = next
	}
}
