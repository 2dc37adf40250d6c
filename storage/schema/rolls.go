package schema

import (
	"crypto/ed25519"

	"github.com/daruolis/tessera/protocol"
	"github.com/daruolis/tessera/storage"
)

// Rolls is the stake bookkeeping: which key owns each roll, the free-roll
// linked list ("limbo") and per-contract roll accounting
var Rolls = struct {
	// Owner maps every allocated roll to the public key baking with it.
	// Iterable: snapshot logic folds over all rolls
	Owner storage.IterableMap[protocol.RollID, ed25519.PublicKey]

	// Successor is the next pointer of the roll linked lists. Absent at the
	// tail of a list, so optional
	Successor storage.OptionalMap[protocol.RollID, protocol.RollID]

	// LimboHead is the head of the list of rolls waiting to be (re)allocated.
	// Absent whenever no roll is pending
	LimboHead storage.OptionalSlot[protocol.RollID]

	// Next is the lowest never-allocated roll id. Mandatory and Init-guarded:
	// allocating it twice is a double allocation bug
	Next storage.Slot[protocol.RollID]

	// ContractHead is the head of a contract's roll list; a contract may own
	// no rolls at all
	ContractHead storage.OptionalMap[protocol.ContractID, protocol.RollID]

	// Change is the sub-roll-value remainder of a contract's balance.
	// Mandatory: it is written together with the first roll of the contract
	Change storage.Map[protocol.ContractID, protocol.Tez]
}{
	Owner:        storage.NewIterableMap(prefixRolls.Append("owner"), rollKey, pubKeyCodec),
	Successor:    storage.NewOptionalMap(prefixRolls.Append("successor"), rollKey, rollCodec),
	LimboHead:    storage.NewOptionalSlot(prefixRolls.Append("limbo"), rollCodec),
	Next:         storage.NewSlot(prefixRolls.Append("next"), rollCodec),
	ContractHead: storage.NewOptionalMap(prefixRolls.Append("contract_head"), contractKey, rollCodec),
	Change:       storage.NewMap(prefixRolls.Append("change"), contractKey, tezCodec),
}
