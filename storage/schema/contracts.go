package schema

import (
	"github.com/daruolis/tessera/protocol"
	"github.com/daruolis/tessera/storage"
)

// Contracts is the account space. The existence Set is the source of truth
// for "is this contract alive"; the per-field maps are mandatory for alive
// contracts except where the relation is naturally partial
var Contracts = struct {
	// Existing is the domain of currently alive contracts
	Existing storage.Set[protocol.ContractID]

	Balance storage.Map[protocol.ContractID, protocol.Tez]
	Manager storage.Map[protocol.ContractID, protocol.PublicKeyHash]

	// Delegate is absent for contracts which never delegated
	Delegate storage.OptionalMap[protocol.ContractID, protocol.PublicKeyHash]

	Spendable   storage.Map[protocol.ContractID, bool]
	Delegatable storage.Map[protocol.ContractID, bool]

	// Counter is the anti-replay counter of the contract
	Counter storage.Map[protocol.ContractID, uint64]

	// Code and Storage exist only for originated contracts with a script
	Code    storage.OptionalMap[protocol.ContractID, protocol.Script]
	Storage storage.OptionalMap[protocol.ContractID, protocol.Script]
}{
	Existing:    storage.NewSet(prefixContracts.Append("existing"), contractKey),
	Balance:     storage.NewMap(prefixContracts.Append("balance"), contractKey, tezCodec),
	Manager:     storage.NewMap(prefixContracts.Append("manager"), contractKey, pkhCodec),
	Delegate:    storage.NewOptionalMap(prefixContracts.Append("delegate"), contractKey, pkhCodec),
	Spendable:   storage.NewMap(prefixContracts.Append("spendable"), contractKey, storage.BoolCodec()),
	Delegatable: storage.NewMap(prefixContracts.Append("delegatable"), contractKey, storage.BoolCodec()),
	Counter:     storage.NewMap(prefixContracts.Append("counter"), contractKey, storage.Uint64Codec[uint64]()),
	Code:        storage.NewOptionalMap(prefixContracts.Append("code"), contractKey, storage.Codec(protocol.Script.Bytes, protocol.ScriptFromBytes)),
	Storage:     storage.NewOptionalMap(prefixContracts.Append("storage"), contractKey, storage.Codec(protocol.Script.Bytes, protocol.ScriptFromBytes)),
}
