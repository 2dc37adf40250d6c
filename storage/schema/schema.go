// Package schema is the catalog of the protocol state: every entity the
// protocol persists, expressed as accessor instances of the storage package.
//
// All path prefixes are assigned in this package and nowhere else; no two
// accessors share a prefix. Whether absence at a location is a protocol bug
// (mandatory shape, ErrNotFound) or normal data (optional shape) is an
// explicit choice made per accessor here, never inferred: changing it changes
// error semantics observable by domain logic.
//
// Domain code accesses sub-accessors only through their owning entity group
// (schema.Rolls.Successor, schema.Votes.Ballots, ...)
package schema

import (
	"github.com/daruolis/tessera/protocol"
	"github.com/daruolis/tessera/storage"
)

// top-level prefixes of the state tree. The "ancillary" prefix is reserved by
// the storage package for the Context's own fields
var (
	prefixHead      = storage.NewPath("head")
	prefixRolls     = storage.NewPath("rolls")
	prefixContracts = storage.NewPath("contracts")
	prefixVotes     = storage.NewPath("votes")
	prefixDelegates = storage.NewPath("delegates")
	prefixSeeds     = storage.NewPath("seeds")
	prefixRewards   = storage.NewPath("rewards")
)

// key and value codecs shared across the catalog
var (
	rollKey     = storage.Uint32Key[protocol.RollID]()
	cycleKey    = storage.Uint32Key[protocol.Cycle]()
	levelKey    = storage.Uint32Key[protocol.Level]()
	contractKey = storage.KeyFromBytesPair(protocol.ContractID.Bytes, protocol.ContractIDFromBytes)
	pkhKey      = storage.KeyFromBytesPair(protocol.PublicKeyHash.Bytes, protocol.PublicKeyHashFromBytes)
	protoKey    = storage.KeyFromBytesPair(protocol.ProtocolHash.Bytes, protocol.ProtocolHashFromBytes)

	tezCodec    = storage.Uint64Codec[protocol.Tez]()
	rollCodec   = storage.Uint32Codec[protocol.RollID]()
	pubKeyCodec = storage.Codec(protocol.PublicKeyBytes, protocol.PublicKeyFromBytes)
	pkhCodec    = storage.Codec(protocol.PublicKeyHash.Bytes, protocol.PublicKeyHashFromBytes)
)
