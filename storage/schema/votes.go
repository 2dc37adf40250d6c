package schema

import (
	"github.com/daruolis/tessera/protocol"
	"github.com/daruolis/tessera/storage"
)

// Votes is the governance state of the current voting period
var Votes = struct {
	// PeriodKind is Init-guarded: allocating a period twice is a bug
	PeriodKind storage.Slot[protocol.VotingPeriodKind]

	// Quorum is the participation threshold, in basis points
	Quorum storage.Slot[uint32]

	// CurrentProposal is set only during exploration/promotion periods
	CurrentProposal storage.OptionalSlot[protocol.ProtocolHash]

	// ListingsSize is the total number of rolls in the listings below
	ListingsSize storage.Slot[uint32]

	// Listings maps each delegate to its roll count for this period.
	// Iterable: tallying folds over all of them on every node
	Listings storage.IterableMap[protocol.PublicKeyHash, uint32]

	// Ballots of the exploration/promotion vote
	Ballots storage.IterableMap[protocol.PublicKeyHash, protocol.Ballot]

	// Proposals pending in a proposal period
	Proposals storage.Set[protocol.ProtocolHash]
}{
	PeriodKind:      storage.NewSlot(prefixVotes.Append("period_kind"), storage.Codec(protocol.VotingPeriodKind.Bytes, protocol.VotingPeriodKindFromBytes)),
	Quorum:          storage.NewSlot(prefixVotes.Append("quorum"), storage.Uint32Codec[uint32]()),
	CurrentProposal: storage.NewOptionalSlot(prefixVotes.Append("current_proposal"), storage.Codec(protocol.ProtocolHash.Bytes, protocol.ProtocolHashFromBytes)),
	ListingsSize:    storage.NewSlot(prefixVotes.Append("listings_size"), storage.Uint32Codec[uint32]()),
	Listings:        storage.NewIterableMap(prefixVotes.Append("listings"), pkhKey, storage.Uint32Codec[uint32]()),
	Ballots:         storage.NewIterableMap(prefixVotes.Append("ballots"), pkhKey, storage.Codec(protocol.Ballot.Bytes, protocol.BallotFromBytes)),
	Proposals:       storage.NewSet(prefixVotes.Append("proposals"), protoKey),
}
