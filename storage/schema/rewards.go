package schema

import (
	"github.com/daruolis/tessera/protocol"
	"github.com/daruolis/tessera/storage"
)

// RewardKey addresses one delegate's reward inside one cycle
type RewardKey = storage.PairKey[protocol.PublicKeyHash, protocol.Cycle]

// Rewards is the payout schedule. Amounts is iterable: the payout pass folds
// over every (delegate, cycle) entry deterministically
var Rewards = struct {
	// NextCycle is the first cycle not yet paid out. Init-guarded at genesis
	NextCycle storage.Slot[protocol.Cycle]

	// Date is the timestamp a cycle becomes payable at
	Date storage.Map[protocol.Cycle, protocol.Timestamp]

	Amounts storage.IterableMap[RewardKey, protocol.Tez]
}{
	NextCycle: storage.NewSlot(prefixRewards.Append("next_cycle"), storage.Uint32Codec[protocol.Cycle]()),
	Date:      storage.NewMap(prefixRewards.Append("date"), cycleKey, storage.Codec(protocol.Timestamp.Bytes, protocol.TimestampFromBytes)),
	Amounts:   storage.NewIterableMap(prefixRewards.Append("amounts"), storage.PairKeyCodec(pkhKey, cycleKey), tezCodec),
}
