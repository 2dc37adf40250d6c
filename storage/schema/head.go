package schema

import (
	"github.com/daruolis/tessera/protocol"
	"github.com/daruolis/tessera/storage"
)

// Head is the block-head bookkeeping of the state. All three slots are
// mandatory: a committed state without them is corrupt
var Head = struct {
	Level     storage.Slot[protocol.Level]
	Timestamp storage.Slot[protocol.Timestamp]
	Fitness   storage.Slot[protocol.Fitness]
}{
	Level:     storage.NewSlot(prefixHead.Append("level"), storage.Uint32Codec[protocol.Level]()),
	Timestamp: storage.NewSlot(prefixHead.Append("timestamp"), storage.Codec(protocol.Timestamp.Bytes, protocol.TimestampFromBytes)),
	Fitness:   storage.NewSlot(prefixHead.Append("fitness"), storage.Codec(protocol.Fitness.Bytes, protocol.FitnessFromBytes)),
}
