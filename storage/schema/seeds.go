package schema

import (
	"github.com/daruolis/tessera/protocol"
	"github.com/daruolis/tessera/storage"
)

// Seeds is the commit/reveal randomness pipeline. Nonces is mandatory per
// recorded level: reading a level no nonce was ever committed for is a bug in
// the caller, while the unrevealed/revealed distinction lives inside the
// NonceState value, not in slot absence
var Seeds = struct {
	Nonces   storage.Map[protocol.Level, protocol.NonceState]
	ForCycle storage.Map[protocol.Cycle, protocol.Seed]
}{
	Nonces:   storage.NewMap(prefixSeeds.Append("nonces"), levelKey, storage.Codec(protocol.NonceState.Bytes, protocol.NonceStateFromBytes)),
	ForCycle: storage.NewMap(prefixSeeds.Append("for_cycle"), cycleKey, storage.Codec(protocol.Seed.Bytes, protocol.SeedFromBytes)),
}
