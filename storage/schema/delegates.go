package schema

import (
	"crypto/ed25519"

	"github.com/daruolis/tessera/protocol"
	"github.com/daruolis/tessera/storage"
)

// Delegates holds the revealed public keys of delegates, keyed by their hash.
// Iterable so that tooling and cycle transitions can walk the full key set
var Delegates = struct {
	PublicKeys storage.IterableMap[protocol.PublicKeyHash, ed25519.PublicKey]
}{
	PublicKeys: storage.NewIterableMap(prefixDelegates.Append("public_keys"), pkhKey, pubKeyCodec),
}
