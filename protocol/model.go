package protocol

import (
	"github.com/lunfardo314/unitrie/common"
	"github.com/lunfardo314/unitrie/models/trie_blake2b"
)

// CommitmentModel is the commitment model of the state trie: hexary, blake2b 256-bit.
// Changing it is a breaking change of the state root computation
var CommitmentModel = trie_blake2b.New(common.PathArity16, trie_blake2b.HashSize256)

// StateIdentity is written at the nil key of the trie at genesis, together
// with the binary form of the genesis constants
const StateIdentity = "tessera.state"
