package storage

import (
	"fmt"

	"github.com/daruolis/tessera/protocol"
	"github.com/daruolis/tessera/util"
	"github.com/lunfardo314/unitrie/common"
	"github.com/lunfardo314/unitrie/immutable"
)

// InitStateStore bootstraps an empty raw store into the genesis state:
// identity bytes at the nil key of the trie, protocol constants under the
// ancillary prefix, commit record for level 0. Returns the genesis Context.
// Fails if the store already holds a committed state
func InitStateStore(store StateStore, constants protocol.Constants, genesisTime protocol.Timestamp) (*Context, error) {
	if err := constants.Validate(); err != nil {
		return nil, err
	}
	if _, found := FetchLatestCommittedLevel(store); found {
		return nil, fmt.Errorf("InitStateStore: %w: store already holds a committed state", ErrAlreadyExists)
	}

	batch := store.BatchedWriter()
	emptyRoot := immutable.MustInitRoot(batch, protocol.CommitmentModel, identityBytes(constants))
	if err := batch.Commit(); err != nil {
		return nil, storeError(err)
	}

	ctx, err := newContext(store, emptyRoot)
	if err != nil {
		return nil, storeError(err)
	}
	ctx.constants = constants

	if ctx, err = ancillaryConstants.Init(ctx, constants); err != nil {
		return nil, err
	}
	if err = ctx.RecordCommit(0, genesisTime); err != nil {
		return nil, err
	}
	return ctx, nil
}

func MustInitStateStore(store StateStore, constants protocol.Constants, genesisTime protocol.Timestamp) *Context {
	ret, err := InitStateStore(store, constants, genesisTime)
	util.AssertNoError(err)
	return ret
}

func identityBytes(constants protocol.Constants) []byte {
	return common.Concat([]byte(protocol.StateIdentity), constants.Bytes())
}

// IdentityBytesFromRoot reads the identity data stored at the nil key
func IdentityBytesFromRoot(store StateStoreReader, root common.VCommitment) ([]byte, error) {
	trie, err := immutable.NewTrieReader(protocol.CommitmentModel, store, root)
	if err != nil {
		return nil, storeError(err)
	}
	return trie.Get(nil), nil
}
