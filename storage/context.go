package storage

import (
	"fmt"
	"sync"

	"github.com/daruolis/tessera/protocol"
	"github.com/daruolis/tessera/util"
	"github.com/lunfardo314/unitrie/common"
	"github.com/lunfardo314/unitrie/immutable"
)

type (
	// Context is an immutable handle over one snapshot of the protocol state:
	// a raw store root plus decoded ancillary state (protocol constants and
	// the sandbox/prevalidation flags).
	//
	// Contexts are persistent values: every mutating accessor call commits a
	// new root and returns a new independent Context, the one passed in stays
	// valid and unaffected. A Context is safe to read from many goroutines;
	// the mutex only guards the trie node cache, which is not thread-safe.
	// Sequencing of mutations is the caller's job: the output of call i is
	// the input of call i+1
	Context struct {
		store StateStore
		root  common.VCommitment

		mutex *sync.Mutex
		trie  *immutable.TrieReader

		constants     protocol.Constants
		sandboxed     bool
		prevalidation bool
	}
)

// ancillary state of the Context lives under its own prefix, through the same
// slot shapes as everything else. That keeps the no-collision guarantee in one
// place instead of ad hoc keys
var (
	ancillaryPrefix        = NewPath("ancillary")
	ancillaryConstants     = NewSlot(ancillaryPrefix.Append("constants"), Codec(protocol.Constants.Bytes, protocol.ConstantsFromBytes))
	ancillarySandboxed     = NewOptionalSlot(ancillaryPrefix.Append("sandboxed"), BoolCodec())
	ancillaryPrevalidation = NewOptionalSlot(ancillaryPrefix.Append("prevalidation"), BoolCodec())
)

// Prepare wraps a raw store root into a Context, decoding the ancillary
// fields. Missing or malformed constants fail the call: such a root is not a
// valid protocol state
func Prepare(store StateStore, root common.VCommitment) (*Context, error) {
	ctx, err := newContext(store, root)
	if err != nil {
		return nil, fmt.Errorf("storage.Prepare: %w", err)
	}
	if ctx.constants, err = ancillaryConstants.Get(ctx); err != nil {
		return nil, fmt.Errorf("storage.Prepare: constants: %w", err)
	}
	// absent flags mean false
	if ctx.sandboxed, _, err = ancillarySandboxed.Get(ctx); err != nil {
		return nil, fmt.Errorf("storage.Prepare: %w", err)
	}
	if ctx.prevalidation, _, err = ancillaryPrevalidation.Get(ctx); err != nil {
		return nil, fmt.Errorf("storage.Prepare: %w", err)
	}
	return ctx, nil
}

func MustPrepare(store StateStore, root common.VCommitment) *Context {
	ret, err := Prepare(store, root)
	if err != nil {
		panic(err)
	}
	return ret
}

// Recover projects the raw store handle and the root back out of the Context,
// for committing. Always succeeds
func Recover(ctx *Context) (StateStore, common.VCommitment) {
	return ctx.store, ctx.root
}

func newContext(store StateStore, root common.VCommitment) (*Context, error) {
	trie, err := immutable.NewTrieReader(protocol.CommitmentModel, store, root)
	if err != nil {
		return nil, err
	}
	return &Context{
		store: store,
		root:  root,
		mutex: &sync.Mutex{},
		trie:  trie,
	}, nil
}

func (ctx *Context) Root() common.VCommitment {
	return ctx.root
}

// Constants of the protocol, already decoded. No store access
func (ctx *Context) Constants() protocol.Constants {
	return ctx.constants
}

func (ctx *Context) Sandboxed() bool {
	return ctx.sandboxed
}

func (ctx *Context) Prevalidation() bool {
	return ctx.prevalidation
}

func (ctx *Context) WithSandboxed(v bool) (*Context, error) {
	ret, err := ancillarySandboxed.Set(ctx, v)
	if err != nil {
		return nil, err
	}
	ret.sandboxed = v
	return ret, nil
}

func (ctx *Context) WithPrevalidation(v bool) (*Context, error) {
	ret, err := ancillaryPrevalidation.Set(ctx, v)
	if err != nil {
		return nil, err
	}
	ret.prevalidation = v
	return ret, nil
}

// internal raw access, used by the accessor shapes only

func (ctx *Context) get(key []byte) []byte {
	ctx.mutex.Lock()
	defer ctx.mutex.Unlock()

	return ctx.trie.Get(key)
}

func (ctx *Context) has(key []byte) bool {
	ctx.mutex.Lock()
	defer ctx.mutex.Unlock()

	return ctx.trie.Has(key)
}

// iterate traverses with a throwaway trie reader, so the callback is free to
// read through the same Context
func (ctx *Context) iterate(prefix []byte, fun func(k, v []byte) bool) {
	trie, err := immutable.NewTrieReader(protocol.CommitmentModel, ctx.store, ctx.root)
	util.AssertNoError(err)

	trie.Iterator(prefix).Iterate(fun)
}

// update commits one mutation and returns the Context of the new root.
// value == nil deletes the key. The receiver is left untouched: the raw store
// keeps all previous roots readable
func (ctx *Context) update(key []byte, value []byte) (*Context, error) {
	ctx.mutex.Lock()
	trie, err := immutable.NewTrieUpdatable(protocol.CommitmentModel, ctx.store, ctx.root)
	ctx.mutex.Unlock()
	if err != nil {
		return nil, storeError(err)
	}
	if value == nil {
		trie.Delete(key)
	} else {
		trie.Update(key, value)
	}
	batch := ctx.store.BatchedWriter()
	newRoot := trie.Commit(batch)
	if err = batch.Commit(); err != nil {
		return nil, storeError(err)
	}
	ret, err := newContext(ctx.store, newRoot)
	if err != nil {
		return nil, storeError(err)
	}
	ret.constants = ctx.constants
	ret.sandboxed = ctx.sandboxed
	ret.prevalidation = ctx.prevalidation
	return ret, nil
}
