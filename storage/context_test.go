package storage

import (
	"testing"

	"github.com/daruolis/tessera/protocol"
	"github.com/daruolis/tessera/util"
	"github.com/lunfardo314/unitrie/common"
	"github.com/lunfardo314/unitrie/immutable"
	"github.com/stretchr/testify/require"
)

func TestPrepareRecover(t *testing.T) {
	t.Run("roundtrip", func(t *testing.T) {
		ctx := newTestContext(t)
		ctx1, err := testSlot.Set(ctx, 99)
		require.NoError(t, err)

		store, root := Recover(ctx1)
		ctx2, err := Prepare(store, root)
		require.NoError(t, err)
		v, err := testSlot.Get(ctx2)
		require.NoError(t, err)
		require.EqualValues(t, 99, v)
		require.EqualValues(t, ctx1.Constants(), ctx2.Constants())
	})
	t.Run("flags persist", func(t *testing.T) {
		ctx := newTestContext(t)
		require.False(t, ctx.Sandboxed())
		require.False(t, ctx.Prevalidation())

		ctx1, err := ctx.WithSandboxed(true)
		require.NoError(t, err)
		require.True(t, ctx1.Sandboxed())
		require.False(t, ctx.Sandboxed())

		store, root := Recover(ctx1)
		ctx2, err := Prepare(store, root)
		require.NoError(t, err)
		require.True(t, ctx2.Sandboxed())
		require.False(t, ctx2.Prevalidation())

		ctx3, err := ctx2.WithPrevalidation(true)
		require.NoError(t, err)
		require.True(t, ctx3.Prevalidation())
		require.True(t, ctx3.Sandboxed())
	})
	t.Run("flags survive unrelated mutations", func(t *testing.T) {
		ctx := newTestContext(t)
		ctx1, err := ctx.WithSandboxed(true)
		require.NoError(t, err)
		ctx2, err := testSlot.Set(ctx1, 1)
		require.NoError(t, err)
		require.True(t, ctx2.Sandboxed())
	})
	t.Run("root without constants", func(t *testing.T) {
		store := common.NewInMemoryKVStore()
		batch := store.BatchedWriter()
		root := immutable.MustInitRoot(batch, protocol.CommitmentModel, []byte("bare"))
		require.NoError(t, batch.Commit())

		_, err := Prepare(store, root)
		util.RequireErrorWith(t, err, "constants")
	})
}

func TestGenesis(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		ctx := newTestContext(t)
		store, root := Recover(ctx)
		id, err := IdentityBytesFromRoot(store, root)
		require.NoError(t, err)
		require.Contains(t, string(id), protocol.StateIdentity)
	})
	t.Run("double init fails", func(t *testing.T) {
		store := common.NewInMemoryKVStore()
		_, err := InitStateStore(store, protocol.DefaultConstants(), 0)
		require.NoError(t, err)
		_, err = InitStateStore(store, protocol.DefaultConstants(), 0)
		require.ErrorIs(t, err, ErrAlreadyExists)
	})
	t.Run("invalid constants rejected", func(t *testing.T) {
		store := common.NewInMemoryKVStore()
		bad := protocol.DefaultConstants()
		bad.BlocksPerCycle = 0
		_, err := InitStateStore(store, bad, 0)
		require.Error(t, err)
	})
}
