package storage

import (
	"testing"

	"github.com/daruolis/tessera/protocol"
	"github.com/lunfardo314/unitrie/common"
	"github.com/stretchr/testify/require"
)

func TestCommitRecords(t *testing.T) {
	t.Run("genesis record", func(t *testing.T) {
		ctx := newTestContext(t)
		store, root := Recover(ctx)

		latest, found := FetchLatestCommittedLevel(store)
		require.True(t, found)
		require.EqualValues(t, 0, latest)

		rec, err := FetchLatestCommitRecord(store)
		require.NoError(t, err)
		require.EqualValues(t, 0, rec.Level)
		require.True(t, protocol.CommitmentModel.EqualCommitments(root, rec.Root))
	})
	t.Run("record commit advances latest", func(t *testing.T) {
		ctx := newTestContext(t)
		ctx1, err := testSlot.Set(ctx, 1)
		require.NoError(t, err)
		require.NoError(t, ctx1.RecordCommit(1, 60))

		store, _ := Recover(ctx1)
		latest, found := FetchLatestCommittedLevel(store)
		require.True(t, found)
		require.EqualValues(t, 1, latest)

		rec, found, err := FetchCommitRecord(store, 1)
		require.NoError(t, err)
		require.True(t, found)
		require.EqualValues(t, 60, rec.Timestamp)
		require.True(t, protocol.CommitmentModel.EqualCommitments(ctx1.Root(), rec.Root))

		// the recorded root reopens as a full context
		ctx2, err := Prepare(store, rec.Root)
		require.NoError(t, err)
		v, err := testSlot.Get(ctx2)
		require.NoError(t, err)
		require.EqualValues(t, 1, v)
	})
	t.Run("older commit does not move latest", func(t *testing.T) {
		ctx := newTestContext(t)
		require.NoError(t, ctx.RecordCommit(5, 300))
		require.NoError(t, ctx.RecordCommit(3, 180))

		store, _ := Recover(ctx)
		latest, _ := FetchLatestCommittedLevel(store)
		require.EqualValues(t, 5, latest)
	})
	t.Run("iterate in level order", func(t *testing.T) {
		ctx := newTestContext(t)
		var err error
		for lvl := protocol.Level(1); lvl <= 4; lvl++ {
			ctx, err = testSlot.Set(ctx, uint64(lvl))
			require.NoError(t, err)
			require.NoError(t, ctx.RecordCommit(lvl, protocol.Timestamp(lvl)*60))
		}
		store, _ := Recover(ctx)
		levels := make([]protocol.Level, 0)
		err = IterateCommitRecords(store, func(rec CommitRecord) bool {
			levels = append(levels, rec.Level)
			return true
		})
		require.NoError(t, err)
		require.EqualValues(t, []protocol.Level{0, 1, 2, 3, 4}, levels)
	})
	t.Run("roundtrip", func(t *testing.T) {
		ctx := newTestContext(t)
		rec := CommitRecord{Root: ctx.Root(), Level: 7, Timestamp: 420}
		back, err := CommitRecordFromBytes(rec.Bytes())
		require.NoError(t, err)
		require.EqualValues(t, rec.Level, back.Level)
		require.EqualValues(t, rec.Timestamp, back.Timestamp)
		require.True(t, protocol.CommitmentModel.EqualCommitments(rec.Root, back.Root))

		_, err = CommitRecordFromBytes([]byte("junk"))
		require.Error(t, err)
	})
	t.Run("empty store has no latest", func(t *testing.T) {
		store := common.NewInMemoryKVStore()
		_, found := FetchLatestCommittedLevel(store)
		require.False(t, found)
		_, err := FetchLatestCommitRecord(store)
		require.ErrorIs(t, err, ErrNotFound)
	})
}
