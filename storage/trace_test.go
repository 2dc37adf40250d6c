package storage

import (
	"testing"

	"github.com/daruolis/tessera/global"
	"github.com/daruolis/tessera/protocol"
	"github.com/lunfardo314/unitrie/common"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestTracingStore(t *testing.T) {
	store := NewTracingStore(common.NewInMemoryKVStore(), global.NewLogger("trace-test", zapcore.ErrorLevel))

	ctx, err := InitStateStore(store, protocol.DefaultConstants(), 0)
	require.NoError(t, err)
	ctx1, err := testSlot.Set(ctx, 7)
	require.NoError(t, err)
	v, err := testSlot.Get(ctx1)
	require.NoError(t, err)
	require.EqualValues(t, 7, v)
}
