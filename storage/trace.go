package storage

import (
	"encoding/hex"

	"github.com/lunfardo314/unitrie/common"
	"go.uber.org/zap"
)

// NewTracingStore wraps a raw store so that every operation is logged at
// debug level. Intended for debugging state issues with tooling, not for the
// hot path
func NewTracingStore(s StateStore, log *zap.SugaredLogger) StateStore {
	return &tracingStore{s: s, log: log}
}

type tracingStore struct {
	s   StateStore
	log *zap.SugaredLogger
}

func (ts *tracingStore) Get(key []byte) []byte {
	ret := ts.s.Get(key)
	ts.log.Debugf("get %s -> %d bytes", hex.EncodeToString(key), len(ret))
	return ret
}

func (ts *tracingStore) Has(key []byte) bool {
	ret := ts.s.Has(key)
	ts.log.Debugf("has %s -> %v", hex.EncodeToString(key), ret)
	return ret
}

func (ts *tracingStore) Iterator(prefix []byte) common.KVIterator {
	ts.log.Debugf("iterate prefix %s", hex.EncodeToString(prefix))
	return ts.s.Iterator(prefix)
}

func (ts *tracingStore) BatchedWriter() common.KVBatchedWriter {
	return &tracingBatch{b: ts.s.BatchedWriter(), log: ts.log}
}

type tracingBatch struct {
	b   common.KVBatchedWriter
	log *zap.SugaredLogger
}

func (tb *tracingBatch) Set(key, value []byte) {
	tb.log.Debugf("set %s = %d bytes", hex.EncodeToString(key), len(value))
	tb.b.Set(key, value)
}

func (tb *tracingBatch) Commit() error {
	tb.log.Debugf("commit batch")
	return tb.b.Commit()
}
