package storage

import (
	"github.com/lunfardo314/unitrie/common"
	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics counts raw store traffic caused by the accessor layer
type StoreMetrics struct {
	Reads      prometheus.Counter
	Traversals prometheus.Counter
	Writes     prometheus.Counter
	Commits    prometheus.Counter
}

func NewStoreMetrics(reg *prometheus.Registry) *StoreMetrics {
	ret := &StoreMetrics{
		Reads: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tessera_store_reads_total",
			Help: "number of single-key reads from the raw store",
		}),
		Traversals: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tessera_store_traversals_total",
			Help: "number of prefix iterations started on the raw store",
		}),
		Writes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tessera_store_writes_total",
			Help: "number of keys written to the raw store",
		}),
		Commits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tessera_store_commits_total",
			Help: "number of batch commits on the raw store",
		}),
	}
	reg.MustRegister(ret.Reads, ret.Traversals, ret.Writes, ret.Commits)
	return ret
}

// Wrap returns a StateStore which counts the traffic of the wrapped one
func (m *StoreMetrics) Wrap(s StateStore) StateStore {
	return &meteredStore{s: s, m: m}
}

type meteredStore struct {
	s StateStore
	m *StoreMetrics
}

func (ms *meteredStore) Get(key []byte) []byte {
	ms.m.Reads.Inc()
	return ms.s.Get(key)
}

func (ms *meteredStore) Has(key []byte) bool {
	ms.m.Reads.Inc()
	return ms.s.Has(key)
}

func (ms *meteredStore) Iterator(prefix []byte) common.KVIterator {
	ms.m.Traversals.Inc()
	return ms.s.Iterator(prefix)
}

func (ms *meteredStore) BatchedWriter() common.KVBatchedWriter {
	return &meteredBatch{b: ms.s.BatchedWriter(), m: ms.m}
}

type meteredBatch struct {
	b common.KVBatchedWriter
	m *StoreMetrics
}

func (mb *meteredBatch) Set(key, value []byte) {
	mb.m.Writes.Inc()
	mb.b.Set(key, value)
}

func (mb *meteredBatch) Commit() error {
	mb.m.Commits.Inc()
	return mb.b.Commit()
}
