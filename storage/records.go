package storage

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/daruolis/tessera/protocol"
	"github.com/daruolis/tessera/util"
	"github.com/daruolis/tessera/util/lines"
	"github.com/lunfardo314/proxima/util/lazybytes"
	"github.com/lunfardo314/unitrie/common"
	"github.com/lunfardo314/unitrie/immutable"
)

// partitions of the backing store outside the trie
const (
	commitRecordPartition = immutable.PartitionOther
	latestLevelPartition  = commitRecordPartition + 1
)

// CommitRecord is persistent bookkeeping stored with each committed root, so
// tooling can locate roots by level without an external index
type CommitRecord struct {
	Root      common.VCommitment
	Level     protocol.Level
	Timestamp protocol.Timestamp
}

const numberOfElementsInCommitRecord = 3

func (r *CommitRecord) Bytes() []byte {
	arr := lazybytes.EmptyArray(numberOfElementsInCommitRecord)
	arr.Push(r.Root.Bytes())            // 0
	arr.Push(binary.BigEndian.AppendUint32(nil, uint32(r.Level)))     // 1
	arr.Push(binary.BigEndian.AppendUint64(nil, uint64(r.Timestamp))) // 2

	util.Assertf(arr.NumElements() == numberOfElementsInCommitRecord, "arr.NumElements() == %d", numberOfElementsInCommitRecord)
	return arr.Bytes()
}

func CommitRecordFromBytes(data []byte) (CommitRecord, error) {
	arr, err := lazybytes.ParseArrayFromBytesReadOnly(data, numberOfElementsInCommitRecord)
	if err != nil {
		return CommitRecord{}, err
	}
	root, err := common.VectorCommitmentFromBytes(protocol.CommitmentModel, arr.At(0))
	if err != nil {
		return CommitRecord{}, err
	}
	if len(arr.At(1)) != 4 || len(arr.At(2)) != 8 {
		return CommitRecord{}, fmt.Errorf("CommitRecordFromBytes: wrong data length")
	}
	return CommitRecord{
		Root:      root,
		Level:     protocol.Level(binary.BigEndian.Uint32(arr.At(1))),
		Timestamp: protocol.Timestamp(binary.BigEndian.Uint64(arr.At(2))),
	}, nil
}

func (r *CommitRecord) Lines(prefix ...string) *lines.Lines {
	ret := lines.New(prefix...)
	ret.Add("level: %d", r.Level).
		Add("root: %s", r.Root.String()).
		Add("timestamp: %d", r.Timestamp)
	return ret
}

func WriteCommitRecord(w common.KVWriter, rec CommitRecord) {
	common.UseConcatBytes(func(key []byte) {
		w.Set(key, rec.Bytes())
	}, []byte{commitRecordPartition}, rec.Level.Bytes())
}

func WriteLatestLevelRecord(w common.KVWriter, level protocol.Level) {
	w.Set([]byte{latestLevelPartition}, level.Bytes())
}

func FetchLatestCommittedLevel(store common.KVReader) (protocol.Level, bool) {
	bin := store.Get([]byte{latestLevelPartition})
	if len(bin) == 0 {
		return 0, false
	}
	ret, err := protocol.LevelFromBytes(bin)
	util.AssertNoError(err)
	return ret, true
}

func FetchCommitRecord(store common.KVReader, level protocol.Level) (CommitRecord, bool, error) {
	key := common.Concat(commitRecordPartition, level.Bytes())
	data := store.Get(key)
	if len(data) == 0 {
		return CommitRecord{}, false, nil
	}
	ret, err := CommitRecordFromBytes(data)
	if err != nil {
		return CommitRecord{}, false, err
	}
	return ret, true, nil
}

// FetchLatestCommitRecord returns the record of the highest committed level
func FetchLatestCommitRecord(store StateStoreReader) (CommitRecord, error) {
	latest, found := FetchLatestCommittedLevel(store)
	if !found {
		return CommitRecord{}, ErrNotFound
	}
	rec, found, err := FetchCommitRecord(store, latest)
	if err != nil {
		return CommitRecord{}, err
	}
	if !found {
		return CommitRecord{}, fmt.Errorf("FetchLatestCommitRecord: inconsistency: no record for latest level %d", latest)
	}
	return rec, nil
}

// IterateCommitRecords iterates records in level order. Order of the raw
// partition iteration is store-specific, so records are sorted first
func IterateCommitRecords(store common.Traversable, fun func(rec CommitRecord) bool) error {
	var err error
	recs := make([]CommitRecord, 0)
	store.Iterator([]byte{commitRecordPartition}).Iterate(func(_, data []byte) bool {
		var rec CommitRecord
		if rec, err = CommitRecordFromBytes(data); err != nil {
			return false
		}
		recs = append(recs, rec)
		return true
	})
	if err != nil {
		return err
	}
	sort.Slice(recs, func(i, j int) bool {
		return recs[i].Level < recs[j].Level
	})
	for i := range recs {
		if !fun(recs[i]) {
			return nil
		}
	}
	return nil
}

// RecordCommit writes the commit record of the context's root and advances
// the latest-level bookkeeping. It does not modify the state itself
func (ctx *Context) RecordCommit(level protocol.Level, ts protocol.Timestamp) error {
	batch := ctx.store.BatchedWriter()
	WriteCommitRecord(batch, CommitRecord{
		Root:      ctx.root,
		Level:     level,
		Timestamp: ts,
	})
	if latest, found := FetchLatestCommittedLevel(ctx.store); !found || latest < level {
		WriteLatestLevelRecord(batch, level)
	}
	if err := batch.Commit(); err != nil {
		return storeError(err)
	}
	return nil
}
