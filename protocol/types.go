// Package protocol defines the value types persisted by the state layer:
// amounts, levels, cycles, rolls, contracts, governance and seed entities.
// Each type comes with a Bytes/XFromBytes pair. The byte forms are part of the
// authenticated state, so they must be bit-identical on every conforming node
// for the lifetime of a protocol version.
package protocol

import (
	"encoding/binary"
	"fmt"

	"github.com/daruolis/tessera/util"
)

type (
	// Tez is an amount in the smallest protocol unit (micro-tez)
	Tez uint64

	// Level is a block height
	Level uint32

	// Cycle is a number of a consecutive group of levels. Roll snapshots,
	// seeds and rewards are all per-cycle
	Cycle uint32

	// RollID identifies one fixed-size unit of stake
	RollID uint32

	// Timestamp is Unix seconds of a block
	Timestamp int64

	// Fitness is the consensus fitness vector of the head block, opaque to this layer
	Fitness []byte
)

func (t Tez) Bytes() []byte {
	var ret [8]byte
	binary.BigEndian.PutUint64(ret[:], uint64(t))
	return ret[:]
}

func TezFromBytes(data []byte) (Tez, error) {
	if len(data) != 8 {
		return 0, fmt.Errorf("TezFromBytes: wrong data length %d", len(data))
	}
	return Tez(binary.BigEndian.Uint64(data)), nil
}

func (t Tez) String() string {
	return util.Th(uint64(t)) + " utz"
}

func (l Level) Bytes() []byte {
	var ret [4]byte
	binary.BigEndian.PutUint32(ret[:], uint32(l))
	return ret[:]
}

func LevelFromBytes(data []byte) (Level, error) {
	if len(data) != 4 {
		return 0, fmt.Errorf("LevelFromBytes: wrong data length %d", len(data))
	}
	return Level(binary.BigEndian.Uint32(data)), nil
}

func (c Cycle) Bytes() []byte {
	var ret [4]byte
	binary.BigEndian.PutUint32(ret[:], uint32(c))
	return ret[:]
}

func CycleFromBytes(data []byte) (Cycle, error) {
	if len(data) != 4 {
		return 0, fmt.Errorf("CycleFromBytes: wrong data length %d", len(data))
	}
	return Cycle(binary.BigEndian.Uint32(data)), nil
}

func (r RollID) Bytes() []byte {
	var ret [4]byte
	binary.BigEndian.PutUint32(ret[:], uint32(r))
	return ret[:]
}

func RollIDFromBytes(data []byte) (RollID, error) {
	if len(data) != 4 {
		return 0, fmt.Errorf("RollIDFromBytes: wrong data length %d", len(data))
	}
	return RollID(binary.BigEndian.Uint32(data)), nil
}

func (r RollID) String() string {
	return fmt.Sprintf("roll(%d)", uint32(r))
}

func (ts Timestamp) Bytes() []byte {
	var ret [8]byte
	binary.BigEndian.PutUint64(ret[:], uint64(ts))
	return ret[:]
}

func TimestampFromBytes(data []byte) (Timestamp, error) {
	if len(data) != 8 {
		return 0, fmt.Errorf("TimestampFromBytes: wrong data length %d", len(data))
	}
	return Timestamp(binary.BigEndian.Uint64(data)), nil
}

// Fitness bytes are opaque and may legitimately be empty. The tag byte keeps
// the stored form non-empty, which the raw store requires
func (f Fitness) Bytes() []byte {
	return append([]byte{0x00}, f...)
}

func FitnessFromBytes(data []byte) (Fitness, error) {
	if len(data) < 1 || data[0] != 0x00 {
		return nil, fmt.Errorf("FitnessFromBytes: wrong tag")
	}
	if len(data) == 1 {
		return Fitness{}, nil
	}
	ret := make(Fitness, len(data)-1)
	copy(ret, data[1:])
	return ret, nil
}
