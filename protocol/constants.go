package protocol

import (
	"encoding/binary"
	"fmt"

	"github.com/daruolis/tessera/util"
	"github.com/daruolis/tessera/util/lines"
	"github.com/lunfardo314/proxima/util/lazybytes"
	"gopkg.in/yaml.v2"
)

// Constants are the protocol constants decoded into every storage context.
// The YAML form exists for operators (genesis files); the binary form is what
// lives in the state and it must be bit-identical across nodes
type Constants struct {
	ProtocolVersion        uint32 `yaml:"protocol_version"`
	PreservedCycles        uint32 `yaml:"preserved_cycles"`
	BlocksPerCycle         uint32 `yaml:"blocks_per_cycle"`
	BlocksPerRollSnapshot  uint32 `yaml:"blocks_per_roll_snapshot"`
	BlocksPerVotingPeriod  uint32 `yaml:"blocks_per_voting_period"`
	TimeBetweenBlocksSec   uint32 `yaml:"time_between_blocks_sec"`
	RollValue              Tez    `yaml:"roll_value"`
	SeedNonceRevelationTip Tez    `yaml:"seed_nonce_revelation_tip"`
}

const numberOfElementsInConstants = 8

func (c Constants) Bytes() []byte {
	arr := lazybytes.EmptyArray(numberOfElementsInConstants)
	arr.Push(binary.BigEndian.AppendUint32(nil, c.ProtocolVersion))        // 0
	arr.Push(binary.BigEndian.AppendUint32(nil, c.PreservedCycles))        // 1
	arr.Push(binary.BigEndian.AppendUint32(nil, c.BlocksPerCycle))         // 2
	arr.Push(binary.BigEndian.AppendUint32(nil, c.BlocksPerRollSnapshot))  // 3
	arr.Push(binary.BigEndian.AppendUint32(nil, c.BlocksPerVotingPeriod))  // 4
	arr.Push(binary.BigEndian.AppendUint32(nil, c.TimeBetweenBlocksSec))   // 5
	arr.Push(binary.BigEndian.AppendUint64(nil, uint64(c.RollValue)))      // 6
	arr.Push(binary.BigEndian.AppendUint64(nil, uint64(c.SeedNonceRevelationTip))) // 7

	util.Assertf(arr.NumElements() == numberOfElementsInConstants, "arr.NumElements() == %d", numberOfElementsInConstants)
	return arr.Bytes()
}

func ConstantsFromBytes(data []byte) (Constants, error) {
	arr, err := lazybytes.ParseArrayFromBytesReadOnly(data, numberOfElementsInConstants)
	if err != nil {
		return Constants{}, err
	}
	for _, i := range []int{0, 1, 2, 3, 4, 5} {
		if len(arr.At(i)) != 4 {
			return Constants{}, fmt.Errorf("ConstantsFromBytes: wrong data length")
		}
	}
	for _, i := range []int{6, 7} {
		if len(arr.At(i)) != 8 {
			return Constants{}, fmt.Errorf("ConstantsFromBytes: wrong data length")
		}
	}
	ret := Constants{
		ProtocolVersion:        binary.BigEndian.Uint32(arr.At(0)),
		PreservedCycles:        binary.BigEndian.Uint32(arr.At(1)),
		BlocksPerCycle:         binary.BigEndian.Uint32(arr.At(2)),
		BlocksPerRollSnapshot:  binary.BigEndian.Uint32(arr.At(3)),
		BlocksPerVotingPeriod:  binary.BigEndian.Uint32(arr.At(4)),
		TimeBetweenBlocksSec:   binary.BigEndian.Uint32(arr.At(5)),
		RollValue:              Tez(binary.BigEndian.Uint64(arr.At(6))),
		SeedNonceRevelationTip: Tez(binary.BigEndian.Uint64(arr.At(7))),
	}
	if err = ret.Validate(); err != nil {
		return Constants{}, err
	}
	return ret, nil
}

func (c Constants) Validate() error {
	if c.BlocksPerCycle == 0 {
		return fmt.Errorf("constants: blocks_per_cycle must be positive")
	}
	if c.BlocksPerVotingPeriod == 0 {
		return fmt.Errorf("constants: blocks_per_voting_period must be positive")
	}
	if c.RollValue == 0 {
		return fmt.Errorf("constants: roll_value must be positive")
	}
	return nil
}

func ConstantsFromYAML(data []byte) (Constants, error) {
	var ret Constants
	if err := yaml.Unmarshal(data, &ret); err != nil {
		return Constants{}, fmt.Errorf("ConstantsFromYAML: %w", err)
	}
	if err := ret.Validate(); err != nil {
		return Constants{}, err
	}
	return ret, nil
}

func (c Constants) YAML() []byte {
	ret, err := yaml.Marshal(c)
	util.AssertNoError(err)
	return ret
}

// CycleOfLevel is used by tooling and tests; rotation of cycles itself is domain logic
func (c Constants) CycleOfLevel(l Level) Cycle {
	return Cycle(uint32(l) / c.BlocksPerCycle)
}

// DefaultConstants are sandbox values, not mainnet ones
func DefaultConstants() Constants {
	return Constants{
		ProtocolVersion:        1,
		PreservedCycles:        5,
		BlocksPerCycle:         128,
		BlocksPerRollSnapshot:  16,
		BlocksPerVotingPeriod:  1024,
		TimeBetweenBlocksSec:   30,
		RollValue:              10_000_000_000,
		SeedNonceRevelationTip: 125_000,
	}
}

func (c Constants) Lines(prefix ...string) *lines.Lines {
	ret := lines.New(prefix...)
	ret.Add("protocol version: %d", c.ProtocolVersion).
		Add("preserved cycles: %d", c.PreservedCycles).
		Add("blocks per cycle: %d", c.BlocksPerCycle).
		Add("blocks per roll snapshot: %d", c.BlocksPerRollSnapshot).
		Add("blocks per voting period: %d", c.BlocksPerVotingPeriod).
		Add("time between blocks: %d sec", c.TimeBetweenBlocksSec).
		Add("roll value: %s", c.RollValue.String()).
		Add("seed nonce revelation tip: %s", c.SeedNonceRevelationTip.String())
	return ret
}
