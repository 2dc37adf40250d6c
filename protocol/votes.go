package protocol

import (
	"encoding/hex"
	"fmt"
)

type (
	// VotingPeriodKind is the phase of the governance cycle
	VotingPeriodKind byte

	// Ballot is a single vote in the exploration or promotion period
	Ballot byte

	// ProtocolHash identifies a proposed protocol amendment
	ProtocolHash [32]byte
)

const (
	PeriodProposal = VotingPeriodKind(iota)
	PeriodExploration
	PeriodTesting
	PeriodPromotion
)

const (
	BallotYay = Ballot(iota)
	BallotNay
	BallotPass
)

func (k VotingPeriodKind) Bytes() []byte {
	return []byte{byte(k)}
}

func VotingPeriodKindFromBytes(data []byte) (VotingPeriodKind, error) {
	if len(data) != 1 || data[0] > byte(PeriodPromotion) {
		return 0, fmt.Errorf("VotingPeriodKindFromBytes: wrong data")
	}
	return VotingPeriodKind(data[0]), nil
}

func (k VotingPeriodKind) String() string {
	switch k {
	case PeriodProposal:
		return "proposal"
	case PeriodExploration:
		return "exploration"
	case PeriodTesting:
		return "testing"
	case PeriodPromotion:
		return "promotion"
	}
	return "????"
}

func (b Ballot) Bytes() []byte {
	return []byte{byte(b)}
}

func BallotFromBytes(data []byte) (Ballot, error) {
	if len(data) != 1 || data[0] > byte(BallotPass) {
		return 0, fmt.Errorf("BallotFromBytes: wrong data")
	}
	return Ballot(data[0]), nil
}

func (b Ballot) String() string {
	switch b {
	case BallotYay:
		return "yay"
	case BallotNay:
		return "nay"
	case BallotPass:
		return "pass"
	}
	return "????"
}

func (h ProtocolHash) Bytes() []byte {
	return h[:]
}

func ProtocolHashFromBytes(data []byte) (ProtocolHash, error) {
	var ret ProtocolHash
	if len(data) != len(ret) {
		return ret, fmt.Errorf("ProtocolHashFromBytes: wrong data length %d", len(data))
	}
	copy(ret[:], data)
	return ret, nil
}

func (h ProtocolHash) String() string {
	return "proto:" + hex.EncodeToString(h[:6]) + ".."
}
