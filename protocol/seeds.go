package protocol

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

type (
	// Seed is the per-cycle randomness all nodes derive identically
	Seed [32]byte

	// Nonce is the preimage a baker commits to and later reveals
	Nonce [32]byte

	// NonceHash is the commitment to a not-yet-revealed nonce
	NonceHash [32]byte

	// NonceState is the stored lifecycle of one seed nonce: committed first,
	// revealed later. Exactly one of the two payloads is meaningful,
	// selected by Revealed
	NonceState struct {
		Revealed   bool
		Commitment NonceHash
		Nonce      Nonce
	}
)

const (
	nonceStateTagUnrevealed = byte(iota)
	nonceStateTagRevealed
)

// CommitNonce is the commitment function of the seed protocol
func CommitNonce(nonce Nonce) NonceHash {
	return blake2b.Sum256(nonce[:])
}

// DeriveSeed folds one revealed nonce into the previous cycle seed
func DeriveSeed(prev Seed, nonce Nonce) Seed {
	var buf [64]byte
	copy(buf[:32], prev[:])
	copy(buf[32:], nonce[:])
	return blake2b.Sum256(buf[:])
}

func UnrevealedNonce(commitment NonceHash) NonceState {
	return NonceState{Commitment: commitment}
}

func RevealedNonce(nonce Nonce) NonceState {
	return NonceState{Revealed: true, Nonce: nonce}
}

func (ns NonceState) Bytes() []byte {
	ret := make([]byte, 1+32)
	if ns.Revealed {
		ret[0] = nonceStateTagRevealed
		copy(ret[1:], ns.Nonce[:])
	} else {
		ret[0] = nonceStateTagUnrevealed
		copy(ret[1:], ns.Commitment[:])
	}
	return ret
}

func NonceStateFromBytes(data []byte) (NonceState, error) {
	var ret NonceState
	if len(data) != 1+32 {
		return ret, fmt.Errorf("NonceStateFromBytes: wrong data length %d", len(data))
	}
	switch data[0] {
	case nonceStateTagUnrevealed:
		copy(ret.Commitment[:], data[1:])
	case nonceStateTagRevealed:
		ret.Revealed = true
		copy(ret.Nonce[:], data[1:])
	default:
		return ret, fmt.Errorf("NonceStateFromBytes: wrong tag %d", data[0])
	}
	return ret, nil
}

func (ns NonceState) String() string {
	if ns.Revealed {
		return "revealed:" + hex.EncodeToString(ns.Nonce[:6]) + ".."
	}
	return "committed:" + hex.EncodeToString(ns.Commitment[:6]) + ".."
}

func (s Seed) Bytes() []byte {
	return s[:]
}

func SeedFromBytes(data []byte) (Seed, error) {
	var ret Seed
	if len(data) != len(ret) {
		return ret, fmt.Errorf("SeedFromBytes: wrong data length %d", len(data))
	}
	copy(ret[:], data)
	return ret, nil
}
