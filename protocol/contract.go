package protocol

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

const (
	PublicKeyHashLength = 20
	ContractIDLength    = 1 + PublicKeyHashLength
)

type (
	// PublicKeyHash is the blake2b-160 hash of an ed25519 public key.
	// It identifies a delegate in voting rolls, listings and rewards
	PublicKeyHash [PublicKeyHashLength]byte

	// ContractID identifies an account: either an implicit account derived
	// from a public key, or an originated contract derived from an
	// origination nonce. The leading tag byte separates the two spaces
	ContractID [ContractIDLength]byte

	ContractKind byte
)

const (
	ContractImplicit = ContractKind(iota)
	ContractOriginated
)

func PublicKeyHashFromPublicKey(pk ed25519.PublicKey) PublicKeyHash {
	h, err := blake2b.New(PublicKeyHashLength, nil)
	if err != nil {
		panic(err)
	}
	h.Write(pk)
	var ret PublicKeyHash
	copy(ret[:], h.Sum(nil))
	return ret
}

func (ph PublicKeyHash) Bytes() []byte {
	return ph[:]
}

func PublicKeyHashFromBytes(data []byte) (PublicKeyHash, error) {
	var ret PublicKeyHash
	if len(data) != PublicKeyHashLength {
		return ret, fmt.Errorf("PublicKeyHashFromBytes: wrong data length %d", len(data))
	}
	copy(ret[:], data)
	return ret, nil
}

func (ph PublicKeyHash) String() string {
	return "pkh:" + hex.EncodeToString(ph[:])
}

// ImplicitContract is the account implicitly associated with a public key
func ImplicitContract(pk ed25519.PublicKey) ContractID {
	var ret ContractID
	ret[0] = byte(ContractImplicit)
	ph := PublicKeyHashFromPublicKey(pk)
	copy(ret[1:], ph[:])
	return ret
}

func ImplicitContractFromHash(ph PublicKeyHash) ContractID {
	var ret ContractID
	ret[0] = byte(ContractImplicit)
	copy(ret[1:], ph[:])
	return ret
}

// OriginatedContract derives a fresh contract identifier from an origination nonce
func OriginatedContract(originationNonce []byte) ContractID {
	h, err := blake2b.New(PublicKeyHashLength, nil)
	if err != nil {
		panic(err)
	}
	h.Write(originationNonce)
	var ret ContractID
	ret[0] = byte(ContractOriginated)
	copy(ret[1:], h.Sum(nil))
	return ret
}

func (id ContractID) Kind() ContractKind {
	return ContractKind(id[0])
}

func (id ContractID) Bytes() []byte {
	return id[:]
}

func ContractIDFromBytes(data []byte) (ContractID, error) {
	var ret ContractID
	if len(data) != ContractIDLength {
		return ret, fmt.Errorf("ContractIDFromBytes: wrong data length %d", len(data))
	}
	if data[0] != byte(ContractImplicit) && data[0] != byte(ContractOriginated) {
		return ret, fmt.Errorf("ContractIDFromBytes: wrong contract kind tag %d", data[0])
	}
	copy(ret[:], data)
	return ret, nil
}

func (id ContractID) String() string {
	pref := "im:"
	if id.Kind() == ContractOriginated {
		pref = "or:"
	}
	return pref + hex.EncodeToString(id[1:])
}

func ContractIDFromString(s string) (ContractID, error) {
	var ret ContractID
	if len(s) != 3+2*PublicKeyHashLength {
		return ret, fmt.Errorf("ContractIDFromString: wrong length")
	}
	switch s[:3] {
	case "im:":
		ret[0] = byte(ContractImplicit)
	case "or:":
		ret[0] = byte(ContractOriginated)
	default:
		return ret, fmt.Errorf("ContractIDFromString: wrong prefix '%s'", s[:3])
	}
	data, err := hex.DecodeString(s[3:])
	if err != nil {
		return ret, fmt.Errorf("ContractIDFromString: %w", err)
	}
	copy(ret[1:], data)
	return ret, nil
}

func LessContractID(id1, id2 ContractID) bool {
	return bytes.Compare(id1[:], id2[:]) < 0
}

// PublicKeyFromBytes validates the size of a stored ed25519 public key
func PublicKeyFromBytes(data []byte) (ed25519.PublicKey, error) {
	if len(data) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("PublicKeyFromBytes: wrong data length %d", len(data))
	}
	ret := make(ed25519.PublicKey, ed25519.PublicKeySize)
	copy(ret, data)
	return ret, nil
}

func PublicKeyBytes(pk ed25519.PublicKey) []byte {
	return pk
}

// Script is compiled contract code or its storage area, opaque to this layer
type Script []byte

func (s Script) Bytes() []byte {
	return append([]byte{0x00}, s...)
}

func ScriptFromBytes(data []byte) (Script, error) {
	if len(data) < 1 || data[0] != 0x00 {
		return nil, fmt.Errorf("ScriptFromBytes: wrong tag")
	}
	if len(data) == 1 {
		return Script{}, nil
	}
	ret := make(Script, len(data)-1)
	copy(ret, data[1:])
	return ret, nil
}
