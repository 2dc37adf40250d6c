// Package storage is the typed accessor layer over the raw state trie.
//
// The raw store is a path-addressed, content-hashed key/value tree with
// versioned roots: every commit produces a new root, old roots stay readable.
// This package hides it behind six generic accessor shapes (Slot,
// OptionalSlot, Map, OptionalMap, IterableMap, Set) and an immutable Context
// threading one state snapshot through the state transition function.
// The accessors centralize path assignment and (de)serialization only; they
// enforce no domain invariant
package storage

import (
	"github.com/lunfardo314/unitrie/common"
)

type (
	// StateStoreReader is read access to the raw key/value store backing the trie
	StateStoreReader interface {
		common.KVReader
		common.Traversable
	}

	// StateStore adds atomic batched updates. It is everything the accessor
	// layer needs from the raw store
	StateStore interface {
		StateStoreReader
		common.BatchedUpdatable
	}
)
