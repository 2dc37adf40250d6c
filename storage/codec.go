package storage

import (
	"encoding/binary"
	"fmt"

	"github.com/daruolis/tessera/util"
)

type (
	// ValueCodec is a deterministic, bit-exact (de)serializer for values of one
	// entity. Encode must produce a non-empty byte string: the raw store
	// equates empty with absent. Round-trip must be exact, the encoded bytes
	// feed the authenticated state root
	ValueCodec[V any] struct {
		Encode func(V) []byte
		Decode func([]byte) (V, error)
	}

	// KeyCodec injectively maps a typed key to a fixed number of path segments
	// appended after the accessor's prefix. Width makes compound keys
	// splittable when decoding iterated paths
	KeyCodec[K any] struct {
		Width  int
		Encode func(K) []string
		Decode func([]string) (K, error)
	}

	// PairKey is a compound key. Its codec concatenates the sub-encodings of
	// the two components in a fixed order
	PairKey[A, B any] struct {
		First  A
		Second B
	}
)

// Codec makes a ValueCodec out of a Bytes/FromBytes pair
func Codec[V any](encode func(V) []byte, decode func([]byte) (V, error)) ValueCodec[V] {
	return ValueCodec[V]{Encode: encode, Decode: decode}
}

func (c ValueCodec[V]) mustEncode(v V) []byte {
	ret := c.Encode(v)
	util.Assertf(len(ret) > 0, "storage: value encoding must be non-empty")
	return ret
}

// KeyFromBytesPair makes a single-segment KeyCodec out of a Bytes/FromBytes pair
func KeyFromBytesPair[K any](encode func(K) []byte, decode func([]byte) (K, error)) KeyCodec[K] {
	return KeyCodec[K]{
		Width: 1,
		Encode: func(k K) []string {
			data := encode(k)
			util.Assertf(len(data) > 0 && len(data) <= maxSegmentLen, "storage: key segment length must be 1..%d", maxSegmentLen)
			return []string{string(data)}
		},
		Decode: func(segments []string) (K, error) {
			var nilK K
			if len(segments) != 1 {
				return nilK, fmt.Errorf("expected 1 key segment, got %d", len(segments))
			}
			return decode([]byte(segments[0]))
		},
	}
}

// Uint32Key is the KeyCodec of any uint32-based key type: one 4-byte
// big-endian segment, so the store order of keys is their numeric order
func Uint32Key[K ~uint32]() KeyCodec[K] {
	return KeyCodec[K]{
		Width: 1,
		Encode: func(k K) []string {
			var b [4]byte
			binary.BigEndian.PutUint32(b[:], uint32(k))
			return []string{string(b[:])}
		},
		Decode: func(segments []string) (K, error) {
			if len(segments) != 1 || len(segments[0]) != 4 {
				return 0, fmt.Errorf("expected one 4-byte key segment")
			}
			return K(binary.BigEndian.Uint32([]byte(segments[0]))), nil
		},
	}
}

// PairKeyCodec composes two key codecs into a compound one
func PairKeyCodec[A, B any](first KeyCodec[A], second KeyCodec[B]) KeyCodec[PairKey[A, B]] {
	util.Assertf(first.Width > 0 && second.Width > 0, "storage: sub-codec width must be positive")
	return KeyCodec[PairKey[A, B]]{
		Width: first.Width + second.Width,
		Encode: func(k PairKey[A, B]) []string {
			return append(first.Encode(k.First), second.Encode(k.Second)...)
		},
		Decode: func(segments []string) (PairKey[A, B], error) {
			var ret PairKey[A, B]
			if len(segments) != first.Width+second.Width {
				return ret, fmt.Errorf("expected %d key segments, got %d", first.Width+second.Width, len(segments))
			}
			var err error
			if ret.First, err = first.Decode(segments[:first.Width]); err != nil {
				return ret, err
			}
			if ret.Second, err = second.Decode(segments[first.Width:]); err != nil {
				return ret, err
			}
			return ret, nil
		},
	}
}

// primitive value codecs

func Uint64Codec[V ~uint64]() ValueCodec[V] {
	return ValueCodec[V]{
		Encode: func(v V) []byte {
			var b [8]byte
			binary.BigEndian.PutUint64(b[:], uint64(v))
			return b[:]
		},
		Decode: func(data []byte) (V, error) {
			if len(data) != 8 {
				return 0, fmt.Errorf("expected 8 bytes, got %d", len(data))
			}
			return V(binary.BigEndian.Uint64(data)), nil
		},
	}
}

func Uint32Codec[V ~uint32]() ValueCodec[V] {
	return ValueCodec[V]{
		Encode: func(v V) []byte {
			var b [4]byte
			binary.BigEndian.PutUint32(b[:], uint32(v))
			return b[:]
		},
		Decode: func(data []byte) (V, error) {
			if len(data) != 4 {
				return 0, fmt.Errorf("expected 4 bytes, got %d", len(data))
			}
			return V(binary.BigEndian.Uint32(data)), nil
		},
	}
}

func BoolCodec() ValueCodec[bool] {
	return ValueCodec[bool]{
		Encode: func(v bool) []byte {
			if v {
				return []byte{0x01}
			}
			return []byte{0x00}
		},
		Decode: func(data []byte) (bool, error) {
			if len(data) != 1 || data[0] > 1 {
				return false, fmt.Errorf("expected one boolean byte")
			}
			return data[0] == 0x01, nil
		},
	}
}
