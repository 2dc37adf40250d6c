package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrimitiveCodecs(t *testing.T) {
	t.Run("uint64", func(t *testing.T) {
		c := Uint64Codec[uint64]()
		for _, v := range []uint64{0, 1, 1337, 1 << 63} {
			back, err := c.Decode(c.Encode(v))
			require.NoError(t, err)
			require.EqualValues(t, v, back)
		}
		_, err := c.Decode([]byte{1, 2, 3})
		require.Error(t, err)
	})
	t.Run("uint32", func(t *testing.T) {
		type cycle uint32
		c := Uint32Codec[cycle]()
		back, err := c.Decode(c.Encode(cycle(42)))
		require.NoError(t, err)
		require.EqualValues(t, cycle(42), back)
	})
	t.Run("bool", func(t *testing.T) {
		c := BoolCodec()
		for _, v := range []bool{false, true} {
			back, err := c.Decode(c.Encode(v))
			require.NoError(t, err)
			require.EqualValues(t, v, back)
		}
		_, err := c.Decode([]byte{2})
		require.Error(t, err)
	})
}

func TestKeyCodecs(t *testing.T) {
	t.Run("uint32 key order", func(t *testing.T) {
		k := Uint32Key[uint32]()
		// big-endian encoding keeps the store order numeric
		s1 := k.Encode(1)[0]
		s2 := k.Encode(256)[0]
		require.True(t, s1 < s2)
	})
	t.Run("pair", func(t *testing.T) {
		p := PairKeyCodec(Uint32Key[uint32](), Uint32Key[uint32]())
		require.EqualValues(t, 2, p.Width)
		key := PairKey[uint32, uint32]{First: 7, Second: 9}
		back, err := p.Decode(p.Encode(key))
		require.NoError(t, err)
		require.EqualValues(t, key, back)

		_, err = p.Decode([]string{"only-one"})
		require.Error(t, err)
	})
}
