package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstants(t *testing.T) {
	t.Run("binary roundtrip", func(t *testing.T) {
		c := DefaultConstants()
		back, err := ConstantsFromBytes(c.Bytes())
		require.NoError(t, err)
		require.EqualValues(t, c, back)

		_, err = ConstantsFromBytes([]byte("not constants"))
		require.Error(t, err)
	})
	t.Run("yaml roundtrip", func(t *testing.T) {
		c := DefaultConstants()
		back, err := ConstantsFromYAML(c.YAML())
		require.NoError(t, err)
		require.EqualValues(t, c, back)
	})
	t.Run("validation", func(t *testing.T) {
		c := DefaultConstants()
		c.RollValue = 0
		require.Error(t, c.Validate())
		_, err := ConstantsFromBytes(c.Bytes())
		require.Error(t, err)
		_, err = ConstantsFromYAML([]byte("protocol_version: 1\n"))
		require.Error(t, err)
	})
	t.Run("cycle of level", func(t *testing.T) {
		c := DefaultConstants()
		require.EqualValues(t, 0, c.CycleOfLevel(0))
		require.EqualValues(t, 0, c.CycleOfLevel(Level(c.BlocksPerCycle-1)))
		require.EqualValues(t, 1, c.CycleOfLevel(Level(c.BlocksPerCycle)))
	})
	t.Run("lines", func(t *testing.T) {
		require.Contains(t, DefaultConstants().Lines().String(), "blocks per cycle")
	})
}
