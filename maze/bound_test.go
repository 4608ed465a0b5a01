package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBits(t *testing.T) {
	t.Run("GetBit", func(t *testing.T) {
		assert.Equal(t, uint8(1), GetBit(uint8(0b0100), 2))
		assert.Equal(t, uint8(0), GetBit(uint8(0b0100), 1))
	})

	t.Run("SetBit", func(t *testing.T) {
		assert.Equal(t, uint16(0b1001), SetBit(uint16(0b0001), 3, true))
		assert.Equal(t, uint16(0b0001), SetBit(uint16(0b1001), 3, false))
		assert.Equal(t, uint16(0b1001), SetBit(uint16(0b1001), 0, true))
	})

	t.Run("FlipBit", func(t *testing.T) {
		assert.Equal(t, uint32(0b110), FlipBit(uint32(0b111), 0))
		assert.Equal(t, uint32(0b111), FlipBit(uint32(0b110), 0))
	})
}

func TestBounds(t *testing.T) {
	t.Run("Closed word covers every dimension", func(t *testing.T) {
		b := closedBounds(MaxDimensions)
		for d := 0; d < MaxDimensions; d++ {
			assert.True(t, b.Closed(d))
		}
		assert.Equal(t, Bounds(0b111), closedBounds(3))
	})

	t.Run("Open and close single walls", func(t *testing.T) {
		b := closedBounds(3).Set(1, false)
		assert.True(t, b.Open(1))
		assert.True(t, b.Closed(0))
		assert.True(t, b.Closed(2))

		b = b.Flip(1).Flip(2)
		assert.True(t, b.Closed(1))
		assert.True(t, b.Open(2))
	})
}
