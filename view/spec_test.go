package view

import (
	"errors"
	"testing"

	"github.com/roxymeskell/mdmaze/maze"
	"github.com/stretchr/testify/assert"
)

func TestSpecValidate(t *testing.T) {
	assert.NoError(t, Spec{X: 0, Y: 1, Z: 2}.Validate(3))
	assert.NoError(t, Spec{X: 4, Y: 0, Z: 2}.Validate(5))

	for _, s := range []Spec{{0, 0, 1}, {0, 1, 1}, {2, 1, 2}, {0, 1, 3}, {-1, 1, 2}} {
		assert.True(t, errors.Is(s.Validate(3), maze.ErrInvalidViewSpec), "%+v", s)
	}
	assert.True(t, errors.Is(Spec{0, 1, 2}.Validate(2), maze.ErrInvalidViewSpec))
}

func TestRandomSpec(t *testing.T) {
	r := maze.NewRandom(5)

	t.Run("Distinct dimensions", func(t *testing.T) {
		for i := 0; i < 50; i++ {
			s, err := RandomSpec(r, 6, 2)
			assert.NoError(t, err)
			assert.Equal(t, 2, s.X)
			assert.NoError(t, s.Validate(6))
		}
	})

	t.Run("Too few dimensions", func(t *testing.T) {
		_, err := RandomSpec(r, 2, 0)
		assert.True(t, errors.Is(err, maze.ErrInvalidViewSpec))
	})
}

func TestSpecShift(t *testing.T) {
	t.Run("Three dimensions swap with Z", func(t *testing.T) {
		s := Spec{X: 0, Y: 1, Z: 2}
		assert.Equal(t, Spec{X: 2, Y: 1, Z: 0}, s.Shift(AxisX, 1, 3))
		assert.Equal(t, Spec{X: 0, Y: 2, Z: 1}, s.Shift(AxisY, -1, 3))
		assert.Equal(t, s, s.Shift(AxisZ, 1, 3))
	})

	t.Run("More dimensions skip the shown ones", func(t *testing.T) {
		s := Spec{X: 0, Y: 1, Z: 2}
		assert.Equal(t, Spec{X: 3, Y: 1, Z: 2}, s.Shift(AxisX, 1, 5))
		assert.Equal(t, Spec{X: 4, Y: 1, Z: 2}, s.Shift(AxisX, -1, 5))
		assert.Equal(t, Spec{X: 0, Y: 1, Z: 3}, s.Shift(AxisZ, 1, 5))
		assert.Equal(t, Spec{X: 0, Y: 2, Z: 3}, Spec{X: 0, Y: 1, Z: 3}.Shift(AxisY, 1, 4))
	})

	t.Run("Shifted specs stay valid", func(t *testing.T) {
		s := Spec{X: 0, Y: 1, Z: 2}
		for i := 0; i < 40; i++ {
			s = s.Shift(Axis(i%3), 1-2*(i%2), 7)
			assert.NoError(t, s.Validate(7))
		}
	})
}

func TestParseAxis(t *testing.T) {
	a, ok := ParseAxis("Y")
	assert.True(t, ok)
	assert.Equal(t, AxisY, a)
	assert.Equal(t, "y", a.String())

	_, ok = ParseAxis("w")
	assert.False(t, ok)
}
