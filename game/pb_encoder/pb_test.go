package pb

import (
	"testing"

	"github.com/roxymeskell/mdmaze/game"
	"github.com/roxymeskell/mdmaze/maze"
	"github.com/roxymeskell/mdmaze/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestProtobuf(t *testing.T) {
	p := &Protobuf{}

	w, err := maze.Generate([]int{4, 3, 3, 2}, maze.Options{Seed: 9})
	require.NoError(t, err)
	r, err := game.NewRunner(w, view.Spec{X: 3, Y: 0, Z: 2})
	require.NoError(t, err)
	state, err := r.State()
	require.NoError(t, err)

	t.Run("State with a real view", func(t *testing.T) {
		b, err := p.MarshalState(state)
		require.NoError(t, err)

		decoded, err := p.UnmarshalState(b)
		require.NoError(t, err)
		assert.Equal(t, state.Position, decoded.Position)
		assert.Equal(t, state.Spec, decoded.Spec)
		assert.Equal(t, state.Moves, decoded.Moves)
		require.NotNil(t, decoded.View)
		assert.Equal(t, state.View.Width, decoded.View.Width)
		assert.Equal(t, view.Render(state.View), view.Render(decoded.View))
	})

	t.Run("Unknown fields are skipped", func(t *testing.T) {
		b, err := p.MarshalGrid(state.View)
		require.NoError(t, err)
		b = protowire.AppendTag(b, 15, protowire.Fixed32Type)
		b = protowire.AppendFixed32(b, 7)
		b = appendBytes(b, 16, []byte("later"))

		g, err := p.UnmarshalGrid(b)
		require.NoError(t, err)
		assert.Equal(t, state.View.Slots(), g.Slots())
	})

	t.Run("Unpacked positions", func(t *testing.T) {
		var b []byte
		b = appendUint(b, statePosition, 2)
		b = appendUint(b, statePosition, 5)
		b = appendUint(b, stateFinished, 1)

		s, err := p.UnmarshalState(b)
		require.NoError(t, err)
		assert.Equal(t, []int{2, 5}, s.Position)
		assert.True(t, s.Finished)
		assert.Nil(t, s.View)
	})

	t.Run("Truncated input", func(t *testing.T) {
		b, err := p.MarshalState(state)
		require.NoError(t, err)
		_, err = p.UnmarshalState(b[:len(b)-3])
		assert.Error(t, err)
	})

	t.Run("Grid size mismatch", func(t *testing.T) {
		var b []byte
		b = appendUint(b, gridWidth, 3)
		b = appendUint(b, gridHeight, 3)
		b = appendBytes(b, gridSlots, []byte{1, 0, 1})
		_, err := p.UnmarshalGrid(b)
		assert.Error(t, err)

		b = nil
		b = appendUint(b, gridWidth, 4)
		b = appendUint(b, gridHeight, 1<<62)
		_, err = p.UnmarshalGrid(b)
		assert.ErrorIs(t, err, maze.ErrInvalidViewSpec)

		_, err = p.MarshalGrid(nil)
		assert.ErrorIs(t, err, ErrNilGrid)
	})

	t.Run("Action", func(t *testing.T) {
		a := game.Action{Kind: game.ActionStep, Axis: view.AxisY, Dir: -1}
		b, err := p.MarshalAction(a)
		require.NoError(t, err)
		decoded, err := p.UnmarshalAction(b)
		require.NoError(t, err)
		assert.Equal(t, a, decoded)
	})
}
