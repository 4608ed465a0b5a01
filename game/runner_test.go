package game

import (
	"errors"
	"testing"

	"github.com/roxymeskell/mdmaze/maze"
	"github.com/roxymeskell/mdmaze/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stairwell is a 3x2x2 maze with a single path from (0,0,0) to (2,1,1):
// east, up, east, south.
func stairwell(t *testing.T) *maze.World {
	dims := maze.Dimensions{3, 2, 2}
	bounds := make([]maze.Bounds, dims.CellCount())
	for i := range bounds {
		bounds[i] = maze.Bounds(0b111)
	}
	open := func(coord []int, d int) {
		idx := dims.Index(coord)
		bounds[idx] = bounds[idx].Set(d, false)
	}
	open([]int{0, 0, 0}, 0)
	open([]int{1, 0, 0}, 2)
	open([]int{1, 0, 1}, 0)
	open([]int{2, 0, 1}, 1)

	w, err := maze.NewWorld(dims, bounds, []int{0, 0, 0}, []int{2, 1, 1})
	require.NoError(t, err)
	return w
}

func TestRunner(t *testing.T) {
	t.Run("Walks to the exit", func(t *testing.T) {
		r, err := NewRunner(stairwell(t), view.Spec{X: 0, Y: 1, Z: 2})
		require.NoError(t, err)
		assert.Equal(t, []int{0, 0, 0}, r.Position())

		assert.ErrorIs(t, r.Step(view.AxisX, -1), ErrMoveBlocked)
		assert.ErrorIs(t, r.Step(view.AxisY, 1), ErrMoveBlocked)
		assert.ErrorIs(t, r.Descend(), ErrMoveBlocked)

		assert.NoError(t, r.Step(view.AxisX, 1))
		assert.ErrorIs(t, r.Step(view.AxisX, 1), ErrMoveBlocked)
		assert.NoError(t, r.Ascend())
		assert.NoError(t, r.Step(view.AxisX, 1))
		assert.NoError(t, r.Step(view.AxisY, 1))
		assert.Equal(t, []int{2, 1, 1}, r.Position())
		assert.False(t, r.Finished())

		assert.NoError(t, r.Step(view.AxisX, 1))
		assert.True(t, r.Finished())
		assert.Equal(t, 5, r.Moves())
		assert.ErrorIs(t, r.Step(view.AxisX, -1), ErrFinished)
	})

	t.Run("Apply dispatches actions", func(t *testing.T) {
		r, err := NewRunner(stairwell(t), view.Spec{X: 0, Y: 1, Z: 2})
		require.NoError(t, err)

		assert.NoError(t, r.Apply(Action{Kind: ActionStep, Axis: view.AxisX, Dir: 1}))
		assert.NoError(t, r.Apply(Action{Kind: ActionClimb, Dir: 1}))
		assert.NoError(t, r.Apply(Action{Kind: ActionClimb, Dir: -1}))
		assert.Equal(t, []int{1, 0, 0}, r.Position())

		assert.ErrorIs(t, r.Apply(Action{Kind: "jump"}), ErrInvalidAction)
		assert.ErrorIs(t, r.Apply(Action{Kind: ActionStep, Axis: view.AxisZ, Dir: 1}), ErrInvalidAction)
		assert.ErrorIs(t, r.Apply(Action{Kind: ActionStep, Axis: view.AxisX, Dir: 2}), ErrInvalidAction)
	})

	t.Run("Rotation changes the walking axes", func(t *testing.T) {
		r, err := NewRunner(stairwell(t), view.Spec{X: 0, Y: 1, Z: 2})
		require.NoError(t, err)
		require.NoError(t, r.Step(view.AxisX, 1))

		require.NoError(t, r.Rotate(view.AxisX, 1))
		assert.Equal(t, view.Spec{X: 2, Y: 1, Z: 0}, r.Spec())
		assert.NoError(t, r.Step(view.AxisX, 1))
		assert.Equal(t, []int{1, 0, 1}, r.Position())
	})

	t.Run("View follows the runner", func(t *testing.T) {
		r, err := NewRunner(stairwell(t), view.Spec{X: 0, Y: 1, Z: 2})
		require.NoError(t, err)

		state, err := r.State()
		require.NoError(t, err)
		assert.Equal(t, 7, state.View.Width)
		assert.Equal(t, 5, state.View.Height)
		assert.True(t, state.View.At(2, 1).OpenBound())
		assert.True(t, state.View.Cell(0, 0).Descending())
	})

	t.Run("Invalid spec", func(t *testing.T) {
		_, err := NewRunner(stairwell(t), view.Spec{X: 0, Y: 0, Z: 2})
		assert.True(t, errors.Is(err, maze.ErrInvalidViewSpec))
	})
}

func TestRunnerOnGeneratedMaze(t *testing.T) {
	w, err := maze.Generate([]int{4, 4, 3}, maze.Options{Seed: 21})
	require.NoError(t, err)

	r, err := NewRunner(w, view.Spec{X: 0, Y: 1, Z: 2})
	require.NoError(t, err)

	// every move either succeeds through an open wall or is rejected
	for i := 0; i < 200 && !r.Finished(); i++ {
		before := r.Position()
		a := Action{Kind: ActionStep, Axis: view.Axis(i % 2), Dir: 1 - 2*((i/2)%2)}
		err := r.Apply(a)
		if err != nil {
			assert.ErrorIs(t, err, ErrMoveBlocked)
			assert.Equal(t, before, r.Position())
			continue
		}
		if r.Finished() {
			break
		}
		d := r.Spec().Dim(a.Axis)
		ok, perr := w.Passable(before, d, a.Dir)
		require.NoError(t, perr)
		assert.True(t, ok)
	}
}
