package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorldPath(t *testing.T) {
	w := corridor(t)

	t.Run("Solve follows the corridor", func(t *testing.T) {
		path, err := w.Solve()
		require.NoError(t, err)
		assert.Equal(t, [][]int{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {1, 1}, {0, 1}}, path)
	})

	t.Run("Same cell", func(t *testing.T) {
		path, err := w.Path([]int{1, 1}, []int{1, 1})
		require.NoError(t, err)
		assert.Equal(t, [][]int{{1, 1}}, path)
	})

	t.Run("Invalid coordinate", func(t *testing.T) {
		_, err := w.Path([]int{3, 0}, []int{0, 0})
		assert.ErrorIs(t, err, ErrInvalidCoordinate)
	})

	t.Run("Walled off", func(t *testing.T) {
		dims := Dimensions{2, 2}
		bounds := make([]Bounds, dims.CellCount())
		for i := range bounds {
			bounds[i] = closedBounds(2)
		}
		closed, err := NewWorld(dims, bounds, []int{0, 0}, []int{1, 1})
		require.NoError(t, err)

		_, err = closed.Solve()
		assert.ErrorIs(t, err, ErrNoPath)
	})

	t.Run("Generated mazes are solvable", func(t *testing.T) {
		for _, extents := range [][]int{{5, 5}, {3, 4, 3}, {2, 3, 2, 3}} {
			g, err := Generate(extents, Options{Seed: 5})
			require.NoError(t, err)

			path, err := g.Solve()
			require.NoError(t, err)
			assert.Equal(t, g.Entrance(), path[0])
			assert.Equal(t, g.Exit(), path[len(path)-1])
			for k := 1; k < len(path); k++ {
				assert.Contains(t, mustNeighbors(t, g, path[k-1]), path[k])
			}
		}
	})
}

func mustNeighbors(t *testing.T, w *World, coord []int) [][]int {
	n, err := w.Neighbors(coord)
	require.NoError(t, err)
	return n
}
