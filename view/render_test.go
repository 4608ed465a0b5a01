package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	g, err := Project(tower(t), Spec{X: 0, Y: 1, Z: 2}, []int{0, 0, 0})
	require.NoError(t, err)

	t.Run("Rows", func(t *testing.T) {
		assert.Equal(t, []string{
			"#######",
			"#   # #",
			"#######",
			" v#^# #",
			"### ###",
			"# # # #",
			"#######",
		}, Rows(g))
	})

	t.Run("Viewer", func(t *testing.T) {
		rows := RenderWithViewer(g, 0, 0)
		assert.Equal(t, "#######\n#@  # #\n", rows[:16])
	})

	t.Run("Glyphs", func(t *testing.T) {
		assert.Equal(t, '#', Glyph(closedBoundSlot))
		assert.Equal(t, ' ', Glyph(openBoundSlot))
		assert.Equal(t, 'x', Glyph(interiorSlot.WithAscending(true).WithDescending(true)))
		assert.Equal(t, ' ', Glyph(interiorSlot))
	})
}
