// Package maze generates N-dimensional perfect-ish mazes. Generation sweeps the
// grid one dimension at a time, keeping the cells that are still undecided in a
// forest of coordinate-ordered heaps, one heap per connected set, and writing
// each finished cell's wall word into a World.
package maze

import (
	"slices"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Stats describes one generation run.
type Stats struct {
	Seed          int64 `json:"seed"`
	CellsCreated  int   `json:"cells_created"`
	CellsWritten  int   `json:"cells_written_early"`
	Merges        int   `json:"merges"`
	CellsMoved    int   `json:"cells_moved"`
	ForcedOpen    int   `json:"forced_open"`
	JoinRounds    int   `json:"join_rounds"`
	PeakLiveCells int   `json:"peak_live_cells"`
}

// World stores the finished maze: one wall word per cell plus the entrance and exit.
type World struct {
	dims     Dimensions
	strides  []int
	bounds   []Bounds
	entrance []int
	exit     []int
	stats    Stats
}

func newWorld(dims Dimensions) *World {
	return &World{
		dims:    dims,
		strides: dims.Strides(),
		bounds:  make([]Bounds, dims.CellCount()),
	}
}

// NewWorld builds a World from stored wall words. It is used to restore a
// maze from an encoded form; bounds are indexed by Dimensions.Index.
func NewWorld(dims Dimensions, bounds []Bounds, entrance, exit []int) (*World, error) {
	if len(bounds) != dims.CellCount() {
		return nil, NewError(CodeInvalidDimensions, "maze %v needs %d wall words, got %d", []int(dims), dims.CellCount(), len(bounds))
	}
	if err := dims.Validate(entrance); err != nil {
		return nil, err
	}
	if err := dims.Validate(exit); err != nil {
		return nil, err
	}
	w := newWorld(dims)
	copy(w.bounds, bounds)
	w.entrance = slices.Clone(entrance)
	w.exit = slices.Clone(exit)
	return w, nil
}

// Dimensions returns a copy of the maze extents.
func (w *World) Dimensions() Dimensions {
	return slices.Clone(w.dims)
}

// Entrance returns a copy of the entrance coordinate.
func (w *World) Entrance() []int {
	return slices.Clone(w.entrance)
}

// Exit returns a copy of the exit coordinate.
func (w *World) Exit() []int {
	return slices.Clone(w.exit)
}

// Stats returns generation statistics.
func (w *World) Stats() Stats {
	return w.stats
}

// Bounds returns the wall word of the cell at coord.
func (w *World) Bounds(coord []int) (Bounds, error) {
	if err := w.dims.Validate(coord); err != nil {
		return 0, err
	}
	return w.bounds[w.dims.Index(coord)], nil
}

// BoundsAt returns the wall word at a flat index.
func (w *World) BoundsAt(idx int) Bounds {
	return w.bounds[idx]
}

// Passable reports whether a step of +1 or -1 along axis d from coord crosses
// an open wall into another cell. Steps out of the maze are never passable.
func (w *World) Passable(coord []int, d, step int) (bool, error) {
	if err := w.dims.Validate(coord); err != nil {
		return false, err
	}
	if err := w.dims.ValidateAxis(d); err != nil {
		return false, err
	}
	idx := w.dims.Index(coord)
	switch step {
	case 1:
		return coord[d] < w.dims[d]-1 && w.bounds[idx].Open(d), nil
	case -1:
		return coord[d] > 0 && w.bounds[idx-w.strides[d]].Open(d), nil
	}
	return false, NewError(CodeInvalidCoordinate, "step must be 1 or -1, got %d", step)
}

// openNeighbors appends the flat indexes reachable in one step from idx.
func (w *World) openNeighbors(idx int, out []int) []int {
	for d, s := range w.strides {
		c := (idx / s) % w.dims[d]
		if c < w.dims[d]-1 && w.bounds[idx].Open(d) {
			out = append(out, idx+s)
		}
		if c > 0 && w.bounds[idx-s].Open(d) {
			out = append(out, idx-s)
		}
	}
	return out
}

// Neighbors returns the coordinates reachable in one step from coord.
func (w *World) Neighbors(coord []int) ([][]int, error) {
	if err := w.dims.Validate(coord); err != nil {
		return nil, err
	}
	var result [][]int
	for _, idx := range w.openNeighbors(w.dims.Index(coord), nil) {
		result = append(result, w.dims.Coordinate(idx))
	}
	return result, nil
}

// Reachable counts the cells reachable from coord through open walls.
func (w *World) Reachable(coord []int) (int, error) {
	if err := w.dims.Validate(coord); err != nil {
		return 0, err
	}
	start := w.dims.Index(coord)
	visited := mapset.New[int]()
	visited.Put(start)
	queue := []int{start}
	var next []int

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		next = w.openNeighbors(current, next[:0])
		for _, n := range next {
			if !visited.Has(n) {
				visited.Put(n)
				queue = append(queue, n)
			}
		}
	}
	return visited.Size(), nil
}

// Connected reports whether every cell is reachable from every other.
func (w *World) Connected() bool {
	n, err := w.Reachable(make([]int, len(w.dims)))
	return err == nil && n == w.dims.CellCount()
}

// String renders the slice through dimensions 0 and 1 at the origin of all
// other dimensions. Dimension 0 runs left to right.
func (w *World) String() string {
	var output strings.Builder
	width, height := w.dims[0], w.dims[1]
	coord := make([]int, len(w.dims))

	// Top boundary
	output.WriteString("+" + strings.Repeat("---+", width) + "\n")

	for row := 0; row < height; row++ {
		coord[1] = row

		// Cell rows
		output.WriteString("|")
		for col := 0; col < width; col++ {
			coord[0] = col
			if w.bounds[w.dims.Index(coord)].Open(0) {
				output.WriteString("    ")
			} else {
				output.WriteString("   |")
			}
		}
		output.WriteString("\n")

		// Wall rows
		output.WriteString("+")
		for col := 0; col < width; col++ {
			coord[0] = col
			if w.bounds[w.dims.Index(coord)].Open(1) {
				output.WriteString("   +")
			} else {
				output.WriteString("---+")
			}
		}
		output.WriteString("\n")
	}

	return output.String()
}
