// Package view projects a 2-D slice of an N-dimensional maze for display.
//
// A view shows the X and Y dimensions of a Spec around the viewer's cell,
// with the Z dimension reduced to up and down flags on each cell. The grid
// alternates bounds and interiors: cell (i, j) sits at slot (2i+1, 2j+1), its
// positive X wall at (2i+2, 2j+1) and its positive Y wall at (2i+1, 2j+2).
package view

import (
	"slices"

	"github.com/roxymeskell/mdmaze/maze"
)

// Source is the maze data a projection reads.
type Source interface {
	Dimensions() maze.Dimensions
	Bounds(coord []int) (maze.Bounds, error)
	Entrance() []int
	Exit() []int
}

var _ Source = &maze.World{}

// Grid is a projected view, Width slots across and Height slots down.
type Grid struct {
	Width  int
	Height int
	slots  []Slot
}

func newGrid(width, height int) *Grid {
	return &Grid{Width: width, Height: height, slots: make([]Slot, width*height)}
}

// NewGrid wraps raw slots, row by row.
func NewGrid(width, height int, slots []Slot) (*Grid, error) {
	if width < 1 || height < 1 || len(slots)%width != 0 || len(slots)/width != height {
		return nil, maze.NewError(maze.CodeInvalidViewSpec, "%d slots do not fill a %dx%d grid", len(slots), width, height)
	}
	return &Grid{Width: width, Height: height, slots: slices.Clone(slots)}, nil
}

// At returns the slot at column x, row y.
func (g *Grid) At(x, y int) Slot {
	return g.slots[y*g.Width+x]
}

func (g *Grid) set(x, y int, s Slot) {
	g.slots[y*g.Width+x] = s
}

// Cell returns the interior slot of the cell at view position (i, j).
func (g *Grid) Cell(i, j int) Slot {
	return g.At(2*i+1, 2*j+1)
}

// Slots returns a copy of the slots, row by row.
func (g *Grid) Slots() []Slot {
	return slices.Clone(g.slots)
}

// Project builds the view of src seen from current through spec. Coordinates
// are validated, never clamped.
func Project(src Source, spec Spec, current []int) (*Grid, error) {
	dims := src.Dimensions()
	if err := spec.Validate(dims.Len()); err != nil {
		return nil, err
	}
	if err := dims.Validate(current); err != nil {
		return nil, err
	}

	ex, ey := dims[spec.X], dims[spec.Y]
	g := newGrid(2*ex+1, 2*ey+1)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if x%2 == 1 && y%2 == 1 {
				g.set(x, y, interiorSlot)
			} else {
				g.set(x, y, closedBoundSlot)
			}
		}
	}

	coord := slices.Clone(current)
	for i := 0; i < ex; i++ {
		coord[spec.X] = i
		for j := 0; j < ey; j++ {
			coord[spec.Y] = j
			b, err := src.Bounds(coord)
			if err != nil {
				return nil, err
			}

			s := interiorSlot.WithAscending(b.Open(spec.Z))
			if coord[spec.Z] > 0 {
				coord[spec.Z]--
				below, err := src.Bounds(coord)
				coord[spec.Z]++
				if err != nil {
					return nil, err
				}
				s = s.WithDescending(below.Open(spec.Z))
			}

			g.set(2*i+1, 2*j+1, s)
			g.set(2*i+2, 2*j+1, closedBoundSlot.WithClosed(b.Closed(spec.X)))
			g.set(2*i+1, 2*j+2, closedBoundSlot.WithClosed(b.Closed(spec.Y)))
		}
	}

	for _, opening := range [][]int{src.Entrance(), src.Exit()} {
		if IsViewable(opening, current, spec) {
			openDoorway(g, dims, spec, opening)
		}
	}
	return g, nil
}

// IsViewable reports whether candidate lies in the slice shown from current,
// that is whether the two agree on every dimension but X and Y.
func IsViewable(candidate, current []int, spec Spec) bool {
	if len(candidate) != len(current) {
		return false
	}
	for d := range candidate {
		if d == spec.X || d == spec.Y {
			continue
		}
		if candidate[d] != current[d] {
			return false
		}
	}
	return true
}

// openDoorway opens every outward face of an entrance or exit cell.
func openDoorway(g *Grid, dims maze.Dimensions, spec Spec, c []int) {
	i, j := c[spec.X], c[spec.Y]
	ex, ey, ez := dims[spec.X], dims[spec.Y], dims[spec.Z]

	if i == 0 {
		g.set(0, 2*j+1, openBoundSlot)
	}
	if i == ex-1 {
		g.set(2*ex, 2*j+1, openBoundSlot)
	}
	if j == 0 {
		g.set(2*i+1, 0, openBoundSlot)
	}
	if j == ey-1 {
		g.set(2*i+1, 2*ey, openBoundSlot)
	}

	s := g.Cell(i, j)
	if c[spec.Z] == 0 {
		s = s.WithDescending(true)
	}
	if c[spec.Z] == ez-1 {
		s = s.WithAscending(true)
	}
	g.set(2*i+1, 2*j+1, s)
}
