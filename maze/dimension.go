package maze

import (
	"fmt"
	"math"
	"strings"
)

const (
	// MaxDimensions is the largest supported dimension count. One wall bit per
	// dimension must fit in a Bounds word.
	MaxDimensions = 16

	minDimensions = 2
	maxCells      = math.MaxInt32
)

// Dimensions holds the extent (cell count) of the maze along each axis.
type Dimensions []int

// NewDimensions validates extents and returns them as Dimensions.
// Extents beyond MaxDimensions are dropped rather than rejected.
func NewDimensions(extents ...int) (Dimensions, error) {
	if len(extents) > MaxDimensions {
		extents = extents[:MaxDimensions]
	}
	if len(extents) < minDimensions {
		return nil, NewError(CodeInvalidDimensions, "need at least %d dimensions, got %d", minDimensions, len(extents))
	}

	dims := make(Dimensions, len(extents))
	total := 1
	for d, e := range extents {
		if e < 1 {
			return nil, NewError(CodeInvalidDimensions, "extent of dimension %d must be positive, got %d", d, e)
		}
		if total > maxCells/e {
			return nil, NewError(CodeInvalidDimensions, "maze %v has too many cells", extents)
		}
		total *= e
		dims[d] = e
	}
	if total < 2 {
		return nil, NewError(CodeInvalidDimensions, "maze %v needs at least two cells", extents)
	}
	return dims, nil
}

// Len returns the number of dimensions.
func (ds Dimensions) Len() int {
	return len(ds)
}

// Extent returns the cell count along dimension d.
func (ds Dimensions) Extent(d int) int {
	return ds[d]
}

// CellCount returns the total number of cells.
func (ds Dimensions) CellCount() int {
	total := 1
	for _, e := range ds {
		total *= e
	}
	return total
}

// Contains reports whether coord names a cell of the maze.
func (ds Dimensions) Contains(coord []int) bool {
	if len(coord) != len(ds) {
		return false
	}
	for d, c := range coord {
		if c < 0 || c >= ds[d] {
			return false
		}
	}
	return true
}

// Validate returns ErrInvalidCoordinate if coord is not a cell of the maze.
func (ds Dimensions) Validate(coord []int) error {
	if !ds.Contains(coord) {
		return NewError(CodeInvalidCoordinate, "coordinate %v outside maze %v", coord, []int(ds))
	}
	return nil
}

// ValidateAxis returns ErrInvalidCoordinate if d is not an axis of the maze.
func (ds Dimensions) ValidateAxis(d int) error {
	if d < 0 || d >= len(ds) {
		return NewError(CodeInvalidCoordinate, "axis %d outside maze with %d dimensions", d, len(ds))
	}
	return nil
}

// Strides returns the flat index distance between neighbours along each axis.
// Dimension 0 is the most significant.
func (ds Dimensions) Strides() []int {
	strides := make([]int, len(ds))
	s := 1
	for d := len(ds) - 1; d >= 0; d-- {
		strides[d] = s
		s *= ds[d]
	}
	return strides
}

// Index flattens a coordinate. Comparing two indexes orders cells the same way
// as comparing their coordinates lexicographically from dimension 0.
// The coordinate must be valid.
func (ds Dimensions) Index(coord []int) int {
	idx := 0
	for d, c := range coord {
		idx = idx*ds[d] + c
	}
	return idx
}

// Coordinate is the inverse of Index.
func (ds Dimensions) Coordinate(idx int) []int {
	coord := make([]int, len(ds))
	for d := len(ds) - 1; d >= 0; d-- {
		coord[d] = idx % ds[d]
		idx /= ds[d]
	}
	return coord
}

// Compare orders two coordinates by the first differing dimension, starting at 0.
func Compare(a, b []int) int {
	for d := range a {
		switch {
		case a[d] < b[d]:
			return -1
		case a[d] > b[d]:
			return 1
		}
	}
	return 0
}

// OnBoundary reports whether coord lies on the outer face of at least one dimension.
func (ds Dimensions) OnBoundary(coord []int) bool {
	for d, c := range coord {
		if c == 0 || c == ds[d]-1 {
			return true
		}
	}
	return false
}

// String renders the dimensions as "AxBxC".
func (ds Dimensions) String() string {
	parts := make([]string, len(ds))
	for d, e := range ds {
		parts[d] = fmt.Sprint(e)
	}
	return strings.Join(parts, "x")
}
