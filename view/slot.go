package view

import "github.com/roxymeskell/mdmaze/maze"

// Slot is one position of a projected view. Bit 0 is the kind: 1 for a bound
// (wall), 0 for a cell interior. For a bound bit 1 is set when the wall is
// closed. For an interior bit 1 marks a way up and bit 2 a way down the Z axis.
type Slot uint8

const (
	kindBit    = 0
	closedBit  = 1
	ascendBit  = 1
	descendBit = 2
)

var (
	interiorSlot    Slot
	closedBoundSlot = Slot(0).WithKind(true).WithClosed(true)
	openBoundSlot   = Slot(0).WithKind(true)
)

// IsBound reports whether s is a wall slot.
func (s Slot) IsBound() bool {
	return maze.GetBit(s, kindBit) == 1
}

// IsInterior reports whether s is a cell interior.
func (s Slot) IsInterior() bool {
	return !s.IsBound()
}

// ClosedBound reports whether s is a closed wall.
func (s Slot) ClosedBound() bool {
	return s.IsBound() && maze.GetBit(s, closedBit) == 1
}

// OpenBound reports whether s is an open wall.
func (s Slot) OpenBound() bool {
	return s.IsBound() && maze.GetBit(s, closedBit) == 0
}

// Ascending reports whether the interior s opens upward along Z.
func (s Slot) Ascending() bool {
	return s.IsInterior() && maze.GetBit(s, ascendBit) == 1
}

// Descending reports whether the interior s opens downward along Z.
func (s Slot) Descending() bool {
	return s.IsInterior() && maze.GetBit(s, descendBit) == 1
}

// WithKind returns s marked as a bound or an interior.
func (s Slot) WithKind(bound bool) Slot {
	return maze.SetBit(s, kindBit, bound)
}

// WithClosed sets the wall state of a bound. Interiors are returned unchanged.
func (s Slot) WithClosed(closed bool) Slot {
	if !s.IsBound() {
		return s
	}
	return maze.SetBit(s, closedBit, closed)
}

// WithAscending sets the upward flag of an interior. Bounds are returned unchanged.
func (s Slot) WithAscending(on bool) Slot {
	if !s.IsInterior() {
		return s
	}
	return maze.SetBit(s, ascendBit, on)
}

// WithDescending sets the downward flag of an interior. Bounds are returned unchanged.
func (s Slot) WithDescending(on bool) Slot {
	if !s.IsInterior() {
		return s
	}
	return maze.SetBit(s, descendBit, on)
}
