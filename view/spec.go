package view

import (
	"github.com/roxymeskell/mdmaze/maze"
	"github.com/zyedidia/generic/mapset"
)

// Axis names one of the three view axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns the axis letter.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "?"
}

// ParseAxis converts "x", "y" or "z" to an Axis.
func ParseAxis(s string) (Axis, bool) {
	switch s {
	case "x", "X":
		return AxisX, true
	case "y", "Y":
		return AxisY, true
	case "z", "Z":
		return AxisZ, true
	}
	return 0, false
}

// MarshalText encodes the axis as its letter.
func (a Axis) MarshalText() ([]byte, error) {
	if a < AxisX || a > AxisZ {
		return nil, maze.NewError(maze.CodeInvalidViewSpec, "unknown axis %d", int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText decodes an axis letter.
func (a *Axis) UnmarshalText(text []byte) error {
	parsed, ok := ParseAxis(string(text))
	if !ok {
		return maze.NewError(maze.CodeInvalidViewSpec, "unknown axis %q", text)
	}
	*a = parsed
	return nil
}

// Spec picks the maze dimensions shown as the horizontal (X), vertical (Y) and
// up/down (Z) axes of a view.
type Spec struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Dim returns the maze dimension mapped to axis.
func (s Spec) Dim(axis Axis) int {
	switch axis {
	case AxisY:
		return s.Y
	case AxisZ:
		return s.Z
	}
	return s.X
}

func (s Spec) with(axis Axis, d int) Spec {
	switch axis {
	case AxisX:
		s.X = d
	case AxisY:
		s.Y = d
	case AxisZ:
		s.Z = d
	}
	return s
}

// Validate checks that the three dimensions are distinct and exist in an
// n-dimensional maze.
func (s Spec) Validate(n int) error {
	for _, d := range []int{s.X, s.Y, s.Z} {
		if d < 0 || d >= n {
			return maze.NewError(maze.CodeInvalidViewSpec, "view dimension %d outside maze with %d dimensions", d, n)
		}
	}
	if s.X == s.Y || s.X == s.Z || s.Y == s.Z {
		return maze.NewError(maze.CodeInvalidViewSpec, "view dimensions %d, %d, %d are not distinct", s.X, s.Y, s.Z)
	}
	return nil
}

// RandomSpec keeps x as the X dimension and picks distinct Y and Z at random.
func RandomSpec(r maze.Randomizer, n, x int) (Spec, error) {
	used := mapset.New[int]()
	used.Put(x)
	y := r.IntExcluding(n-1, used)
	used.Put(y)
	z := r.IntExcluding(n-1, used)

	s := Spec{X: x, Y: y, Z: z}
	if err := s.Validate(n); err != nil {
		return Spec{}, err
	}
	return s, nil
}

// Shift rotates the view of an n-dimensional maze. With more than three
// dimensions the dimension on axis moves by step, skipping dimensions the other
// two axes show. With exactly three the dimension on axis trades places with Z.
func (s Spec) Shift(axis Axis, step, n int) Spec {
	if n == 3 {
		z := s.Z
		return s.with(AxisZ, s.Dim(axis)).with(axis, z)
	}
	if n < 3 || step%n == 0 {
		return s
	}

	cur := s.Dim(axis)
	next := cur
	for i := 0; i < n; i++ {
		next = ((next+step)%n + n) % n
		if next == cur || !s.shows(next) {
			break
		}
	}
	return s.with(axis, next)
}

func (s Spec) shows(d int) bool {
	return d == s.X || d == s.Y || d == s.Z
}
