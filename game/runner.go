package game

import (
	"errors"
	"fmt"
	"slices"

	"github.com/roxymeskell/mdmaze/maze"
	"github.com/roxymeskell/mdmaze/view"
)

var (
	ErrMoveBlocked   = errors.New("move blocked by a wall")
	ErrFinished      = errors.New("runner has already left the maze")
	ErrInvalidAction = errors.New("invalid action")
)

// ActionKind names what an Action does.
type ActionKind string

const (
	ActionStep   ActionKind = "step"   // move along the view's X or Y axis
	ActionClimb  ActionKind = "climb"  // move along the view's Z axis
	ActionRotate ActionKind = "rotate" // change the dimension shown on an axis
)

// Action is one runner command. Dir is +1 or -1.
type Action struct {
	Kind ActionKind `json:"kind"`
	Axis view.Axis  `json:"axis"`
	Dir  int        `json:"dir"`
}

// State is a snapshot of a Runner.
type State struct {
	Position []int      `json:"position"`
	Spec     view.Spec  `json:"spec"`
	Finished bool       `json:"finished"`
	Moves    int        `json:"moves"`
	View     *view.Grid `json:"-"`
}

// Runner is a viewer walking a maze. It starts at the entrance and finishes by
// stepping out through the exit. A Runner is not safe for concurrent use.
type Runner struct {
	maze     Maze
	dims     maze.Dimensions
	spec     view.Spec
	position []int
	finished bool
	moves    int
}

// NewRunner places a runner at the entrance of m, looking through spec.
func NewRunner(m Maze, spec view.Spec) (*Runner, error) {
	dims := m.Dimensions()
	if err := spec.Validate(dims.Len()); err != nil {
		return nil, err
	}
	return &Runner{
		maze:     m,
		dims:     dims,
		spec:     spec,
		position: m.Entrance(),
	}, nil
}

// Position returns a copy of the current coordinate.
func (r *Runner) Position() []int {
	return slices.Clone(r.position)
}

// Spec returns the current view spec.
func (r *Runner) Spec() view.Spec {
	return r.spec
}

// Finished reports whether the runner has left through the exit.
func (r *Runner) Finished() bool {
	return r.finished
}

// Moves returns the number of successful moves.
func (r *Runner) Moves() int {
	return r.moves
}

// Step moves along the view's X or Y axis.
func (r *Runner) Step(axis view.Axis, dir int) error {
	if axis != view.AxisX && axis != view.AxisY {
		return fmt.Errorf("%w: step along %s", ErrInvalidAction, axis)
	}
	return r.move(r.spec.Dim(axis), dir)
}

// Ascend moves up the view's Z axis.
func (r *Runner) Ascend() error {
	return r.move(r.spec.Z, 1)
}

// Descend moves down the view's Z axis.
func (r *Runner) Descend() error {
	return r.move(r.spec.Z, -1)
}

// Rotate shifts the dimension shown on axis by step.
func (r *Runner) Rotate(axis view.Axis, step int) error {
	if axis < view.AxisX || axis > view.AxisZ {
		return fmt.Errorf("%w: rotate %d", ErrInvalidAction, axis)
	}
	r.spec = r.spec.Shift(axis, step, r.dims.Len())
	return nil
}

// Apply runs a single Action.
func (r *Runner) Apply(a Action) error {
	switch a.Kind {
	case ActionStep:
		return r.Step(a.Axis, a.Dir)
	case ActionClimb:
		if a.Dir < 0 {
			return r.Descend()
		}
		return r.Ascend()
	case ActionRotate:
		return r.Rotate(a.Axis, a.Dir)
	}
	return fmt.Errorf("%w: unknown kind %q", ErrInvalidAction, a.Kind)
}

func (r *Runner) move(d, dir int) error {
	if r.finished {
		return ErrFinished
	}
	if dir != 1 && dir != -1 {
		return fmt.Errorf("%w: direction %d", ErrInvalidAction, dir)
	}

	next := r.position[d] + dir
	if next < 0 || next >= r.dims[d] {
		if !slices.Equal(r.position, r.maze.Exit()) {
			return ErrMoveBlocked
		}
		r.finished = true
		r.moves++
		return nil
	}

	ok, err := r.maze.Passable(r.position, d, dir)
	if err != nil {
		return err
	}
	if !ok {
		return ErrMoveBlocked
	}
	r.position[d] = next
	r.moves++
	return nil
}

// View projects the layer the runner stands in.
func (r *Runner) View() (*view.Grid, error) {
	return view.Project(r.maze, r.spec, r.position)
}

// State returns a snapshot including the current view.
func (r *Runner) State() (State, error) {
	g, err := r.View()
	if err != nil {
		return State{}, err
	}
	return State{
		Position: r.Position(),
		Spec:     r.spec,
		Finished: r.finished,
		Moves:    r.moves,
		View:     g,
	}, nil
}
