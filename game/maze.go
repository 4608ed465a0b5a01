package game

import "github.com/roxymeskell/mdmaze/view"

// Maze defines the methods that a maze must implement for a Runner to walk it.
type Maze interface {
	view.Source
	Passable(coord []int, d, step int) (bool, error)
}

// Encoder defines the methods for converting runner state and views to and
// from a wire format.
type Encoder interface {
	MarshalState(State) ([]byte, error)
	UnmarshalState([]byte) (State, error)
	MarshalGrid(*view.Grid) ([]byte, error)
	UnmarshalGrid([]byte) (*view.Grid, error)
	MarshalAction(Action) ([]byte, error)
	UnmarshalAction([]byte) (Action, error)
}
