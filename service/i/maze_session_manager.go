package i

import (
	"errors"

	"github.com/google/uuid"
	"github.com/roxymeskell/mdmaze/game"
)

var ErrSessionNotFound = errors.New("maze session not found")

// SessionInfo describes a maze session.
type SessionInfo struct {
	ID       uuid.UUID  `json:"id"`
	Extents  []int      `json:"extents"`
	Entrance []int      `json:"entrance"`
	Exit     []int      `json:"exit"`
	Shortest int        `json:"shortest_path,omitempty"` // Moves from entrance to exit, when known
	State    game.State `json:"runner"`
}

// MazeSessionManager manages maze sessions and the runner inside each one.
type MazeSessionManager interface {
	// NewSession generates a maze with the given extents and places a runner at its entrance.
	NewSession(extents []int) (uuid.UUID, error)

	// SessionInfo returns the maze shape, openings and runner state of a session.
	SessionInfo(id uuid.UUID) (SessionInfo, error)

	// State returns the runner state, including its current view.
	State(id uuid.UUID) (game.State, error)

	// EncodedState returns the runner state in the session's wire format.
	EncodedState(id uuid.UUID) ([]byte, error)

	// Move applies an action to the session's runner and returns the new state.
	Move(id uuid.UUID, a game.Action) (game.State, error)

	// DecodeAction parses an action from the session's wire format.
	DecodeAction(b []byte) (game.Action, error)

	// EndSession drops a session.
	EndSession(id uuid.UUID) error
}
