// Package mazeapi serves maze sessions over HTTP.
package mazeapi

import (
	"github.com/google/uuid"
	"github.com/roxymeskell/mdmaze/game"
	"github.com/roxymeskell/mdmaze/view"
)

// CreateRequest asks for a new maze. Empty extents use the server default.
type CreateRequest struct {
	Extents []int `json:"extents"`
}

// CreateResponse carries the new session and the bearer token that unlocks it.
type CreateResponse struct {
	ID       uuid.UUID `json:"id"`
	Token    string    `json:"token"`
	Extents  []int     `json:"extents"`
	Entrance []int     `json:"entrance"`
	Exit     []int     `json:"exit"`
}

// ViewResponse is the runner state with its current view drawn as text rows.
type ViewResponse struct {
	game.State
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Rows   []string `json:"rows"`
}

func newViewResponse(s game.State) ViewResponse {
	resp := ViewResponse{State: s}
	if s.View != nil {
		resp.Width = s.View.Width
		resp.Height = s.View.Height
		resp.Rows = view.Rows(s.View)
	}
	return resp
}
