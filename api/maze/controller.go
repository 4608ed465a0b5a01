package mazeapi

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/roxymeskell/mdmaze/api/identity"
	"github.com/roxymeskell/mdmaze/game"
	"github.com/roxymeskell/mdmaze/maze"
	"github.com/roxymeskell/mdmaze/service/i"
)

// ProtobufMIME selects the protobuf wire format for views and moves.
const ProtobufMIME = "application/x-protobuf"

// MazeController exposes maze sessions.
type MazeController struct {
	sessions       i.MazeSessionManager
	tokenizer      i.Tokenizer
	tokenTTL       time.Duration
	defaultExtents []int
}

// Config holds the dependencies of a MazeController.
type Config struct {
	Sessions       i.MazeSessionManager
	Tokenizer      i.Tokenizer
	TokenTTL       time.Duration
	DefaultExtents []int
}

// NewMazeController initializes a MazeController.
func NewMazeController(c Config) (*MazeController, error) {
	if c.Sessions == nil || c.Tokenizer == nil {
		return nil, errors.New("maze controller needs a session manager and a tokenizer")
	}
	ttl := c.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &MazeController{
		sessions:       c.Sessions,
		tokenizer:      c.Tokenizer,
		tokenTTL:       ttl,
		defaultExtents: c.DefaultExtents,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.create)
		mazes.GET("/:ID", mc.info)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("/:ID/view", mc.view)
		mazes.POST("/:ID/moves", mc.move)
	}
}

// create generates a maze and hands back a token for its session.
func (mc *MazeController) create(ctx *gin.Context) {
	var request CreateRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	extents := request.Extents
	if len(extents) == 0 {
		extents = mc.defaultExtents
	}

	id, err := mc.sessions.NewSession(extents)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	info, err := mc.sessions.SessionInfo(id)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	token, err := mc.tokenizer.Generate(map[string]interface{}{identity.ClaimSessionID: id.String()}, mc.tokenTTL)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while issuing token"})
		return
	}

	ctx.JSON(http.StatusCreated, &CreateResponse{
		ID:       id,
		Token:    token,
		Extents:  info.Extents,
		Entrance: info.Entrance,
		Exit:     info.Exit,
	})
}

// info returns the shape and openings of a maze.
func (mc *MazeController) info(ctx *gin.Context) {
	id, ok := sessionParam(ctx)
	if !ok {
		return
	}
	info, err := mc.sessions.SessionInfo(id)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, info)
}

// view returns the runner state and its projected view.
func (mc *MazeController) view(ctx *gin.Context) {
	id, ok := mc.authorizedSession(ctx)
	if !ok {
		return
	}

	if ctx.NegotiateFormat(gin.MIMEJSON, ProtobufMIME) == ProtobufMIME {
		b, err := mc.sessions.EncodedState(id)
		if err != nil {
			abortWithError(ctx, err)
			return
		}
		ctx.Data(http.StatusOK, ProtobufMIME, b)
		return
	}

	state, err := mc.sessions.State(id)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newViewResponse(state))
}

// move applies one runner action. The body is JSON unless sent as protobuf.
func (mc *MazeController) move(ctx *gin.Context) {
	id, ok := mc.authorizedSession(ctx)
	if !ok {
		return
	}

	var action game.Action
	if ctx.ContentType() == ProtobufMIME {
		body, err := io.ReadAll(ctx.Request.Body)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if action, err = mc.sessions.DecodeAction(body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	} else if err := ctx.ShouldBindJSON(&action); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := mc.sessions.Move(id, action)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newViewResponse(state))
}

// authorizedSession parses :ID and checks it against the token's session.
func (mc *MazeController) authorizedSession(ctx *gin.Context) (uuid.UUID, bool) {
	id, ok := sessionParam(ctx)
	if !ok {
		return uuid.Nil, false
	}
	claimed, ok := identity.SessionID(ctx)
	if !ok || claimed != id.String() {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "token does not grant this maze"})
		return uuid.Nil, false
	}
	return id, true
}

func sessionParam(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, false
	}
	return id, true
}

func abortWithError(ctx *gin.Context, err error) {
	ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, i.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrMoveBlocked), errors.Is(err, game.ErrFinished):
		return http.StatusConflict
	case errors.Is(err, maze.ErrInvalidDimensions),
		errors.Is(err, maze.ErrInvalidCoordinate),
		errors.Is(err, maze.ErrInvalidViewSpec),
		errors.Is(err, game.ErrInvalidAction):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
