package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/roxymeskell/mdmaze/api"
	api_i "github.com/roxymeskell/mdmaze/api/i"
	"github.com/roxymeskell/mdmaze/api/identity"
	mazeapi "github.com/roxymeskell/mdmaze/api/maze"
	"github.com/roxymeskell/mdmaze/config"
	"github.com/roxymeskell/mdmaze/game"
	pb "github.com/roxymeskell/mdmaze/game/pb_encoder"
	"github.com/roxymeskell/mdmaze/infrastruture/token"
	"github.com/roxymeskell/mdmaze/maze"
	"github.com/roxymeskell/mdmaze/service"
	"github.com/roxymeskell/mdmaze/service/i"
)

// Global variables for dependencies
var (
	mazeSessionManager i.MazeSessionManager
	jwtTokenizer       i.Tokenizer
	mazeController     api_i.Controller
	router             *api.Router
	appLogger          *log.Logger
	builderLogger      *log.Logger
)

func fatal(format string, args ...any) {
	appLogger.Printf("%s %s", config.ErrorTag, fmt.Sprintf(format, args...))
	os.Exit(1)
}

func info(msg string) {
	appLogger.Printf("%s %s", config.InfoTag, msg)
}

// newMaze generates a maze for a session. A fixed MAZE_SEED makes every
// session get the same maze for the same extents.
func newMaze(extents []int) (game.Maze, error) {
	return maze.Generate(extents, maze.Options{
		Seed:             config.Envs.MazeSeed,
		MergeProbability: config.Envs.MergeProbability,
		Logger:           builderLogger,
	})
}

func initSessionManager() {
	var err error
	mazeSessionManager, err = service.NewMazeSessionManager(&service.Config{
		MazeFactory: newMaze,
		Encoder:     &pb.Protobuf{},
		MaxCells:    config.Envs.MaxCells,
		Logger:      config.NewLogger("SESSION-MANAGER", config.ColorCyan, os.Stdout),
	})
	if err != nil {
		fatal("Creating session manager: %v", err)
	}
	info("Session manager initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	info("JWT Tokenizer initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(mazeapi.Config{
		Sessions:       mazeSessionManager,
		Tokenizer:      jwtTokenizer,
		TokenTTL:       config.Envs.TokenTTL,
		DefaultExtents: config.Envs.MazeExtents,
	})
	if err != nil {
		fatal("Creating maze controller: %v", err)
	}
	info("Maze controller initialized")
}

func initRouter(t i.Tokenizer) {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    config.Envs.Addr(),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{mazeController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	info("Router initialized")
}

func main() {
	// Initialize dependencies
	appLogger = config.NewLogger("APP", config.ColorBlue, os.Stdout)
	builderLogger = config.NewLogger("BUILDER", config.ColorMagenta, os.Stdout)
	config.MustLoad()

	initSessionManager()
	initJWTTokenizer()
	initMazeController()
	initRouter(jwtTokenizer)

	// Run HTTP server
	info(fmt.Sprintf("Listening on %s", config.Envs.Addr()))
	if err := router.Run(); err != nil {
		fatal("Starting server: %v", err)
	}
}
