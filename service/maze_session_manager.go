package service

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/roxymeskell/mdmaze/config"
	"github.com/roxymeskell/mdmaze/game"
	pb "github.com/roxymeskell/mdmaze/game/pb_encoder"
	"github.com/roxymeskell/mdmaze/maze"
	"github.com/roxymeskell/mdmaze/service/i"
	"github.com/roxymeskell/mdmaze/view"
)

const minViewDimensions = 3

var (
	ErrSessionNotFound = i.ErrSessionNotFound
	ErrMissingFactory  = errors.New("maze factory is required")
)

var _ i.MazeSessionManager = &MazeSessionManager{}

type session struct {
	extents  []int
	maze     game.Maze
	runner   *game.Runner
	shortest int
	created  time.Time
}

type solver interface {
	Solve() ([][]int, error)
}

type MazeSessionManager struct {
	sessions    map[uuid.UUID]*session
	mazeFactory func([]int) (game.Maze, error)
	random      maze.Randomizer
	encoder     game.Encoder
	maxCells    int
	logger      *log.Logger
	sync.RWMutex
}

type Config struct {
	MazeFactory func(extents []int) (game.Maze, error)
	Random      maze.Randomizer // Picks each runner's first view; defaults to a fresh maze.Random
	Encoder     game.Encoder    // Defaults to protobuf
	MaxCells    int             // Largest maze a session may request; 0 means no limit
	Logger      *log.Logger
}

func NewMazeSessionManager(c *Config) (*MazeSessionManager, error) {
	if c.MazeFactory == nil {
		return nil, ErrMissingFactory
	}
	random := c.Random
	if random == nil {
		random = maze.NewRandom(0)
	}
	encoder := c.Encoder
	if encoder == nil {
		encoder = &pb.Protobuf{}
	}
	logger := c.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &MazeSessionManager{
		sessions:    make(map[uuid.UUID]*session),
		mazeFactory: c.MazeFactory,
		random:      random,
		encoder:     encoder,
		maxCells:    c.MaxCells,
		logger:      logger,
	}, nil
}

func (m *MazeSessionManager) NewSession(extents []int) (uuid.UUID, error) {
	dims, err := maze.NewDimensions(extents...)
	if err != nil {
		m.logger.Printf("%s rejected maze %v: %s", config.ErrorTag, extents, err)
		return uuid.Nil, err
	}
	if dims.Len() < minViewDimensions {
		return uuid.Nil, maze.NewError(maze.CodeInvalidViewSpec, "a viewable maze needs at least %d dimensions, got %d", minViewDimensions, dims.Len())
	}
	if m.maxCells > 0 && dims.CellCount() > m.maxCells {
		return uuid.Nil, maze.NewError(maze.CodeInvalidDimensions, "maze %s has %d cells, limit is %d", dims, dims.CellCount(), m.maxCells)
	}

	mz, err := m.mazeFactory(dims)
	if err != nil {
		m.logger.Printf("%s creating maze %s: %s", config.ErrorTag, dims, err)
		return uuid.Nil, fmt.Errorf("creating maze: %w", err)
	}

	shortest := 0
	if sv, ok := mz.(solver); ok {
		// len(path) counts the last step out through the exit
		if path, err := sv.Solve(); err == nil {
			shortest = len(path)
		}
	}

	m.Lock()
	defer m.Unlock()

	spec, err := view.RandomSpec(m.random, dims.Len(), m.random.Int(dims.Len()-1))
	if err != nil {
		return uuid.Nil, err
	}
	runner, err := game.NewRunner(mz, spec)
	if err != nil {
		return uuid.Nil, err
	}

	s := &session{extents: dims, maze: mz, runner: runner, shortest: shortest, created: time.Now()}
	id := m.saveSession(s)
	m.logger.Printf("%s started maze session %s: %s", config.InfoTag, id, dims)
	return id, nil
}

func (m *MazeSessionManager) saveSession(s *session) uuid.UUID {
	id := uuid.New()
	for {
		if _, ok := m.sessions[id]; !ok {
			break
		}
		id = uuid.New()
	}
	m.sessions[id] = s
	return id
}

func (m *MazeSessionManager) SessionInfo(id uuid.UUID) (i.SessionInfo, error) {
	m.RLock()
	defer m.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return i.SessionInfo{}, ErrSessionNotFound
	}

	state, err := s.runner.State()
	if err != nil {
		return i.SessionInfo{}, err
	}
	return i.SessionInfo{
		ID:       id,
		Extents:  append([]int(nil), s.extents...),
		Entrance: s.maze.Entrance(),
		Exit:     s.maze.Exit(),
		Shortest: s.shortest,
		State:    state,
	}, nil
}

func (m *MazeSessionManager) State(id uuid.UUID) (game.State, error) {
	m.RLock()
	defer m.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return game.State{}, ErrSessionNotFound
	}
	return s.runner.State()
}

func (m *MazeSessionManager) EncodedState(id uuid.UUID) ([]byte, error) {
	state, err := m.State(id)
	if err != nil {
		return nil, err
	}
	return m.encoder.MarshalState(state)
}

func (m *MazeSessionManager) DecodeAction(b []byte) (game.Action, error) {
	return m.encoder.UnmarshalAction(b)
}

func (m *MazeSessionManager) Move(id uuid.UUID, a game.Action) (game.State, error) {
	m.Lock()
	defer m.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		m.logger.Printf("%s received move for unknown session %s", config.ErrorTag, id)
		return game.State{}, ErrSessionNotFound
	}

	if err := s.runner.Apply(a); err != nil {
		return game.State{}, err
	}
	if s.runner.Finished() {
		m.logger.Printf("%s session %s finished in %d moves after %s", config.InfoTag,
			id, s.runner.Moves(), time.Since(s.created).Round(time.Second))
	}
	return s.runner.State()
}

func (m *MazeSessionManager) EndSession(id uuid.UUID) error {
	m.Lock()
	defer m.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	m.logger.Printf("%s ended maze session %s", config.InfoTag, id)
	return nil
}

func (m *MazeSessionManager) Count() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.sessions)
}
