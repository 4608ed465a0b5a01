package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP           string        `env:"HOST_IP" envDefault:"0.0.0.0"`                     // Host IP for the server
	RESTPort         int           `env:"REST_PORT" envDefault:"8080"`                      // Port for the REST API
	GinMode          string        `env:"GIN_MODE" envDefault:"release"`                    // Mode for the Gin framework (e.g., release, debug, test)
	JWTSecret        string        `env:"JWT_SECRET,required,notEmpty"`                     // Secret key for JWT signing
	JWTIssuer        string        `env:"JWT_ISSUER" envDefault:"mdmaze"`                   // Issuer claim for JWTs
	TokenTTL         time.Duration `env:"SESSION_TOKEN_TTL" envDefault:"24h"`               // Lifetime of a session token
	MazeExtents      []int         `env:"MAZE_EXTENTS" envSeparator:"," envDefault:"5,5,5"` // Extents used when a request names none
	MazeSeed         int64         `env:"MAZE_SEED" envDefault:"0"`                         // 0 seeds every maze randomly
	MergeProbability float64       `env:"MAZE_MERGE_PROBABILITY" envDefault:"0.5"`          // Chance a join step opens a wall
	MaxCells         int           `env:"MAZE_MAX_CELLS" envDefault:"100000"`               // Largest maze a request may ask for
}

// Envs holds the application's configuration loaded from environment variables.
// It is set by MustLoad.
var Envs Config

// Load reads a .env file if one exists and parses the environment into a Config.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// MustLoad loads the configuration into Envs or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}
	Envs = cfg
	return cfg
}

// Addr returns the REST listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.HostIP, c.RESTPort)
}
