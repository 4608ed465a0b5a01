package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "0.0.0.0", cfg.HostIP)
		assert.Equal(t, 8080, cfg.RESTPort)
		assert.Equal(t, "release", cfg.GinMode)
		assert.Equal(t, "mdmaze", cfg.JWTIssuer)
		assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
		assert.Equal(t, []int{5, 5, 5}, cfg.MazeExtents)
		assert.Equal(t, int64(0), cfg.MazeSeed)
		assert.Equal(t, 0.5, cfg.MergeProbability)
		assert.Equal(t, 100000, cfg.MaxCells)
		assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("REST_PORT", "9000")
		t.Setenv("MAZE_EXTENTS", "2,3,4,5")
		t.Setenv("MAZE_SEED", "42")
		t.Setenv("MAZE_MERGE_PROBABILITY", "0.25")
		t.Setenv("SESSION_TOKEN_TTL", "90m")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 9000, cfg.RESTPort)
		assert.Equal(t, []int{2, 3, 4, 5}, cfg.MazeExtents)
		assert.Equal(t, int64(42), cfg.MazeSeed)
		assert.Equal(t, 0.25, cfg.MergeProbability)
		assert.Equal(t, 90*time.Minute, cfg.TokenTTL)
	})

	t.Run("Missing secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("Bad number", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("REST_PORT", "eighty")

		_, err := Load()
		assert.Error(t, err)
	})
}
