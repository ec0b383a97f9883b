package layout

import (
	"fmt"
	"os"
	"strconv"

	"github.com/samdwyer/roomweave/internal/world"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvGridSize    = "ROOMWEAVE_GRID_SIZE"
	EnvRoomsAmount = "ROOMWEAVE_ROOMS"
	EnvRoomMinSize = "ROOMWEAVE_ROOM_MIN"
	EnvRoomMaxSize = "ROOMWEAVE_ROOM_MAX"
	EnvSeed        = "ROOMWEAVE_SEED"
)

// Config holds layout generation options.
type Config struct {
	GridSize    int // Side length of the square grid
	RoomsAmount int // Number of room placement attempts
	RoomMinSize int // Smallest room side, inclusive
	RoomMaxSize int // Largest room side, inclusive

	// Seed for random number generation. Used for reproducible layouts.
	// A seed of 0 means a random seed will be generated.
	Seed int64
}

// DefaultConfig returns the default generation options.
func DefaultConfig() Config {
	return Config{
		GridSize:    50,
		RoomsAmount: 20,
		RoomMinSize: 4,
		RoomMaxSize: 8,
	}
}

// Validate checks the options without generating anything.
func (c Config) Validate() error {
	grid, err := world.NewGrid(c.GridSize)
	if err != nil {
		return err
	}
	return c.placer().Validate(grid)
}

func (c Config) placer() world.PlacerConfig {
	return world.PlacerConfig{
		RoomsAmount: c.RoomsAmount,
		RoomMinSize: c.RoomMinSize,
		RoomMaxSize: c.RoomMaxSize,
	}
}

// ConfigFromEnv overrides fields of base with any ROOMWEAVE_* variables
// that are set. Load a .env file with godotenv before calling this to pick
// up local settings.
func ConfigFromEnv(base Config) (Config, error) {
	cfg := base
	ints := []struct {
		key string
		dst *int
	}{
		{EnvGridSize, &cfg.GridSize},
		{EnvRoomsAmount, &cfg.RoomsAmount},
		{EnvRoomMinSize, &cfg.RoomMinSize},
		{EnvRoomMaxSize, &cfg.RoomMaxSize},
	}
	for _, v := range ints {
		raw, ok := os.LookupEnv(v.key)
		if !ok || raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return base, fmt.Errorf("parse %s: %w", v.key, err)
		}
		*v.dst = n
	}

	if raw, ok := os.LookupEnv(EnvSeed); ok && raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return base, fmt.Errorf("parse %s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}
	return cfg, nil
}
