package game

import (
	"fmt"
	"strconv"

	"github.com/samdwyer/delvegrid/internal/level"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvSeed                = "DELVEGRID_SEED"
	EnvWidth               = "DELVEGRID_WIDTH"
	EnvHeight              = "DELVEGRID_HEIGHT"
	EnvMinOpenPercent      = "DELVEGRID_MIN_OPEN_PERCENT"
	EnvMaxAttempts         = "DELVEGRID_MAX_ATTEMPTS"
	EnvExtraHallwayChance  = "DELVEGRID_EXTRA_HALLWAY_CHANCE"
	EnvRequireConnectivity = "DELVEGRID_REQUIRE_CONNECTIVITY"
	EnvDump                = "DELVEGRID_DUMP"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible level generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64
	// Level tunes the generator.
	Level level.Options
	// Dump prints the generated level as text instead of opening the screen.
	Dump bool
}

// DefaultConfig returns a config with a random seed and stock level options.
func DefaultConfig() Config {
	return Config{Level: level.DefaultOptions()}
}

// ConfigFromEnv overlays any DELVEGRID_* variables onto DefaultConfig.
// getenv is usually os.Getenv.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	ints := []struct {
		key string
		dst *int
	}{
		{EnvWidth, &cfg.Level.Width},
		{EnvHeight, &cfg.Level.Height},
		{EnvMinOpenPercent, &cfg.Level.MinimumOpenPercent},
		{EnvMaxAttempts, &cfg.Level.MaxAttempts},
		{EnvExtraHallwayChance, &cfg.Level.ChanceOfExtraHallway},
	}
	for _, v := range ints {
		raw := getenv(v.key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", v.key, err)
		}
		*v.dst = n
	}

	if raw := getenv(EnvSeed); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{EnvRequireConnectivity, &cfg.Level.RequireConnectivity},
		{EnvDump, &cfg.Dump},
	}
	for _, v := range bools {
		raw := getenv(v.key)
		if raw == "" {
			continue
		}
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", v.key, err)
		}
		*v.dst = b
	}

	if err := cfg.Level.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
