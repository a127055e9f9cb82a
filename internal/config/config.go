package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds every tunable the game exposes. All values can be
// overridden with environment variables; the defaults below are the
// shipped game settings.
type Config struct {
	// Grid layout.
	Rows int `env:"FLOOR_ROWS" envDefault:"3"`
	Cols int `env:"FLOOR_COLS" envDefault:"3"`

	// Randomizer animation: total sweep duration and the bounds the
	// switch interval eases between.
	RandomizerTotalMs       int64 `env:"FLOOR_RANDOMIZER_TOTAL_MS" envDefault:"7000"`
	RandomizerMinIntervalMs int64 `env:"FLOOR_RANDOMIZER_MIN_INTERVAL_MS" envDefault:"200"`
	RandomizerMaxIntervalMs int64 `env:"FLOOR_RANDOMIZER_MAX_INTERVAL_MS" envDefault:"700"`

	// Duel timing: per-player clock, answer reveal window, pass penalty.
	DuelInitialMs     int64 `env:"FLOOR_DUEL_INITIAL_MS" envDefault:"40000"`
	DuelRevealMs      int64 `env:"FLOOR_DUEL_REVEAL_MS" envDefault:"3000"`
	DuelPassPenaltyMs int64 `env:"FLOOR_DUEL_PASS_PENALTY_MS" envDefault:"3000"`

	// Content locations.
	TilesCSVPath  string `env:"FLOOR_TILES_CSV" envDefault:"floor_tiles.csv"`
	ImagesBaseDir string `env:"FLOOR_IMAGES_DIR" envDefault:"images"`

	// Local spectate HTTP server. Token may be empty to disable auth.
	SpectatePort  int    `env:"FLOOR_SPECTATE_PORT" envDefault:"17889"`
	SpectateToken string `env:"FLOOR_SPECTATE_TOKEN"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	if c.Rows < 1 || c.Cols < 1 {
		return fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Rows, c.Cols)
	}
	if c.RandomizerTotalMs <= 0 {
		return fmt.Errorf("randomizer duration must be positive, got %d", c.RandomizerTotalMs)
	}
	if c.RandomizerMinIntervalMs <= 0 || c.RandomizerMaxIntervalMs < c.RandomizerMinIntervalMs {
		return fmt.Errorf("randomizer intervals invalid: min=%d max=%d",
			c.RandomizerMinIntervalMs, c.RandomizerMaxIntervalMs)
	}
	if c.DuelInitialMs <= 0 {
		return fmt.Errorf("duel clock must be positive, got %d", c.DuelInitialMs)
	}
	return nil
}
