// Package config reads runtime configuration from the environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the knobs for the embedding application. Snapshot TTL
// defaults to four weeks, matching how long an interrupted draft stays
// resumable.
type Config struct {
	RedisURL    string        `env:"REDIS_URL"`
	SnapshotDir string        `env:"SNAPSHOT_DIR" envDefault:"drafts"`
	SnapshotTTL time.Duration `env:"SNAPSHOT_TTL" envDefault:"672h"`
	CubeAPIBase string        `env:"CUBE_API_BASE" envDefault:"https://cubecobra.com"`
}

// Load parses the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
