// Package config loads the tiler benchmark/demo's TOML configuration via
// github.com/BurntSushi/toml.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds the knobs the tilebench CLI exposes: fill-batch size, log
// rotation policy, and worker fan-out.
type Config struct {
	FillBatchCells uint64 `toml:"fill_batch_cells"`
	Workers        int    `toml:"workers"`

	Log LogConfig `toml:"log"`
}

// LogConfig holds the settings a rotating file logger needs.
type LogConfig struct {
	Logfile string `toml:"logfile"`
	MaxSize int    `toml:"max_log_size"`
	MaxAge  int    `toml:"max_log_age"`
}

// Default returns the configuration tilebench runs with if none is given.
func Default() Config {
	return Config{
		FillBatchCells: 1 << 20,
		Workers:        4,
	}
}

// Load parses a TOML configuration file at path.
func Load(path string) (Config, error) {
	var c Config
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return Config{}, fmt.Errorf("loading tiler config %q: %w", path, err)
	}
	return c, nil
}
