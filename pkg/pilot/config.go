package pilot

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/pilot/pkg/pilot/constants"
)

// Config is the on-disk form of Options.
//
//	log_path = "/var/log/app/pilot.log"
//	log_level = "debug"
type Config struct {
	LogPath  string `toml:"log_path"`
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{LogLevel: constants.DefaultLogLevel}
}

// LoadConfig reads a TOML config file. Missing keys keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("pilot: load config %s: %w", path, err)
	}
	return cfg, nil
}

// Options converts the config into initialization options.
func (c Config) Options() Options {
	return Options{
		LogPath:  c.LogPath,
		LogLevel: c.LogLevel,
	}
}
