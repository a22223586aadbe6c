package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"tricktaker/internal/util"
)

// Config provides configuration for tricktaker
type Config struct {
	loaded bool
	Log    struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	} `yaml:"log"`
	// Seed seeds the shuffle, zero shuffles with crypto/rand
	Seed int64 `yaml:"seed" envconfig:"seed"`
	// ScheduleFile is a YAML schedule of rounds, empty plays the default schedule
	ScheduleFile string   `yaml:"scheduleFile" envconfig:"schedule_file"`
	MaxPlayers   int      `yaml:"maxPlayers" envconfig:"max_players"`
	Players      []string `yaml:"players" envconfig:"players"`
}

var config Config

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() Config {
	cfg := Config{
		MaxPlayers: 4,
	}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error, the defaults are used instead
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("TT_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("could not open config file: %w", err)
	}

	if file != nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return fmt.Errorf("could not parse %s: %w", configFile, err)
		}
	}

	if err := envconfig.Process("tt", &cfg); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// Validate checks the values that cannot be checked by their type
func (c Config) Validate() error {
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log format must be text or json, got %q", c.Log.Format)
	}

	if c.MaxPlayers < 2 {
		return fmt.Errorf("max players must be at least 2, got %d", c.MaxPlayers)
	}

	return nil
}
