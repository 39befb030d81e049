package config

import (
	"errors"
	"io"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"pokerdemo/internal/util"
)

// Config provides configuration for the poker demo
type Config struct {
	loaded bool

	// Addr is the listen address of the HTTP server
	Addr string `yaml:"addr" envconfig:"addr"`

	// Players are the names seated in a new session; an empty name gets a random one
	Players   []string `yaml:"players" envconfig:"players"`
	HoleCards int      `yaml:"holeCards" envconfig:"hole_cards"`

	// Seed of the first hand of every new session; 0 shuffles randomly
	Seed int64 `yaml:"seed" envconfig:"seed"`

	Log struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
	} `yaml:"cors"`
}

var config Config

// DefaultConfig returns the configuration used when there is no config file
func DefaultConfig() Config {
	cfg := Config{
		Addr:      ":5000",
		Players:   []string{"", "", "", ""},
		HoleCards: 2,
	}

	cfg.Log.Level = "info"
	cfg.CORS.AllowedOrigins = []string{"*"}

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
// The file named by POKERDEMO_CONFIG_FILE (default config.yaml) is read over the defaults, then
// POKERDEMO_* environment variables are applied. A missing file is not an error.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("POKERDEMO_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if file != nil {
		defer file.Close()

		// an empty file has no overrides
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
	}

	if err := envconfig.Process("pokerdemo", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
