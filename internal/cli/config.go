// Package cli holds configuration shared by the causeway CLI commands.
package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RedisConfig points the CLI at the list a redis destination writes to.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Key      string `yaml:"key"`
}

// Config is the optional YAML configuration file of the CLI.
type Config struct {
	// File is the default log file for `causeway tail`.
	File string `yaml:"file"`

	// Redis configures `causeway drain`.
	Redis RedisConfig `yaml:"redis"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Redis: RedisConfig{
			Addr: "localhost:6379",
			Key:  "causeway:messages",
		},
	}
}

// LoadConfig reads a YAML config file, layered over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
