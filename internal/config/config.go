// Package config loads runtime configuration for the RentalConnect CLI.
//
// Sources & precedence: built-in defaults, then an optional YAML file
// (CONFIG_PATH env var or -config flag), then environment variables.
package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Database struct {
		Path string `yaml:"path" env:"RENTALCONNECT_DB_PATH" env-default:"rentalconnect.db"`
	} `yaml:"database"`

	Log struct {
		Level string `yaml:"level" env:"RENTALCONNECT_LOG_LEVEL" env-default:"info"`
	} `yaml:"log"`
}

// Load builds the Config. A config file is optional; without one, defaults
// and environment variables apply.
func Load() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" && !flag.Parsed() {
		configFlag := flag.String("config", "", "path to configuration file")
		flag.Parse()
		path = *configFlag
	}

	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file does not exist: %s", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return &cfg, nil
}
