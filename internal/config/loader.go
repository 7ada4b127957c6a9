package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// defaultPath is used when CONFIG_PATH is not set.
const defaultPath = "./config.yaml"

// Load builds the configuration from a YAML file and the environment.
// Environment variables win over YAML values, which win over the
// env-default tags. The file path comes from CONFIG_PATH; when that
// variable is unset and the default file is missing, the environment
// alone is used. A missing file named explicitly is an error.
func Load() (*Config, error) {
	var cfg Config

	path, fromEnv := os.LookupEnv("CONFIG_PATH")
	if !fromEnv {
		path = defaultPath
	}

	switch _, err := os.Stat(path); {
	case err == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case fromEnv:
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}
