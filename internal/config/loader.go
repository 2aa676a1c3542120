package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultPath = "./config.yaml"

// Load builds the configuration for the server and the bloglist command.
// CONFIG_PATH names a YAML file that must exist. Without it ./config.yaml is
// used when present, otherwise only the environment and defaults apply.
// Environment variables always win over YAML.
func Load() (*Config, error) {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return LoadFile(path)
	}

	cfg, err := LoadFile(defaultPath)
	if errors.Is(err, fs.ErrNotExist) {
		return LoadEnv()
	}
	return cfg, err
}

// LoadFile reads the YAML file at path, applies environment overrides and
// validates the result.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return validated(&cfg)
}

// LoadEnv builds the configuration from the environment and defaults.
func LoadEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return validated(&cfg)
}

// Describe lists every environment variable Load reads, with its type,
// default and meaning.
func Describe() (string, error) {
	header := "Environment variables (override config.yaml):"
	return cleanenv.GetDescription(&Config{}, &header)
}

func validated(cfg *Config) (*Config, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}
