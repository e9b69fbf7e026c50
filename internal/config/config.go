package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Log struct {
		Level string `yaml:"level"` // zap level name: debug, info, warn, error
	} `yaml:"log"`
	Catalog struct {
		Extra []string `yaml:"extra"` // additional metre catalog files, merged after the bundled ones
	} `yaml:"catalog"`
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Log.Level = "warn"
	return cfg
}

func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := defaults()

	// 2. Load YAML config; a missing file just means defaults
	file, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if err == nil {
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, err
		}
	}

	// 3. Override with Environment Variables if present
	if level := os.Getenv("CHANDAS_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if extra := os.Getenv("CHANDAS_EXTRA_CATALOGS"); extra != "" {
		cfg.Catalog.Extra = nil
		for _, p := range strings.Split(extra, ":") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.Catalog.Extra = append(cfg.Catalog.Extra, p)
			}
		}
	}

	return cfg, nil
}
