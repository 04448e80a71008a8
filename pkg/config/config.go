// Package config loads engine configuration from config.yaml with
// environment variable overrides.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for the admin engine. Environment
// variables always override YAML values; secrets (the AI API key) come
// from environment variables only.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"PORT" env-default:"8080"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// Store configuration
	Store StoreConfig `yaml:"store"`

	// AI drafting configuration
	AI AIConfig `yaml:"ai"`
}

// StoreConfig selects and locates the key-value store backend.
type StoreConfig struct {
	// Backend is one of badger, sqlite, memory.
	Backend string `yaml:"backend" env:"STORE_BACKEND" env-default:"badger"`
	// Path is the badger directory or the sqlite file. Ignored by the
	// memory backend.
	Path string `yaml:"path" env:"STORE_PATH" env-default:"./data/admin.db"`
	// SeedFile optionally replaces the embedded default collections.
	SeedFile string `yaml:"seed_file" env:"STORE_SEED_FILE" env-default:""`
}

// AIConfig holds the completion endpoint used for announcement drafting.
type AIConfig struct {
	Provider    string  `yaml:"provider" env:"AI_PROVIDER" env-default:"openai"`
	Endpoint    string  `yaml:"endpoint" env:"AI_ENDPOINT" env-default:"https://api.openai.com/v1"`
	Model       string  `yaml:"model" env:"AI_MODEL" env-default:""`
	APIKey      string  `yaml:"-" env:"AI_API_KEY"` // Secret - not in YAML
	Temperature float64 `yaml:"temperature" env:"AI_TEMPERATURE" env-default:"0.7"`
}

// IsConfigured returns true if a drafting provider is usable.
func (c *AIConfig) IsConfigured() bool {
	return c.Model != ""
}

// Load reads configuration from config.yaml with environment variable
// overrides. A missing config.yaml is not an error; the environment and
// defaults then stand alone. The version parameter is injected at build
// time and set on the returned Config.
func Load(version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if _, err := os.Stat("config.yaml"); err == nil {
		if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
			return nil, fmt.Errorf("failed to read config.yaml: %w", err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Backend {
	case "badger", "sqlite", "memory":
	default:
		return fmt.Errorf("invalid store backend %q", c.Store.Backend)
	}
	switch c.AI.Provider {
	case "openai", "anthropic":
	default:
		return fmt.Errorf("invalid ai provider %q", c.AI.Provider)
	}
	return nil
}
