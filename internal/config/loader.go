package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load builds the effective configuration: defaults, overlaid by the YAML
// file at path (when non-empty; a missing explicit file is an error), then
// by environment variables. A .env file in the working directory is loaded
// first so the environment overrides work for local setups too.
func Load(path string) (*Config, error) {
	// Best effort; absence of a .env file is the normal case.
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("GUTENSEARCH_DB"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("GUTENSEARCH_TEXTS"); v != "" {
		cfg.Texts.Dir = v
	}
	if v := os.Getenv("OLLAMA_ENDPOINT"); v != "" {
		cfg.Embedder.Endpoint = v
	}
	if v := os.Getenv("OLLAMA_MODEL"); v != "" {
		cfg.Embedder.Model = v
	}
	if v := os.Getenv("OLLAMA_TOKEN"); v != "" {
		cfg.Embedder.Token = v
	}
}
