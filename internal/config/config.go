// Package config holds the application configuration for the gutensearch
// CLI: store location, texts directory, embedder endpoint, and search
// defaults.
package config

import (
	"fmt"
	"time"
)

// Config is the complete application configuration.
type Config struct {
	Storage  StorageConfig  `yaml:"storage"`
	Texts    TextsConfig    `yaml:"texts"`
	Embedder EmbedderConfig `yaml:"embedder"`
	Search   SearchConfig   `yaml:"search"`
}

// StorageConfig configures the SQLite store.
type StorageConfig struct {
	Path string `yaml:"path"` // store file location
}

// TextsConfig configures source-document discovery.
type TextsConfig struct {
	Dir string `yaml:"dir"` // directory scanned for .txt files
}

// EmbedderConfig configures the Ollama embedding endpoint. Ingestion and
// query must point at the same model or similarity scores are meaningless.
type EmbedderConfig struct {
	Endpoint string        `yaml:"endpoint"` // e.g. http://localhost:11434
	Model    string        `yaml:"model"`    // e.g. all-minilm
	Token    string        `yaml:"token"`    // bearer token, empty = no auth
	Timeout  time.Duration `yaml:"timeout"`  // per-request timeout
}

// SearchConfig configures query behavior.
type SearchConfig struct {
	TopK int `yaml:"top_k"` // default number of matches per query
}

// Default returns a configuration with sensible defaults, matching a local
// Ollama instance and the conventional texts/ layout.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{Path: "embeddings.db"},
		Texts:   TextsConfig{Dir: "texts"},
		Embedder: EmbedderConfig{
			Endpoint: "http://localhost:11434",
			Model:    "all-minilm",
			Timeout:  60 * time.Second,
		},
		Search: SearchConfig{TopK: 1},
	}
}

// Validate reports the first configuration problem found.
func (c *Config) Validate() error {
	if c.Storage.Path == "" {
		return fmt.Errorf("config: storage.path must not be empty")
	}
	if c.Embedder.Endpoint == "" {
		return fmt.Errorf("config: embedder.endpoint must not be empty")
	}
	if c.Embedder.Model == "" {
		return fmt.Errorf("config: embedder.model must not be empty")
	}
	if c.Embedder.Timeout < 0 {
		return fmt.Errorf("config: embedder.timeout must not be negative")
	}
	if c.Search.TopK < 1 {
		return fmt.Errorf("config: search.top_k must be at least 1")
	}
	return nil
}
