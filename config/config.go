// Package config provides configuration loading and management for
// licensegraph.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete licensegraph configuration
type Config struct {
	NATS    NATSConfig    `yaml:"nats"`
	Catalog CatalogConfig `yaml:"catalog"`
	Graph   GraphConfig   `yaml:"graph"`
}

// NATSConfig configures the NATS connection
type NATSConfig struct {
	// URL is the NATS server URL (empty disables broker features)
	URL string `yaml:"url"`
	// Timeout is the maximum time to wait for the initial connection
	Timeout time.Duration `yaml:"timeout"`
}

// CatalogConfig configures the license catalog
type CatalogConfig struct {
	// Bucket is the KV bucket holding license records
	Bucket string `yaml:"bucket"`
}

// GraphConfig configures graph input and publishing
type GraphConfig struct {
	// Snapshot is the path to a JSON triple snapshot used when no broker
	// is configured
	Snapshot string `yaml:"snapshot"`
	// IngestSubject is the stream subject projected entities publish to
	IngestSubject string `yaml:"ingest_subject"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		NATS: NATSConfig{
			URL:     "",
			Timeout: 10 * time.Second,
		},
		Catalog: CatalogConfig{
			Bucket: "LICENSEGRAPH_LICENSES",
		},
		Graph: GraphConfig{
			Snapshot:      "",
			IngestSubject: "graph.ingest.license",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Catalog.Bucket == "" {
		return fmt.Errorf("catalog.bucket is required")
	}
	if c.Graph.IngestSubject == "" {
		return fmt.Errorf("graph.ingest_subject is required")
	}
	if c.NATS.Timeout < 0 {
		return fmt.Errorf("nats.timeout must not be negative")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.NATS.URL != "" {
		c.NATS.URL = other.NATS.URL
	}
	if other.NATS.Timeout != 0 {
		c.NATS.Timeout = other.NATS.Timeout
	}
	if other.Catalog.Bucket != "" {
		c.Catalog.Bucket = other.Catalog.Bucket
	}
	if other.Graph.Snapshot != "" {
		c.Graph.Snapshot = other.Graph.Snapshot
	}
	if other.Graph.IngestSubject != "" {
		c.Graph.IngestSubject = other.Graph.IngestSubject
	}
}
