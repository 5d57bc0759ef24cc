package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "LICENSEGRAPH_LICENSES", cfg.Catalog.Bucket)
	assert.Equal(t, "graph.ingest.license", cfg.Graph.IngestSubject)
	assert.Equal(t, 10*time.Second, cfg.NATS.Timeout)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"missing bucket", func(c *Config) { c.Catalog.Bucket = "" }, "catalog.bucket"},
		{"missing ingest subject", func(c *Config) { c.Graph.IngestSubject = "" }, "graph.ingest_subject"},
		{"negative timeout", func(c *Config) { c.NATS.Timeout = -time.Second }, "nats.timeout"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "licensegraph.yaml")
	content := `
nats:
  url: nats://localhost:4222
graph:
  snapshot: ./triples.json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
	assert.Equal(t, "./triples.json", cfg.Graph.Snapshot)
	// Unset fields keep defaults.
	assert.Equal(t, "LICENSEGRAPH_LICENSES", cfg.Catalog.Bucket)
}

func TestMerge(t *testing.T) {
	base := DefaultConfig()
	other := &Config{}
	other.NATS.URL = "nats://other:4222"
	other.Graph.Snapshot = "other.json"

	base.Merge(other)

	assert.Equal(t, "nats://other:4222", base.NATS.URL)
	assert.Equal(t, "other.json", base.Graph.Snapshot)
	assert.Equal(t, "LICENSEGRAPH_LICENSES", base.Catalog.Bucket, "zero values must not override")

	base.Merge(nil) // must not panic
}

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.NATS.URL = "nats://localhost:4222"

	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.NATS.URL, loaded.NATS.URL)
}
