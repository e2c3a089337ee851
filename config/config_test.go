package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, 5, cfg.Codec.Quality)
	require.Equal(t, 22, cfg.Codec.WindowBits)
	require.Equal(t, 32*1024, cfg.Codec.ChunkSize)
	require.Equal(t, ":8080", cfg.HTTP.Address)
	require.Equal(t, 1024, cfg.HTTP.MinSize)
	require.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	require.NoError(t, validateConfig(cfg))
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
codec:
  quality: 9
  window_bits: 18
http:
  address: ":9090"
  min_size: 256
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, 9, cfg.Codec.Quality)
	require.Equal(t, 18, cfg.Codec.WindowBits)
	require.Equal(t, ":9090", cfg.HTTP.Address)
	require.Equal(t, 256, cfg.HTTP.MinSize)

	// Fields absent from the file keep their defaults.
	require.Equal(t, 32*1024, cfg.Codec.ChunkSize)
	require.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading config file")
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	path := writeConfigFile(t, "codec: [not a mapping")

	_, err := LoadConfig(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parsing config file")
}

func TestValidateConfig(t *testing.T) {
	for _, tc := range []struct {
		name   string
		mutate func(*Config)
	}{
		{"quality too high", func(c *Config) { c.Codec.Quality = 12 }},
		{"quality negative", func(c *Config) { c.Codec.Quality = -1 }},
		{"window bits too low", func(c *Config) { c.Codec.WindowBits = 9 }},
		{"window bits too high", func(c *Config) { c.Codec.WindowBits = 25 }},
		{"chunk size too small", func(c *Config) { c.Codec.ChunkSize = 512 }},
		{"missing address", func(c *Config) { c.HTTP.Address = "" }},
		{"negative min size", func(c *Config) { c.HTTP.MinSize = -1 }},
		{"shutdown timeout too short", func(c *Config) { c.HTTP.ShutdownTimeout = 100 * time.Millisecond }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			require.Error(t, validateConfig(cfg))
		})
	}

	zeroWindow := DefaultConfig()
	zeroWindow.Codec.WindowBits = 0
	require.NoError(t, validateConfig(zeroWindow))
}
