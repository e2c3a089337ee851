package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Codec CodecConfig `yaml:"codec"`
	HTTP  HTTPConfig  `yaml:"http"`
}

// Holds codec-specific configuration.
type CodecConfig struct {
	Quality    int `yaml:"quality"`     // Brotli quality (0-11)
	WindowBits int `yaml:"window_bits"` // Sliding window exponent (10-24, 0 = default)
	ChunkSize  int `yaml:"chunk_size"`  // Per-call input/output window in bytes
}

// Holds configuration for the demo encoding server.
type HTTPConfig struct {
	Address         string        `yaml:"address"`          // Listen address
	MinSize         int           `yaml:"min_size"`         // Minimum response size before encoding, in bytes
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"` // Grace period on shutdown
}

// Returns a Config struct with reasonable default values.
func DefaultConfig() *Config {
	return &Config{
		Codec: CodecConfig{
			Quality:    5,
			WindowBits: 22,
			ChunkSize:  32 * 1024, // 32KB
		},
		HTTP: HTTPConfig{
			Address:         ":8080",
			MinSize:         1024,
			ShutdownTimeout: 10 * time.Second,
		},
	}
}

// Loads configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Codec.Quality < 0 || config.Codec.Quality > 11 {
		return fmt.Errorf("codec quality must be between 0 and 11, got %d", config.Codec.Quality)
	}

	if config.Codec.WindowBits != 0 && (config.Codec.WindowBits < 10 || config.Codec.WindowBits > 24) {
		return fmt.Errorf("codec window_bits must be 0 or between 10 and 24, got %d", config.Codec.WindowBits)
	}

	if config.Codec.ChunkSize < 1024 {
		return fmt.Errorf("codec chunk_size must be at least 1024 bytes, got %d", config.Codec.ChunkSize)
	}

	if config.HTTP.Address == "" {
		return fmt.Errorf("http address is required")
	}

	if config.HTTP.MinSize < 0 {
		return fmt.Errorf("http min_size must not be negative, got %d", config.HTTP.MinSize)
	}

	if config.HTTP.ShutdownTimeout < time.Second {
		return fmt.Errorf("http shutdown_timeout must be at least 1s, got %s", config.HTTP.ShutdownTimeout)
	}

	return nil
}
