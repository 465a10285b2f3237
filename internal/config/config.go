// Package config loads the server configuration from a YAML file with
// environment-variable fallbacks.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Storage backend names accepted in configuration.
const (
	StorageFlatfile = "flatfile"
	StorageRedis    = "redis"
	StorageMemory   = "memory"
)

// Config is the root configuration for the server binary.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// StaticDir is served under /static/ by the web layer.
	StaticDir string `yaml:"static_dir"`
}

// StorageConfig selects and parameterizes the storage backend.
type StorageConfig struct {
	// Type is one of flatfile, redis or memory.
	Type string `yaml:"type"`
	// DataDir holds the flatfile resources (CSV files).
	DataDir string `yaml:"data_dir"`
	// UploadsDir holds uploaded entity artwork.
	UploadsDir string `yaml:"uploads_dir"`
	// RedisURL is required when Type is redis.
	RedisURL string `yaml:"redis_url"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:      "",
			Port:      8080,
			StaticDir: "internal/web/static",
		},
		Storage: StorageConfig{
			Type:       StorageFlatfile,
			DataDir:    "data",
			UploadsDir: "internal/web/static/uploads",
			RedisURL:   "redis://localhost:6379",
		},
	}
}

// Load reads the YAML configuration file, falling back to the
// GAMEVAULT_CONFIG environment variable when path is empty and to
// defaults when neither is set. Environment variables override file
// values: GAMEVAULT_PORT, GAMEVAULT_STATIC_DIR, GAMEVAULT_STORAGE,
// GAMEVAULT_DATA_DIR, GAMEVAULT_REDIS_URL.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("GAMEVAULT_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("GAMEVAULT_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("GAMEVAULT_STATIC_DIR"); v != "" {
		cfg.Server.StaticDir = v
	}
	if v := os.Getenv("GAMEVAULT_STORAGE"); v != "" {
		cfg.Storage.Type = v
	}
	if v := os.Getenv("GAMEVAULT_DATA_DIR"); v != "" {
		cfg.Storage.DataDir = v
	}
	if v := os.Getenv("GAMEVAULT_REDIS_URL"); v != "" {
		cfg.Storage.RedisURL = v
	}
}

func (c Config) validate() error {
	switch c.Storage.Type {
	case StorageFlatfile, StorageRedis, StorageMemory:
	default:
		return fmt.Errorf("invalid storage type %q", c.Storage.Type)
	}
	if c.Storage.Type == StorageRedis && c.Storage.RedisURL == "" {
		return fmt.Errorf("redis_url required when storage type is redis")
	}
	return nil
}
