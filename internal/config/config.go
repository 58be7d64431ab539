// Package config loads application configuration from a YAML file with
// environment-variable overrides.
package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces the override variables, e.g. CHATSCOPE_SERVER_PORT.
const envPrefix = "CHATSCOPE_"

type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Cache     CacheConfig     `koanf:"cache"`
	Storage   StorageConfig   `koanf:"storage"`
	Upload    UploadConfig    `koanf:"upload"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	Analysis  AnalysisConfig  `koanf:"analysis"`
	Log       LogConfig       `koanf:"log"`
}

type ServerConfig struct {
	Port string `koanf:"port"`
}

type CacheConfig struct {
	TTL time.Duration `koanf:"ttl"`
}

type StorageConfig struct {
	// DSN selects Postgres when set; empty means the in-memory store.
	DSN string `koanf:"dsn"`
}

type UploadConfig struct {
	MaxSizeBytes int64 `koanf:"max_size_bytes"`
}

type RateLimitConfig struct {
	MaxRequests int           `koanf:"max_requests"`
	Window      time.Duration `koanf:"window"`
}

type AnalysisConfig struct {
	// LexiconPath points to a YAML lexicon override; empty keeps the
	// built-in word and emoji sets.
	LexiconPath string `koanf:"lexicon_path"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server:    ServerConfig{Port: "3000"},
		Cache:     CacheConfig{TTL: 15 * time.Minute},
		Upload:    UploadConfig{MaxSizeBytes: 10 * 1024 * 1024},
		RateLimit: RateLimitConfig{MaxRequests: 30, Window: time.Minute},
		Log:       LogConfig{Level: "info"},
	}
}

// Load reads configuration from the given YAML file and applies environment
// overrides on top. A missing file is not an error; defaults still apply.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, err
			}
		}
	}

	// Double underscore separates nesting levels so that keys containing a
	// single underscore stay intact: CHATSCOPE_RATE_LIMIT__MAX_REQUESTS maps
	// to rate_limit.max_requests.
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
	}), nil); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
