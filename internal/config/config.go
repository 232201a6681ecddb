// Package config loads the riveting binary's settings: built-in defaults,
// then an optional YAML file, then RIVETING_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/aretw0/riveting/internal/logging"
	"github.com/caarlos0/env/v11"
	"github.com/mitchellh/mapstructure"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "RIVETING_"

// Catalog backends.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendLoam   = "loam"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is the complete binary configuration.
type Config struct {
	LogLevel string        `yaml:"log_level" mapstructure:"log_level" env:"LOG_LEVEL"`
	Language string        `yaml:"language" mapstructure:"language" env:"LANGUAGE"`
	Catalog  CatalogConfig `yaml:"catalog" mapstructure:"catalog" envPrefix:"CATALOG_"`
	HTTP     HTTPConfig    `yaml:"http" mapstructure:"http" envPrefix:"HTTP_"`
	MCP      MCPConfig     `yaml:"mcp" mapstructure:"mcp" envPrefix:"MCP_"`
}

// CatalogConfig selects and configures the search catalog.
type CatalogConfig struct {
	Backend string        `yaml:"backend" mapstructure:"backend" env:"BACKEND"`
	Delay   time.Duration `yaml:"delay" mapstructure:"delay" env:"DELAY"` // Simulated latency, memory backend only
	Redis   RedisConfig   `yaml:"redis" mapstructure:"redis" envPrefix:"REDIS_"`
	Loam    LoamConfig    `yaml:"loam" mapstructure:"loam" envPrefix:"LOAM_"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" mapstructure:"addr" env:"ADDR"`
	Password string `yaml:"password" mapstructure:"password" env:"PASSWORD"`
	DB       int    `yaml:"db" mapstructure:"db" env:"DB"`
	Key      string `yaml:"key" mapstructure:"key" env:"KEY"`
}

type LoamConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir" env:"DIR"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr" mapstructure:"addr" env:"ADDR"`
}

type MCPConfig struct {
	Settle time.Duration `yaml:"settle" mapstructure:"settle" env:"SETTLE"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Language: "en",
		Catalog: CatalogConfig{
			Backend: BackendMemory,
			Delay:   time.Second,
			Redis: RedisConfig{
				Addr: "localhost:6379",
				Key:  "riveting:catalog",
			},
			Loam: LoamConfig{Dir: "catalog"},
		},
		HTTP: HTTPConfig{Addr: ":8080"},
		MCP:  MCPConfig{Settle: 2 * time.Second},
	}
}

// Load layers the file at path (skipped when empty) and the environment
// over Default, then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           cfg,
	})
	if err != nil {
		return fmt.Errorf("failed to build config decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

// Validate checks every field that has a closed set of values.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := language.Parse(c.Language); err != nil {
		return fmt.Errorf("%w: language %q: %w", ErrInvalid, c.Language, err)
	}
	switch c.Catalog.Backend {
	case BackendMemory:
	case BackendRedis:
		if c.Catalog.Redis.Addr == "" {
			return fmt.Errorf("%w: redis backend needs catalog.redis.addr", ErrInvalid)
		}
	case BackendLoam:
		if c.Catalog.Loam.Dir == "" {
			return fmt.Errorf("%w: loam backend needs catalog.loam.dir", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown catalog backend %q", ErrInvalid, c.Catalog.Backend)
	}
	if c.Catalog.Delay < 0 {
		return fmt.Errorf("%w: negative catalog delay", ErrInvalid)
	}
	if c.MCP.Settle <= 0 {
		return fmt.Errorf("%w: mcp.settle must be positive", ErrInvalid)
	}
	return nil
}

// Tag returns the configured language.
func (c Config) Tag() language.Tag {
	tag, err := language.Parse(c.Language)
	if err != nil {
		return language.English
	}
	return tag
}
