package config

import (
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Identity IdentityConfig `koanf:"identity"`
	Log      LogConfig      `koanf:"log"`
}

type ServerConfig struct {
	Port            string        `koanf:"port"`
	BodyLimit       string        `koanf:"body_limit"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// IdentityConfig holds the demo account metadata the API attaches to
// every classification response.
type IdentityConfig struct {
	UserID     string `koanf:"user_id"`
	Email      string `koanf:"email"`
	RollNumber string `koanf:"roll_number"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

// Load reads the YAML file at path if it exists, then applies
// TOKENSORT_-prefixed environment overrides (TOKENSORT_SERVER__PORT maps
// to server.port). Defaults make both layers optional.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	if err := k.Load(env.Provider("TOKENSORT_", ".", func(key string) string {
		key = strings.TrimPrefix(key, "TOKENSORT_")
		return strings.ReplaceAll(strings.ToLower(key), "__", ".")
	}), nil); err != nil {
		return nil, err
	}

	cfg := defaults()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            ":8080",
			BodyLimit:       "64K",
			ShutdownTimeout: 10 * time.Second,
		},
		Identity: IdentityConfig{
			UserID:     "demo_user_01011999",
			Email:      "demo@tokensort.dev",
			RollNumber: "DEMO001",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
