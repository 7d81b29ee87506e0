// Package config loads the externally supplied settings of the data
// layer: base URL, timeout, mock flag, API key. Environment variables
// override an optional yaml file.
package config

import (
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix scopes the environment variables read by Load.
const envPrefix = "MAPADENGUE_"

type Config struct {
	API     APIConfig     `koanf:"api"`
	Session SessionConfig `koanf:"session"`
	MockAPI bool          `koanf:"mock_api"`
	Server  ServerConfig  `koanf:"server"`
}

type APIConfig struct {
	BaseURL string        `koanf:"base_url"`
	Timeout time.Duration `koanf:"timeout"`
	Key     string        `koanf:"key"`
}

type SessionConfig struct {
	// File is the optional sqlite session path; empty keeps the
	// session in memory.
	File string `koanf:"file"`
}

type ServerConfig struct {
	// Port of the local mock API server.
	Port int `koanf:"port"`
}

// Load reads the optional yaml file at path (skipped when empty), then
// layers environment variables on top.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".", -1)
	}), nil); err != nil {
		return nil, err
	}

	// Default values
	if !k.Exists("api.base_url") {
		k.Set("api.base_url", "http://localhost:8000")
	}
	if !k.Exists("api.timeout") {
		k.Set("api.timeout", "30s")
	}
	if !k.Exists("server.port") {
		k.Set("server.port", 8000)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}

	// Compound env names split on every underscore, so
	// MAPADENGUE_API_BASE_URL and MAPADENGUE_MOCK_API arrive under
	// dotted keys the struct tags never see. Pick them up explicitly.
	if v := k.String("api.base.url"); v != "" {
		cfg.API.BaseURL = v
	}
	if k.Exists("mock.api") {
		cfg.MockAPI = k.Bool("mock.api")
	}

	return &cfg, nil
}
