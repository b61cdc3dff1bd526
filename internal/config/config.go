// Package config loads application settings from an optional YAML file,
// layered under environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/vidya/internal/store"
)

// Config holds the application settings.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
	LLM struct {
		Provider string `yaml:"provider"`
	} `yaml:"llm"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	var cfg Config
	cfg.Server.Addr = ":8000"
	if p, err := store.DefaultDBPath(); err == nil {
		cfg.Database.Path = p
	}
	return cfg
}

// DefaultPath returns the config file location: VIDYA_CONFIG if set,
// otherwise vidya/config.yaml under the XDG config directory.
func DefaultPath() string {
	if p := os.Getenv("VIDYA_CONFIG"); p != "" {
		return p
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "vidya", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "vidya", "config.yaml")
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if addr := os.Getenv("VIDYA_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}
	if db := os.Getenv("VIDYA_DB"); db != "" {
		cfg.Database.Path = db
	}
	if p := os.Getenv("VIDYA_LLM_PROVIDER"); p != "" {
		cfg.LLM.Provider = p
	}
	return cfg, nil
}
