package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type AuditConfig struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db_path"`
}

type Config struct {
	LogLevel  string      `yaml:"log_level"`
	LogFormat string      `yaml:"log_format"`
	Audit     AuditConfig `yaml:"audit"`
}

func dataDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".readbridge")
}

func Default() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "text",
		Audit: AuditConfig{
			Enabled: true,
			DBPath:  filepath.Join(dataDir(), "audit.db"),
		},
	}
}

// Load returns the defaults overlaid with ~/.readbridge/config.yaml when the
// file exists. A missing file is not an error; a malformed one is.
func Load() (*Config, error) {
	cfg := Default()

	path := filepath.Join(dataDir(), "config.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) EnsureDirectories() error {
	if !c.Audit.Enabled {
		return nil
	}
	return os.MkdirAll(filepath.Dir(c.Audit.DBPath), 0700)
}
