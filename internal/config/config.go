// Package config handles the XDG configuration directory and file paths.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "ltask"

	// StoreFile is the task store filename.
	StoreFile = "tasks.json"

	// ConfigFile is the optional YAML settings filename.
	ConfigFile = "config.yaml"

	// OAuthClientFile is the OAuth client credentials filename.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored OAuth token filename.
	TokenFile = "token.json"
)

// FileConfig is the optional on-disk settings file (config.yaml).
type FileConfig struct {
	// Store overrides the task store path.
	Store string `yaml:"store"`

	// Quiet is the default for the --quiet flag.
	Quiet bool `yaml:"quiet"`

	// LogLevel sets the default log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// File holds settings loaded from config.yaml, if present.
	File FileConfig

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a new Config with the default or specified config directory,
// loading config.yaml from it when the file exists.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{Dir: dir}

	fc, err := loadFileConfig(filepath.Join(dir, ConfigFile))
	if err != nil {
		return nil, err
	}
	cfg.File = fc
	cfg.Quiet = fc.Quiet
	return cfg, nil
}

// loadFileConfig reads the optional YAML settings file.
// A missing file yields zero-value settings.
func loadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fc, nil
		}
		return fc, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("invalid %s: %w", path, err)
	}
	return fc, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// StorePath returns the task store path.
// Precedence: LTASK_STORE env var, config.yaml store key, config dir default.
func (c *Config) StorePath() string {
	if env := os.Getenv("LTASK_STORE"); env != "" {
		return env
	}
	if c.File.Store != "" {
		return c.File.Store
	}
	return filepath.Join(c.Dir, StoreFile)
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasOAuthClient checks if the OAuth client credentials file exists.
func (c *Config) HasOAuthClient() bool {
	_, err := os.Stat(c.OAuthClientPath())
	return err == nil
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// RemoveToken deletes the token file.
func (c *Config) RemoveToken() error {
	return os.Remove(c.TokenPath())
}
