package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppConfig is read from a YAML file under the user's home directory.
// All fields are optional; defaults are applied by the accessor methods.
//
// Example (~/.friday/config.yaml):
//
// server:
//   host: 127.0.0.1
//   port: 8090
// storage:
//   path: ~/.friday/friday.db
// chat:
//   typing_delay_ms: 2000
//
// Notes:
// - If the config file does not exist, Load returns defaults without error.
// - If the config file exists but cannot be parsed, Load returns an error.
// - Port must be between 1 and 65535.
//
// All code and comments must be in English.

type AppConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Chat    ChatConfig    `yaml:"chat"`
}

type ServerConfig struct {
	Host *string `yaml:"host"`
	Port *int    `yaml:"port"`
}

type StorageConfig struct {
	// Path is the SQLite database file. An empty path keeps
	// conversations in memory only.
	Path *string `yaml:"path"`
}

type ChatConfig struct {
	TypingDelayMs *int `yaml:"typing_delay_ms"`
}

const (
	DefaultHost          = "127.0.0.1"
	DefaultPort          = 8090
	DefaultTypingDelayMs = 2000
)

// DefaultPaths returns the config dir and config file path.
func DefaultPaths() (configDir string, configFile string, err error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", "", fmt.Errorf("get user home dir: %w", err)
	}
	configDir = filepath.Join(home, ".friday")
	configFile = filepath.Join(configDir, "config.yaml")
	return configDir, configFile, nil
}

// DefaultStoragePath returns the SQLite file used when storage.path is unset.
func DefaultStoragePath() (string, error) {
	configDir, _, err := DefaultPaths()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "friday.db"), nil
}

// Load reads ~/.friday/config.yaml.
// If the file doesn't exist, it returns a default config and nil error.
func Load() (*AppConfig, string, error) {
	_, configFile, err := DefaultPaths()
	if err != nil {
		return nil, "", err
	}

	cfg := &AppConfig{}

	b, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, configFile, nil
		}
		return nil, "", fmt.Errorf("read config file %s: %w", configFile, err)
	}

	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, "", fmt.Errorf("parse yaml config %s: %w", configFile, err)
	}

	// Validate
	host := cfg.Host()
	if strings.TrimSpace(host) == "" {
		return nil, "", fmt.Errorf("invalid server.host (empty) in %s", configFile)
	}

	port := cfg.Port()
	if port < 1 || port > 65535 {
		return nil, "", fmt.Errorf("invalid server.port %d in %s", port, configFile)
	}

	if delay := cfg.TypingDelayMs(); delay < 0 {
		return nil, "", fmt.Errorf("invalid chat.typing_delay_ms %d in %s", delay, configFile)
	}

	return cfg, configFile, nil
}

// EnsureDefaultConfig writes a default config file if it doesn't already exist.
// It is safe to call on startup.
func EnsureDefaultConfig() (string, error) {
	configDir, configFile, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(configFile); err == nil {
		return configFile, nil
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("create config dir %s: %w", configDir, err)
	}

	storagePath := filepath.Join(configDir, "friday.db")
	defaultCfg := AppConfig{
		Server:  ServerConfig{Host: ptr(DefaultHost), Port: ptr(DefaultPort)},
		Storage: StorageConfig{Path: ptr(storagePath)},
		Chat:    ChatConfig{TypingDelayMs: ptr(DefaultTypingDelayMs)},
	}
	b, err := yaml.Marshal(&defaultCfg)
	if err != nil {
		return "", fmt.Errorf("marshal default config: %w", err)
	}

	// Write with restrictive permissions.
	if err := os.WriteFile(configFile, b, 0o600); err != nil {
		return "", fmt.Errorf("write default config file %s: %w", configFile, err)
	}

	return configFile, nil
}

func (c *AppConfig) Host() string {
	if c == nil {
		return DefaultHost
	}
	if c.Server.Host == nil {
		return DefaultHost
	}
	v := strings.TrimSpace(*c.Server.Host)
	if v == "" {
		return DefaultHost
	}
	return v
}

func (c *AppConfig) Port() int {
	if c == nil {
		return DefaultPort
	}
	if c.Server.Port == nil {
		return DefaultPort
	}
	return *c.Server.Port
}

// StoragePath returns the configured SQLite file, or the default path when
// unset. An explicitly empty value selects in-memory storage.
func (c *AppConfig) StoragePath() (string, error) {
	if c == nil || c.Storage.Path == nil {
		return DefaultStoragePath()
	}
	return strings.TrimSpace(*c.Storage.Path), nil
}

func (c *AppConfig) TypingDelayMs() int {
	if c == nil {
		return DefaultTypingDelayMs
	}
	if c.Chat.TypingDelayMs == nil {
		return DefaultTypingDelayMs
	}
	return *c.Chat.TypingDelayMs
}

func ptr[T any](v T) *T { return &v }
