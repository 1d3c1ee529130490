// Package config resolves application settings from defaults, an optional
// YAML file and environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"workout-logger/internal/logger"
	"workout-logger/internal/storage"
)

const (
	AppName    = "Workout Logger"
	AppID      = "com.workoutlogger.app"
	AppVersion = "1.0.0"
)

// Config holds everything main needs to build the application.
type Config struct {
	LogLevel     string  `yaml:"log_level"`
	JSONLogs     bool    `yaml:"json_logs"`
	Store        string  `yaml:"store"`
	DataDir      string  `yaml:"data_dir"`
	StorageKey   string  `yaml:"storage_key"`
	WindowWidth  float32 `yaml:"window_width"`
	WindowHeight float32 `yaml:"window_height"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		LogLevel:     "info",
		Store:        storage.BackendPreferences,
		DataDir:      defaultDataDir(),
		StorageKey:   "workouts",
		WindowWidth:  480,
		WindowHeight: 640,
	}
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "workout-logger")
	}
	return "data"
}

// Load applies the YAML file named by WORKOUT_CONFIG (if any) and then the
// environment on top of the defaults.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	cfg := Default()

	if path := getenv("WORKOUT_CONFIG"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}

	cfg.mergeEnv(getenv)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv(getenv func(string) string) {
	if v := getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	} else if getenv("DEBUG") == "1" {
		c.LogLevel = "debug"
	}
	if v := getenv("WORKOUT_JSON_LOGS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.JSONLogs = b
		}
	}
	if v := getenv("WORKOUT_STORE"); v != "" {
		c.Store = strings.ToLower(v)
	}
	if v := getenv("WORKOUT_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := getenv("WORKOUT_STORAGE_KEY"); v != "" {
		c.StorageKey = v
	}
}

// Validate rejects settings the application cannot start with.
func (c Config) Validate() error {
	switch c.Store {
	case storage.BackendPreferences, storage.BackendFile, storage.BackendMemory:
	default:
		return fmt.Errorf("%w: %q", storage.ErrUnknownBackend, c.Store)
	}
	if strings.TrimSpace(c.StorageKey) == "" {
		return errors.New("storage key must not be empty")
	}
	if c.Store == storage.BackendFile && strings.TrimSpace(c.DataDir) == "" {
		return errors.New("file store needs a data directory")
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return errors.New("window size must be positive")
	}
	return nil
}

// Level returns the parsed log level.
func (c Config) Level() logger.LogLevel {
	return logger.ParseLevel(c.LogLevel)
}
