package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// Config represents the application configuration
type Config struct {
	Coach   CoachConfig   `json:"coach"`
	Profile ProfileConfig `json:"profile"`
	Log     LogConfig     `json:"log"`
}

// CoachConfig holds the tip service connection settings
type CoachConfig struct {
	APIKey         string `json:"api_key"`
	Model          string `json:"model"`
	BaseURL        string `json:"base_url"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

// Timeout returns the request timeout, or 0 for none
func (c CoachConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ProfileConfig holds profile defaults applied at onboarding
type ProfileConfig struct {
	DefaultHeightCm float64 `json:"default_height_cm"`
}

// LogConfig holds log file settings. An empty File means
// ~/.fitflow/fitflow.log.
type LogConfig struct {
	File       string `json:"file"`
	Level      string `json:"level"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

const examplePlaceholderKey = "YOUR_API_KEY"

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Coach: CoachConfig{
			Model:          "gemini-2.5-flash",
			BaseURL:        "https://generativelanguage.googleapis.com/v1beta/openai",
			TimeoutSeconds: 30,
		},
		Profile: ProfileConfig{
			DefaultHeightCm: 175,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// Load reads the configuration from ~/.fitflow/config.json and applies
// environment overrides. When the file doesn't exist it returns the
// defaults (with overrides) together with ErrNoConfig.
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg := DefaultConfig()
		applyEnvOverrides(&cfg)
		return &cfg, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()
	if cfg.Coach.Model == "" {
		cfg.Coach.Model = defaults.Coach.Model
	}
	if cfg.Coach.BaseURL == "" {
		cfg.Coach.BaseURL = defaults.Coach.BaseURL
	}
	if cfg.Coach.TimeoutSeconds == 0 {
		cfg.Coach.TimeoutSeconds = defaults.Coach.TimeoutSeconds
	}
	if cfg.Coach.APIKey == examplePlaceholderKey {
		cfg.Coach.APIKey = ""
	}
	if cfg.Profile.DefaultHeightCm == 0 {
		cfg.Profile.DefaultHeightCm = defaults.Profile.DefaultHeightCm
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
	if cfg.Log.MaxSizeMB == 0 {
		cfg.Log.MaxSizeMB = defaults.Log.MaxSizeMB
	}
	if cfg.Log.MaxBackups == 0 {
		cfg.Log.MaxBackups = defaults.Log.MaxBackups
	}

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

// applyEnvOverrides lets the environment win over the file. API_KEY is
// read for compatibility with hosted builds; FITFLOW_API_KEY takes
// precedence.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("API_KEY"); v != "" {
		cfg.Coach.APIKey = v
	}
	if v := os.Getenv("FITFLOW_API_KEY"); v != "" {
		cfg.Coach.APIKey = v
	}
	if v := os.Getenv("FITFLOW_COACH_MODEL"); v != "" {
		cfg.Coach.Model = v
	}
	if v := os.Getenv("FITFLOW_COACH_BASE_URL"); v != "" {
		cfg.Coach.BaseURL = v
	}
	if v := os.Getenv("FITFLOW_COACH_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			cfg.Coach.TimeoutSeconds = secs
		}
	}
	if v := os.Getenv("FITFLOW_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

// Save writes the configuration to ~/.fitflow/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	// 0600: the file may hold an API key
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates an example config file if none exists
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := DefaultConfig()
	example.Coach.APIKey = examplePlaceholderKey

	return Save(&example)
}

// Validate checks the config for values the app can't work with. A
// missing API key is allowed: the coach screen explains how to set one.
func (c *Config) Validate() error {
	if c.Profile.DefaultHeightCm <= 0 || c.Profile.DefaultHeightCm > 300 {
		return fmt.Errorf("profile.default_height_cm must be in (0, 300], got %v", c.Profile.DefaultHeightCm)
	}
	if c.Coach.TimeoutSeconds < 0 {
		return fmt.Errorf("coach.timeout_seconds must not be negative, got %d", c.Coach.TimeoutSeconds)
	}
	if c.Log.Level != "" {
		if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("log.level: %w", err)
		}
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 {
		return errors.New("log.max_size_mb and log.max_backups must not be negative")
	}

	return nil
}

// LogPath returns the log file location, defaulting into the config dir
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "fitflow.log"), nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".fitflow"), nil
}
