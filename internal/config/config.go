package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/shlex"
	"gopkg.in/yaml.v3"

	"github.com/runger/ttycap/internal/stty"
)

// Config represents the ttycap configuration.
type Config struct {
	Backend  string       `yaml:"backend"`   // auto|native|hybrid|stty|none
	LogLevel string       `yaml:"log_level"` // debug, info, warn, error
	Helper   HelperConfig `yaml:"helper"`
}

// HelperConfig holds the stty helper settings.
type HelperConfig struct {
	Command        string `yaml:"command"`          // Helper command line, shell-quoted
	SearchPathEnv  string `yaml:"search_path_env"`  // Env var holding the directory list searched for the helper
	TimeoutMs      int    `yaml:"timeout_ms"`       // Max wait for the helper
	MaxOutputBytes int    `yaml:"max_output_bytes"` // Longer helper output is rejected
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Backend:  "auto",
		LogLevel: "info",
		Helper: HelperConfig{
			Command:        stty.DefaultCommand,
			SearchPathEnv:  "PATH",
			TimeoutMs:      int(stty.DefaultTimeout / time.Millisecond),
			MaxOutputBytes: stty.DefaultMaxOutputBytes,
		},
	}
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	paths := DefaultPaths()
	return LoadFromFile(paths.ConfigFile())
}

// LoadFromFile loads configuration from a specific file, applies environment
// overrides and validates the result.
func LoadFromFile(path string) (*Config, error) {
	cfg, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// ReadFile parses path over the defaults without environment overrides or
// validation, so a broken file can still be inspected and repaired.
func ReadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Defaults when the file doesn't exist
		data = nil
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// SaveToFile writes the configuration to path.
func (c *Config) SaveToFile(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// QueryConfig converts the helper settings into a width query configuration,
// reading the search path from the configured environment variable.
func (c *Config) QueryConfig() stty.QueryConfig {
	var searchPath string
	if c.Helper.SearchPathEnv != "" {
		searchPath = os.Getenv(c.Helper.SearchPathEnv)
	}
	return stty.QueryConfig{
		Command:        c.Helper.Command,
		SearchPath:     searchPath,
		Timeout:        time.Duration(c.Helper.TimeoutMs) * time.Millisecond,
		MaxOutputBytes: c.Helper.MaxOutputBytes,
	}
}

// Get retrieves a configuration value by key, for example "backend" or
// "helper.timeout_ms".
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "backend":
		return c.Backend, nil
	case "log_level":
		return c.LogLevel, nil
	case "helper.command":
		return c.Helper.Command, nil
	case "helper.search_path_env":
		return c.Helper.SearchPathEnv, nil
	case "helper.timeout_ms":
		return strconv.Itoa(c.Helper.TimeoutMs), nil
	case "helper.max_output_bytes":
		return strconv.Itoa(c.Helper.MaxOutputBytes), nil
	default:
		return "", fmt.Errorf("unknown key: %s", key)
	}
}

// Set sets a configuration value by key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "backend":
		c.Backend = value
	case "log_level":
		c.LogLevel = value
	case "helper.command":
		c.Helper.Command = value
	case "helper.search_path_env":
		c.Helper.SearchPathEnv = value
	case "helper.timeout_ms":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %s", key, value)
		}
		c.Helper.TimeoutMs = v
	case "helper.max_output_bytes":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %s", key, value)
		}
		c.Helper.MaxOutputBytes = v
	default:
		return fmt.Errorf("unknown key: %s", key)
	}
	return nil
}

// ListKeys returns user-facing configuration keys.
func ListKeys() []string {
	return []string{
		"backend",
		"log_level",
		"helper.command",
		"helper.search_path_env",
		"helper.timeout_ms",
		"helper.max_output_bytes",
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	for _, key := range ListKeys() {
		if err := c.ValidateKey(key); err != nil {
			return err
		}
	}
	return nil
}

// ValidateKey checks a single configuration value.
func (c *Config) ValidateKey(key string) error {
	switch key {
	case "backend":
		if !isValidBackend(c.Backend) {
			return fmt.Errorf("backend must be auto, native, hybrid, stty, or none (got: %s)", c.Backend)
		}
	case "log_level":
		if !isValidLogLevel(c.LogLevel) {
			return fmt.Errorf("log_level must be debug, info, warn, or error (got: %s)", c.LogLevel)
		}
	case "helper.command":
		words, err := shlex.Split(c.Helper.Command)
		if err != nil {
			return fmt.Errorf("helper.command is not a valid command line: %w", err)
		}
		if len(words) == 0 {
			return errors.New("helper.command must not be empty")
		}
	case "helper.search_path_env":
	case "helper.timeout_ms":
		if c.Helper.TimeoutMs <= 0 {
			return errors.New("helper.timeout_ms must be > 0")
		}
	case "helper.max_output_bytes":
		if c.Helper.MaxOutputBytes <= 0 || c.Helper.MaxOutputBytes > 4096 {
			return errors.New("helper.max_output_bytes must be between 1 and 4096")
		}
	default:
		return fmt.Errorf("unknown key: %s", key)
	}
	return nil
}

func isValidBackend(backend string) bool {
	switch backend {
	case "auto", "native", "hybrid", "stty", "none":
		return true
	default:
		return false
	}
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// ApplyEnvOverrides applies environment variable overrides to the config.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("TTYCAP_BACKEND"); v != "" {
		c.Backend = strings.ToLower(v)
	}
	if v := os.Getenv("TTYCAP_STTY"); v != "" {
		c.Helper.Command = v
	}
	if v := os.Getenv("TTYCAP_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil && b {
			c.LogLevel = "debug"
		}
	}
	if v := os.Getenv("TTYCAP_LOG_LEVEL"); v != "" {
		if isValidLogLevel(v) {
			c.LogLevel = v
		}
	}
}
