// ABOUTME: Configuration loading and parsing for the console
// ABOUTME: Supports YAML files with environment variable expansion and duration parsing

package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete console configuration.
type Config struct {
	Backend BackendConfig `yaml:"backend"`
	State   StateConfig   `yaml:"state"`
	Logging LoggingConfig `yaml:"logging"`
}

// BackendConfig holds the REST backend connection settings.
type BackendConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"-"`

	// Raw string value for YAML unmarshaling
	TimeoutRaw string `yaml:"timeout"`
}

// StateConfig holds local state persistence settings.
type StateConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file exists: a local
// backend and a state database under the user's home directory.
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		Backend: BackendConfig{
			URL:     "http://localhost:8080",
			Timeout: 30 * time.Second,
		},
		State: StateConfig{
			Path: filepath.Join(home, ".local", "state", "vida-console", "console.db"),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a configuration file from the given path and returns a
// parsed Config. Environment variables in the format ${VAR_NAME} are
// expanded. A missing file is not an error: defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the raw YAML content
	expandedData := expandEnvVars(string(data))

	if err := yaml.Unmarshal([]byte(expandedData), cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := parseDurations(cfg); err != nil {
		return nil, fmt.Errorf("parsing durations: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding
// environment variable values. Unset variables become empty strings.
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	return re.ReplaceAllStringFunc(s, func(match string) string {
		varName := re.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// Validate checks that all required configuration fields are present
// and valid. Returns an error describing the first failure encountered.
func (c *Config) Validate() error {
	if c.Backend.URL == "" {
		return fmt.Errorf("backend.url is required")
	}
	parsed, err := url.Parse(c.Backend.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("backend.url %q is not a valid URL", c.Backend.URL)
	}
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("backend.timeout must be positive, got %s", c.Backend.Timeout)
	}
	if c.State.Path == "" {
		return fmt.Errorf("state.path is required")
	}
	return nil
}

// parseDurations converts the raw duration strings into time.Duration values
func parseDurations(cfg *Config) error {
	if cfg.Backend.TimeoutRaw != "" {
		timeout, err := time.ParseDuration(cfg.Backend.TimeoutRaw)
		if err != nil {
			return fmt.Errorf("parsing backend.timeout %q: %w", cfg.Backend.TimeoutRaw, err)
		}
		cfg.Backend.Timeout = timeout
	}
	return nil
}
