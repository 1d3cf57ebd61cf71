// Package config provides reading of doi-mcp configuration.
// Supports both global (~/.doi-mcp/config.yaml) and local (.doi-mcp.yaml).
// Reading: uses local if it exists, otherwise global; missing files are
// not an error and yield defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Default upstream endpoints and client settings.
const (
	DefaultAPIBase        = "https://api.crossref.org/v1"
	DefaultResolverBase   = "https://doi.org"
	DefaultTimeoutSeconds = 10
	DefaultMailto         = "thomas.f.scharff@gmail.com"
)

// Validation bounds for configuration values.
const (
	MinTimeoutSeconds = 1
	MaxTimeoutSeconds = 300
)

// EnvMailto is the environment variable that overrides contact.email.
// It is also read from a .env file when one is present.
const EnvMailto = "DOI_MCP_MAILTO"

// Contact holds the contact address advertised to upstream APIs.
// Crossref asks polite-pool users to identify themselves with a mailto.
type Contact struct {
	Email string `yaml:"email,omitempty"`
}

// HTTP holds outbound HTTP client settings.
type HTTP struct {
	TimeoutSeconds *int `yaml:"timeout_seconds,omitempty"`
}

// API holds upstream endpoint overrides. Only useful for testing against
// a mirror; the defaults point at the public Crossref API and resolver.
type API struct {
	Base     string `yaml:"base,omitempty"`
	Resolver string `yaml:"resolver,omitempty"`
}

// Config contains configuration for doi-mcp.
type Config struct {
	Contact Contact `yaml:"contact,omitempty"`
	HTTP    HTTP    `yaml:"http,omitempty"`
	API     API     `yaml:"api,omitempty"`

	// path is the file this config was loaded from (empty for defaults)
	path string
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.HTTP.TimeoutSeconds != nil {
		v := *c.HTTP.TimeoutSeconds
		if v < MinTimeoutSeconds || v > MaxTimeoutSeconds {
			return fmt.Errorf("%w: timeout_seconds must be between %d and %d, got %d",
				ErrInvalidValue, MinTimeoutSeconds, MaxTimeoutSeconds, v)
		}
	}
	return nil
}

// Mailto returns the contact email for the User-Agent mailto clause.
func (c *Config) Mailto() string {
	if c.Contact.Email != "" {
		return c.Contact.Email
	}
	return DefaultMailto
}

// TimeoutSeconds returns the outbound request timeout (defaults to 10).
func (c *Config) TimeoutSeconds() int {
	if c.HTTP.TimeoutSeconds == nil {
		return DefaultTimeoutSeconds
	}
	return *c.HTTP.TimeoutSeconds
}

// APIBase returns the Crossref REST API base URL.
func (c *Config) APIBase() string {
	if c.API.Base != "" {
		return c.API.Base
	}
	return DefaultAPIBase
}

// ResolverBase returns the doi.org content-negotiation base URL.
func (c *Config) ResolverBase() string {
	if c.API.Resolver != "" {
		return c.API.Resolver
	}
	return DefaultResolverBase
}

// Path returns the file this config was loaded from, or "" for defaults.
func (c *Config) Path() string {
	return c.path
}

// localPath returns the local config path in the working directory.
func localPath() string {
	return ".doi-mcp.yaml"
}

// globalPath returns the global config path in the user's home directory.
func globalPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoConfigPath, err)
	}
	return filepath.Join(home, ".doi-mcp", "config.yaml"), nil
}

// Load reads configuration, preferring local over global. A missing file
// in either location is not an error; the zero Config carries defaults.
// The DOI_MCP_MAILTO environment variable overrides the file's
// contact.email when set.
func Load() (*Config, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}
	if v := os.Getenv(EnvMailto); v != "" {
		cfg.Contact.Email = v
	}
	return cfg, nil
}

func load() (*Config, error) {
	if cfg, err := loadFile(localPath()); err == nil {
		return cfg, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	gp, err := globalPath()
	if err != nil {
		return nil, err
	}
	if cfg, err := loadFile(gp); err == nil {
		return cfg, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	return &Config{}, nil
}

// loadFile reads and validates a single config file.
func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.path = path
	return &cfg, nil
}
