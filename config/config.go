// Package config provides YAML configuration parsing for serverboard.
//
// This package enables running serverboard as a standalone binary with a
// configuration file, as an alternative to the programmatic API.
//
// Example configuration:
//
//	title: Minecraft servers
//	port: 8080
//	source: ${SERVERBOARD_SOURCE:-http://127.0.0.1:5000/api/servers}
//	poll_interval: 5s
//	timeout: 4s
//	locale: zh
//	time_zone: Asia/Shanghai
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jpalmerr/serverboard/internal/view"
)

const (
	defaultPort         = 8080
	defaultPollInterval = 5 * time.Second
	defaultTimeout      = 10 * time.Second

	// minPollInterval keeps a typo from hammering the source.
	minPollInterval = 1 * time.Second

	// minTimeout is the shortest fetch timeout accepted.
	minTimeout = 100 * time.Millisecond
)

// Config is the root configuration structure for serverboard.
//
// It maps directly to the YAML configuration file structure.
// Use [Load] or [Parse] to create a Config from YAML.
type Config struct {
	// Title is the dashboard title. The server falls back to
	// "Server Status" if not set.
	Title string `yaml:"title"`

	// Port is the HTTP server port. Defaults to 8080.
	Port int `yaml:"port"`

	// Source is the URL of the server-list endpoint. Required.
	// Supports environment variable substitution: ${VAR} or ${VAR:-default}
	Source string `yaml:"source"`

	// PollInterval is the time between poll cycles.
	// Accepts duration strings like "5s", "1m", "500ms". Defaults to 5s.
	PollInterval Duration `yaml:"poll_interval"`

	// Timeout bounds a single fetch. Defaults to 10s.
	Timeout Duration `yaml:"timeout"`

	// Locale selects the card vocabulary: "en" (default) or "zh".
	Locale string `yaml:"locale"`

	// TimeZone is an IANA zone name used to display checked-at times.
	// Empty means the local zone.
	TimeZone string `yaml:"time_zone"`
}

// Duration wraps time.Duration for YAML unmarshalling.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}

	*d = Duration(parsed)
	return nil
}

// Duration returns the underlying time.Duration value.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// envVarPattern matches ${VAR} and ${VAR:-default} patterns.
// Group 1: variable name
// Group 2: the ":-default" part (if present, indicates a default was specified)
// Group 3: the default value (may be empty for ${VAR:-})
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(:-([^}]*))?\}`)

// expandEnvVars replaces ${VAR} and ${VAR:-default} patterns with environment values.
func expandEnvVars(s string) (string, error) {
	var firstErr error

	result := envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		if firstErr != nil {
			return match
		}

		submatches := envVarPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}

		varName := submatches[1]
		hasDefault := len(submatches) > 2 && submatches[2] != ""
		defaultVal := ""
		if hasDefault && len(submatches) > 3 {
			defaultVal = submatches[3]
		}

		value, exists := os.LookupEnv(varName)
		if !exists {
			if hasDefault {
				return defaultVal
			}
			firstErr = fmt.Errorf("environment variable %q is not set", varName)
			return match
		}
		return value
	})

	if firstErr != nil {
		return "", firstErr
	}
	return result, nil
}

// Load reads and parses a YAML configuration file.
//
// Environment variables in the file are expanded before parsing.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML configuration data.
//
// Environment variables are expanded in Title and Source. Defaults are
// applied for Port (8080), PollInterval (5s) and Timeout (10s).
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	if cfg.PollInterval == 0 {
		cfg.PollInterval = Duration(defaultPollInterval)
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = Duration(defaultTimeout)
	}

	if err := cfg.expandAndValidate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// expandAndValidate expands environment variables and validates the config.
func (c *Config) expandAndValidate() error {
	title, err := expandEnvVars(c.Title)
	if err != nil {
		return fmt.Errorf("title: %w", err)
	}
	c.Title = title

	if c.Source == "" {
		return errors.New("source is required")
	}
	source, err := expandEnvVars(c.Source)
	if err != nil {
		return fmt.Errorf("source: %w", err)
	}
	c.Source = source

	parsedURL, err := url.Parse(c.Source)
	if err != nil {
		return fmt.Errorf("source: invalid url: %w", err)
	}
	if parsedURL.Scheme == "" {
		return errors.New("source: url must have a scheme (http:// or https://)")
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("source: url scheme must be http or https, got %q", parsedURL.Scheme)
	}
	if parsedURL.Host == "" {
		return errors.New("source: url must have a host")
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}

	if c.PollInterval.Duration() < minPollInterval {
		return fmt.Errorf("poll_interval must be at least %s, got %s", minPollInterval, c.PollInterval.Duration())
	}

	if c.Timeout.Duration() < minTimeout {
		return fmt.Errorf("timeout must be at least %s, got %s", minTimeout, c.Timeout.Duration())
	}

	if _, ok := view.LabelsForLocale(c.Locale); !ok {
		return fmt.Errorf("locale: unsupported locale %q (expected en or zh)", c.Locale)
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	return nil
}

// Location resolves TimeZone. Empty means [time.Local].
func (c *Config) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("time_zone: %w", err)
	}
	return loc, nil
}

// Labels returns the card vocabulary for Locale.
func (c *Config) Labels() view.Labels {
	labels, _ := view.LabelsForLocale(c.Locale)
	return labels
}
