package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/gravitrone/conduit/cli/internal/api"
)

const (
	defaultAPIURL  = api.DefaultBaseURL
	defaultTimeout = 30 * time.Second
)

// Config holds CLI configuration stored at $XDG_CONFIG_HOME/conduit/config.yaml.
type Config struct {
	APIURL       string `yaml:"api_url"`
	Token        string `yaml:"token,omitempty"`
	SubmitPolicy string `yaml:"submit_policy,omitempty"`
	Timeout      string `yaml:"timeout,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{APIURL: defaultAPIURL}
}

// Path returns the config file path.
func Path() string {
	return filepath.Join(xdg.ConfigHome, "conduit", "config.yaml")
}

// Load reads the config file, falling back to defaults when it is missing,
// then applies CONDUIT_API_URL and CONDUIT_TOKEN.
func Load() (*Config, error) {
	cfg, err := loadFile(Path())
	if err != nil {
		return nil, err
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat config: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if perm := info.Mode().Perm(); cfg.Token != "" && perm&0077 != 0 {
		return nil, fmt.Errorf("config holds a token, permissions too open: %04o (want 0600)", perm)
	}
	if strings.TrimSpace(cfg.APIURL) == "" {
		cfg.APIURL = defaultAPIURL
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv("CONDUIT_API_URL")); v != "" {
		c.APIURL = v
	}
	if v := strings.TrimSpace(os.Getenv("CONDUIT_TOKEN")); v != "" {
		c.Token = v
	}
}

// Validate checks the values that cannot be fixed by falling back to a default.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid api_url %q", c.APIURL)
	}
	if c.Timeout != "" {
		if _, err := time.ParseDuration(c.Timeout); err != nil {
			return fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
		}
	}
	switch strings.ToLower(strings.TrimSpace(c.SubmitPolicy)) {
	case "", "always", "block":
	default:
		return fmt.Errorf("invalid submit_policy %q (want always or block)", c.SubmitPolicy)
	}
	return nil
}

// TimeoutDuration returns the HTTP timeout, defaulting to 30s.
func (c *Config) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return defaultTimeout
	}
	return d
}

// Save writes the config to disk with secure permissions.
func (c *Config) Save() error {
	path := Path()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
