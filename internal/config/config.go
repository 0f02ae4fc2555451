package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GoogleConfig holds the OAuth2 client settings for the Google Calendar
// source.
type GoogleConfig struct {
	// ClientID is the OAuth2 client ID for the device code flow.
	ClientID string `yaml:"client_id"`
	// ClientSecret is required by Google even for installed apps using
	// the device flow; it is not treated as a secret.
	ClientSecret string `yaml:"client_secret"`
}

// ICSConfig describes a single ICS subscription source.
type ICSConfig struct {
	// URL is the ICS subscription endpoint.
	URL string `yaml:"url"`
	// Name is used as the calendar name for classification when the feed
	// itself does not carry one (X-WR-CALNAME).
	Name string `yaml:"name"`
}

// Config is the top-level application configuration, stored at
// ~/.fitfeed/config.yaml.
type Config struct {
	// Timezone is the IANA timezone used for display times. Empty means
	// the system local zone.
	Timezone string `yaml:"timezone"`

	// HorizonDays is how many days ahead the feed fetches.
	HorizonDays int `yaml:"horizon_days"`

	// Google, if non-nil, enables the Google Calendar source.
	Google *GoogleConfig `yaml:"google,omitempty"`

	// ICS is the list of subscribed ICS sources.
	ICS []ICSConfig `yaml:"ics"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Timezone:    "",
		HorizonDays: 14,
		ICS:         []ICSConfig{},
	}
}

// Normalize fills in missing/zero values so partially-filled configs
// still behave correctly.
func (c *Config) Normalize() {
	if c.HorizonDays <= 0 {
		c.HorizonDays = 14
	}
	if c.ICS == nil {
		c.ICS = []ICSConfig{}
	}
}

// Path returns the default config location, ~/.fitfeed/config.yaml.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".fitfeed", "config.yaml"), nil
}

// Load loads configuration from the given YAML path. A missing file is
// created with defaults on first run.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes the configuration atomically (temp file + rename) with
// 0600 permissions.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".fitfeed-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
