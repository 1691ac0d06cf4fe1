package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
)

// Defaults
const (
	DefaultBaseURL        = "https://api.github.com"
	DefaultUserAgent      = "ghsearch"
	DefaultDebounceMS     = 300
	DefaultMinQueryLength = 3
)

// Config represents the application configuration
type Config struct {
	Version    int            `toml:"version"`
	API        APISettings    `toml:"api"`
	Search     SearchSettings `toml:"search"`
	UISettings UISettings     `toml:"ui"`
}

// APISettings describes the remote user search endpoint
type APISettings struct {
	BaseURL   string `toml:"base_url" env:"GHSEARCH_API_URL"`
	UserAgent string `toml:"user_agent" env:"GHSEARCH_USER_AGENT"`
}

// SearchSettings tunes when a search fires
type SearchSettings struct {
	DebounceMS     int `toml:"debounce_ms" env:"GHSEARCH_DEBOUNCE_MS"`
	MinQueryLength int `toml:"min_query_length" env:"GHSEARCH_MIN_QUERY_LENGTH"`
}

// Debounce returns the quiet period as a duration
func (s SearchSettings) Debounce() time.Duration {
	return time.Duration(s.DebounceMS) * time.Millisecond
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowAvatarURL bool   `toml:"show_avatar_url"`
	OpenCommand   string `toml:"open_command" env:"GHSEARCH_OPEN_COMMAND"` // empty means platform default
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service backed by the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "ghsearch", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Load loads the configuration from file, falling back to defaults when
// the file does not exist. Environment overrides are applied either way.
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		cfg := DefaultConfig()
		if err := applyEnv(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	return cs.LoadFromPath(cs.filePath)
}

// Path returns the file Load and Save operate on
func (cs *configService) Path() string {
	return cs.filePath
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so keys missing from the file keep sane values
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks that the configuration can drive a search session
func (c *Config) Validate() error {
	var errs []error

	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("api.base_url must be an absolute URL, got %q", c.API.BaseURL))
	}
	if c.Search.DebounceMS < 0 {
		errs = append(errs, fmt.Errorf("search.debounce_ms must not be negative, got %d", c.Search.DebounceMS))
	}
	if c.Search.MinQueryLength < 0 {
		errs = append(errs, fmt.Errorf("search.min_query_length must not be negative, got %d", c.Search.MinQueryLength))
	}

	return errors.Join(errs...)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		API: APISettings{
			BaseURL:   DefaultBaseURL,
			UserAgent: DefaultUserAgent,
		},
		Search: SearchSettings{
			DebounceMS:     DefaultDebounceMS,
			MinQueryLength: DefaultMinQueryLength,
		},
		UISettings: UISettings{
			ShowAvatarURL: true,
		},
	}
}

func applyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
