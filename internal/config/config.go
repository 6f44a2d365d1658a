package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"weathergrip/internal/eventbus"
)

// Environment variables that override the config file
const (
	EnvAPIKey  = "WEATHERAPI_KEY"
	EnvBaseURL = "WEATHERAPI_URL"
	EnvUnits   = "WEATHERGRIP_UNITS"
)

const (
	DefaultBaseURL = "https://api.weatherapi.com/v1"
	DefaultTimeout = "10s"
	DefaultLogFile = "weathergrip.log"

	UnitsMetric   = "metric"
	UnitsImperial = "imperial"
)

var (
	ErrMissingAPIKey  = errors.New("weather api key is not configured")
	ErrMissingBaseURL = errors.New("weather api base url is not configured")
	ErrInvalidUnits   = errors.New("invalid units")
	ErrInvalidTimeout = errors.New("invalid api timeout")
)

// Config represents the application configuration
type Config struct {
	Version    int             `toml:"version"`
	LogFile    string          `toml:"log_file"`
	API        APISettings     `toml:"api"`
	Breaker    BreakerSettings `toml:"breaker"`
	UISettings UISettings      `toml:"ui"`
}

// APISettings describes the weather data source
type APISettings struct {
	BaseURL string `toml:"base_url"`
	APIKey  string `toml:"api_key,omitempty"`
	Timeout string `toml:"timeout"` // Go duration, e.g. "10s"

	keyFromEnv bool
}

// BreakerSettings controls the circuit breaker in front of the data source
type BreakerSettings struct {
	Enabled     bool   `toml:"enabled"`
	MaxFailures uint32 `toml:"max_failures"`
	OpenTimeout string `toml:"open_timeout"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Units    string `toml:"units"`
	ShowHelp bool   `toml:"show_help"`
}

// TimeoutDuration returns the parsed request timeout
func (a APISettings) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(a.Timeout)
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(DefaultTimeout)
	}
	return d
}

// KeyFromEnv reports whether the api key was supplied by the environment
func (a APISettings) KeyFromEnv() bool {
	return a.keyFromEnv
}

// OpenTimeoutDuration returns how long the breaker stays open
func (b BreakerSettings) OpenTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(b.OpenTimeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// Validate checks that the configuration can drive a search session
func (c *Config) Validate() error {
	if strings.TrimSpace(c.API.BaseURL) == "" {
		return ErrMissingBaseURL
	}
	if strings.TrimSpace(c.API.APIKey) == "" {
		return fmt.Errorf("%w: set %s or api.api_key", ErrMissingAPIKey, EnvAPIKey)
	}
	if c.API.Timeout != "" {
		if d, err := time.ParseDuration(c.API.Timeout); err != nil || d <= 0 {
			return fmt.Errorf("%w: %q", ErrInvalidTimeout, c.API.Timeout)
		}
	}
	switch c.UISettings.Units {
	case UnitsMetric, UnitsImperial:
	default:
		return fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidUnits, c.UISettings.Units, UnitsMetric, UnitsImperial)
	}
	return nil
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
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "weathergrip", "config.toml")
}

// NewConfigService creates a config service bound to path ("" means DefaultPath)
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// Path returns the file the service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path.
// An api key that came from the environment is never written to disk.
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	out := *config
	if out.API.keyFromEnv {
		out.API.APIKey = ""
	}

	data, err := toml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// LoadEnv reads .env style files into the process environment.
// Missing files are not an error; variables already set to a non-empty value are kept.
func LoadEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		vars, err := godotenv.Read(f)
		if err != nil {
			log.Printf("Could not load %s: %v", f, err)
			continue
		}
		for k, v := range vars {
			if os.Getenv(k) == "" {
				_ = os.Setenv(k, v)
			}
		}
	}
}

// ApplyEnv overrides file values with environment variables
func ApplyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvAPIKey)); v != "" {
		cfg.API.APIKey = v
		cfg.API.keyFromEnv = true
	}
	if v := strings.TrimSpace(os.Getenv(EnvBaseURL)); v != "" {
		cfg.API.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvUnits)); v != "" {
		cfg.UISettings.Units = strings.ToLower(v)
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		LogFile: DefaultLogFile,
		API: APISettings{
			BaseURL: DefaultBaseURL,
			Timeout: DefaultTimeout,
		},
		Breaker: BreakerSettings{
			Enabled:     true,
			MaxFailures: 5,
			OpenTimeout: "30s",
		},
		UISettings: UISettings{
			Units:    UnitsMetric,
			ShowHelp: true,
		},
	}
}
