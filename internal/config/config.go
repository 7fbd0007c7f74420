package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"searchbar/internal/domain"
	"searchbar/internal/eventbus"
)

// DefaultFileName is the config file looked up in the working directory
const DefaultFileName = ".searchbar.toml"

// DefaultDataSource is the result document read when nothing else is configured
const DefaultDataSource = "data/searchResults.json"

// Config represents the application configuration
type Config struct {
	Version    int             `toml:"version"`
	DataSource string          `toml:"data_source"`
	Timing     Timing          `toml:"timing"`
	Tabs       map[string]bool `toml:"tabs"` // category id -> visible in tab bar
	UISettings UISettings      `toml:"ui"`
	Log        LogSettings     `toml:"log"`
}

// Timing holds the simulated delays, in milliseconds
type Timing struct {
	LookupDelayMS int `toml:"lookup_delay_ms"`
	CopyResetMS   int `toml:"copy_reset_ms"`
	CountTickMS   int `toml:"count_tick_ms"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	AutosaveOnExit bool `toml:"autosave_on_exit"`
	ShowHelp       bool `toml:"show_help"`
}

// LogSettings configures the log file
type LogSettings struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// LookupDelay returns the simulated lookup delay
func (t Timing) LookupDelay() time.Duration {
	return time.Duration(t.LookupDelayMS) * time.Millisecond
}

// CopyResetDelay returns how long a copied-link notice stays up
func (t Timing) CopyResetDelay() time.Duration {
	return time.Duration(t.CopyResetMS) * time.Millisecond
}

// CountTick returns the cadence of the animated counters
func (t Timing) CountTick() time.Duration {
	return time.Duration(t.CountTickMS) * time.Millisecond
}

// EnabledTabs converts the tab table into domain form. Unknown ids and "all" are dropped;
// categories missing from the file keep their default.
func (c *Config) EnabledTabs() domain.EnabledTabs {
	tabs := domain.DefaultEnabledTabs()
	for id, enabled := range c.Tabs {
		category := domain.Category(id)
		if category.Toggleable() {
			tabs[category] = enabled
		}
	}
	return tabs
}

// SetEnabledTabs stores the domain tab map back into the config
func (c *Config) SetEnabledTabs(tabs domain.EnabledTabs) {
	c.Tabs = make(map[string]bool, len(tabs))
	for category, enabled := range tabs {
		if category.Toggleable() {
			c.Tabs[string(category)] = enabled
		}
	}
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

// NewConfigService creates a config service bound to path.
// An empty path means DefaultFileName in the working directory.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultFileName
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, returning defaults when the file does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
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

// LoadFromPath loads configuration from a specific path.
// Values missing from the file keep their defaults.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
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

// LoadOrCreate loads the service's config file, writing defaults to it first when it is missing
func LoadOrCreate(cs ConfigService) (*Config, bool, error) {
	if _, err := os.Stat(cs.Path()); err == nil {
		cfg, err := cs.LoadFromPath(cs.Path())
		return cfg, false, err
	}

	cfg := DefaultConfig()
	if err := cs.Save(cfg); err != nil {
		return cfg, true, err
	}
	return cfg, true, nil
}

// normalize replaces zero or negative timings with defaults
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Version == 0 {
		c.Version = def.Version
	}
	if c.DataSource == "" {
		c.DataSource = def.DataSource
	}
	if c.Timing.LookupDelayMS <= 0 {
		c.Timing.LookupDelayMS = def.Timing.LookupDelayMS
	}
	if c.Timing.CopyResetMS <= 0 {
		c.Timing.CopyResetMS = def.Timing.CopyResetMS
	}
	if c.Timing.CountTickMS <= 0 {
		c.Timing.CountTickMS = def.Timing.CountTickMS
	}
	if c.Tabs == nil {
		c.Tabs = def.Tabs
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.File == "" {
		c.Log.File = def.Log.File
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{
		Version:    1,
		DataSource: DefaultDataSource,
		Timing: Timing{
			LookupDelayMS: 2000,
			CopyResetMS:   2000,
			CountTickMS:   100,
		},
		UISettings: UISettings{
			AutosaveOnExit: true,
			ShowHelp:       true,
		},
		Log: LogSettings{
			Level: "info",
			File:  "searchbar.log",
		},
	}
	cfg.SetEnabledTabs(domain.DefaultEnabledTabs())
	return cfg
}
