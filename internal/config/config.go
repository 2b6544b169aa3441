package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"pixels/internal/eventbus"
)

// FileName is the name of the config file inside the config directory
const FileName = "config.toml"

// Config represents the application configuration
type Config struct {
	Version  int              `toml:"version"`
	API      APISettings      `toml:"api"`
	Download DownloadSettings `toml:"download"`
	UI       UISettings       `toml:"ui"`
	Log      LogSettings      `toml:"log"`
}

// APISettings configures the image search endpoint
type APISettings struct {
	BaseURL        string `toml:"base_url"`
	Key            string `toml:"key"`
	PerPage        int    `toml:"per_page"`
	SafeSearch     bool   `toml:"safe_search"`
	EditorsChoice  bool   `toml:"editors_choice"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// DownloadSettings configures where images are saved
type DownloadSettings struct {
	Dir string `toml:"dir"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	DebounceMillis int  `toml:"debounce_ms"`
	ShowWelcome    bool `toml:"show_welcome"`
}

// LogSettings configures the log file
type LogSettings struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
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

// Dir returns the directory holding the config and log files
func Dir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "pixels")
}

// NewConfigServiceWithBus creates a config service with event bus support.
// An empty path means the default config file; bus may be nil.
func NewConfigServiceWithBus(bus eventbus.EventBus, path string) ConfigService {
	if path == "" {
		path = filepath.Join(Dir(), FileName)
	}
	return &configService{bus: bus, filePath: path}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, returning defaults when the file does not exist yet
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to the service's file
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
// Keys missing from the file keep their default values.
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
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// The file may hold an API key
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	return &Config{
		Version: 1,
		API: APISettings{
			BaseURL:        "https://pixabay.com/api/",
			PerPage:        25,
			SafeSearch:     true,
			EditorsChoice:  true,
			TimeoutSeconds: 30,
		},
		Download: DownloadSettings{
			Dir: filepath.Join(homeDir, "Pictures", "pixels"),
		},
		UI: UISettings{
			DebounceMillis: 400,
			ShowWelcome:    true,
		},
		Log: LogSettings{
			Level: "info",
			File:  filepath.Join(Dir(), "pixels.log"),
		},
	}
}

// Warnings lists problems worth logging. None of them stop the program:
// a missing key simply makes requests fail at the network layer.
func (c *Config) Warnings() []string {
	var out []string
	if c.API.Key == "" {
		out = append(out, "no API key configured; set API_KEY or api.key")
	}
	if c.API.BaseURL == "" {
		out = append(out, "no API URL configured; set API_URL or api.base_url")
	}
	return out
}

// normalize replaces nonsensical values with defaults
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.API.PerPage <= 0 {
		c.API.PerPage = def.API.PerPage
	}
	if c.API.TimeoutSeconds <= 0 {
		c.API.TimeoutSeconds = def.API.TimeoutSeconds
	}
	if c.UI.DebounceMillis < 0 {
		c.UI.DebounceMillis = def.UI.DebounceMillis
	}
	if c.Download.Dir == "" {
		c.Download.Dir = def.Download.Dir
	}
	if c.Log.File == "" {
		c.Log.File = def.Log.File
	}
}
