package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Gallery GalleryConfig `toml:"gallery"`
	Log     LogConfig     `toml:"log"`
}

// GalleryConfig points at the gallery manifest and controls grid layout.
type GalleryConfig struct {
	Manifest string `toml:"manifest"`
	Columns  int    `toml:"columns"`
}

// LogConfig controls log verbosity and the TUI log destination.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Validate checks values that would otherwise fail later at runtime.
func (c *Config) Validate() error {
	if c.Gallery.Columns < 1 {
		return fmt.Errorf("%w: gallery.columns must be at least 1, got %d", ErrInvalidConfig, c.Gallery.Columns)
	}
	return nil
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrInvalidConfig, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
