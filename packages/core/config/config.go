package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdul-hamid-achik/flicker/packages/geometry"
)

// Config represents the flicker configuration
type Config struct {
	Display     *geometry.Display `json:"display,omitempty"`     // Device display metrics
	Reporters   []string          `json:"reporters,omitempty"`   // Output reporters
	OutputDir   string            `json:"outputDir,omitempty"`   // Directory for output files
	RunDisabled *bool             `json:"runDisabled,omitempty"` // Evaluate bug-gated checks anyway
	Bail        *bool             `json:"bail,omitempty"`
	Verbose     *bool             `json:"verbose,omitempty"`
	NoColor     *bool             `json:"noColor,omitempty"`
}

// BoolPtr returns a pointer to a bool value
func BoolPtr(b bool) *bool {
	return &b
}

// getBool returns the value of a bool pointer, or the default if nil
func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetDisplay returns the display metrics, defaulting to geometry.DefaultDisplay
func (c *Config) GetDisplay() geometry.Display {
	if c.Display == nil {
		return geometry.DefaultDisplay()
	}
	return *c.Display
}

// GetRunDisabled returns the run disabled setting, defaulting to false
func (c *Config) GetRunDisabled() bool {
	return getBool(c.RunDisabled, false)
}

// GetBail returns the bail setting, defaulting to false
func (c *Config) GetBail() bool {
	return getBool(c.Bail, false)
}

// GetVerbose returns the verbose setting, defaulting to false
func (c *Config) GetVerbose() bool {
	return getBool(c.Verbose, false)
}

// GetNoColor returns the no color setting, defaulting to false
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// ConfigFilenames contains the possible config file names
var ConfigFilenames = []string{
	".flicker.config.json",
	"flicker.config.json",
	".flickerrc",
	".flickerrc.json",
}

// LoadConfig loads configuration from the specified path or searches for config files
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		return loadConfigFromFile(path)
	}

	// Search for config file in current directory
	return FindAndLoadConfig(".")
}

// FindAndLoadConfig searches for a config file in the given directory
func FindAndLoadConfig(dir string) (*Config, error) {
	for _, filename := range ConfigFilenames {
		configPath := filepath.Join(dir, filename)
		if _, err := os.Stat(configPath); err == nil {
			return loadConfigFromFile(configPath)
		}
	}

	// Return defaults if no config file found
	return DefaultConfig(), nil
}

// loadConfigFromFile loads configuration from a specific file
func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return config, nil
}

// Validate checks the display metrics are usable
func (c *Config) Validate() error {
	d := c.GetDisplay()
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("display size must be positive, got %dx%d", d.Width, d.Height)
	}
	if d.NavBarHeight < 0 || d.NavBarWidth < 0 || d.StatusBarHeightPortrait < 0 || d.StatusBarHeightLandscape < 0 {
		return fmt.Errorf("system bar sizes must not be negative")
	}
	return nil
}

// Merge merges another config into this one, with other taking precedence
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c // Copy

	if other.Display != nil {
		d := *other.Display
		result.Display = &d
	}
	if other.OutputDir != "" {
		result.OutputDir = other.OutputDir
	}

	// Boolean flags - only override if explicitly set in other config
	if other.RunDisabled != nil {
		result.RunDisabled = other.RunDisabled
	}
	if other.Bail != nil {
		result.Bail = other.Bail
	}
	if other.Verbose != nil {
		result.Verbose = other.Verbose
	}
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}

	// Merge reporters
	if len(other.Reporters) > 0 {
		result.Reporters = other.Reporters
	}

	return &result
}

// SaveConfig saves the configuration to a file
func (c *Config) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
