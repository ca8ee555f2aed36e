package config

import "github.com/abdul-hamid-achik/flicker/packages/geometry"

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	display := geometry.DefaultDisplay()
	return &Config{
		Display:     &display,
		Reporters:   []string{"console"},
		OutputDir:   "",
		RunDisabled: BoolPtr(false),
		Bail:        BoolPtr(false),
		Verbose:     BoolPtr(false),
		NoColor:     BoolPtr(false),
	}
}

// IsDefault returns true if the config matches defaults
func (c *Config) IsDefault() bool {
	defaults := DefaultConfig()
	return c.GetDisplay() == defaults.GetDisplay() &&
		len(c.Reporters) == 1 && c.Reporters[0] == defaults.Reporters[0] &&
		c.OutputDir == defaults.OutputDir &&
		c.GetRunDisabled() == defaults.GetRunDisabled() &&
		c.GetBail() == defaults.GetBail() &&
		c.GetVerbose() == defaults.GetVerbose() &&
		c.GetNoColor() == defaults.GetNoColor()
}
