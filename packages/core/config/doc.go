// Package config handles configuration loading and management for flicker.
//
// It provides functionality for:
//   - Loading configuration from .flicker.config.json or .flickerrc files
//   - Default configuration values, including the device display metrics
//   - Merging file configuration with command line overrides
package config
