// Package config loads runtime settings for the DermaScan CLI in three
// stages: defaults, then a JSON file (if one is named via -c/-config), then
// command-line flags. Later stages take precedence.
package config

import "time"

// Config holds runtime settings.
//
// AuthDelay and ScanDelay are the simulated network/inference round-trip
// times; set them to zero to make every operation immediate.
type Config struct {
	DatabasePath string
	ImageDir     string
	AuthDelay    time.Duration
	ScanDelay    time.Duration
	LogLevel     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "dermascan.db"
	c.ImageDir = "images"
	c.AuthDelay = 1 * time.Second
	c.ScanDelay = 2 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
