package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/ntndev/skinscan/internal/flagx"
	"github.com/ntndev/skinscan/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so delays can be written either as strings like "2s" or as
// integer nanoseconds. Parsed values are copied into the runtime Config.
type JsonConfig struct {
	DatabasePath string         `json:"database_path"`
	ImageDir     string         `json:"image_dir"`
	AuthDelay    timex.Duration `json:"auth_delay"`
	ScanDelay    timex.Duration `json:"scan_delay"`
	LogLevel     string         `json:"log_level"`
}

// parseJson overlays cfg with values from the JSON file named by the
// -c/-config flags. With no such flag it returns without touching cfg.
// Only fields present in the file override; absent fields keep their
// earlier-stage values. Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.ImageDir != "" {
		cfg.ImageDir = jc.ImageDir
	}
	if jc.AuthDelay.Duration != 0 {
		cfg.AuthDelay = time.Duration(jc.AuthDelay.Duration)
	}
	if jc.ScanDelay.Duration != 0 {
		cfg.ScanDelay = time.Duration(jc.ScanDelay.Duration)
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
