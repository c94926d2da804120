package config

import (
	"flag"
	"os"
	"time"

	"github.com/ntndev/skinscan/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string      path to the local database file
//	-img string    directory for imported scan images
//	-ad int        simulated auth delay in milliseconds
//	-sd int        simulated scan-analysis delay in milliseconds
//	-log string    log level (debug, info, warn, error)
//
// The function filters os.Args to only the flags it owns, via
// flagx.FilterArgs, so the config-file flags parsed elsewhere do not
// interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-img", "-ad", "-sd", "-log"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database file")
	fs.StringVar(&cfg.ImageDir, "img", cfg.ImageDir, "directory for imported scan images")
	authDelay := fs.Int("ad", int(cfg.AuthDelay.Milliseconds()), "simulated auth delay (in milliseconds)")
	scanDelay := fs.Int("sd", int(cfg.ScanDelay.Milliseconds()), "simulated scan delay (in milliseconds)")
	fs.StringVar(&cfg.LogLevel, "log", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.AuthDelay = time.Duration(*authDelay) * time.Millisecond
	cfg.ScanDelay = time.Duration(*scanDelay) * time.Millisecond
}
