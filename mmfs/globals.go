package internal

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

var (
	// DefaultAppName is used for config lookup paths and the env prefix
	DefaultAppName        = "mymemory"
	DefaultAppCMDShortCut = "mymemory"
	DefaultConfigPath     = filepath.Join(getHomeDir(), ".config", DefaultAppName)
	DefaultEnvPrefix      = "MYMEMORY"

	// Source roots, resolved relative to the working directory at load time
	DefaultContentDir = "content"
	DefaultAgentsDir  = "agents"

	// DefaultIgnoreFile is looked up at the top of every source root
	DefaultIgnoreFile = "." + DefaultAppName + "ignore"

	// Default server settings
	DefaultListenAddr  = ":8080"
	DefaultMetricsAddr = ""

	// Default logging settings
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

func getHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		cwd, cwdErr := os.Getwd()
		if cwdErr != nil {
			log.Printf("Unable to get home or working directory, using /tmp: %v", err)
			return "/tmp"
		}
		log.Printf("Unable to get home directory, using current working directory: %v", err)
		return cwd
	}
	return homeDir
}

// NewLogger builds a logger writing to w. format is "json" or "console";
// an unknown level falls back to info.
func NewLogger(w io.Writer, level, format string) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	if strings.EqualFold(format, "console") {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
