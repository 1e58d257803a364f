package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/flightlog/internal/storage"
)

// Config holds everything the shell needs to wire the logbook.
type Config struct {
	// Storage
	Backend string
	DataDir string
	DBPath  string

	// Logging; empty disables the debug log entirely.
	LogFile string
}

// Load reads configuration from the environment, filling defaults under
// ~/.flightlog for anything unset.
func Load() *Config {
	dataDir := getEnv("FLIGHTLOG_DATA_DIR", filepath.Join(homeDir(), ".flightlog"))

	return &Config{
		Backend: getEnv("FLIGHTLOG_BACKEND", storage.BackendSQLite),
		DataDir: dataDir,
		DBPath:  getEnv("FLIGHTLOG_DB", filepath.Join(dataDir, "flightlog.db")),
		LogFile: getEnv("FLIGHTLOG_LOG_FILE", ""),
	}
}

// Validate returns an error describing the first invalid setting.
func (c *Config) Validate() error {
	switch c.Backend {
	case storage.BackendSQLite, storage.BackendFile, storage.BackendMemory:
	default:
		return fmt.Errorf("FLIGHTLOG_BACKEND must be one of sqlite, file, memory (got %q)", c.Backend)
	}
	if c.Backend == storage.BackendSQLite && c.DBPath == "" {
		return fmt.Errorf("FLIGHTLOG_DB must not be empty for the sqlite backend")
	}
	if c.Backend == storage.BackendFile && c.DataDir == "" {
		return fmt.Errorf("FLIGHTLOG_DATA_DIR must not be empty for the file backend")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
