package env

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// LogLevelKey selects the log level (debug, info, warn, error).
const LogLevelKey = "PLANEGEN_LOG_LEVEL"

// LogFileKey overrides the log file path.
const LogFileKey = "PLANEGEN_LOG_FILE"

// Load reads the given file (e.g. ".env") and sets environment variables for
// each KEY=VALUE line. Variables already set in the process are kept.
// The file may be missing; that is not an error.
func Load(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return godotenv.Load(path)
}

// Get returns the value of key, or def when it is unset or empty.
func Get(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
