package config

// Environment overrides sit between DefaultConfig and CLI flags: a .env file
// (if present) is merged into the process environment first, then RECNAME_*
// variables are read with typed fallbacks.

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ApplyEnv loads an optional .env file from the working directory and applies
// RECNAME_* environment overrides to cfg. A missing .env file is not an
// error; existing process environment always wins over the file.
func ApplyEnv(cfg *Config) {
	_ = godotenv.Load()

	cfg.ServiceURL = getEnv("RECNAME_SERVICE_URL", cfg.ServiceURL)
	cfg.DataDir = getEnv("RECNAME_DATA_DIR", cfg.DataDir)
	cfg.HTTPTimeoutSec = getEnvInt("RECNAME_HTTP_TIMEOUT", cfg.HTTPTimeoutSec)
}

// getEnv returns the value of the environment variable named by key, or
// fallback if the variable is unset or empty.
func getEnv(key, fallback string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return fallback
}

// getEnvInt returns the integer value of the environment variable named by
// key, or fallback if the variable is unset, empty, or not a valid integer.
func getEnvInt(key string, fallback int) int {
	if s := os.Getenv(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	return fallback
}
