// Package config provides configuration helpers for go-rehab commands.
// Values come from the environment, optionally seeded from a .env file.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadDotenv loads a .env file from the working directory if present.
// Missing files are not an error; commands run fine on plain env vars.
func LoadDotenv() {
	_ = godotenv.Load()
}

// String returns the env var value or the provided default.
func String(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Int returns the env var parsed as int, or the provided default if the
// variable is unset or unparsable.
func Int(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// LogLevel returns the configured log level ("debug", "info", "warn",
// "error"), defaulting to "info".
func LogLevel() string {
	return String("LOG_LEVEL", "info")
}
