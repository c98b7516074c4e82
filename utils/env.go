package utils

import (
	"os"
	"strconv"
	"time"
)

// GetEnvAsInt reads an integer environment variable, falling back to
// defaultVal when unset or unparsable.
func GetEnvAsInt(key string, defaultVal int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultVal
	}
	return result
}

// GetEnvAsDuration reads a duration environment variable ("30s", "5m"),
// falling back to defaultVal when unset or unparsable.
func GetEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	result, err := time.ParseDuration(value)
	if err != nil {
		return defaultVal
	}
	return result
}

// GetEnvAsBool reads a boolean environment variable, falling back to
// defaultVal when unset or unparsable.
func GetEnvAsBool(key string, defaultVal bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	result, err := strconv.ParseBool(value)
	if err != nil {
		return defaultVal
	}
	return result
}

// GetEnvAsString reads an environment variable, falling back to defaultVal
// when unset.
func GetEnvAsString(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
