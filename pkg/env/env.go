package env

import "os"

// Get returns the value of key, or fallback when the variable is
// unset or blank.
func Get(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// LogFormat reports the configured log output format. Anything other
// than "console" renders as structured JSON.
func LogFormat() string {
	return Get("LOG_FORMAT", "json")
}
