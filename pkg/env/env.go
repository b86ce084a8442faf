// Package env reads one-off environment variables that live outside the
// SPORTSHOP_-prefixed config, such as the platform-injected PORT and
// LOG_FORMAT switches.
package env

import "os"

// Get returns the named variable, or fallback when it is unset or empty.
func Get(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
