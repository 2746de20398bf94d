// Package envutil provides helper functions for stackctl host environment variables.
package envutil

import "os"

const prefix = "STACKCTL_"

// Key constructs a host-level environment variable name.
// Example: Key("ENV") returns "STACKCTL_ENV".
func Key(suffix string) string {
	return prefix + suffix
}

// Get retrieves a host-level environment variable.
// Example: Get("ENV") returns the value of STACKCTL_ENV.
func Get(suffix string) string {
	return os.Getenv(Key(suffix))
}

// Set sets a host-level environment variable.
func Set(suffix, value string) {
	_ = os.Setenv(Key(suffix), value)
}
