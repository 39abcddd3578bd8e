package config

import "os"

// Development reports whether the solver runs in development mode, which
// switches the server to debug logging. Any DEVELOPMENT value but "0"
// counts as set.
func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}
