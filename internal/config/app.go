package config

import (
	"os"
	"strconv"
)

func Addr() string {
	if addr, ok := os.LookupEnv("APP_ADDR"); ok {
		return addr
	}
	return ":8080"
}

func LogFile() string {
	return os.Getenv("LOG_FILE")
}

// ProgressInterval is how many node expansions pass between progress
// frames on a solve websocket.
func ProgressInterval() int {
	if raw, ok := os.LookupEnv("APP_PROGRESS_INTERVAL"); ok {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return 1000
}
