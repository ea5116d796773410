package utils

import (
	"os"
	"strings"
)

// EnvOrDefault returns the trimmed environment value, or def when unset/blank.
func EnvOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}
