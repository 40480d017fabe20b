package utils

import (
	"strings"
	"time"
)

// ParseDuration parses a duration string like "5m", returning fallback
// when the string is empty or malformed.
func ParseDuration(d string, fallback time.Duration) time.Duration {
	if d == "" {
		return fallback
	}
	duration, err := time.ParseDuration(strings.TrimSpace(d))
	if err != nil {
		return fallback
	}
	return duration
}

// SafeFilename strips quotes, path separators and control characters so
// the name can be echoed in a content-disposition header.
func SafeFilename(name, fallback string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r < 0x20 || r == 0x7f:
			return -1
		case r == '"' || r == '\\' || r == '/':
			return -1
		}
		return r
	}, name)
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" || cleaned == "." || cleaned == ".." {
		return fallback
	}
	return cleaned
}
