package common

import (
	"strconv"
	"strings"
)

// PositiveIntOr parses a positive integer, falling back when the input is
// absent or unusable. Used for page and limit query parameters.
func PositiveIntOr(value string, fallback int) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
