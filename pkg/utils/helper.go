package utils

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// ParseAge converts a raw age field to int. Surrounding whitespace is ignored.
func ParseAge(value string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(value))
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	runes := []rune(s)
	return string(runes[:n])
}
