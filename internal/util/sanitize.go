package util

import (
	"regexp"
	"strings"
)

var nonClientIDChar = regexp.MustCompile(`[^a-z0-9-]`)

// SanitizeID converts a string into a valid request client_id: lowercase
// letters, digits and hyphens, starting with a letter.
func SanitizeID(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", "-", ".", "-", "/", "-", "_", "-").Replace(s)
	s = nonClientIDChar.ReplaceAllString(s, "")
	s = strings.Trim(s, "-")
	if s == "" {
		return "node"
	}
	if s[0] < 'a' || s[0] > 'z' {
		s = "n-" + s
	}
	return s
}

// SingleQuote wraps s in single quotes for /bin/sh, escaping embedded quotes.
func SingleQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
