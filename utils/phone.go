package utils

import (
	"regexp"
	"strings"
)

// E.164: leading plus, country code, 8-15 digits total. The input may carry
// whitespace and may omit the plus sign; both are fixed up before matching.
var e164Pattern = regexp.MustCompile(`^\+[1-9][0-9]{7,14}$`)

// NormalizePhoneNumber strips whitespace, ensures the leading plus and
// reports whether the result is a valid E.164 number. The normalized form is
// what gets persisted.
func NormalizePhoneNumber(raw string) (string, bool) {
	s := strings.Join(strings.Fields(raw), "")
	if s == "" {
		return "", false
	}
	if !strings.HasPrefix(s, "+") {
		s = "+" + s
	}
	if !e164Pattern.MatchString(s) {
		return "", false
	}
	return s, true
}

// IsValidE164 validates without normalizing.
func IsValidE164(raw string) bool {
	_, ok := NormalizePhoneNumber(raw)
	return ok
}
