// File: /utils/validators.go
package utils

import (
	"regexp"
	"time"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	timeRegex  = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ParsePreferredTime validates a strict 24-hour "HH:mm" string and returns
// it normalized. Anything else is rejected; malformed input must never
// reach the store.
func ParsePreferredTime(s string) (string, bool) {
	if !timeRegex.MatchString(s) {
		return "", false
	}
	if _, err := time.Parse("15:04", s); err != nil {
		return "", false
	}
	return s, true
}

// IsValidYear accepts plausible 4-digit model years.
func IsValidYear(year int) bool {
	return year >= 1900 && year <= time.Now().Year()+1
}
