// File: /utils/validators_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePreferredTime(t *testing.T) {
	cases := []struct {
		input string
		want  string
		ok    bool
	}{
		{"09:30", "09:30", true},
		{"00:00", "00:00", true},
		{"23:59", "23:59", true},
		{"25:99", "", false},
		{"24:00", "", false},
		{"9:30", "", false},
		{"09:3", "", false},
		{"09-30", "", false},
		{"", "", false},
		{"ab:cd", "", false},
		{"09:30:00", "", false},
	}

	for _, tc := range cases {
		got, ok := ParsePreferredTime(tc.input)
		assert.Equalf(t, tc.ok, ok, "input %q", tc.input)
		assert.Equalf(t, tc.want, got, "input %q", tc.input)
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.example.co"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestIsValidYear(t *testing.T) {
	assert.True(t, IsValidYear(2020))
	assert.True(t, IsValidYear(1990))
	assert.False(t, IsValidYear(1850))
	assert.False(t, IsValidYear(2200))
	assert.False(t, IsValidYear(0))
}
