package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword_Accepts(t *testing.T) {
	valid := []string{
		"Str0ng!pass",
		"Another#Pass9",
		`Quoted"Pass1`,
		"A1b2c3d!",
	}
	for _, p := range valid {
		assert.Empty(t, ValidatePassword(p), "expected %q to pass", p)
	}
}

func TestValidatePassword_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     string
	}{
		{"too short", "S1!a", "at least 8 characters"},
		{"no uppercase", "weak1pass!", "uppercase letter"},
		{"no lowercase", "WEAK1PASS!", "lowercase letter"},
		{"no digit", "Weakpass!", "digit"},
		{"no special", "Weak1pass", "special character"},
		{"contains space", "Weak 1pass!", "spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidatePassword(tt.password)
			assert.NotEmpty(t, errs)

			found := false
			for _, e := range errs {
				if strings.Contains(e, tt.want) {
					found = true
				}
			}
			assert.True(t, found, "expected a violation mentioning %q, got %v", tt.want, errs)
		})
	}
}

func TestValidatePassword_ReportsAllViolations(t *testing.T) {
	// A single bad password can break several rules at once.
	errs := ValidatePassword("abc")
	assert.GreaterOrEqual(t, len(errs), 4)
}
