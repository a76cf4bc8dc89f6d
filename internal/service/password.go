package service

import (
	"strings"
	"unicode"
)

// passwordSpecials is the set of characters accepted as "special" by the
// password policy.
const passwordSpecials = `!@#$%^&*(),.?":{}|<>`

// ValidatePassword checks a candidate password against the account security
// requirements and returns one message per violated rule. An empty slice
// means the password is acceptable.
func ValidatePassword(password string) []string {
	var errs []string

	if len(password) < 8 {
		errs = append(errs, "Password must be at least 8 characters long.")
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			hasUpper = true
		case unicode.IsLower(ch):
			hasLower = true
		case unicode.IsDigit(ch):
			hasDigit = true
		}
		if strings.ContainsRune(passwordSpecials, ch) {
			hasSpecial = true
		}
	}

	if !hasUpper {
		errs = append(errs, "Password must contain at least one uppercase letter.")
	}
	if !hasLower {
		errs = append(errs, "Password must contain at least one lowercase letter.")
	}
	if !hasDigit {
		errs = append(errs, "Password must contain at least one digit.")
	}
	if !hasSpecial {
		errs = append(errs, "Password must contain at least one special character (e.g., !@#$%^&*).")
	}
	if strings.Contains(password, " ") {
		errs = append(errs, "Password cannot contain spaces.")
	}

	return errs
}
