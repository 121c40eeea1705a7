package services

import (
	"errors"
	"unicode"
)

// Account passwords are stored as bcrypt hashes; bcrypt reads at most 72
// bytes of input, so anything longer is rejected rather than silently
// truncated.
const (
	minPasswordRunes = 8
	maxPasswordBytes = 72
)

var (
	ErrWeakPassword    = errors.New("password must have at least 8 characters with an upper-case letter, a lower-case letter, and a digit")
	ErrPasswordTooLong = errors.New("password longer than 72 bytes")
)

// ValidatePasswordStrength checks a candidate account password against the
// password rules. It returns ErrPasswordTooLong or ErrWeakPassword; both
// compare with errors.Is at the HTTP layer.
func ValidatePasswordStrength(password string) error {
	if len(password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}
	if len([]rune(password)) < minPasswordRunes {
		return ErrWeakPassword
	}

	var hasUpper, hasLower, hasDigit bool
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsDigit(char):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return ErrWeakPassword
	}
	return nil
}
