package registrants

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// emailPattern matches basic addresses: word chars with optional dot/dash
// separators, an @, and a 2-3 letter TLD.
var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

const (
	nameMinLen = 2
	nameMaxLen = 50
)

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateName trims the name and checks its length bounds, returning the
// trimmed value. Length is counted in runes so multibyte names are not
// penalized for their encoding.
func ValidateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	runes := utf8.RuneCountInString(name)
	if runes < nameMinLen {
		return "", fmt.Errorf("name must be at least %d characters", nameMinLen)
	}
	if runes > nameMaxLen {
		return "", fmt.Errorf("name cannot exceed %d characters", nameMaxLen)
	}
	return name, nil
}

// ValidateEmail checks a normalized email against the address pattern.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("please provide a valid email")
	}
	return nil
}
