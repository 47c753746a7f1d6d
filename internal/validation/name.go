package validation

import (
	"errors"
	"strings"
)

// ValidateName validates a first or last name
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)

	if trimmed == "" {
		return errors.New("name is required")
	}

	if len(trimmed) > 100 {
		return errors.New("name is too long (max 100 characters)")
	}

	return nil
}

// ValidateAge validates an age supplied at registration
func ValidateAge(age int) error {
	if age < 0 || age > 120 {
		return errors.New("age must be between 0 and 120")
	}
	return nil
}
