package validation

import (
	"errors"
	"fmt"
	"strings"
)

// ValidateName validates a required display name such as a goal title,
// a recipient or a contributor.
func ValidateName(field, name string) error {
	trimmed := strings.TrimSpace(name)

	if trimmed == "" {
		return fmt.Errorf("%s is required", field)
	}

	if len(trimmed) > 200 {
		return fmt.Errorf("%s is too long (max 200 characters)", field)
	}

	return nil
}

// ValidatePhone accepts digits, spaces and the usual separators.
func ValidatePhone(phone string) error {
	if len(phone) > 32 {
		return errors.New("phone number is too long (max 32 characters)")
	}

	digits := 0
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case strings.ContainsRune(" +-().", r):
		default:
			return errors.New("invalid phone number format")
		}
	}

	if digits < 3 {
		return errors.New("invalid phone number format")
	}

	return nil
}
