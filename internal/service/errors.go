package service

import (
	"errors"

	"github.com/templui/goalfund/internal/repository"
)

// ValidationError reports a missing or invalid input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field string, err error) error {
	return &ValidationError{Field: field, Message: err.Error()}
}

// IsNotFound reports whether err means a referenced goal or contributor does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, repository.ErrGoalNotFound) || errors.Is(err, repository.ErrContributorNotFound)
}

// IsValidation reports whether err is a *ValidationError.
func IsValidation(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}
