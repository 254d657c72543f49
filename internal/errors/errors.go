package errors

import (
	"errors"
	"fmt"
)

// Common error types for better error handling
var (
	// Selection errors
	ErrEmptyCatalog = errors.New("catalog is empty")

	// Catalog errors
	ErrCatalogUnavailable = errors.New("catalog could not be loaded")
	ErrNoResults          = errors.New("no matching songs")

	// Messaging errors
	ErrChannelUnavailable = errors.New("announcement channel unavailable")
	ErrNicknameUpdate     = errors.New("failed to update nickname")

	// Scheduling errors
	ErrInvalidSchedule = errors.New("invalid schedule")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
)

// UserError wraps an error with a user-friendly message
type UserError struct {
	Err     error
	Message string
}

func (e *UserError) Error() string {
	return e.Err.Error()
}

func (e *UserError) Unwrap() error {
	return e.Err
}

func (e *UserError) UserMessage() string {
	return e.Message
}

// NewUserError creates a new user error
func NewUserError(err error, message string) *UserError {
	return &UserError{
		Err:     err,
		Message: message,
	}
}

// WrapUserError wraps an error with a user-friendly message
func WrapUserError(err error, format string, args ...interface{}) *UserError {
	return &UserError{
		Err:     err,
		Message: fmt.Sprintf(format, args...),
	}
}

// GetUserMessage extracts user-friendly message from error
func GetUserMessage(err error) string {
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.UserMessage()
	}

	switch {
	case errors.Is(err, ErrEmptyCatalog), errors.Is(err, ErrCatalogUnavailable):
		return "❌ Could not load the playlist. Please try again later"
	case errors.Is(err, ErrNoResults):
		return "🔍 No songs matched your search"
	case errors.Is(err, ErrChannelUnavailable):
		return "📢 The announcement channel could not be reached"
	case errors.Is(err, ErrInvalidInput):
		return "⚠️ Invalid input"
	default:
		return "❌ An error occurred. Please try again later"
	}
}
