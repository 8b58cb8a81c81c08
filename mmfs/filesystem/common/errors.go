package common

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Common error types used across filesystem packages
var (
	ErrPathEmpty       = errors.New("path cannot be empty")
	ErrPathTooLong     = errors.New("path too long (max 4096 characters)")
	ErrPathInvalid     = errors.New("path contains invalid characters")
	ErrPathAbsolute    = errors.New("path must be relative")
	ErrPathEscapesRoot = errors.New("path escapes its source root")
	ErrNoSources       = errors.New("at least one source must be configured")
	ErrDuplicateSource = errors.New("duplicate source")
)

// MaxPathLength bounds user supplied paths.
const MaxPathLength = 4096

// ValidationUtils provides common validation utilities used across packages
type ValidationUtils struct{}

// NewValidationUtils creates a new ValidationUtils instance
func NewValidationUtils() *ValidationUtils {
	return &ValidationUtils{}
}

// ValidateContextCancellation checks if context is cancelled and returns appropriate error
func (vu *ValidationUtils) ValidateContextCancellation(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// ValidateRequiredString validates that a string is not empty
func (vu *ValidationUtils) ValidateRequiredString(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}

// IsContextError reports whether err stems from a cancelled or expired context.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(message, args...), err)
}
