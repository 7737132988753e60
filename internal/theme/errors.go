package theme

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a category of theme error.
type ErrorCode string

const (
	ErrCodeInvalidSettings ErrorCode = "INVALID_SETTINGS"
	ErrCodeUnknownPreset   ErrorCode = "UNKNOWN_PRESET"
)

// SettingsError reports a settings snapshot that cannot produce a theme.
type SettingsError struct {
	Code    ErrorCode
	Field   string
	Message string
	Cause   error
}

func (e *SettingsError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s: %v", e.Code, e.Field, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Field, e.Message)
}

// Unwrap exposes the cause for errors.Is / errors.As.
func (e *SettingsError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is matches another SettingsError with the same code and field.
func (e *SettingsError) Is(target error) bool {
	var other *SettingsError
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code && (other.Field == "" || e.Field == other.Field)
}

// ErrInvalidSettings matches every settings validation failure.
var ErrInvalidSettings = &SettingsError{Code: ErrCodeInvalidSettings}

func invalidField(field, message string, cause error) *SettingsError {
	return &SettingsError{Code: ErrCodeInvalidSettings, Field: field, Message: message, Cause: cause}
}
