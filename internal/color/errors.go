package color

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a category of color error.
type ErrorCode string

const (
	// ErrCodeInvalidFormat marks input that is not a six digit hex color.
	ErrCodeInvalidFormat ErrorCode = "INVALID_COLOR_FORMAT"
)

// ErrInvalidColorFormat is the sentinel matched by errors.Is for any
// FormatError, regardless of the offending input.
var ErrInvalidColorFormat = &FormatError{Code: ErrCodeInvalidFormat}

// FormatError reports a color string rejected at the parsing boundary.
type FormatError struct {
	Code   ErrorCode
	Input  string
	Reason string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Reason == "" {
		return fmt.Sprintf("%s: %q", e.Code, e.Input)
	}
	return fmt.Sprintf("%s: %q: %s", e.Code, e.Input, e.Reason)
}

// Is matches any FormatError carrying the same code.
func (e *FormatError) Is(target error) bool {
	var other *FormatError
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code
}

func newFormatError(input, reason string) *FormatError {
	return &FormatError{Code: ErrCodeInvalidFormat, Input: input, Reason: reason}
}
