// Package errors defines the error types shared by the config loader and the
// CLI.
package errors

import (
	"fmt"
)

// ParseError represents a theme file that could not be decoded, with the
// source line when the decoder reported one.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError points at the theme field that failed validation.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DriftError reports a stylesheet on disk that no longer matches the one
// generated from its theme. Diff holds a unified diff from the file to the
// generated text.
type DriftError struct {
	Path string
	Diff string
}

// NewDriftError constructs a DriftError.
func NewDriftError(path, diff string) error {
	return &DriftError{Path: path, Diff: diff}
}

func (e *DriftError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("stylesheet drift: %s differs from generated output", e.Path)
}
