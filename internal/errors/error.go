package errors

import (
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryManifest Category = "manifest"
	CategoryIO       Category = "io"
	CategoryConflict Category = "conflict"
	CategoryCLI      Category = "cli"
)

// StackgenError is a structured error with a path, suggestions, and documentation.
type StackgenError struct {
	// Code is a unique error identifier (e.g., "E010").
	Code string

	// Category is the error type (manifest, io, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Path is the filesystem path (relative to the target root) the error refers to.
	Path string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *StackgenError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *StackgenError) Unwrap() error {
	return e.Wrapped
}

// WithPath records the path the error refers to.
func (e *StackgenError) WithPath(path string) *StackgenError {
	e.Path = path
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *StackgenError) WithSuggestion(s string) *StackgenError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *StackgenError) WithDetail(d string) *StackgenError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *StackgenError) Wrap(err error) *StackgenError {
	e.Wrapped = err
	return e
}

// New creates a StackgenError from a registered error code.
func New(code string) *StackgenError {
	template, ok := registry[code]
	if !ok {
		return &StackgenError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &StackgenError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new StackgenError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *StackgenError {
	return &StackgenError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a StackgenError.
func FromError(err error, code string) *StackgenError {
	if err == nil {
		return nil
	}
	if se, ok := err.(*StackgenError); ok {
		return se
	}
	return New(code).Wrap(err)
}
