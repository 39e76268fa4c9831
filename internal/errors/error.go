package errors

import (
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryConfig   Category = "config"
	CategoryApply    Category = "apply"
	CategoryTree     Category = "tree"
	CategoryProtocol Category = "protocol"
	CategoryExport   Category = "export"
	CategoryCLI      Category = "cli"
)

// VdiffError is a structured error with a code, hints and documentation.
type VdiffError struct {
	// Code is a unique error identifier (e.g., "E201").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *VdiffError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *VdiffError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a VdiffError with the same code.
func (e *VdiffError) Is(target error) bool {
	t, ok := target.(*VdiffError)
	if !ok || t.Code == "" {
		return false
	}
	return t.Code == e.Code
}

// WithSuggestion adds a fix suggestion to the error.
func (e *VdiffError) WithSuggestion(s string) *VdiffError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *VdiffError) WithDetail(d string) *VdiffError {
	e.Detail = d
	return e
}

// WithDetailf adds a formatted detail.
func (e *VdiffError) WithDetailf(format string, args ...any) *VdiffError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// Wrap wraps another error.
func (e *VdiffError) Wrap(err error) *VdiffError {
	e.Wrapped = err
	return e
}

// New creates a VdiffError from a registered error code.
func New(code string) *VdiffError {
	template, ok := registry[code]
	if !ok {
		return &VdiffError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &VdiffError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new VdiffError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *VdiffError {
	return &VdiffError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a VdiffError.
func FromError(err error, code string) *VdiffError {
	if err == nil {
		return nil
	}
	if ve, ok := err.(*VdiffError); ok {
		return ve
	}
	return New(code).Wrap(err)
}

// Code returns the code of err if it is (or wraps) a VdiffError.
func Code(err error) string {
	for err != nil {
		if ve, ok := err.(*VdiffError); ok {
			return ve.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ""
		}
		err = u.Unwrap()
	}
	return ""
}
