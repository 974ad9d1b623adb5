// Package errors provides a lightweight structured error type (SymdocError)
// for category-based classification of generation failures: soft per-resource
// problems versus hard internal-consistency violations.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory represents the category of a symdoc error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig ErrorCategory = "config"
	CategoryInput  ErrorCategory = "input"

	// Generation errors
	CategoryRender     ErrorCategory = "render"
	CategoryFileSystem ErrorCategory = "filesystem"

	// Invariant violations between ingestion and page generation
	CategoryConsistency ErrorCategory = "consistency"

	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops the run
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded output
)

// SymdocError is a structured error with category, severity, and context
type SymdocError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for SymdocError
type ContextFields map[string]any

// Error implements the error interface
func (e *SymdocError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *SymdocError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *SymdocError) WithContext(key string, value any) *SymdocError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new SymdocError
func New(category ErrorCategory, severity ErrorSeverity, message string) *SymdocError {
	return &SymdocError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new SymdocError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *SymdocError {
	return &SymdocError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// Consistency creates a fatal internal-consistency error. These indicate a
// broken precondition between ingestion and link/id assignment and must abort
// the run rather than emit a corrupt page.
func Consistency(message string) *SymdocError {
	return &SymdocError{
		Category: CategoryConsistency,
		Severity: SeverityFatal,
		Message:  message,
	}
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	var se *SymdocError
	if errors.As(err, &se) {
		return se.Category == category
	}
	return false
}

// IsFatal checks whether an error must abort the whole run.
func IsFatal(err error) bool {
	var se *SymdocError
	if errors.As(err, &se) {
		return se.Severity == SeverityFatal
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a SymdocError
func GetCategory(err error) ErrorCategory {
	var se *SymdocError
	if errors.As(err, &se) {
		return se.Category
	}
	return CategoryInternal
}
