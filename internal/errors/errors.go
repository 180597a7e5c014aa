package errors

import "fmt"

// UserError represents an error with user-friendly messaging and actionable hints
type UserError struct {
	Message string // User-friendly error message
	Hint    string // Actionable hint to resolve the issue
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface
func (e *UserError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s\nHint: %s", e.Message, e.Hint)
	}
	return e.Message
}

// Unwrap returns the underlying error for error chain support
func (e *UserError) Unwrap() error {
	return e.Cause
}

// New creates a new UserError with a message and hint
func New(message, hint string) *UserError {
	return &UserError{
		Message: message,
		Hint:    hint,
	}
}

// Wrap wraps an existing error with a user-friendly message and hint
func Wrap(err error, message, hint string) *UserError {
	return &UserError{
		Message: message,
		Hint:    hint,
		Cause:   err,
	}
}

// InvalidCount creates an error for a bad buffer-size argument
func InvalidCount(arg, issue, fix string) *UserError {
	return &UserError{
		Message: fmt.Sprintf("Invalid count %q: %s", arg, issue),
		Hint:    fix,
	}
}

// InvalidFlag creates an error for an invalid flag value
func InvalidFlag(flag, issue, fix string) *UserError {
	return &UserError{
		Message: fmt.Sprintf("Invalid value for %s: %s", flag, issue),
		Hint:    fix,
	}
}
