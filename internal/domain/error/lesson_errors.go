// Package error defines domain-specific errors for the Young Finance application.
package error

import "errors"

// Lesson domain errors.
var (
	// ErrLessonNotFound is returned when a lesson does not exist or is inactive.
	ErrLessonNotFound = errors.New("lesson not found")

	// ErrInvalidLessonLevel is returned when the level filter is unknown.
	ErrInvalidLessonLevel = errors.New("level must be: basic, intermediate, or advanced")
)

// LessonErrorCode defines error codes for lesson errors.
type LessonErrorCode string

const (
	ErrCodeLessonNotFound        LessonErrorCode = "LES-010001"
	ErrCodeInvalidLessonLevel    LessonErrorCode = "LES-010002"
	ErrCodeInvalidLessonIDFormat LessonErrorCode = "LES-010003"
)

// LessonError represents a lesson error with code and message.
type LessonError struct {
	Code    LessonErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LessonError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LessonError) Unwrap() error {
	return e.Err
}

// NewLessonError creates a new LessonError with the given code and message.
func NewLessonError(code LessonErrorCode, message string, err error) *LessonError {
	return &LessonError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
