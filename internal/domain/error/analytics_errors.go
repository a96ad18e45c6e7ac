// Package error defines domain-specific errors for the Young Finance application.
package error

import "errors"

// Analytics domain errors.
var (
	// ErrInvalidSummaryPeriod is returned when month or year is out of range.
	ErrInvalidSummaryPeriod = errors.New("month must be 1-12 and year a valid year")

	// ErrInvalidTrendPeriods is returned when the requested number of periods is out of bounds.
	ErrInvalidTrendPeriods = errors.New("periods must be between 1 and 24")
)

// AnalyticsErrorCode defines error codes for analytics errors.
// Format: ANA-XXYYYY where XX is category and YYYY is specific error.
type AnalyticsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidSummaryPeriod AnalyticsErrorCode = "ANA-010001"
	ErrCodeInvalidTrendPeriods  AnalyticsErrorCode = "ANA-010002"

	// Internal errors (99XXXX)
	ErrCodeAnalyticsInternalError AnalyticsErrorCode = "ANA-990001"
)

// AnalyticsError represents an analytics error with code and message.
type AnalyticsError struct {
	Code    AnalyticsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AnalyticsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

// NewAnalyticsError creates a new AnalyticsError with the given code and message.
func NewAnalyticsError(code AnalyticsErrorCode, message string, err error) *AnalyticsError {
	return &AnalyticsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
