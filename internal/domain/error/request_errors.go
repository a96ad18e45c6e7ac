// Package error defines domain-specific errors for the Young Finance application.
package error

// RequestErrorCode defines error codes raised at the HTTP boundary before any use case runs.
type RequestErrorCode string

const (
	ErrCodeRateLimited RequestErrorCode = "REQ-020001"
)
