// Package error defines domain-specific errors for the Young Finance application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidTargetAmount is returned when the target amount is not positive or has more than two decimals.
	ErrInvalidTargetAmount = errors.New("invalid target amount")

	// ErrInvalidContribution is returned when an added amount is not positive or has more than two decimals.
	ErrInvalidContribution = errors.New("amount must be greater than zero")

	// ErrGoalCancelled is returned when adding money to a cancelled goal.
	ErrGoalCancelled = errors.New("goal is cancelled")

	// ErrInvalidGoalStatus is returned when the goal status is invalid.
	ErrInvalidGoalStatus = errors.New("invalid goal status")

	// ErrGoalTitleRequired is returned when the title is empty.
	ErrGoalTitleRequired = errors.New("goal title is required")

	// ErrGoalStatusConflict is returned when a status does not match the saved amount.
	ErrGoalStatusConflict = errors.New("goal status does not match saved amount")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound        GoalErrorCode = "GOL-010001"
	ErrCodeInvalidTargetAmount GoalErrorCode = "GOL-010002"
	ErrCodeInvalidContribution GoalErrorCode = "GOL-010003"
	ErrCodeGoalCancelled       GoalErrorCode = "GOL-010004"
	ErrCodeInvalidGoalStatus   GoalErrorCode = "GOL-010005"
	ErrCodeGoalTitleRequired   GoalErrorCode = "GOL-010006"
	ErrCodeMissingGoalFields   GoalErrorCode = "GOL-010007"
	ErrCodeInvalidGoalIDFormat GoalErrorCode = "GOL-010008"
	ErrCodeGoalStatusConflict  GoalErrorCode = "GOL-010009"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
