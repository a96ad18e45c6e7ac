// Package error defines domain-specific errors for the Young Finance application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrBudgetAlreadyExists is returned when the category already has a budget for the period.
	ErrBudgetAlreadyExists = errors.New("budget already exists for this category and period")

	// ErrInvalidBudgetLimit is returned when the limit amount is negative.
	ErrInvalidBudgetLimit = errors.New("limit amount must not be negative")

	// ErrInvalidBudgetPeriod is returned when month or year is out of range.
	ErrInvalidBudgetPeriod = errors.New("invalid budget period")

	// ErrBudgetCategoryNotFound is returned when the budget category does not exist.
	ErrBudgetCategoryNotFound = errors.New("category not found")

	// ErrBudgetCategoryNotExpense is returned when the budget category is an income category.
	ErrBudgetCategoryNotExpense = errors.New("budgets can only be set on expense categories")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BUD-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeBudgetNotFound           BudgetErrorCode = "BUD-010001"
	ErrCodeBudgetAlreadyExists      BudgetErrorCode = "BUD-010002"
	ErrCodeInvalidBudgetLimit       BudgetErrorCode = "BUD-010003"
	ErrCodeInvalidBudgetPeriod      BudgetErrorCode = "BUD-010004"
	ErrCodeBudgetCategoryNotFound   BudgetErrorCode = "BUD-010005"
	ErrCodeBudgetCategoryNotExpense BudgetErrorCode = "BUD-010006"
	ErrCodeMissingBudgetFields      BudgetErrorCode = "BUD-010007"
	ErrCodeInvalidBudgetIDFormat    BudgetErrorCode = "BUD-010008"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
