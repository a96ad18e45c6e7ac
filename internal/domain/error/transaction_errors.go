// Package error defines domain-specific errors for the Young Finance application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionAmount is returned when the amount is zero or negative.
	ErrInvalidTransactionAmount = errors.New("amount must be greater than zero")

	// ErrInvalidTransactionType is returned when the type is not income or expense.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrTransactionDescriptionRequired is returned when the description is empty.
	ErrTransactionDescriptionRequired = errors.New("description is required")

	// ErrTransactionCategoryNotFound is returned when the referenced category does not exist.
	ErrTransactionCategoryNotFound = errors.New("category not found")

	// ErrInvalidDateRange is returned when date_to is before date_from.
	ErrInvalidDateRange = errors.New("date_to must not be before date_from")

	// ErrInvalidDateFormat is returned when a date is not in YYYY-MM-DD format.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TRX-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeTransactionNotFound          TransactionErrorCode = "TRX-010001"
	ErrCodeInvalidTransactionAmount     TransactionErrorCode = "TRX-010002"
	ErrCodeInvalidTransactionType       TransactionErrorCode = "TRX-010003"
	ErrCodeTransactionDescriptionNeeded TransactionErrorCode = "TRX-010004"
	ErrCodeTransactionCategoryNotFound  TransactionErrorCode = "TRX-010005"
	ErrCodeInvalidDateRange             TransactionErrorCode = "TRX-010006"
	ErrCodeInvalidDateFormat            TransactionErrorCode = "TRX-010007"
	ErrCodeMissingTransactionFields     TransactionErrorCode = "TRX-010008"
	ErrCodeInvalidTransactionIDFormat   TransactionErrorCode = "TRX-010009"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
