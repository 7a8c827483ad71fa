// Package errors provides custom error types for the ledger API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target carries the same error code, so callers can
// compare refined errors against their sentinel with errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput           = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound               = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer         = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
	ErrConcurrentModification = &AppError{Code: "CONCURRENT_MODIFICATION", Message: "The record was modified concurrently, retry the operation", StatusCode: http.StatusConflict}
)

// Account errors.
var (
	ErrAccountNotFound        = &AppError{Code: "ACCOUNT_NOT_FOUND", Message: "Account not found", StatusCode: http.StatusNotFound}
	ErrAccountHasTransactions = &AppError{Code: "ACCOUNT_HAS_TRANSACTIONS", Message: "Account has transactions and cannot be deleted", StatusCode: http.StatusConflict}
)

// Recipient errors.
var (
	ErrRecipientNotFound        = &AppError{Code: "RECIPIENT_NOT_FOUND", Message: "Recipient not found", StatusCode: http.StatusNotFound}
	ErrRecipientInUse           = &AppError{Code: "RECIPIENT_IN_USE", Message: "Recipient is used by existing transactions", StatusCode: http.StatusConflict}
	ErrReservedRecipient        = &AppError{Code: "RESERVED_RECIPIENT", Message: "Account and owner recipients are managed by the system", StatusCode: http.StatusBadRequest}
	ErrRecipientAccountMismatch = &AppError{Code: "RECIPIENT_ACCOUNT_MISMATCH", Message: "Recipient belongs to a different account", StatusCode: http.StatusBadRequest}
)

// Structural transaction errors.
var (
	ErrMissingDetailRecord        = &AppError{Code: "MISSING_DETAIL_RECORD", Message: "Transaction details are required for this type", StatusCode: http.StatusBadRequest}
	ErrMissingRequiredField       = &AppError{Code: "MISSING_REQUIRED_FIELD", Message: "A required field is missing", StatusCode: http.StatusBadRequest}
	ErrRecipientRequired          = &AppError{Code: "RECIPIENT_REQUIRED", Message: "A recipient is required for this transaction type", StatusCode: http.StatusBadRequest}
	ErrDestinationAccountRequired = &AppError{Code: "DESTINATION_ACCOUNT_REQUIRED", Message: "A destination account is required for account transfers", StatusCode: http.StatusBadRequest}
	ErrSameAccountTransfer        = &AppError{Code: "SAME_ACCOUNT_TRANSFER", Message: "Cannot transfer to the same account", StatusCode: http.StatusBadRequest}
)

// Temporal transaction errors.
var (
	ErrFutureDateNotAllowed  = &AppError{Code: "FUTURE_DATE_NOT_ALLOWED", Message: "Completed transactions cannot be dated in the future", StatusCode: http.StatusBadRequest}
	ErrDateSequenceViolation = &AppError{Code: "DATE_SEQUENCE_VIOLATION", Message: "Dates are out of sequence", StatusCode: http.StatusBadRequest}
)

// Transaction errors.
var (
	ErrTransactionNotFound    = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
	ErrInvalidTransactionType = &AppError{Code: "INVALID_TRANSACTION_TYPE", Message: "Unsupported transaction type", StatusCode: http.StatusBadRequest}
	ErrInvalidStatusForType   = &AppError{Code: "INVALID_STATUS_FOR_TYPE", Message: "Status is not valid for this transaction type", StatusCode: http.StatusBadRequest}
	ErrDuplicateChequeNumber  = &AppError{Code: "DUPLICATE_CHEQUE_NUMBER", Message: "Cheque number is already in use", StatusCode: http.StatusConflict}
	ErrInsufficientBalance    = &AppError{Code: "INSUFFICIENT_BALANCE", Message: "Insufficient account balance", StatusCode: http.StatusBadRequest}
	ErrTransactionNotEditable = &AppError{Code: "TRANSACTION_NOT_EDITABLE", Message: "Transfer receipts are managed by their source transaction", StatusCode: http.StatusBadRequest}
	ErrInvalidTypeChange      = &AppError{Code: "INVALID_TYPE_CHANGE", Message: "Transaction type cannot be changed", StatusCode: http.StatusBadRequest}
	ErrTransferSyncFailed     = &AppError{Code: "TRANSFER_SYNC_FAILED", Message: "Failed to update the receiving side of the transfer", StatusCode: http.StatusInternalServerError}
)
