// Package errors provides custom error types for the pukatracker API.
// All service-layer errors use AppError so handlers can render consistent
// responses without leaking internal details. Consistency warnings are a
// distinct class: they mean a multi-step workflow failed partway and the
// store is now in a divergent state that was not rolled back.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
// Consistency marks errors raised after a remote write already succeeded,
// where the paired write failed and no rollback was possible.
type AppError struct {
	Code        string `json:"code"`
	Message     string `json:"message"`
	StatusCode  int    `json:"-"`
	Internal    error  `json:"-"`
	Consistency bool   `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:        sentinel.Code,
		Message:     sentinel.Message,
		StatusCode:  sentinel.StatusCode,
		Internal:    internal,
		Consistency: sentinel.Consistency,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:        sentinel.Code,
		Message:     message,
		StatusCode:  sentinel.StatusCode,
		Internal:    sentinel.Internal,
		Consistency: sentinel.Consistency,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Transaction errors.
var (
	ErrTransactionNotFound    = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
	ErrInvalidTransactionType = &AppError{Code: "INVALID_TRANSACTION_TYPE", Message: "Unsupported transaction type", StatusCode: http.StatusBadRequest}
)

// Balance and exchange errors.
var (
	ErrNegativeBalance     = &AppError{Code: "NEGATIVE_BALANCE", Message: "Balances must be non-negative", StatusCode: http.StatusBadRequest}
	ErrInsufficientBalance = &AppError{Code: "INSUFFICIENT_BALANCE", Message: "Amount to sell exceeds the PYG balance", StatusCode: http.StatusBadRequest}
)

// Debt errors.
var (
	ErrNoDebtToSettle = &AppError{Code: "NO_DEBT_TO_SETTLE", Message: "No transactions owed by this tag", StatusCode: http.StatusNotFound}
)

// Recurring payment errors.
var (
	ErrRecurringPaymentNotFound = &AppError{Code: "RECURRING_PAYMENT_NOT_FOUND", Message: "Recurring payment not found", StatusCode: http.StatusNotFound}
	ErrMonthAlreadyPaid         = &AppError{Code: "MONTH_ALREADY_PAID", Message: "This month is already marked as paid", StatusCode: http.StatusConflict}
	ErrMonthNotPaid             = &AppError{Code: "MONTH_NOT_PAID", Message: "This month is not marked as paid", StatusCode: http.StatusConflict}
)

// Consistency warnings. Each names the step that failed after an earlier
// remote write had already been committed.
var (
	ErrExchangeNotRecorded = &AppError{
		Code:        "EXCHANGE_NOT_RECORDED",
		Message:     "Account balances were updated but the exchange transaction could not be recorded",
		StatusCode:  http.StatusInternalServerError,
		Consistency: true,
	}
	ErrSettlementNotRecorded = &AppError{
		Code:        "SETTLEMENT_NOT_RECORDED",
		Message:     "Debt transactions were deleted but the settlement income could not be recorded",
		StatusCode:  http.StatusInternalServerError,
		Consistency: true,
	}
	ErrPaidMonthNotRecorded = &AppError{
		Code:        "PAID_MONTH_NOT_RECORDED",
		Message:     "The payment transaction was recorded but the paid month could not be saved or rolled back",
		StatusCode:  http.StatusInternalServerError,
		Consistency: true,
	}
)

// IsConsistencyWarning reports whether err is an AppError flagged as a
// consistency warning.
func IsConsistencyWarning(err error) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Consistency
}
