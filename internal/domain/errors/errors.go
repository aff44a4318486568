package errors

import (
	"net/http"

	"rewear/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	// The original API contract returns 400 (not 409) for a duplicate
	// signup email; clients key off that status.
	ErrEmailTaken = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_TAKEN",
		"User already exists with this email",
		"",
	)

	ErrAccountDeactivated = NewBaseError(
		http.StatusBadRequest,
		"ACCOUNT_DEACTIVATED",
		"Account is deactivated. Please contact support.",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
		"",
	)

	ErrEmailNotVerified = NewBaseError(
		http.StatusUnauthorized,
		"EMAIL_NOT_VERIFIED",
		"Please verify your email before logging in",
		"",
	)

	ErrEmailAlreadyVerified = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_ALREADY_VERIFIED",
		"Email is already verified",
		"",
	)

	ErrInvalidOTP = NewBaseError(
		http.StatusBadRequest,
		"INVALID_OTP",
		"Invalid or expired OTP",
		"",
	)

	ErrTooManyOTPAttempts = NewBaseError(
		http.StatusTooManyRequests,
		"TOO_MANY_OTP_ATTEMPTS",
		"Too many failed attempts. Please request a new OTP.",
		"",
	)

	ErrOTPCooldown = NewBaseError(
		http.StatusTooManyRequests,
		"OTP_COOLDOWN",
		"Please wait 1 minute before requesting another OTP",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing error",
		"",
	)

	// Item-related errors
	ErrItemNotFound = NewBaseError(
		http.StatusNotFound,
		"ITEM_NOT_FOUND",
		"Item not found",
		"",
	)

	ErrOwnItemTrade = NewBaseError(
		http.StatusBadRequest,
		"OWN_ITEM_TRADE",
		"You cannot buy or offer on your own item",
		"",
	)

	ErrItemOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"ITEM_OWNERSHIP_VIOLATION",
		"You do not have permission to modify this item",
		"",
	)

	// Trade-related errors
	ErrTradeNotFound = NewBaseError(
		http.StatusNotFound,
		"TRADE_NOT_FOUND",
		"Transaction not found",
		"",
	)

	ErrTradeAlreadyResolved = NewBaseError(
		http.StatusBadRequest,
		"TRADE_ALREADY_RESOLVED",
		"Transaction already processed",
		"",
	)

	ErrTradeOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"TRADE_OWNERSHIP_VIOLATION",
		"You are not the seller of this transaction",
		"",
	)

	// Coin and coupon-related errors
	ErrInsufficientCoins = NewBaseError(
		http.StatusBadRequest,
		"INSUFFICIENT_COINS",
		"Insufficient coins",
		"",
	)

	ErrCouponNotFound = NewBaseError(
		http.StatusNotFound,
		"COUPON_NOT_FOUND",
		"Coupon not found",
		"",
	)

	ErrCouponNotUsable = NewBaseError(
		http.StatusBadRequest,
		"COUPON_NOT_USABLE",
		"Coupon is not valid",
		"",
	)

	ErrCouponOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"COUPON_OWNERSHIP_VIOLATION",
		"You do not have permission to use this coupon",
		"",
	)

	ErrUnknownCouponOption = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_COUPON_OPTION",
		"Invalid coupon option",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
