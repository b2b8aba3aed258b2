package errors

import (
	"net/http"

	"marketplace/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
	Data() any         // Structured payload echoed to the client (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	data      any
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches on the error code so derived copies (WithDetails, WithMessage, WithData)
// still compare equal to the predefined sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
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

// Data returns the structured payload attached with WithData.
func (e *BaseError) Data() any {
	return e.data
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	cloned := *e
	cloned.details = details

	return &cloned
}

// WithMessage replaces the client-facing message, keeping the code.
func (e *BaseError) WithMessage(message string) *BaseError {
	cloned := *e
	cloned.message = message

	return &cloned
}

// WithData attaches a payload returned alongside the error message.
func (e *BaseError) WithData(data any) *BaseError {
	cloned := *e
	cloned.data = data

	return &cloned
}

// Predefined error types
var (
	// Input
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid input",
		"",
	)

	ErrRequiredFields = NewBaseError(
		http.StatusBadRequest,
		"REQUIRED_FIELDS",
		"All fields are required",
		"",
	)

	ErrInvalidEmail = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EMAIL",
		"Invalid email format",
		"",
	)

	ErrInvalidMobile = NewBaseError(
		http.StatusBadRequest,
		"INVALID_MOBILE",
		"Invalid mobile number format",
		"",
	)

	ErrInvalidDeviceID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DEVICE_ID",
		"Invalid deviceId",
		"",
	)

	// Uniqueness. Reported as 400 so clients treat it like any other rejected submission.
	ErrConflict = NewBaseError(
		http.StatusBadRequest,
		"CONFLICT",
		"Resource already exists",
		"",
	)

	ErrAccountExists = NewBaseError(
		http.StatusBadRequest,
		"ACCOUNT_EXISTS",
		"User with this email or mobile already exists",
		"",
	)

	ErrDeviceTaken = NewBaseError(
		http.StatusBadRequest,
		"DEVICE_TAKEN",
		"User with this device ID already exists. Please use a different device ID.",
		"",
	)

	ErrCategoryExists = NewBaseError(
		http.StatusBadRequest,
		"CATEGORY_EXISTS",
		"Category with this name already exists",
		"",
	)

	ErrProductExists = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT_EXISTS",
		"Product with this name already exists",
		"",
	)

	ErrSKUExists = NewBaseError(
		http.StatusBadRequest,
		"SKU_EXISTS",
		"SKU already exists for your products",
		"",
	)

	// Lookup
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"Category not found",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	// Authentication
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Authorization token required",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Token expired. Please login again.",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid authentication token",
		"",
	)

	ErrUnregistered = NewBaseError(
		http.StatusUnauthorized,
		"UNREGISTERED",
		"User not found. Please complete registration.",
		"",
	)

	ErrAccountDeactivated = NewBaseError(
		http.StatusUnauthorized,
		"ACCOUNT_DEACTIVATED",
		"Account is deactivated",
		"",
	)

	// Authorization
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Insufficient permissions",
		"",
	)

	ErrNotOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_OWNER",
		"You can only manage your own products",
		"",
	)

	ErrApprovalPending = NewBaseError(
		http.StatusForbidden,
		"APPROVAL_PENDING",
		"You are not live. Please ask your admin to approve your account, then you can update your information.",
		"",
	)

	// Lifecycle
	ErrOnlyCustomersUpgrade = NewBaseError(
		http.StatusBadRequest,
		"ONLY_CUSTOMERS_UPGRADE",
		"Only customers can be upgraded to vendors",
		"",
	)

	ErrOnlyPendingVendors = NewBaseError(
		http.StatusBadRequest,
		"ONLY_PENDING_VENDORS",
		"Only pending vendors can be approved",
		"",
	)

	ErrIllegalTransition = NewBaseError(
		http.StatusBadRequest,
		"ILLEGAL_TRANSITION",
		"Operation not allowed in the current account state",
		"",
	)

	ErrInvalidAction = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ACTION",
		"Invalid action. Use 'approve' or 'reject'",
		"",
	)

	// Catalog
	ErrCategoryInactive = NewBaseError(
		http.StatusBadRequest,
		"CATEGORY_INACTIVE",
		"Invalid or inactive category",
		"",
	)

	ErrCategoryHasProducts = NewBaseError(
		http.StatusBadRequest,
		"CATEGORY_HAS_PRODUCTS",
		"Cannot delete category with products",
		"",
	)

	ErrCategoryHasChildren = NewBaseError(
		http.StatusBadRequest,
		"CATEGORY_HAS_CHILDREN",
		"Cannot delete category with subcategories",
		"",
	)

	ErrCategoryCycle = NewBaseError(
		http.StatusBadRequest,
		"CATEGORY_CYCLE",
		"Category cannot be its own parent",
		"",
	)

	ErrParentNotFound = NewBaseError(
		http.StatusBadRequest,
		"PARENT_NOT_FOUND",
		"Parent category not found",
		"",
	)

	ErrInvalidProductStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PRODUCT_STATUS",
		"Invalid status for vendor",
		"",
	)

	// Providers
	ErrOTPInvalid = NewBaseError(
		http.StatusBadRequest,
		"INVALID_OTP",
		"Invalid OTP",
		"",
	)

	ErrOTPProvider = NewBaseError(
		http.StatusBadRequest,
		"OTP_PROVIDER_FAILED",
		"Could not process OTP request",
		"",
	)

	ErrOTPThrottled = NewBaseError(
		http.StatusTooManyRequests,
		"OTP_THROTTLED",
		"OTP already sent. Please wait before requesting another one.",
		"",
	)

	ErrIdentityProvider = NewBaseError(
		http.StatusBadRequest,
		"IDENTITY_PROVIDER_FAILED",
		"Could not verify identity",
		"",
	)

	ErrStorageFailed = NewBaseError(
		http.StatusBadGateway,
		"STORAGE_FAILED",
		"File upload failed",
		"",
	)

	ErrUnsupportedMedia = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_MEDIA",
		"Only image uploads are allowed",
		"",
	)

	// General
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Server error",
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

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
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
	return "Server error"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Data is always empty for database failures.
func (e *DatabaseExecuteError) Data() any {
	return nil
}
