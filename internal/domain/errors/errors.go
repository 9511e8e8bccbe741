// Package errors defines the application error taxonomy shared by the
// backend client, the usecases and the HTTP delivery.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
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
	// ErrBackendUnreachable is the network/connectivity failure class: the
	// request never produced a response.
	ErrBackendUnreachable = NewBaseError(
		http.StatusBadGateway,
		"BACKEND_UNREACHABLE",
		"Không thể kết nối đến máy chủ",
		"",
	)

	// ErrSessionExpired is the terminal 401 class. The delivery layer turns
	// it into a redirect to the login page; call sites never see a result.
	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"Phiên đăng nhập đã hết hạn, vui lòng đăng nhập lại",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Tên đăng nhập hoặc mật khẩu không đúng",
		"",
	)

	ErrLoginRequired = NewBaseError(
		http.StatusUnauthorized,
		"LOGIN_REQUIRED",
		"Vui lòng đăng nhập để tiếp tục",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Bạn không có quyền truy cập",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Không tìm thấy tài nguyên",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Không tìm thấy sản phẩm",
		"",
	)

	ErrInsufficientStock = NewBaseError(
		http.StatusBadRequest,
		"INSUFFICIENT_STOCK",
		"Sản phẩm không đủ hàng",
		"",
	)

	ErrCartItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_ITEM_NOT_FOUND",
		"Sản phẩm không có trong giỏ hàng",
		"",
	)

	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"Giỏ hàng đang trống",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Dữ liệu không hợp lệ",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Đã xảy ra lỗi, vui lòng thử lại",
		"",
	)
)

// FieldError is a single field-level validation failure reported by the
// backend or by local form validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries structured field errors. The delivery layer maps
// them to inline per-field form text rather than a global toast.
type ValidationError struct {
	fields []FieldError
}

// NewValidationError creates a ValidationError from field errors.
func NewValidationError(fields []FieldError) *ValidationError {
	return &ValidationError{fields: fields}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Message()
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return "Dữ liệu không hợp lệ"
}

// Details returns detailed error information
func (e *ValidationError) Details() string {
	if len(e.fields) == 0 {
		return ""
	}

	return e.fields[0].Field + ": " + e.fields[0].Message
}

// Fields returns the per-field validation failures.
func (e *ValidationError) Fields() []FieldError {
	return e.fields
}

// BackendError is a generic business failure reported by the backend with a
// non-2xx status. The server-provided message is surfaced verbatim when
// present.
type BackendError struct {
	httpCode int
	message  string
}

// NewBackendError creates a BackendError carrying the server message.
func NewBackendError(httpCode int, message string) *BackendError {
	if message == "" {
		message = ErrInternalError.Message()
	}

	return &BackendError{httpCode: httpCode, message: message}
}

// Error implements the error interface
func (e *BackendError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code
func (e *BackendError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BackendError) ErrorCode() string {
	return "BACKEND_ERROR"
}

// Message returns the user-friendly error message
func (e *BackendError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BackendError) Details() string {
	return ""
}
