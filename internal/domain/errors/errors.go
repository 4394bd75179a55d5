package errors

import (
	"net/http"
	"strings"

	"funnel/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message, shown by the client as-is
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

// Message returns the user-facing message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying details
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError with the same business code, so copies made by
// WithDetails still compare equal to the predefined error.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Inquiry errors
	ErrInvalidInquiryID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INQUIRY_ID",
		"잘못된 예약 번호입니다.",
		"",
	)

	ErrInquiryNotFound = NewBaseError(
		http.StatusNotFound,
		"INQUIRY_NOT_FOUND",
		"예약 정보를 찾을 수 없습니다.",
		"",
	)

	ErrReservationCompleted = NewBaseError(
		http.StatusBadRequest,
		"RESERVATION_ALREADY_COMPLETED",
		"이미 예약이 완료되었습니다.",
		"",
	)

	ErrInquiryClosed = NewBaseError(
		http.StatusConflict,
		"INQUIRY_CLOSED",
		"더 이상 변경할 수 없는 예약입니다.",
		"",
	)

	ErrReservationNotReady = NewBaseError(
		http.StatusBadRequest,
		"RESERVATION_NOT_READY",
		"서류 제출이 완료된 예약만 확정할 수 있습니다.",
		"",
	)

	ErrDateNotAvailable = NewBaseError(
		http.StatusBadRequest,
		"DATE_NOT_AVAILABLE",
		"선택할 수 없는 설치 날짜입니다.",
		"",
	)

	ErrInvalidStatusChange = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATUS_CHANGE",
		"변경할 수 없는 상태입니다.",
		"",
	)

	// Document upload errors
	ErrInvalidDocumentKind = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DOCUMENT_KIND",
		"지원하지 않는 서류 종류입니다.",
		"",
	)

	ErrDocumentTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"DOCUMENT_TOO_LARGE",
		"파일 크기가 너무 큽니다.",
		"",
	)

	ErrUnsupportedDocumentType = NewBaseError(
		http.StatusUnsupportedMediaType,
		"UNSUPPORTED_DOCUMENT_TYPE",
		"지원하지 않는 파일 형식입니다.",
		"",
	)

	ErrDocumentUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"DOCUMENT_UPLOAD_FAILED",
		"파일 업로드에 실패했습니다.",
		"",
	)

	ErrConcurrentUpdate = NewBaseError(
		http.StatusConflict,
		"CONCURRENT_UPDATE",
		"다른 요청이 먼저 처리되었습니다. 다시 시도해주세요.",
		"",
	)

	// Calendar errors
	ErrBlockedDateNotFound = NewBaseError(
		http.StatusNotFound,
		"BLOCKED_DATE_NOT_FOUND",
		"해당 날짜의 설정이 없습니다.",
		"",
	)

	ErrInvalidDateRange = NewBaseError(
		http.StatusBadRequest,
		"INVALID_DATE_RANGE",
		"조회 기간이 올바르지 않습니다.",
		"",
	)

	// Partner errors
	ErrPartnerNotFound = NewBaseError(
		http.StatusNotFound,
		"PARTNER_NOT_FOUND",
		"파트너 정보를 찾을 수 없습니다.",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"데이터베이스 트랜잭션에 실패했습니다.",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"일시적인 오류가 발생했습니다. 잠시 후 다시 시도해주세요.",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"접근 권한이 없습니다.",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"로그인이 필요합니다.",
		"",
	)
)

// FieldError identifies one rejected field of an inbound payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned for malformed or incomplete payloads. It always lists the
// failing fields so the caller can correct and resubmit.
type ValidationError struct {
	message string
	fields  []FieldError
}

// NewValidationError creates a validation error for the given fields.
func NewValidationError(message string, fields ...FieldError) *ValidationError {
	if message == "" {
		message = "입력값을 확인해주세요."
	}

	return &ValidationError{
		message: message,
		fields:  fields,
	}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.fields) == 0 {
		return e.message
	}

	names := make([]string, 0, len(e.fields))
	for _, f := range e.fields {
		names = append(names, f.Field)
	}

	return e.message + " (" + strings.Join(names, ", ") + ")"
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-facing message
func (e *ValidationError) Message() string {
	return e.message
}

// Details returns the comma separated failing field names
func (e *ValidationError) Details() string {
	names := make([]string, 0, len(e.fields))
	for _, f := range e.fields {
		names = append(names, f.Field)
	}

	return strings.Join(names, ",")
}

// Fields returns the failing fields.
func (e *ValidationError) Fields() []FieldError {
	return e.fields
}

// HasField reports whether field is among the failing fields.
func (e *ValidationError) HasField(field string) bool {
	for _, f := range e.fields {
		if f.Field == field {
			return true
		}
	}

	return false
}

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

// Unwrap exposes the driver error
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

// Message returns the user-facing message
func (e *DatabaseExecuteError) Message() string {
	return "요청을 처리하지 못했습니다. 잠시 후 다시 시도해주세요."
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
