package errors

import (
	"net/http"

	"locinsight/internal/errors"
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
	if e.details != "" {
		return e.message + ": " + e.details
	}

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

// Is matches any BaseError carrying the same error code, so a detailed copy still
// satisfies errors.Is against its predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	// Lookup errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"요청한 리소스를 찾을 수 없습니다",
		"",
	)

	ErrStoreNotFound = NewBaseError(
		http.StatusNotFound,
		"STORE_NOT_FOUND",
		"해당하는 매장 정보를 찾을 수 없습니다",
		"",
	)

	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"해당하는 업종 정보를 찾을 수 없습니다",
		"",
	)

	ErrRegionNotFound = NewBaseError(
		http.StatusNotFound,
		"REGION_NOT_FOUND",
		"해당하는 지역 정보를 찾을 수 없습니다",
		"",
	)

	ErrContentNotFound = NewBaseError(
		http.StatusNotFound,
		"CONTENT_NOT_FOUND",
		"해당하는 게시글을 찾을 수 없습니다",
		"",
	)

	ErrImageNotFound = NewBaseError(
		http.StatusNotFound,
		"IMAGE_NOT_FOUND",
		"해당하는 매장 이미지 정보를 찾을 수 없습니다",
		"",
	)

	ErrAnchorNotFound = NewBaseError(
		http.StatusUnprocessableEntity,
		"ANCHOR_NOT_FOUND",
		"기준 지역의 J-Score 값이 없습니다",
		"",
	)

	// Precondition and validation errors
	ErrPreconditionFailed = NewBaseError(
		http.StatusUnprocessableEntity,
		"PRECONDITION_FAILED",
		"필수 조건이 충족되지 않았습니다",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"입력값 검증에 실패했습니다",
		"",
	)

	// Geocoding errors
	ErrGeocodeLookupFailed = NewBaseError(
		http.StatusBadGateway,
		"GEOCODE_LOOKUP_FAILED",
		"위경도 조회 실패",
		"",
	)

	ErrCoordinatesUnparsable = NewBaseError(
		http.StatusBadGateway,
		"GEOCODE_UNPARSABLE",
		"좌표 파싱 실패",
		"",
	)

	// Registration errors
	ErrBusinessNumberExhausted = NewBaseError(
		http.StatusConflict,
		"BUSINESS_NUMBER_CONFLICT",
		"매장 번호 발급에 실패했습니다",
		"",
	)

	// Auth errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"인증이 필요합니다",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"접근 권한이 없습니다",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"데이터베이스 트랜잭션 실패",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"내부 서버 오류",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface.
// The wrapped driver error is kept for logs and never exposed through Message or Details.
type DatabaseExecuteError struct {
	err       error
	operation string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, operation string) AppError {
	return &DatabaseExecuteError{
		err:       err,
		operation: operation,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrapf(e.err, "database execution failed: %s", e.operation).Error()
}

// Unwrap exposes the driver error to errors.Is/As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_ERROR"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "데이터베이스 오류가 발생했습니다"
}

// Details returns the failed operation name.
func (e *DatabaseExecuteError) Details() string {
	return e.operation
}
