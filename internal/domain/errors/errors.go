package errors

import (
	"net/http"

	"github.com/umithief/motovibe6/internal/errors"
)

// AppError is an error the API can render as is: status, stable code for
// clients, and a message fit for an end user.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string // optional, shown only for 4xx
}

type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message, details: details}
}

func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + " (" + e.details + ")"
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// Is matches on the business code, so a WithDetails copy still satisfies
// errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WithDetails returns a copy of e carrying details.
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

// WrapMessage adds context and a stack for logging; the result still
// matches e.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"Kullanıcı bulunamadı.",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"Bu e-posta adresi zaten kayıtlı.",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"Kullanıcı oluşturulamadı.",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"E-posta veya şifre hatalı.",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Bu işlem için giriş yapmalısınız.",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Şifre işlenirken hata oluştu.",
		"",
	)

	// Catalog-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Ürün bulunamadı.",
		"",
	)

	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"Kategori bulunamadı.",
		"",
	)

	ErrSlideNotFound = NewBaseError(
		http.StatusNotFound,
		"SLIDE_NOT_FOUND",
		"Slayt bulunamadı.",
		"",
	)

	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Sipariş bulunamadı.",
		"",
	)

	ErrEmptyOrder = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_ORDER",
		"Sepetiniz boş.",
		"",
	)

	ErrInsufficientStock = NewBaseError(
		http.StatusConflict,
		"INSUFFICIENT_STOCK",
		"Yetersiz stok.",
		"",
	)

	ErrInvalidStatusTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_STATUS_TRANSITION",
		"Sipariş durumu bu şekilde değiştirilemez.",
		"",
	)

	ErrOrderCodeExhausted = NewBaseError(
		http.StatusServiceUnavailable,
		"ORDER_CODE_EXHAUSTED",
		"Sipariş kodu üretilemedi, lütfen tekrar deneyin.",
		"",
	)

	// Forum-related errors
	ErrTopicNotFound = NewBaseError(
		http.StatusNotFound,
		"TOPIC_NOT_FOUND",
		"Konu bulunamadı.",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Girilen bilgiler geçersiz.",
		"",
	)

	ErrInvalidRange = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RANGE",
		"Geçersiz zaman aralığı.",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Veritabanı işlemi başarısız oldu.",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Sunucu hatası.",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Bu işlem için yetkiniz yok.",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Kaynak bulunamadı.",
		"",
	)
)

// DatabaseExecuteError hides a storage failure behind a generic 500 while
// keeping the driver error for logs and errors.Is.
type DatabaseExecuteError struct {
	err     error
	details string
}

func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{err: err, details: details}
}

func (e *DatabaseExecuteError) Error() string {
	return "database execution failed: " + e.details + ": " + e.err.Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "Veritabanı işlemi başarısız oldu." }
func (e *DatabaseExecuteError) Details() string   { return e.details }
