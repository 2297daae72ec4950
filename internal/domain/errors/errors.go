package errors

import (
	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(errorCode, message, details string) *BaseError {
	return &BaseError{
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
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. User-facing messages ship in the storefront's
// reference locale; presentation maps codes through the i18n table.
var (
	// Catalog-related errors
	ErrProductNotFound = NewBaseError(
		"PRODUCT_NOT_FOUND",
		"Товар не найден",
		"",
	)

	ErrCategoryNotFound = NewBaseError(
		"CATEGORY_NOT_FOUND",
		"Категория не найдена",
		"",
	)

	// Checkout-related errors
	ErrNoCardSelected = NewBaseError(
		"NO_CARD_SELECTED",
		"Выберите карту",
		"",
	)

	ErrOrderInProgress = NewBaseError(
		"ORDER_IN_PROGRESS",
		"Заказ уже оформляется",
		"",
	)

	// Payment-related errors
	ErrCardNotFound = NewBaseError(
		"CARD_NOT_FOUND",
		"Карта не найдена",
		"",
	)

	// Promo-related errors
	ErrPromoCodeEmpty = NewBaseError(
		"PROMO_CODE_EMPTY",
		"Введите промокод",
		"",
	)

	// Navigation-related errors
	ErrUnknownScreen = NewBaseError(
		"UNKNOWN_SCREEN",
		"Неизвестный экран",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		"VALIDATION_FAILED",
		"Проверьте введённые данные",
		"",
	)

	ErrUnknownLanguage = NewBaseError(
		"UNKNOWN_LANGUAGE",
		"Язык не поддерживается",
		"",
	)
)
