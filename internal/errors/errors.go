// Package errors provides custom error types for the farmstead API.
// All service-layer errors should use AppError so that callers can
// distinguish "not found" from "invalid input" from "query failed"
// without parsing driver errors, and so that responses never leak
// internal details to clients.
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

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid username or password", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound      = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateUsername = &AppError{Code: "DUPLICATE_USERNAME", Message: "A user with this username already exists", StatusCode: http.StatusConflict}
	ErrDuplicateEmail    = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
)

// Farmer errors.
var (
	ErrFarmerNotFound = &AppError{Code: "FARMER_NOT_FOUND", Message: "Farmer not found", StatusCode: http.StatusNotFound}
)

// Crop and planting errors.
var (
	ErrCropNotFound     = &AppError{Code: "CROP_NOT_FOUND", Message: "Crop not found", StatusCode: http.StatusNotFound}
	ErrPlantingNotFound = &AppError{Code: "PLANTING_NOT_FOUND", Message: "Planting not found", StatusCode: http.StatusNotFound}
)

// Transaction errors.
var (
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
)

// Equipment and inventory errors.
var (
	ErrEquipmentNotFound     = &AppError{Code: "EQUIPMENT_NOT_FOUND", Message: "Equipment not found", StatusCode: http.StatusNotFound}
	ErrInventoryItemNotFound = &AppError{Code: "INVENTORY_ITEM_NOT_FOUND", Message: "Inventory item not found", StatusCode: http.StatusNotFound}
)

// Weather errors.
var (
	ErrWeatherRecordNotFound = &AppError{Code: "WEATHER_RECORD_NOT_FOUND", Message: "Weather record not found", StatusCode: http.StatusNotFound}
)
