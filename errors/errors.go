package errors

import (
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken    ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	ErrCodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	ErrCodeUserExists      ErrorCode = "USER_EXISTS"
	ErrCodeInvalidEmail    ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidPhone    ErrorCode = "INVALID_PHONE"
	ErrCodeInvalidRole     ErrorCode = "INVALID_ROLE"

	// Capacity errors
	ErrCodeRoomFull       ErrorCode = "ROOM_FULL"
	ErrCodeBelowOccupancy ErrorCode = "BELOW_CURRENT_OCCUPANCY"

	// Bind errors
	ErrCodeBedNotAvailable ErrorCode = "BED_NOT_AVAILABLE"
	ErrCodeRoomInactive    ErrorCode = "ROOM_INACTIVE"
	ErrCodeInvalidTerms    ErrorCode = "INVALID_TERMS"

	// Transition errors
	ErrCodeInvalidTransition ErrorCode = "INVALID_TRANSITION"
	ErrCodeConsistency       ErrorCode = "CONSISTENCY_VIOLATION"

	// Due errors
	ErrCodeMissingAmount    ErrorCode = "MISSING_AMOUNT"
	ErrCodeAmountMismatch   ErrorCode = "AMOUNT_MISMATCH"
	ErrCodeInvalidDueDate   ErrorCode = "INVALID_DUE_DATE"
	ErrCodeCategoryInactive ErrorCode = "CATEGORY_INACTIVE"
	ErrCodeTenancyInactive  ErrorCode = "TENANCY_INACTIVE"

	// Delete errors
	ErrCodeHasAssignments ErrorCode = "HAS_ASSIGNMENTS"
	ErrCodeBedOccupied    ErrorCode = "BED_OCCUPIED"
	ErrCodeRoomNotEmpty   ErrorCode = "ROOM_NOT_EMPTY"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidAmount ErrorCode = "INVALID_AMOUNT"
	ErrCodeInvalidStatus ErrorCode = "INVALID_STATUS"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return nil
}

// HasCode kiểm tra error có đúng mã lỗi không
func HasCode(err error, code ErrorCode) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == code
	}
	return false
}
