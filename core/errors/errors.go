package errors

import (
	"fmt"
)

// AppError is the application business error.
type AppError struct {
	Code    ErrCode
	Message string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// New creates a new business error.
func New(code ErrCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new business error with a formatted message.
func Newf(code ErrCode, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsAppError reports whether err is a business error.
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError returns the business error, or nil if err is not one.
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return nil
}

// IsCode reports whether err is a business error carrying the given code.
func IsCode(err error, code ErrCode) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == code
}
