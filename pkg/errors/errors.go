package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Database errors
	ErrDatabaseNotFound ErrorCode = "DATABASE_NOT_FOUND"
	ErrDatabaseRead     ErrorCode = "DATABASE_READ"

	// Detection errors
	ErrMIMEDetect ErrorCode = "MIME_DETECT"

	// Execution errors
	ErrCommandExecute ErrorCode = "COMMAND_EXECUTE"
)

// MailcapError represents a structured error with code and details
type MailcapError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *MailcapError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MailcapError) Unwrap() error {
	return e.Wrapped
}

// Is matches any MailcapError carrying the same code
func (e *MailcapError) Is(target error) bool {
	var targetErr *MailcapError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new MailcapError with the given code and message
func New(code ErrorCode, message string) *MailcapError {
	return &MailcapError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new MailcapError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *MailcapError {
	return &MailcapError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a MailcapError
func Wrap(err error, code ErrorCode, message string) *MailcapError {
	if err == nil {
		return nil
	}
	return &MailcapError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *MailcapError {
	if err == nil {
		return nil
	}
	return &MailcapError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *MailcapError) WithDetail(key string, value interface{}) *MailcapError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var mErr *MailcapError
	if errors.As(err, &mErr) {
		return mErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a MailcapError
func GetErrorCode(err error) ErrorCode {
	var mErr *MailcapError
	if errors.As(err, &mErr) {
		return mErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a MailcapError
func GetErrorDetails(err error) map[string]interface{} {
	var mErr *MailcapError
	if errors.As(err, &mErr) {
		return mErr.Details
	}
	return nil
}
