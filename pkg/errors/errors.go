package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies an error category with a stable string for testing
// and log output.
type ErrorCode string

const (
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Creation-phase errors. Each one names the operation that failed so the
	// rollback path can report it.
	ErrDirCreate      ErrorCode = "DIR_CREATE"
	ErrFileWrite      ErrorCode = "FILE_WRITE"
	ErrTemplateRender ErrorCode = "TEMPLATE_RENDER"
	ErrRollback       ErrorCode = "ROLLBACK"

	// Registry errors
	ErrRegistryRead  ErrorCode = "REGISTRY_READ"
	ErrRegistryWrite ErrorCode = "REGISTRY_WRITE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// SrpkgError is a structured error carrying a code alongside the message.
type SrpkgError struct {
	Code    ErrorCode
	Message string
	Wrapped error
}

func (e *SrpkgError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *SrpkgError) Unwrap() error {
	return e.Wrapped
}

// Is matches two SrpkgErrors by code, so errors.Is can test categories.
func (e *SrpkgError) Is(target error) bool {
	var targetErr *SrpkgError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SrpkgError with the given code and message.
func New(code ErrorCode, message string) *SrpkgError {
	return &SrpkgError{Code: code, Message: message}
}

// Newf creates a new SrpkgError with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *SrpkgError {
	return &SrpkgError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error. Returns nil when err is nil.
func Wrap(err error, code ErrorCode, message string) *SrpkgError {
	if err == nil {
		return nil
	}
	return &SrpkgError{Code: code, Message: message, Wrapped: err}
}

// Wrapf wraps an existing error with a formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SrpkgError {
	if err == nil {
		return nil
	}
	return &SrpkgError{Code: code, Message: fmt.Sprintf(format, args...), Wrapped: err}
}

// IsErrorCode reports whether err carries the given code anywhere in its chain.
func IsErrorCode(err error, code ErrorCode) bool {
	var srpkgErr *SrpkgError
	if errors.As(err, &srpkgErr) {
		return srpkgErr.Code == code
	}
	return false
}

// GetErrorCode returns the code from err, or ErrUnknown for foreign errors.
func GetErrorCode(err error) ErrorCode {
	var srpkgErr *SrpkgError
	if errors.As(err, &srpkgErr) {
		return srpkgErr.Code
	}
	return ErrUnknown
}
