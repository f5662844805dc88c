package errors

import (
	"fmt"
)

// ErrorCode represents a unique error code
type ErrorCode int

// AppError represents an application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrConfig ErrorCode = iota + 1000
	ErrInput
	ErrOutput
)

// Error constructors
func NewConfig(message string, err error) *AppError {
	return &AppError{
		Code:    ErrConfig,
		Message: message,
		Err:     err,
	}
}

func NewInput(err error) *AppError {
	return &AppError{
		Code:    ErrInput,
		Message: "failed to read input",
		Err:     err,
	}
}

func NewOutput(err error) *AppError {
	return &AppError{
		Code:    ErrOutput,
		Message: "failed to write output",
		Err:     err,
	}
}

// HasCode reports whether err is an AppError carrying code.
func HasCode(err error, code ErrorCode) bool {
	for err != nil {
		if appErr, ok := err.(*AppError); ok && appErr.Code == code {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
