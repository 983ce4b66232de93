package errors

import (
	"errors"
	"fmt"
)

// Exit codes for nextfit
const (
	ExitSuccess       = 0
	ExitGeneralError  = 1
	ExitInvalidInput  = 2
	ExitNoFit         = 3
	ExitBlockNotFound = 4
	ExitConfigError   = 5
)

// NextFitError is the base error type for nextfit
type NextFitError struct {
	Code    int
	Message string
	Cause   error
}

func (e *NextFitError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *NextFitError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *NextFitError) ExitCode() int {
	return e.Code
}

// New creates a new NextFitError
func New(code int, message string) *NextFitError {
	return &NextFitError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a NextFitError
func Wrap(code int, message string, cause error) *NextFitError {
	return &NextFitError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// InvalidInput returns an error for a rejected allocation request
func InvalidInput(message string) *NextFitError {
	return New(ExitInvalidInput, message)
}

// NoFitFound returns an error for an allocation no block could satisfy
func NoFitFound(process string, size int) *NextFitError {
	return New(ExitNoFit, fmt.Sprintf("no suitable block found for %s (%d KB)", process, size))
}

// BlockNotFound returns an error for an ordinal outside [1, count]
func BlockNotFound(ordinal, count int) *NextFitError {
	return New(ExitBlockNotFound, fmt.Sprintf("block %d not found (have %d blocks)", ordinal, count))
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *NextFitError {
	return Wrap(ExitConfigError, message, cause)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var nfErr *NextFitError
	if errors.As(err, &nfErr) {
		return nfErr.ExitCode()
	}
	return ExitGeneralError
}
