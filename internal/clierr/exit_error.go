// Package clierr carries process exit codes through error chains.
package clierr

import (
	"errors"
	"fmt"
)

// Process exit codes.
const (
	ExitSuccess     = 0
	ExitFailure     = 1
	ExitNothingToDo = 3
)

// ExitCoder is an error that knows its exit code.
type ExitCoder interface {
	error
	ExitCode() int
}

// ExitError is an error that carries an explicit process exit code.
// It supports wrapping via Unwrap so errors.Is/As work as expected.
type ExitError struct {
	code  int
	msg   string
	cause error
}

func (e *ExitError) Error() string {
	if e.cause == nil {
		return e.msg
	}

	if e.msg == "" {
		return e.cause.Error()
	}

	return fmt.Sprintf("%s: %v", e.msg, e.cause)
}

// ExitCode implements ExitCoder.
func (e *ExitError) ExitCode() int { return e.code }

// Unwrap enables errors.Is/As to traverse the underlying cause.
func (e *ExitError) Unwrap() error { return e.cause }

// New creates an ExitError with a message.
func New(code int, msg string) error {
	return &ExitError{code: normalize(code), msg: msg}
}

// Wrap creates an ExitError around cause. An empty msg keeps the cause's
// message as is.
func Wrap(code int, msg string, cause error) error {
	if cause == nil {
		return New(code, msg)
	}

	return &ExitError{code: normalize(code), msg: msg, cause: cause}
}

// ExitCodeOf extracts an exit code from any error, defaulting to ExitFailure.
func ExitCodeOf(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var ec ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}

	return ExitFailure
}

// Silent reports whether the error only carries an exit code that is not
// a failure and should not be printed.
func Silent(err error) bool {
	return ExitCodeOf(err) == ExitNothingToDo
}

func normalize(code int) int {
	// Exit code 0 means success; errors should never be 0.
	if code <= 0 {
		return ExitFailure
	}

	return code
}
