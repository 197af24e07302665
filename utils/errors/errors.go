// Copyright 2026 NetApp, Inc. All Rights Reserved.

package errors

import (
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/multierr"
)

// Append combines errors, ignoring nils, so callers can accumulate every problem before reporting.
func Append(left, right error) error {
	return multierr.Append(left, right)
}

// ///////////////////////////////////////////////////////////////////////////
// notFoundError
// ///////////////////////////////////////////////////////////////////////////

type notFoundError struct {
	message string
}

func (e *notFoundError) Error() string { return e.message }

func NotFoundError(message string, a ...any) error {
	if len(a) == 0 {
		return &notFoundError{message: message}
	}
	return &notFoundError{message: fmt.Sprintf(message, a...)}
}

func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *notFoundError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// unsupportedError
// ///////////////////////////////////////////////////////////////////////////

type unsupportedError struct {
	message string
}

func (e *unsupportedError) Error() string { return e.message }

func UnsupportedError(message string, a ...any) error {
	if len(a) == 0 {
		return &unsupportedError{message: message}
	}
	return &unsupportedError{message: fmt.Sprintf(message, a...)}
}

func IsUnsupportedError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *unsupportedError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// invalidInputError
// ///////////////////////////////////////////////////////////////////////////

type invalidInputError struct {
	message string
}

func (e *invalidInputError) Error() string { return e.message }

func InvalidInputError(message string, a ...any) error {
	if len(a) == 0 {
		return &invalidInputError{message: message}
	}
	return &invalidInputError{message: fmt.Sprintf(message, a...)}
}

// IsInvalidInputError also matches when any error combined by Append is an invalid input error.
func IsInvalidInputError(err error) bool {
	if err == nil {
		return false
	}
	for _, e := range multierr.Errors(err) {
		var errPtr *invalidInputError
		if errors.As(e, &errPtr) {
			return true
		}
	}
	return false
}

// ///////////////////////////////////////////////////////////////////////////
// authenticationError
// ///////////////////////////////////////////////////////////////////////////

type authenticationError struct {
	inner   error
	message string
}

func (e *authenticationError) Error() string {
	if e.inner == nil || e.inner.Error() == "" {
		return e.message
	} else if e.message == "" {
		return e.inner.Error()
	}
	return fmt.Sprintf("%v; %v", e.message, e.inner.Error())
}

func (e *authenticationError) Unwrap() error { return e.inner }

func AuthenticationError(message string, a ...any) error {
	if len(a) == 0 {
		return &authenticationError{message: message}
	}
	return &authenticationError{message: fmt.Sprintf(message, a...)}
}

func WrapWithAuthenticationError(err error, message string, a ...any) error {
	return &authenticationError{
		inner:   err,
		message: fmt.Sprintf(message, a...),
	}
}

func IsAuthenticationError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *authenticationError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// connectionError
// ///////////////////////////////////////////////////////////////////////////

type connectionError struct {
	inner   error
	message string
}

func (e *connectionError) Error() string {
	if e.inner == nil || e.inner.Error() == "" {
		return e.message
	} else if e.message == "" {
		return e.inner.Error()
	}
	return fmt.Sprintf("%v; %v", e.message, e.inner.Error())
}

func (e *connectionError) Unwrap() error {
	return e.inner
}

func ConnectionError(message string, a ...any) error {
	if len(a) == 0 {
		return &connectionError{message: message}
	}
	return &connectionError{message: fmt.Sprintf(message, a...)}
}

func WrapWithConnectionError(err error, message string, a ...any) error {
	return &connectionError{
		inner:   err,
		message: fmt.Sprintf(message, a...),
	}
}

func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var errPointer *connectionError
	return errors.As(err, &errPointer)
}

// ///////////////////////////////////////////////////////////////////////////
// httpStatusError
// ///////////////////////////////////////////////////////////////////////////

type httpStatusError struct {
	statusCode int
	message    string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("%s (%d %s)", e.message, e.statusCode, http.StatusText(e.statusCode))
}

func HTTPStatusError(statusCode int, message string, a ...any) error {
	if len(a) > 0 {
		message = fmt.Sprintf(message, a...)
	}
	return &httpStatusError{statusCode: statusCode, message: message}
}

// HTTPStatusCode returns the status carried by an HTTP status error, or 0 if err is not one.
func HTTPStatusCode(err error) int {
	var errPtr *httpStatusError
	if errors.As(err, &errPtr) {
		return errPtr.statusCode
	}
	return 0
}
