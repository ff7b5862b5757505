// © 2026 Parsekit Authors
//
// SPDX-License-Identifier: Apache-2.0

package exc

import (
	"fmt"
)

// Exception is the error type surfaced at the boundary of a parse. The
// combinator core never produces one of these internally; it reports
// failures as values and only the final projection to error builds an
// Exception.
type Exception interface {
	error
	Code() string
	Message() string
	Location() Location
}

// Location identifies where in an input an exception was observed. Line and
// Column are zero-based. URI is empty unless the caller attached one with At.
type Location struct {
	Line   int
	Column int
	Offset int
	URI    string
}

type exception struct {
	code     string
	message  string
	location Location
}

func (e *exception) Error() string {
	return fmt.Sprintf("%s:%d:%d -- %s: %s", e.location.URI, e.location.Line, e.location.Column, e.code, e.message)
}

func (e *exception) Code() string {
	return e.code
}

func (e *exception) Message() string {
	return e.message
}

func (e *exception) Location() Location {
	return e.location
}

type exceptionUnwrap struct {
	Exception
	cause error
}

func (e *exceptionUnwrap) Unwrap() error {
	return e.cause
}

func New(location Location, code string, message string) Exception {
	return &exception{
		location: location,
		message:  message,
		code:     code,
	}
}

func Wrap(location Location, code string, err error) Exception {
	if err == nil {
		return nil
	}
	if e, ok := err.(Exception); ok {
		return &exceptionUnwrap{
			Exception: New(location, code, e.Message()),
			cause:     e,
		}
	}
	return &exceptionUnwrap{
		cause:     err,
		Exception: New(location, code, err.Error()),
	}
}

func WrapUnknown(location Location, err error) Exception {
	return Wrap(location, CodeUnknownFatal, err)
}

// At rebinds an exception to a named input, keeping its code, message, and
// position. Parse errors come out of the core without a URI because the
// core never sees file names.
func At(e Exception, uri string) Exception {
	if e == nil {
		return nil
	}
	loc := e.Location()
	loc.URI = uri
	return &exceptionUnwrap{
		Exception: New(loc, e.Code(), e.Message()),
		cause:     e,
	}
}
