// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package grid

import (
	"fmt"
)

// ErrCode represents the collection of errors that may be returned when
// addressing the grid.
type ErrCode int

const (
	// InvalidCoordinateErr indicates a coordinate below the header lane (-1).
	InvalidCoordinateErr ErrCode = iota

	// InvalidPatternErr indicates a malformed coordinate pattern such as
	// "1..x" or "3,,4".
	InvalidPatternErr = iota

	// InvalidArgumentErr indicates an argument that cannot be interpreted,
	// for example a header list that is not a list.
	InvalidArgumentErr = iota
)

// Error is the error type returned by the grid and the table built on it.
type Error struct {
	Code    ErrCode
	Message string
}

func (err *Error) Error() string {
	return fmt.Sprintf("table error (code: %d): %v", err.Code, err.Message)
}

// IsInvalidCoordinate returns true if this error is an InvalidCoordinateErr.
func IsInvalidCoordinate(err error) bool {
	return hasCode(err, InvalidCoordinateErr)
}

// IsInvalidPattern returns true if this error is an InvalidPatternErr.
func IsInvalidPattern(err error) bool {
	return hasCode(err, InvalidPatternErr)
}

// IsInvalidArgument returns true if this error is an InvalidArgumentErr.
func IsInvalidArgument(err error) bool {
	return hasCode(err, InvalidArgumentErr)
}

func hasCode(err error, code ErrCode) bool {
	switch err := err.(type) {
	case *Error:
		return err.Code == code
	}
	return false
}

func invalidCoordinateError(axis string, v int) *Error {
	return &Error{
		Code:    InvalidCoordinateErr,
		Message: fmt.Sprintf("%v coordinate must be >= -1, got %d", axis, v),
	}
}

func invalidPatternError(part, input string) *Error {
	return &Error{
		Code:    InvalidPatternErr,
		Message: fmt.Sprintf("invalid coordinate range %q in %q", part, input),
	}
}

// NewInvalidArgumentError returns an InvalidArgumentErr with msg.
func NewInvalidArgumentError(msg string) *Error {
	return &Error{
		Code:    InvalidArgumentErr,
		Message: msg,
	}
}
