// Package analytics computes the three derived read views (orders with users,
// per-user order summaries, per-category rollups) from an immutable snapshot
// of the base entities. All computation is request-scoped and pure: no state
// is shared between calls and nothing here logs or maps to HTTP.
package analytics

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode standardizes failure semantics toward the boundary layer.
type ErrorCode string

const (
	CodeStorageUnavailable ErrorCode = "storage_unavailable"
	CodeInvalidPage        ErrorCode = "invalid_page"
	CodeCanceled           ErrorCode = "canceled"
	CodeInternal           ErrorCode = "internal"
)

// Error is the canonical analytics error wrapper.
type Error struct {
	Code    ErrorCode
	Op      string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	op := strings.TrimSpace(e.Op)
	msg := strings.TrimSpace(e.Message)
	switch {
	case op != "" && msg != "":
		return fmt.Sprintf("%s: %s (%s)", op, msg, e.Code)
	case op != "":
		return fmt.Sprintf("%s (%s)", op, e.Code)
	case msg != "":
		return fmt.Sprintf("%s (%s)", msg, e.Code)
	default:
		return string(e.Code)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// NewError builds an analytics error with explicit code + operation.
func NewError(code ErrorCode, op, message string, cause error) error {
	return &Error{
		Code:    code,
		Op:      strings.TrimSpace(op),
		Message: strings.TrimSpace(message),
		Cause:   cause,
	}
}

// Wrap annotates an existing error with analytics error semantics.
func Wrap(code ErrorCode, op string, err error) error {
	if err == nil {
		return nil
	}
	return NewError(code, op, err.Error(), err)
}

// IsCode checks whether err (or a wrapped err) carries the given code.
func IsCode(err error, code ErrorCode) bool {
	var aErr *Error
	if !errors.As(err, &aErr) {
		return false
	}
	return aErr.Code == code
}

// CodeOf extracts the error code when available.
func CodeOf(err error) ErrorCode {
	var aErr *Error
	if !errors.As(err, &aErr) {
		return ""
	}
	return aErr.Code
}
