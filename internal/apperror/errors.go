// Package apperror defines the error taxonomy shared by services and the
// HTTP layer: validation failures map to 400 and missing resources to 404.
package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an application error.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

var (
	ErrNotFound        = errors.New("not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrDuplicateLogin  = errors.New("duplicate login")
	ErrDuplicateEmail  = errors.New("duplicate email")
	ErrDuplicateEntry  = errors.New("duplicate journal entry")
)

// Error is returned by the service layer. Message is what clients see,
// Err is the sentinel cause for errors.Is checks.
type Error struct {
	Kind    Kind
	Err     error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation builds a KindValidation error.
func Validation(cause error, format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Err: cause, Message: fmt.Sprintf(format, args...)}
}

// NotFound builds a KindNotFound error.
func NotFound(cause error, format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Err: cause, Message: fmt.Sprintf(format, args...)}
}

// KindOf reports the kind of err, or 0 when err is not an *Error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return 0
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}
