package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error so handlers can pick the right status code.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindForbidden
	KindInvalid
)

// Error carries a user-facing message; internal details never travel
// through it.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NotFound reports that a referenced entity does not exist.
func NotFound(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Forbidden reports an authorization or business-rule violation.
func Forbidden(format string, args ...interface{}) error {
	return &Error{Kind: KindForbidden, Message: fmt.Sprintf(format, args...)}
}

// Invalid reports a request that fails semantic validation.
func Invalid(format string, args ...interface{}) error {
	return &Error{Kind: KindInvalid, Message: fmt.Sprintf(format, args...)}
}

func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindNotFound
}

func IsForbidden(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindForbidden
}

func IsInvalid(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindInvalid
}
