package errors

import (
	goErrors "errors"
	"fmt"
)

// New returns an error with the given message.
func New(msg string) error {
	return goErrors.New(msg)
}

// ContextError annotates an error with the operation that produced it.
type ContextError struct {
	Context string
	Err     error
}

func (err ContextError) Error() string {
	return fmt.Sprintf("%s: %s", err.Context, err.Err)
}

// Unwrap returns the wrapped error.
func (err ContextError) Unwrap() error {
	return err.Err
}

// WithContext wraps err with a short description of the operation that
// failed, so that callers can build up a trail as the error propagates.
func WithContext(err error, context string) error {
	return ContextError{Context: context, Err: err}
}

// RootCause strips all context wrappers from err and returns the original
// error.
func RootCause(err error) error {
	for {
		wrapped, ok := err.(ContextError)
		if !ok {
			return err
		}
		err = wrapped.Err
	}
}

// friendlyMessager is implemented by errors that have a message meant to be
// shown to users directly, rather than the raw error chain.
type friendlyMessager interface {
	FriendlyMessage() string
}

// FriendlyError is an error whose message is written for end users.
type FriendlyError struct {
	Message string
}

func (err FriendlyError) Error() string {
	return err.Message
}

// FriendlyMessage returns the user-facing message.
func (err FriendlyError) FriendlyMessage() string {
	return err.Message
}

// NewFriendlyError creates an error with a message meant to be shown to
// users verbatim.
func NewFriendlyError(format string, args ...interface{}) error {
	return FriendlyError{Message: fmt.Sprintf(format, args...)}
}

// GetPrintableMessage returns the message that should be shown to users for
// err. If any error in the chain provides a friendly message, that message
// is used. Otherwise, the full error chain is printed.
func GetPrintableMessage(err error) string {
	for curr := err; curr != nil; {
		if friendly, ok := curr.(friendlyMessager); ok {
			return friendly.FriendlyMessage()
		}

		wrapped, ok := curr.(ContextError)
		if !ok {
			break
		}
		curr = wrapped.Err
	}
	return err.Error()
}
