package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Check with errors.Is.
var (
	ErrValidation      = errors.New("validation error")
	ErrPermission      = errors.New("permission denied")
	ErrNotFound        = errors.New("not found")
	ErrAlreadyVerified = errors.New("already verified")
	ErrConfiguration   = errors.New("configuration error")
	ErrTransport       = errors.New("transport error")
)

// UserError is a failure whose Message can be shown to the person who ran the command.
type UserError struct {
	Kind    error
	Message string
	Err     error
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *UserError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func newUserError(kind error, format string, args ...any) error {
	return &UserError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...any) error {
	return newUserError(ErrValidation, format, args...)
}

func Permission(format string, args ...any) error {
	return newUserError(ErrPermission, format, args...)
}

func NotFound(format string, args ...any) error {
	return newUserError(ErrNotFound, format, args...)
}

func AlreadyVerified(format string, args ...any) error {
	return newUserError(ErrAlreadyVerified, format, args...)
}

// Transport wraps a failure of Slack or the database. The cause stays out of the user message.
func Transport(err error, format string, args ...any) error {
	return &UserError{Kind: ErrTransport, Message: fmt.Sprintf(format, args...), Err: err}
}

// UserMessage returns the text to show for err, or UnknownErrorText when err carries none.
func UserMessage(err error) string {
	var ue *UserError
	if errors.As(err, &ue) && ue.Message != "" {
		return ue.Message
	}
	return UnknownErrorText
}
