package service

import "errors"

// Error classes surfaced to the transport layer.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrIntegrity    = errors.New("storage integrity")
)

// Error carries a client-facing message together with its class.
type Error struct {
	class error
	Msg   string
	cause error
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Is(target error) bool { return target == e.class }

func (e *Error) Unwrap() error { return e.cause }

func invalidInput(msg string) error { return &Error{class: ErrInvalidInput, Msg: msg} }

func notFound(msg string, cause error) error {
	return &Error{class: ErrNotFound, Msg: msg, cause: cause}
}

func integrity(msg string) error { return &Error{class: ErrIntegrity, Msg: msg} }
