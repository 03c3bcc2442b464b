package service

import (
	"errors"
	"fmt"
)

// Kind classifies a service failure for the transport layer
type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindNotFound
	KindUnprocessable
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad request"
	case KindNotFound:
		return "not found"
	case KindUnprocessable:
		return "unprocessable"
	default:
		return "internal"
	}
}

// Error is a failure of a service operation. Err keeps the original cause.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Common service errors
var (
	ErrPageNotFound  = errors.New("page not found")
	ErrMissingField  = errors.New("missing required field")
	ErrNoQuizSetting = errors.New("quiz category is required")
)

func newError(kind Kind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf returns the kind of err, KindInternal when it carries none.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}
