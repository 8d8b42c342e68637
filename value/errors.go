package value

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyString       = errors.New("string contains no content")
	ErrEmptyFile         = errors.New("file contains no content")
	ErrMissingFile       = errors.New("file does not exist")
	ErrFileRead          = errors.New("cannot read file contents")
	ErrInvalidFormat     = errors.New("invalid number format")
	ErrInvalidByteString = errors.New("invalid byte string: must be exactly 8 ASCII characters")
	ErrConversion        = errors.New("string-to-u64 conversion error")
)

// Error reports which input failed to parse and why. Kind is one of the
// sentinel errors above, so callers can test it with errors.Is.
type Error struct {
	Kind   error
	Input  string
	Detail string
	Err    error
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.Input != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Input)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Is(target error) bool {
	return e.Kind == target
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind error, input, detail string, err error) *Error {
	return &Error{Kind: kind, Input: input, Detail: detail, Err: err}
}
