package xmltree

import (
	"errors"
	"fmt"
)

var (
	ErrXML         = errors.New("invalid XML")
	ErrBadEncoding = errors.New("unknown encoding")
)

// Error carries the human-readable parse failure. The caller is
// expected to surface Msg and leave the original text untouched.
type Error struct {
	Msg string
}

func (e *Error) Error() string {
	return "invalid XML: " + e.Msg
}

func (e *Error) Unwrap() error {
	return ErrXML
}

func newErrorf(format string, args ...any) *Error {
	return &Error{Msg: fmt.Sprintf(format, args...)}
}
