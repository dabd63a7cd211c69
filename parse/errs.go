package parse

import (
	"errors"
	"fmt"

	"github.com/indentfmt/indentfmt/token"
)

var (
	ErrParse    = errors.New("parse error")
	ErrEmptyDoc = fmt.Errorf("%w: empty document", ErrParse)
)

// Error is the failure surfaced to callers: a message plus the
// approximate position of the offending input.
type Error struct {
	Msg string
	Pos *token.Pos
}

func (e *Error) Error() string {
	if e.Pos == nil {
		return "parse error: " + e.Msg
	}
	return "parse error: " + e.Msg + " at " + e.Pos.String()
}

func (e *Error) Unwrap() error {
	return ErrParse
}

func newError(msg string, pos *token.Pos) *Error {
	return &Error{Msg: msg, Pos: pos}
}
