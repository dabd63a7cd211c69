package token

import "errors"

var (
	ErrUnterminated      = errors.New("unterminated string")
	ErrBadEscape         = errors.New("bad escape")
	ErrBadUnicode        = errors.New("bad unicode escape")
	ErrUnicodeControl    = errors.New("unescaped control character")
	ErrNumberLeadingZero = errors.New("leading zero")
	ErrNumber            = errors.New("bad number")
	ErrKeyword           = errors.New("bad keyword")
	ErrUnexpected        = errors.New("unexpected input")
	ErrBadUTF8           = errors.New("bad utf8")
)

// Error ties a lexical error to where it happened.
type Error struct {
	Err error
	Pos *Pos
}

func NewError(err error, pos *Pos) *Error {
	return &Error{Err: err, Pos: pos}
}

func (e *Error) Error() string {
	return e.Err.Error() + " at " + e.Pos.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}
