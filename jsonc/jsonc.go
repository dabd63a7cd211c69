// Package jsonc turns JSON-with-comments into strict JSON text.
//
// The scan is a single pass with three named states: inside a string
// literal, inside a line comment, inside a block comment. Comment-like
// sequences inside strings are copied through untouched.
package jsonc

import "bytes"

type scanOpts struct {
	whitespace bool
}

// StripComments removes // and /* */ comments, leaving everything
// else (whitespace included) byte-for-byte intact. An unterminated
// block comment consumes the rest of the input; the subsequent parse
// reports any resulting damage.
func StripComments(d []byte) []byte {
	return scan(d, scanOpts{})
}

// Minify strips comments and additionally collapses whitespace runs
// outside string literals to nothing.
func Minify(d []byte) []byte {
	return scan(d, scanOpts{whitespace: true})
}

func scan(d []byte, opts scanOpts) []byte {
	var (
		out      bytes.Buffer
		inString bool
		inLine   bool
		inBlock  bool
	)
	out.Grow(len(d))
	for i := 0; i < len(d); i++ {
		c := d[i]
		switch {
		case inLine:
			if c == '\n' || c == '\r' {
				inLine = false
				if !opts.whitespace {
					out.WriteByte(c)
				}
			}
		case inBlock:
			if c == '*' && i+1 < len(d) && d[i+1] == '/' {
				inBlock = false
				i++
			}
		case inString:
			out.WriteByte(c)
			if c == '"' && !escapedQuote(d, i) {
				inString = false
			}
		default:
			switch {
			case c == '"':
				inString = true
				out.WriteByte(c)
			case c == '/' && i+1 < len(d) && d[i+1] == '/':
				inLine = true
				i++
			case c == '/' && i+1 < len(d) && d[i+1] == '*':
				inBlock = true
				i++
			case opts.whitespace && isSpace(c):
			default:
				out.WriteByte(c)
			}
		}
	}
	return out.Bytes()
}

// escapedQuote reports whether the quote at d[i] is escaped. A quote
// is escaped iff an odd number of backslashes immediately precedes
// it; an even run (including zero) means the last backslash pairs off
// and the quote is live. A naive single-byte check gets `\\"` wrong.
func escapedQuote(d []byte, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && d[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}
