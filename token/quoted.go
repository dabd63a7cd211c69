package token

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// Unquote decodes a TString token's bytes (quotes included) into the
// string value. The tokenizer has already validated escape shapes;
// Unquote still guards against malformed surrogate pairs.
func Unquote(d []byte) (string, error) {
	if len(d) < 2 || d[0] != '"' || d[len(d)-1] != '"' {
		return "", fmt.Errorf("%w: %q", ErrUnterminated, d)
	}
	d = d[1 : len(d)-1]
	out := make([]byte, 0, len(d))
	for i := 0; i < len(d); {
		c := d[i]
		if c != '\\' {
			out = append(out, c)
			i++
			continue
		}
		switch d[i+1] {
		case '"':
			out = append(out, '"')
			i += 2
		case '\\':
			out = append(out, '\\')
			i += 2
		case '/':
			out = append(out, '/')
			i += 2
		case 'b':
			out = append(out, '\b')
			i += 2
		case 'f':
			out = append(out, '\f')
			i += 2
		case 'n':
			out = append(out, '\n')
			i += 2
		case 'r':
			out = append(out, '\r')
			i += 2
		case 't':
			out = append(out, '\t')
			i += 2
		case 'u':
			r, n, err := decodeUnicode(d[i:])
			if err != nil {
				return "", err
			}
			out = utf8.AppendRune(out, r)
			i += n
		default:
			return "", fmt.Errorf("%w: \\%c", ErrBadEscape, d[i+1])
		}
	}
	return string(out), nil
}

func decodeUnicode(d []byte) (rune, int, error) {
	u, err := strconv.ParseUint(string(d[2:6]), 16, 32)
	if err != nil {
		return 0, 0, ErrBadUnicode
	}
	r := rune(u)
	if !utf16.IsSurrogate(r) {
		return r, 6, nil
	}
	if len(d) >= 12 && d[6] == '\\' && d[7] == 'u' {
		u2, err := strconv.ParseUint(string(d[8:12]), 16, 32)
		if err != nil {
			return 0, 0, ErrBadUnicode
		}
		if dec := utf16.DecodeRune(r, rune(u2)); dec != unicode.ReplacementChar {
			return dec, 12, nil
		}
	}
	return unicode.ReplacementChar, 6, nil
}

// Quote renders v as a JSON string literal. Only the characters JSON
// requires escaping for are escaped; non-ASCII runes are emitted
// literally rather than as \u sequences.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if r < 0x20 {
				d = append(d, fmt.Sprintf("\\u%04x", r)...)
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	return string(append(d, '"'))
}
