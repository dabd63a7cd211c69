package token

import (
	"unicode/utf8"
)

// Tokenize lexes strict JSON. The returned PosDoc maps token offsets
// back to line/column for error messages.
func Tokenize(d []byte) ([]Token, *PosDoc, error) {
	pd := NewPosDoc(d)
	toks := make([]Token, 0, 16)
	i := 0
	for i < len(d) {
		c := d[i]
		switch c {
		case ' ', '\t', '\r':
			i++
		case '\n':
			pd.nl(i)
			i++
		case '{':
			toks = append(toks, Token{Type: TLCurl, Bytes: d[i : i+1], Pos: pd.Pos(i)})
			i++
		case '}':
			toks = append(toks, Token{Type: TRCurl, Bytes: d[i : i+1], Pos: pd.Pos(i)})
			i++
		case '[':
			toks = append(toks, Token{Type: TLBrack, Bytes: d[i : i+1], Pos: pd.Pos(i)})
			i++
		case ']':
			toks = append(toks, Token{Type: TRBrack, Bytes: d[i : i+1], Pos: pd.Pos(i)})
			i++
		case ':':
			toks = append(toks, Token{Type: TColon, Bytes: d[i : i+1], Pos: pd.Pos(i)})
			i++
		case ',':
			toks = append(toks, Token{Type: TComma, Bytes: d[i : i+1], Pos: pd.Pos(i)})
			i++
		case '"':
			end, err := scanString(d, i, pd)
			if err != nil {
				return nil, pd, err
			}
			toks = append(toks, Token{Type: TString, Bytes: d[i:end], Pos: pd.Pos(i)})
			i = end
		case 't', 'f', 'n':
			tok, end, err := scanKeyword(d, i, pd)
			if err != nil {
				return nil, pd, err
			}
			toks = append(toks, tok)
			i = end
		default:
			if c == '-' || (c >= '0' && c <= '9') {
				end, err := scanNumber(d, i, pd)
				if err != nil {
					return nil, pd, err
				}
				toks = append(toks, Token{Type: TNumber, Bytes: d[i:end], Pos: pd.Pos(i)})
				i = end
				continue
			}
			return nil, pd, NewError(ErrUnexpected, pd.Pos(i))
		}
	}
	return toks, pd, nil
}

func scanString(d []byte, start int, pd *PosDoc) (int, error) {
	i := start + 1
	for i < len(d) {
		c := d[i]
		switch {
		case c == '"':
			return i + 1, nil
		case c == '\\':
			if i+1 >= len(d) {
				return 0, NewError(ErrUnterminated, pd.Pos(start))
			}
			switch d[i+1] {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				i += 2
			case 'u':
				if i+6 > len(d) || !isHex(d[i+2:i+6]) {
					return 0, NewError(ErrBadUnicode, pd.Pos(i))
				}
				i += 6
			default:
				return 0, NewError(ErrBadEscape, pd.Pos(i))
			}
		case c < 0x20:
			return 0, NewError(ErrUnicodeControl, pd.Pos(i))
		case c < utf8.RuneSelf:
			i++
		default:
			r, size := utf8.DecodeRune(d[i:])
			if r == utf8.RuneError && size == 1 {
				return 0, NewError(ErrBadUTF8, pd.Pos(i))
			}
			i += size
		}
	}
	return 0, NewError(ErrUnterminated, pd.Pos(start))
}

func scanNumber(d []byte, start int, pd *PosDoc) (int, error) {
	i := start
	if d[i] == '-' {
		i++
	}
	digits := 0
	for i < len(d) && d[i] >= '0' && d[i] <= '9' {
		digits++
		i++
	}
	if digits == 0 {
		return 0, NewError(ErrNumber, pd.Pos(start))
	}
	if digits > 1 && intStart(d, start) == '0' {
		return 0, NewError(ErrNumberLeadingZero, pd.Pos(start))
	}
	if i < len(d) && d[i] == '.' {
		i++
		fdigits := 0
		for i < len(d) && d[i] >= '0' && d[i] <= '9' {
			fdigits++
			i++
		}
		if fdigits == 0 {
			return 0, NewError(ErrNumber, pd.Pos(start))
		}
	}
	if i < len(d) && (d[i] == 'e' || d[i] == 'E') {
		i++
		if i < len(d) && (d[i] == '+' || d[i] == '-') {
			i++
		}
		edigits := 0
		for i < len(d) && d[i] >= '0' && d[i] <= '9' {
			edigits++
			i++
		}
		if edigits == 0 {
			return 0, NewError(ErrNumber, pd.Pos(start))
		}
	}
	return i, nil
}

func intStart(d []byte, start int) byte {
	if d[start] == '-' {
		return d[start+1]
	}
	return d[start]
}

func scanKeyword(d []byte, start int, pd *PosDoc) (Token, int, error) {
	for _, kw := range []struct {
		lit string
		t   Type
	}{
		{"true", TTrue},
		{"false", TFalse},
		{"null", TNull},
	} {
		end := start + len(kw.lit)
		if end <= len(d) && string(d[start:end]) == kw.lit {
			return Token{Type: kw.t, Bytes: d[start:end], Pos: pd.Pos(start)}, end, nil
		}
	}
	return Token{}, 0, NewError(ErrKeyword, pd.Pos(start))
}

func isHex(d []byte) bool {
	for _, c := range d {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
