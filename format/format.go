// Package format names the content types the formatter understands
// and decides which pipeline an input belongs to.
package format

import (
	"errors"
	"fmt"
	"strings"
)

type Format int

const (
	UnsupportedFormat Format = iota
	XMLFormat
	JSONFormat
	PlainTextFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"x":     XMLFormat,
		"xml":   XMLFormat,
		"j":     JSONFormat,
		"json":  JSONFormat,
		"t":     PlainTextFormat,
		"text":  PlainTextFormat,
		"plain": PlainTextFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case XMLFormat:
		return []byte("xml"), nil
	case JSONFormat:
		return []byte("json"), nil
	case PlainTextFormat:
		return []byte("text"), nil
	case UnsupportedFormat:
		return []byte("unsupported"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsXML() bool  { return f == XMLFormat }
func (f Format) IsJSON() bool { return f == JSONFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case XMLFormat:
		return ".xml"
	case JSONFormat:
		return ".json"
	case PlainTextFormat:
		return ".txt"
	default:
		return ""
	}
}

// Detect resolves the format to use for sample. A declared XML or JSON
// format is trusted as-is. Otherwise the first non-space character of
// the sample decides: '<' is XML, '{' or '[' is JSON, anything else is
// unsupported.
func Detect(sample string, declared Format) Format {
	switch declared {
	case XMLFormat, JSONFormat:
		return declared
	}
	trimmed := strings.TrimSpace(sample)
	if trimmed == "" {
		return UnsupportedFormat
	}
	switch trimmed[0] {
	case '<':
		return XMLFormat
	case '{', '[':
		return JSONFormat
	default:
		return UnsupportedFormat
	}
}

// DetectFilename resolves a format from a file name's extension,
// falling back to content sniffing via Detect.
func DetectFilename(name, sample string) Format {
	switch {
	case strings.HasSuffix(name, ".xml"):
		return XMLFormat
	case strings.HasSuffix(name, ".json"), strings.HasSuffix(name, ".jsonc"):
		return JSONFormat
	}
	return Detect(sample, PlainTextFormat)
}
