package xmltree

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html/charset"
)

// declEncoding matches the encoding pseudo-attribute of an XML
// declaration at the start of input, single or double quoted.
var declEncoding = regexp.MustCompile(`(?i)^<\?.*?encoding=['"](.*?)['"].*?\?>`)

// DetectEncoding inspects the input up to the first line break for a
// declaration naming an encoding and returns its lowercased label,
// defaulting to utf-8. The prefix is ASCII-safe by construction, so
// scanning it before decoding the body is sound.
func DetectEncoding(raw []byte) string {
	prefix := raw
	if idx := bytes.IndexAny(raw, "\r\n"); idx >= 0 {
		prefix = raw[:idx]
	}
	m := declEncoding.FindSubmatch(prefix)
	if m == nil {
		return "utf-8"
	}
	return strings.ToLower(string(m[1]))
}

// decodeInput converts raw bytes in the named encoding to UTF-8.
func decodeInput(raw []byte, label string) (string, error) {
	switch label {
	case "", "utf-8", "utf8":
		return string(raw), nil
	}
	e, _ := charset.Lookup(label)
	if e == nil {
		return "", fmt.Errorf("%w: %q", ErrBadEncoding, label)
	}
	out, err := e.NewDecoder().Bytes(raw)
	if err != nil {
		return "", newErrorf("cannot decode input as %s: %v", label, err)
	}
	return string(out), nil
}
