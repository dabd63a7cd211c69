package xmltree

import "strings"

const (
	cdataOpen  = "<![CDATA["
	cdataClose = "]]>"
)

// Reindent rewrites the two-space baseline indentation of an encoded
// document to the given unit, line by line. Only structural lines are
// touched: a leading pair of spaces is replaced when the remaining
// leading run ends at a '<'. Lines inside a CDATA interior, and the
// leading whitespace of multiline text payloads, are copied verbatim.
func Reindent(s, indent string) string {
	if indent == baseIndent {
		return s
	}
	lines := strings.Split(s, "\n")
	inCdata := false
	for i, line := range lines {
		if inCdata {
			// verbatim until the line carrying the close marker
			if idx := strings.LastIndex(line, cdataClose); idx >= 0 {
				inCdata = opensCdata(line[idx+len(cdataClose):])
			}
			continue
		}
		lines[i] = remapLine(line, indent)
		inCdata = opensCdata(line)
	}
	return strings.Join(lines, "\n")
}

// opensCdata reports whether s starts a CDATA section that does not
// close on the same line.
func opensCdata(s string) bool {
	idx := strings.LastIndex(s, cdataOpen)
	if idx < 0 {
		return false
	}
	return !strings.Contains(s[idx+len(cdataOpen):], cdataClose)
}

// remapLine converts each leading space pair to one indent unit, but
// only when the leading run is structural indentation, i.e. it ends
// at a '<'. An odd trailing space is kept so depth is preserved
// exactly.
func remapLine(line, indent string) string {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	if n == 0 || n >= len(line) || line[n] != '<' {
		return line
	}
	var b strings.Builder
	for range n / 2 {
		b.WriteString(indent)
	}
	if n%2 == 1 {
		b.WriteString(" ")
	}
	b.WriteString(line[n:])
	return b.String()
}
