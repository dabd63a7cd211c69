package encode

import "strings"

type EncodeOption func(*EncState)

// Indent sets the literal indent unit, e.g. "\t" or "  ".
func Indent(unit string) EncodeOption {
	return func(es *EncState) { es.indent = unit }
}

// IndentWidth sets the indent unit to n spaces.
func IndentWidth(n int) EncodeOption {
	return func(es *EncState) { es.indent = strings.Repeat(" ", n) }
}

// SortKeys orders object keys lexicographically instead of keeping
// their insertion order.
func SortKeys(v bool) EncodeOption {
	return func(es *EncState) { es.sortKeys = v }
}
