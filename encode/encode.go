// Package encode serializes ir trees back to JSON text.
package encode

import (
	"io"
	"strings"

	"github.com/indentfmt/indentfmt/ir"
	"github.com/indentfmt/indentfmt/token"
)

type EncState struct {
	depth    int
	indent   string
	sortKeys bool
}

// Encode writes node as pretty-printed JSON. Object keys come out in
// insertion order unless SortKeys is set; number literals and string
// contents are reproduced from the source (non-ASCII stays literal).
// No trailing newline is written.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: strings.Repeat(" ", 4),
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.sortKeys {
		node = node.Clone()
		node.SortFields()
	}
	return encode(node, w, es)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		return writeString(w, token.Quote(node.String))
	case ir.NumberType:
		return writeString(w, node.Number)
	case ir.BoolType:
		if node.Bool {
			return writeString(w, "true")
		}
		return writeString(w, "false")
	case ir.NullType:
		return writeString(w, "null")
	default:
		panic("type")
	}
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Fields) == 0 {
		return writeString(w, "{}")
	}
	if err := writeString(w, "{"); err != nil {
		return err
	}
	es.depth++
	for i := range node.Fields {
		if i > 0 {
			if err := writeString(w, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeString(w, token.Quote(node.Fields[i].String)); err != nil {
			return err
		}
		if err := writeString(w, ": "); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, "}")
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return writeString(w, "[]")
	}
	if err := writeString(w, "["); err != nil {
		return err
	}
	es.depth++
	for i, yv := range node.Values {
		if i > 0 {
			if err := writeString(w, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(yv, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, "]")
}

func writeNL(w io.Writer, es *EncState) error {
	return writeString(w, "\n"+strings.Repeat(es.indent, es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
