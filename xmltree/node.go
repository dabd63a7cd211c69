// Package xmltree parses XML into a tree and re-serializes it with
// configurable indentation. CDATA payloads and multiline text are
// carried byte-for-byte; only structural whitespace is rewritten.
package xmltree

type Type int

const (
	ElementType Type = iota
	TextType
	CommentType
	CDATAType
	ProcInstType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ElementType:  "Element",
		TextType:     "Text",
		CommentType:  "Comment",
		CDATAType:    "CDATA",
		ProcInstType: "ProcInst",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

// Attr is one attribute as written, order preserved by the Attrs
// slice on Node.
type Attr struct {
	Name  string
	Value string
}

type Node struct {
	Type     Type
	Name     string // element tag or processing instruction target
	Attrs    []Attr
	Children []*Node

	// Text is the raw payload of Text, Comment, CDATA and ProcInst
	// nodes. Entities are passed through undecoded so re-emitting is
	// exact.
	Text string
}

// SetAttr appends an attribute, or overwrites the value of an earlier
// attribute with the same name (last wins, first position kept).
func (n *Node) SetAttr(name, value string) {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
}

// Document is one parsed XML document.
type Document struct {
	Root *Node

	// Prolog and Epilog hold comments and processing instructions
	// found outside the root element, in order.
	Prolog []*Node
	Epilog []*Node

	// Doctype is the raw <!DOCTYPE ...> declaration, if any.
	Doctype string

	// Encoding is the resolved (lowercased) encoding label and
	// HasDecl records whether the input began with an XML
	// declaration; together they control whether and how the
	// serializer re-emits one.
	Encoding string
	HasDecl  bool
}
