package xmltree

import (
	"strings"
)

const baseIndent = "  "

// Encode pretty-prints the document with the fixed two-space baseline
// indent: one element per line, attributes inline in source order,
// self-closing childless elements. Elements with text or CDATA
// children are emitted inline so their payloads keep their exact
// bytes. The declaration is re-emitted, with the resolved encoding,
// only when the input had one. No trailing newline.
func Encode(doc *Document) string {
	var b strings.Builder
	if doc.HasDecl {
		b.WriteString("<?xml version=\"1.0\" encoding=\"")
		b.WriteString(doc.Encoding)
		b.WriteString("\"?>\n")
	}
	if doc.Doctype != "" {
		b.WriteString(doc.Doctype)
		b.WriteString("\n")
	}
	for _, n := range doc.Prolog {
		encodeInline(&b, n)
		b.WriteString("\n")
	}
	encodeNode(&b, doc.Root, 0)
	for _, n := range doc.Epilog {
		b.WriteString("\n")
		encodeInline(&b, n)
	}
	return b.String()
}

func encodeNode(b *strings.Builder, n *Node, depth int) {
	ind := strings.Repeat(baseIndent, depth)
	b.WriteString(ind)
	switch n.Type {
	case ElementType:
		encodeElement(b, n, depth)
	default:
		encodeInline(b, n)
	}
}

func encodeElement(b *strings.Builder, n *Node, depth int) {
	writeOpen(b, n)
	switch {
	case len(n.Children) == 0:
		b.WriteString("/>")
	case blockLayout(n):
		b.WriteString(">")
		for _, c := range n.Children {
			b.WriteString("\n")
			encodeNode(b, c, depth+1)
		}
		b.WriteString("\n")
		b.WriteString(strings.Repeat(baseIndent, depth))
		b.WriteString("</")
		b.WriteString(n.Name)
		b.WriteString(">")
	default:
		b.WriteString(">")
		for _, c := range n.Children {
			encodeInline(b, c)
		}
		b.WriteString("</")
		b.WriteString(n.Name)
		b.WriteString(">")
	}
}

// blockLayout reports whether every child can live on its own line.
// Any text or CDATA child forces inline layout, since inserting
// newlines around character data would change its meaning.
func blockLayout(n *Node) bool {
	for _, c := range n.Children {
		switch c.Type {
		case TextType, CDATAType:
			return false
		}
	}
	return true
}

func encodeInline(b *strings.Builder, n *Node) {
	switch n.Type {
	case ElementType:
		writeOpen(b, n)
		if len(n.Children) == 0 {
			b.WriteString("/>")
			return
		}
		b.WriteString(">")
		for _, c := range n.Children {
			encodeInline(b, c)
		}
		b.WriteString("</")
		b.WriteString(n.Name)
		b.WriteString(">")
	case TextType:
		b.WriteString(n.Text)
	case CommentType:
		b.WriteString("<!--")
		b.WriteString(n.Text)
		b.WriteString("-->")
	case CDATAType:
		b.WriteString("<![CDATA[")
		b.WriteString(n.Text)
		b.WriteString("]]>")
	case ProcInstType:
		b.WriteString("<?")
		b.WriteString(n.Name)
		if n.Text != "" {
			b.WriteString(" ")
			b.WriteString(n.Text)
		}
		b.WriteString("?>")
	}
}

func writeOpen(b *strings.Builder, n *Node) {
	b.WriteString("<")
	b.WriteString(n.Name)
	for _, a := range n.Attrs {
		b.WriteString(" ")
		b.WriteString(a.Name)
		b.WriteString("=\"")
		b.WriteString(a.Value)
		b.WriteString("\"")
	}
}
