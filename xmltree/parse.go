package xmltree

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse decodes raw input (honoring a declared encoding) and builds
// the document tree. Whitespace-only text between tags is dropped;
// comments and CDATA sections are kept as first-class nodes in their
// original positions.
func Parse(raw []byte) (*Document, error) {
	enc := DetectEncoding(raw)
	s, err := decodeInput(raw, enc)
	if err != nil {
		return nil, err
	}
	doc := &Document{
		Encoding: enc,
		HasDecl:  strings.HasPrefix(s, "<?"),
	}
	p := &parser{s: s, doc: doc}
	if err := p.run(); err != nil {
		return nil, err
	}
	return doc, nil
}

type parser struct {
	s     string
	i     int
	stack []*Node
	doc   *Document
}

func (p *parser) run() error {
	for p.i < len(p.s) {
		lt := strings.IndexByte(p.s[p.i:], '<')
		if lt < 0 {
			if err := p.text(p.s[p.i:]); err != nil {
				return err
			}
			p.i = len(p.s)
			break
		}
		if lt > 0 {
			if err := p.text(p.s[p.i : p.i+lt]); err != nil {
				return err
			}
			p.i += lt
		}
		if err := p.markup(); err != nil {
			return err
		}
	}
	if len(p.stack) > 0 {
		return newErrorf("unterminated element <%s>", p.stack[len(p.stack)-1].Name)
	}
	if p.doc.Root == nil {
		return newErrorf("no root element")
	}
	return nil
}

// markup consumes one construct starting at '<'.
func (p *parser) markup() error {
	rest := p.s[p.i:]
	switch {
	case strings.HasPrefix(rest, "<!--"):
		return p.comment()
	case strings.HasPrefix(rest, "<![CDATA["):
		return p.cdata()
	case strings.HasPrefix(rest, "<!"):
		return p.doctype()
	case strings.HasPrefix(rest, "<?"):
		return p.procInst()
	case strings.HasPrefix(rest, "</"):
		return p.closeTag()
	default:
		return p.openTag()
	}
}

func (p *parser) text(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if len(p.stack) == 0 {
		return newErrorf("text outside root element")
	}
	top := p.stack[len(p.stack)-1]
	top.Children = append(top.Children, &Node{Type: TextType, Text: s})
	return nil
}

func (p *parser) comment() error {
	end := strings.Index(p.s[p.i+4:], "-->")
	if end < 0 {
		return newErrorf("unterminated comment")
	}
	body := p.s[p.i+4 : p.i+4+end]
	p.i += 4 + end + 3
	return p.place(&Node{Type: CommentType, Text: body})
}

func (p *parser) cdata() error {
	end := strings.Index(p.s[p.i+9:], "]]>")
	if end < 0 {
		return newErrorf("unterminated CDATA section")
	}
	body := p.s[p.i+9 : p.i+9+end]
	p.i += 9 + end + 3
	if len(p.stack) == 0 {
		return newErrorf("CDATA section outside root element")
	}
	top := p.stack[len(p.stack)-1]
	top.Children = append(top.Children, &Node{Type: CDATAType, Text: body})
	return nil
}

func (p *parser) doctype() error {
	if p.doc.Root != nil || len(p.stack) > 0 {
		return newErrorf("misplaced markup declaration")
	}
	start := p.i
	inSubset := false
	for j := p.i + 2; j < len(p.s); j++ {
		switch p.s[j] {
		case '[':
			inSubset = true
		case ']':
			inSubset = false
		case '>':
			if !inSubset {
				p.doc.Doctype = p.s[start : j+1]
				p.i = j + 1
				return nil
			}
		}
	}
	return newErrorf("unterminated markup declaration")
}

func (p *parser) procInst() error {
	end := strings.Index(p.s[p.i+2:], "?>")
	if end < 0 {
		return newErrorf("unterminated processing instruction")
	}
	body := p.s[p.i+2 : p.i+2+end]
	atStart := p.i == 0
	p.i += 2 + end + 2
	target, content := splitName(body)
	if target == "" {
		return newErrorf("processing instruction has no target")
	}
	if atStart && strings.EqualFold(target, "xml") {
		// the XML declaration; recorded via HasDecl, not a tree node
		return nil
	}
	return p.place(&Node{Type: ProcInstType, Name: target, Text: strings.TrimLeft(content, " \t\r\n")})
}

func (p *parser) closeTag() error {
	j := p.i + 2
	name, j, err := p.name(j)
	if err != nil {
		return err
	}
	j = skipSpace(p.s, j)
	if j >= len(p.s) || p.s[j] != '>' {
		return newErrorf("malformed closing tag </%s>", name)
	}
	p.i = j + 1
	if len(p.stack) == 0 {
		return newErrorf("unexpected closing tag </%s>", name)
	}
	top := p.stack[len(p.stack)-1]
	if top.Name != name {
		return newErrorf("opening tag <%s> ended by </%s>", top.Name, name)
	}
	p.stack = p.stack[:len(p.stack)-1]
	return nil
}

func (p *parser) openTag() error {
	j := p.i + 1
	name, j, err := p.name(j)
	if err != nil {
		return err
	}
	node := &Node{Type: ElementType, Name: name}
	for {
		j = skipSpace(p.s, j)
		if j >= len(p.s) {
			return newErrorf("unterminated tag <%s>", name)
		}
		switch p.s[j] {
		case '>':
			p.i = j + 1
			if err := p.place(node); err != nil {
				return err
			}
			p.stack = append(p.stack, node)
			return nil
		case '/':
			if j+1 >= len(p.s) || p.s[j+1] != '>' {
				return newErrorf("malformed tag <%s>", name)
			}
			p.i = j + 2
			return p.place(node)
		default:
			var attr Attr
			attr.Name, j, err = p.name(j)
			if err != nil {
				return err
			}
			j = skipSpace(p.s, j)
			if j >= len(p.s) || p.s[j] != '=' {
				return newErrorf("attribute %q of <%s> has no value", attr.Name, name)
			}
			j = skipSpace(p.s, j+1)
			if j >= len(p.s) || (p.s[j] != '"' && p.s[j] != '\'') {
				return newErrorf("attribute %q of <%s> is not quoted", attr.Name, name)
			}
			q := p.s[j]
			end := strings.IndexByte(p.s[j+1:], q)
			if end < 0 {
				return newErrorf("unterminated attribute %q of <%s>", attr.Name, name)
			}
			attr.Value = p.s[j+1 : j+1+end]
			j += 1 + end + 1
			node.SetAttr(attr.Name, attr.Value)
		}
	}
}

// place routes a completed node either into the open element or, at
// the top level, into the document's root/prolog/epilog slots.
func (p *parser) place(n *Node) error {
	if len(p.stack) > 0 {
		top := p.stack[len(p.stack)-1]
		top.Children = append(top.Children, n)
		return nil
	}
	if n.Type == ElementType {
		if p.doc.Root != nil {
			return newErrorf("extra content after root element")
		}
		p.doc.Root = n
		return nil
	}
	if p.doc.Root == nil {
		p.doc.Prolog = append(p.doc.Prolog, n)
	} else {
		p.doc.Epilog = append(p.doc.Epilog, n)
	}
	return nil
}

func (p *parser) name(j int) (string, int, error) {
	start := j
	r, size := utf8.DecodeRuneInString(p.s[j:])
	if size == 0 || !isNameStart(r) {
		return "", 0, newErrorf("invalid or missing name")
	}
	j += size
	for j < len(p.s) {
		r, size = utf8.DecodeRuneInString(p.s[j:])
		if !isNameChar(r) {
			break
		}
		j += size
	}
	return p.s[start:j], j, nil
}

func splitName(s string) (string, string) {
	for i, r := range s {
		if i == 0 {
			if !isNameStart(r) {
				return "", s
			}
			continue
		}
		if !isNameChar(r) {
			return s[:i], s[i:]
		}
	}
	return s, ""
}

func isNameStart(r rune) bool {
	return r == '_' || r == ':' || unicode.IsLetter(r)
}

func isNameChar(r rune) bool {
	return isNameStart(r) || r == '-' || r == '.' || unicode.IsDigit(r)
}

func skipSpace(s string, j int) int {
	for j < len(s) {
		switch s[j] {
		case ' ', '\t', '\r', '\n':
			j++
		default:
			return j
		}
	}
	return j
}
