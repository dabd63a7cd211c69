package main

import (
	"bytes"
	"context"
	"strings"

	"github.com/indentfmt/indentfmt"
	"github.com/indentfmt/indentfmt/debug"
	"github.com/indentfmt/indentfmt/format"

	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}

	declared := declaredFormat(doc.language)
	detected := format.Detect(doc.content, declared)
	if detected == format.UnsupportedFormat {
		return nil, nil
	}

	unit := indentUnit(params.Options)
	formatted, err := indentfmt.Format(doc.content, detected,
		indentfmt.JSONIndent(unit),
		indentfmt.XMLIndent(unit),
	)
	if err != nil {
		// invalid document: no edits, the buffer stays untouched
		debug.Logf(debug.LSP(), "indentfmt-lsp: %s: %v", doc.uri, err)
		return nil, nil
	}

	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}

	lines := bytes.Count([]byte(doc.content), []byte("\n"))
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}

	// a single edit replacing the whole document
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End: protocol.Position{
					Line:      uint32(lines),
					Character: 0,
				},
			},
			NewText: formatted,
		},
	}, nil
}

func declaredFormat(languageID string) format.Format {
	switch languageID {
	case "xml":
		return format.XMLFormat
	case "json", "jsonc":
		return format.JSONFormat
	default:
		return format.PlainTextFormat
	}
}

func indentUnit(opts protocol.FormattingOptions) string {
	if !opts.InsertSpaces {
		return "\t"
	}
	size := int(opts.TabSize)
	if size <= 0 {
		size = 4
	}
	return strings.Repeat(" ", size)
}
