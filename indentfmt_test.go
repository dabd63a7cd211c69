package indentfmt

import (
	"errors"
	"testing"

	"github.com/indentfmt/indentfmt/format"
	"github.com/indentfmt/indentfmt/parse"
	"github.com/indentfmt/indentfmt/xmltree"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts []Option
		want string
	}{
		{
			name: "json defaults",
			in:   `{"b":1,"a":[true,null]}`,
			want: "{\n    \"b\": 1,\n    \"a\": [\n        true,\n        null\n    ]\n}",
		},
		{
			name: "json tab indent",
			in:   `{"a":1}`,
			opts: []Option{JSONIndent("\t")},
			want: "{\n\t\"a\": 1\n}",
		},
		{
			name: "json sorted",
			in:   `{"b":1,"a":2}`,
			opts: []Option{SortKeys(true)},
			want: "{\n    \"a\": 2,\n    \"b\": 1\n}",
		},
		{
			name: "xml defaults",
			in:   `<root><a>text</a><b/></root>`,
			want: "<root>\n    <a>text</a>\n    <b/>\n</root>",
		},
		{
			name: "xml tab indent",
			in:   `<root><a/></root>`,
			opts: []Option{XMLIndent("\t")},
			want: "<root>\n\t<a/>\n</root>",
		},
		{
			name: "surrounding whitespace trimmed",
			in:   "  \n<root><a/></root>\n ",
			want: "<root>\n    <a/>\n</root>",
		},
		{
			name: "plain text unchanged",
			in:   "hello world\n",
			want: "hello world\n",
		},
		{
			name: "empty unchanged",
			in:   "",
			want: "",
		},
	}
	for _, tt := range tests {
		got, err := Format(tt.in, format.PlainTextFormat, tt.opts...)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestFormatErrors(t *testing.T) {
	if _, err := Format(`{"a": }`, format.PlainTextFormat); !errors.Is(err, parse.ErrParse) {
		t.Errorf("json: got %v, want ErrParse", err)
	}
	if _, err := Format(`<a><b></a>`, format.PlainTextFormat); !errors.Is(err, xmltree.ErrXML) {
		t.Errorf("xml: got %v, want ErrXML", err)
	}
}

func TestFormatDeclared(t *testing.T) {
	// a declared format overrides content sniffing: this is not valid
	// JSON even though it starts with '<' looking like XML
	_, err := Format(`<root/>`, format.JSONFormat)
	if err == nil {
		t.Error("expected JSON parse error for declared JSON format")
	}
}

func TestFormatJSONComments(t *testing.T) {
	got, err := FormatJSON("{\n  // comment\n  \"a\": 1\n}")
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n    \"a\": 1\n}"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatXMLCDATA(t *testing.T) {
	in := []byte("<r><x><![CDATA[keep  <this>\n  exactly]]></x><y/></r>")
	got, err := FormatXML(in, XMLIndent("\t"))
	if err != nil {
		t.Fatal(err)
	}
	want := "<r>\n\t<x><![CDATA[keep  <this>\n  exactly]]></x>\n\t<y/>\n</r>"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatIdempotent(t *testing.T) {
	inputs := []string{
		`{"z":1,"a":{"b":[1,2,{"c":"d"}]}}`,
		`<?xml version="1.0"?><root a="1"><b>text</b><c><d/></c></root>`,
	}
	for _, in := range inputs {
		once, err := Format(in, format.PlainTextFormat)
		if err != nil {
			t.Fatal(err)
		}
		twice, err := Format(once, format.PlainTextFormat)
		if err != nil {
			t.Fatal(err)
		}
		if twice != once {
			t.Errorf("not idempotent:\n%s\nvs\n%s", once, twice)
		}
	}
}
