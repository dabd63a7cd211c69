package xmltree

import (
	"errors"
	"strings"
	"testing"
)

func TestParseEncode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{
			in:   `<root><a>text</a><b/></root>`,
			want: "<root>\n  <a>text</a>\n  <b/>\n</root>",
		},
		{
			in:   "<root>\n   <a>   </a>\n</root>",
			want: "<root>\n  <a/>\n</root>",
		},
		{
			in:   `<?xml version="1.0" encoding="UTF-8"?><root/>`,
			want: "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n<root/>",
		},
		{
			in:   `<root/>`,
			want: `<root/>`,
		},
		{
			in:   `<r a="1" b='2'/>`,
			want: `<r a="1" b="2"/>`,
		},
		{
			in:   `<r><!-- note --><a/></r>`,
			want: "<r>\n  <!-- note -->\n  <a/>\n</r>",
		},
		{
			in:   `<r><![CDATA[a < b]]></r>`,
			want: `<r><![CDATA[a < b]]></r>`,
		},
		{
			in:   `<!DOCTYPE note SYSTEM "note.dtd"><note/>`,
			want: "<!DOCTYPE note SYSTEM \"note.dtd\">\n<note/>",
		},
		{
			in:   `<?xml version="1.0"?><?pi data?><r/>`,
			want: "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n<?pi data?>\n<r/>",
		},
		{
			in:   `<r/><!-- end -->`,
			want: "<r/>\n<!-- end -->",
		},
		{
			in:   `<r><a><b>deep</b></a></r>`,
			want: "<r>\n  <a>\n    <b>deep</b>\n  </a>\n</r>",
		},
		{
			// entities pass through untouched
			in:   `<r>a &amp; b</r>`,
			want: `<r>a &amp; b</r>`,
		},
	}
	for _, tt := range tests {
		doc, err := Parse([]byte(tt.in))
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.in, err)
		}
		if got := Encode(doc); got != tt.want {
			t.Errorf("Encode(Parse(%q)) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		`<a><b></a>`,
		`<a>`,
		`</a>`,
		`hi<r/>`,
		`<a/><b/>`,
		`<a/>tail`,
		`<a x=1/>`,
		`<a x/>`,
		`<a x="1/>`,
		`<a><![CDATA[x]]></a><![CDATA[y]]>`,
		`<!-- only a comment -->`,
		``,
		`<r><!-- unterminated</r>`,
		`<1bad/>`,
	}
	for _, in := range tests {
		_, err := Parse([]byte(in))
		if err == nil {
			t.Errorf("Parse(%q): expected error", in)
			continue
		}
		if !errors.Is(err, ErrXML) {
			t.Errorf("Parse(%q): %v is not ErrXML", in, err)
		}
	}
}

func TestParseMismatchMessage(t *testing.T) {
	_, err := Parse([]byte(`<a><b></a>`))
	if err == nil {
		t.Fatal("expected error")
	}
	want := "opening tag <b> ended by </a>"
	if !strings.Contains(err.Error(), want) {
		t.Errorf("error %q does not mention %q", err.Error(), want)
	}
}

func TestParseDuplicateAttr(t *testing.T) {
	doc, err := Parse([]byte(`<r a="1" b="2" a="3"/>`))
	if err != nil {
		t.Fatal(err)
	}
	// last value wins, first position kept
	if got := Encode(doc); got != `<r a="3" b="2"/>` {
		t.Errorf("got %q", got)
	}
}

func TestDetectEncoding(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`<?xml version="1.0" encoding="ISO-8859-1"?><r/>`, "iso-8859-1"},
		{`<?xml version='1.0' encoding='UTF-16'?><r/>`, "utf-16"},
		{`<?xml version="1.0"?><r/>`, "utf-8"},
		{`<r/>`, "utf-8"},
		// only the first line is inspected
		{"<r>\n<?xml encoding=\"latin1\"?>\n</r>", "utf-8"},
	}
	for _, tt := range tests {
		if got := DetectEncoding([]byte(tt.in)); got != tt.want {
			t.Errorf("DetectEncoding(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseLatin1(t *testing.T) {
	raw := []byte(`<?xml version="1.0" encoding="ISO-8859-1"?>` + "\n" + `<r>caf`)
	raw = append(raw, 0xE9)
	raw = append(raw, []byte(`</r>`)...)

	doc, err := Parse(raw)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Encoding != "iso-8859-1" {
		t.Errorf("encoding = %q", doc.Encoding)
	}
	got := Encode(doc)
	if !strings.Contains(got, "café") {
		t.Errorf("text not decoded to UTF-8: %q", got)
	}
	if !strings.Contains(got, `encoding="iso-8859-1"`) {
		t.Errorf("declaration lost the source label: %q", got)
	}
}

func TestParseBadEncoding(t *testing.T) {
	_, err := Parse([]byte(`<?xml version="1.0" encoding="no-such-enc"?><r/>`))
	if !errors.Is(err, ErrBadEncoding) {
		t.Errorf("got %v, want ErrBadEncoding", err)
	}
}

func TestEncodeIdempotent(t *testing.T) {
	inputs := []string{
		`<?xml version="1.0"?><root><a k="v">text</a><b><c/><!-- x --></b></root>`,
		`<r><![CDATA[keep  this
 exactly]]></r>`,
		`<r><t>line1
  line2</t></r>`,
	}
	for _, in := range inputs {
		doc, err := Parse([]byte(in))
		if err != nil {
			t.Fatal(err)
		}
		once := Encode(doc)
		doc2, err := Parse([]byte(once))
		if err != nil {
			t.Fatalf("reparse %q: %v", once, err)
		}
		if twice := Encode(doc2); twice != once {
			t.Errorf("not idempotent:\n%s\nvs\n%s", once, twice)
		}
	}
}
