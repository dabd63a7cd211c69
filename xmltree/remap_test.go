package xmltree

import "testing"

func TestReindent(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		indent string
		want   string
	}{
		{
			name:   "tabs",
			in:     "<r>\n  <a>\n    <b/>\n  </a>\n</r>",
			indent: "\t",
			want:   "<r>\n\t<a>\n\t\t<b/>\n\t</a>\n</r>",
		},
		{
			name:   "four spaces",
			in:     "<r>\n  <a/>\n</r>",
			indent: "    ",
			want:   "<r>\n    <a/>\n</r>",
		},
		{
			name:   "baseline is a no-op",
			in:     "<r>\n  <a/>\n</r>",
			indent: "  ",
			want:   "<r>\n  <a/>\n</r>",
		},
		{
			name:   "multiline text is untouched",
			in:     "<r>\n  <t>line1\n  line2</t>\n</r>",
			indent: "\t",
			want:   "<r>\n\t<t>line1\n  line2</t>\n</r>",
		},
		{
			name:   "cdata interior is untouched",
			in:     "<r>\n  <x><![CDATA[line1\n  <fake>\n  line3]]></x>\n</r>",
			indent: "\t",
			want:   "<r>\n\t<x><![CDATA[line1\n  <fake>\n  line3]]></x>\n</r>",
		},
		{
			name:   "single-line cdata does not swallow the rest",
			in:     "<r>\n  <x><![CDATA[a]]></x>\n  <y/>\n</r>",
			indent: "\t",
			want:   "<r>\n\t<x><![CDATA[a]]></x>\n\t<y/>\n</r>",
		},
		{
			name:   "cdata close and reopen on one line",
			in:     "<r>\n  <x><![CDATA[a\nb]]><![CDATA[c\nd]]></x>\n  <y/>\n</r>",
			indent: "\t",
			want:   "<r>\n\t<x><![CDATA[a\nb]]><![CDATA[c\nd]]></x>\n\t<y/>\n</r>",
		},
	}
	for _, tt := range tests {
		if got := Reindent(tt.in, tt.indent); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestRemapLine(t *testing.T) {
	tests := []struct {
		in     string
		indent string
		want   string
	}{
		{"  <a/>", "\t", "\t<a/>"},
		{"      <a/>", "\t", "\t\t\t<a/>"},
		{"<a/>", "\t", "<a/>"},
		{"  plain text", "\t", "  plain text"},
		{"   <a/>", "\t", "\t <a/>"},
		{"  ", "\t", "  "},
	}
	for _, tt := range tests {
		if got := remapLine(tt.in, tt.indent); got != tt.want {
			t.Errorf("remapLine(%q, %q) = %q, want %q", tt.in, tt.indent, got, tt.want)
		}
	}
}
