package format

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		sample   string
		declared Format
		want     Format
	}{
		{"<root/>", PlainTextFormat, XMLFormat},
		{"  \n\t<root/>", PlainTextFormat, XMLFormat},
		{`{"a": 1}`, PlainTextFormat, JSONFormat},
		{"[1, 2]", PlainTextFormat, JSONFormat},
		{"hello world", PlainTextFormat, UnsupportedFormat},
		{"", PlainTextFormat, UnsupportedFormat},
		{"   ", PlainTextFormat, UnsupportedFormat},
		// declared formats are trusted over content
		{"hello world", XMLFormat, XMLFormat},
		{"<root/>", JSONFormat, JSONFormat},
		{"{}", UnsupportedFormat, JSONFormat},
	}
	for _, tt := range tests {
		if got := Detect(tt.sample, tt.declared); got != tt.want {
			t.Errorf("Detect(%q, %s) = %s, want %s", tt.sample, tt.declared, got, tt.want)
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, f := range []Format{XMLFormat, JSONFormat, PlainTextFormat} {
		pf, err := ParseFormat(f.String())
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", f.String(), err)
		}
		if pf != f {
			t.Errorf("round trip %s != %s", pf, f)
		}
	}
	if _, err := ParseFormat("yaml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestDetectFilename(t *testing.T) {
	tests := []struct {
		name   string
		sample string
		want   Format
	}{
		{"a.xml", "whatever", XMLFormat},
		{"a.json", "whatever", JSONFormat},
		{"a.jsonc", "whatever", JSONFormat},
		{"a.txt", "<r/>", XMLFormat},
		{"a.txt", "plain", UnsupportedFormat},
	}
	for _, tt := range tests {
		if got := DetectFilename(tt.name, tt.sample); got != tt.want {
			t.Errorf("DetectFilename(%q, %q) = %s, want %s", tt.name, tt.sample, got, tt.want)
		}
	}
}
