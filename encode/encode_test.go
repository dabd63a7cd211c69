package encode

import (
	"strings"
	"testing"

	"github.com/indentfmt/indentfmt/parse"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{
			in:   `{"b": 1, "a": [true, null]}`,
			want: "{\n    \"b\": 1,\n    \"a\": [\n        true,\n        null\n    ]\n}",
		},
		{
			in:   `[]`,
			want: "[]",
		},
		{
			in:   `{}`,
			want: "{}",
		},
		{
			in:   `{"a": {}, "b": []}`,
			want: "{\n    \"a\": {},\n    \"b\": []\n}",
		},
		{
			in:   `"x"`,
			want: `"x"`,
		},
		{
			in:   `-1.5e10`,
			want: `-1.5e10`,
		},
	}
	for _, tt := range tests {
		node, err := parse.Parse([]byte(tt.in))
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.in, err)
		}
		if got := MustString(node); got != tt.want {
			t.Errorf("Encode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEncodeIndent(t *testing.T) {
	node, err := parse.Parse([]byte(`{"a": 1}`))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		opt  EncodeOption
		want string
	}{
		{Indent("\t"), "{\n\t\"a\": 1\n}"},
		{IndentWidth(2), "{\n  \"a\": 1\n}"},
		{IndentWidth(0), "{\n\"a\": 1\n}"},
	}
	for _, tt := range tests {
		if got := MustString(node, tt.opt); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestEncodeSortKeys(t *testing.T) {
	node, err := parse.Parse([]byte(`{"b": {"y": 1, "x": 2}, "a": 3}`))
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n    \"a\": 3,\n    \"b\": {\n        \"x\": 2,\n        \"y\": 1\n    }\n}"
	if got := MustString(node, SortKeys(true)); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	// the input node is untouched
	if node.Fields[0].String != "b" {
		t.Errorf("SortKeys mutated the input node: first key %q", node.Fields[0].String)
	}
}

func TestEncodeNonASCII(t *testing.T) {
	node, err := parse.Parse([]byte(`{"name": "café"}`))
	if err != nil {
		t.Fatal(err)
	}
	got := MustString(node)
	if !strings.Contains(got, "café") {
		t.Errorf("non-ASCII escaped: %q", got)
	}
}

func TestEncodeIdempotent(t *testing.T) {
	inputs := []string{
		`{"z":1,"a":[{"k":"v"},2,null,true,"s"],"n":1e14}`,
		`[{"deep":{"deeper":{"deepest":[]}}}]`,
	}
	for _, in := range inputs {
		node, err := parse.Parse([]byte(in))
		if err != nil {
			t.Fatal(err)
		}
		once := MustString(node)
		node2, err := parse.Parse([]byte(once))
		if err != nil {
			t.Fatalf("reparse: %v", err)
		}
		if twice := MustString(node2); twice != once {
			t.Errorf("not idempotent:\n%s\nvs\n%s", once, twice)
		}
	}
}
