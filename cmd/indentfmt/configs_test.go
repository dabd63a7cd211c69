package main

import (
	"errors"
	"testing"

	"github.com/scott-cotton/cli"
)

func TestIndentUnit(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"4", "    "},
		{"2", "  "},
		{"0", ""},
		{"tab", "\t"},
		{`\t`, "\t"},
		{"...", "..."},
	}
	for _, tt := range tests {
		got, err := indentUnit(tt.in)
		if err != nil {
			t.Fatalf("indentUnit(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("indentUnit(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	for _, in := range []string{"-1", "65"} {
		if _, err := indentUnit(in); !errors.Is(err, cli.ErrUsage) {
			t.Errorf("indentUnit(%q): got %v, want ErrUsage", in, err)
		}
	}
}
