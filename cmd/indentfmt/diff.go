package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func init() {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
}

// printDiff writes a line-oriented diff between the original input
// and its formatted form, red for removals and green for additions.
func printDiff(w io.Writer, name, from, to string) error {
	dmp := diffpatch.New()
	a, b, lineIndex := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineIndex)
	if _, err := fmt.Fprintf(w, "--- %s\n+++ %s (formatted)\n", name, name); err != nil {
		return err
	}
	for _, d := range diffs {
		var err error
		switch d.Type {
		case diffpatch.DiffDelete:
			err = writeLines(w, "-", d.Text, color.RedString)
		case diffpatch.DiffInsert:
			err = writeLines(w, "+", d.Text, color.GreenString)
		case diffpatch.DiffEqual:
			err = writeLines(w, " ", d.Text, fmt.Sprintf)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func writeLines(w io.Writer, prefix, text string, paint func(string, ...any) string) error {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for _, ln := range lines {
		if _, err := fmt.Fprintln(w, paint("%s%s", prefix, ln)); err != nil {
			return err
		}
	}
	return nil
}
