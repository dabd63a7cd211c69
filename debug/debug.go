// Package debug gates diagnostic output on environment variables so
// the library itself stays silent.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Format bool
	LSP    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Format = boolEnv("INDENTFMT_DEBUG_FORMAT")
	d.LSP = boolEnv("INDENTFMT_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Format() bool {
	return d.Format
}

func LSP() bool {
	return d.LSP
}

// Logf writes to stderr when enabled is true.
func Logf(enabled bool, format string, args ...any) {
	if !enabled {
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
