// Package token provides strict JSON lexical analysis with byte
// positions suitable for error reporting.
package token
