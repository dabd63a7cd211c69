package parse

type parseOpts struct {
	comments bool
}

type ParseOption func(*parseOpts)

// Comments makes the parser accept // and /* */ comments by running
// the jsonc pre-pass before lexing.
func Comments(v bool) ParseOption {
	return func(po *parseOpts) { po.comments = v }
}
