// Package parse builds ir trees from strict JSON text.
package parse

import (
	"errors"

	"github.com/indentfmt/indentfmt/ir"
	"github.com/indentfmt/indentfmt/jsonc"
	"github.com/indentfmt/indentfmt/token"
)

// Parse decodes a single JSON document. Object key insertion order is
// captured in the resulting ir.Node; on a duplicate key the last
// value wins at the first key's position. Trailing input after the
// document is an error.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.comments {
		d = jsonc.StripComments(d)
	}
	toks, _, err := token.Tokenize(d)
	if err != nil {
		var terr *token.Error
		if errors.As(err, &terr) {
			return nil, newError(terr.Err.Error(), terr.Pos)
		}
		return nil, newError(err.Error(), nil)
	}
	if len(toks) == 0 {
		return nil, ErrEmptyDoc
	}
	off := 0
	res, err := parseValue(toks, &off)
	if err != nil {
		return nil, err
	}
	if off != len(toks) {
		return nil, newError("trailing content after document", toks[off].Pos)
	}
	return res, nil
}

func parseValue(toks []token.Token, off *int) (*ir.Node, error) {
	if *off >= len(toks) {
		return nil, newError("unexpected end of document", lastPos(toks))
	}
	tok := &toks[*off]
	switch tok.Type {
	case token.TLCurl:
		return parseObject(toks, off)
	case token.TLBrack:
		return parseArray(toks, off)
	case token.TString:
		v, err := token.Unquote(tok.Bytes)
		if err != nil {
			return nil, newError(err.Error(), tok.Pos)
		}
		*off++
		return ir.FromString(v), nil
	case token.TNumber:
		*off++
		return ir.FromNumber(string(tok.Bytes)), nil
	case token.TTrue:
		*off++
		return ir.FromBool(true), nil
	case token.TFalse:
		*off++
		return ir.FromBool(false), nil
	case token.TNull:
		*off++
		return ir.Null(), nil
	default:
		return nil, newError("unexpected "+tok.Type.String(), tok.Pos)
	}
}

func parseObject(toks []token.Token, off *int) (*ir.Node, error) {
	*off++ // {
	res := &ir.Node{Type: ir.ObjectType}
	if *off < len(toks) && toks[*off].Type == token.TRCurl {
		*off++
		return res, nil
	}
	for {
		if *off >= len(toks) {
			return nil, newError("unterminated object", lastPos(toks))
		}
		keyTok := &toks[*off]
		if keyTok.Type != token.TString {
			return nil, newError("object key must be a string", keyTok.Pos)
		}
		key, err := token.Unquote(keyTok.Bytes)
		if err != nil {
			return nil, newError(err.Error(), keyTok.Pos)
		}
		*off++
		if *off >= len(toks) || toks[*off].Type != token.TColon {
			return nil, newError("expected ':' after object key", posAt(toks, *off))
		}
		*off++
		val, err := parseValue(toks, off)
		if err != nil {
			return nil, err
		}
		res.Append(key, val)
		if *off >= len(toks) {
			return nil, newError("unterminated object", lastPos(toks))
		}
		switch toks[*off].Type {
		case token.TComma:
			*off++
		case token.TRCurl:
			*off++
			return res, nil
		default:
			return nil, newError("expected ',' or '}'", toks[*off].Pos)
		}
	}
}

func parseArray(toks []token.Token, off *int) (*ir.Node, error) {
	*off++ // [
	res := &ir.Node{Type: ir.ArrayType}
	if *off < len(toks) && toks[*off].Type == token.TRBrack {
		*off++
		return res, nil
	}
	for {
		val, err := parseValue(toks, off)
		if err != nil {
			return nil, err
		}
		res.Values = append(res.Values, val)
		if *off >= len(toks) {
			return nil, newError("unterminated array", lastPos(toks))
		}
		switch toks[*off].Type {
		case token.TComma:
			*off++
		case token.TRBrack:
			*off++
			return res, nil
		default:
			return nil, newError("expected ',' or ']'", toks[*off].Pos)
		}
	}
}

func posAt(toks []token.Token, off int) *token.Pos {
	if off < len(toks) {
		return toks[off].Pos
	}
	return lastPos(toks)
}

func lastPos(toks []token.Token) *token.Pos {
	if len(toks) == 0 {
		return nil
	}
	return toks[len(toks)-1].Pos
}
