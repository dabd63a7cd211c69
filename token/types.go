package token

type Type int

const (
	TLCurl Type = iota
	TRCurl
	TLBrack
	TRBrack
	TColon
	TComma
	TString
	TNumber
	TTrue
	TFalse
	TNull
)

func (t Type) String() string {
	s, ok := map[Type]string{
		TLCurl:  "{",
		TRCurl:  "}",
		TLBrack: "[",
		TRBrack: "]",
		TColon:  ":",
		TComma:  ",",
		TString: "string",
		TNumber: "number",
		TTrue:   "true",
		TFalse:  "false",
		TNull:   "null",
	}[t]
	if ok {
		return s
	}
	return "<unknown token>"
}

// Token is a lexical element. Bytes holds the raw source text,
// quotes included for strings and the exact literal for numbers.
type Token struct {
	Type  Type
	Bytes []byte
	Pos   *Pos
}
