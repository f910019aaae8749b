// Copyright (C) 2025 The jsontree Authors. All Rights Reserved.

package jsontree

import "strconv"

// A Kind identifies the lexical class of a token in the JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // invalid token
	LBrace              // left brace "{"
	RBrace              // right brace "}"
	LSquare             // left square bracket "["
	RSquare             // right square bracket "]"
	Comma               // comma ","
	Colon               // colon ":"
	String              // quoted string, escapes already resolved
	Number              // number, decoded to a float64
	Boolean             // constant: true or false
	Null                // constant: null
)

var kindStr = [...]string{
	Invalid: "invalid token",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	String:  "string",
	Number:  "number",
	Boolean: "boolean",
	Null:    "null",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[int(k)]
}

// A Token is one lexical unit of a JSON document. Kind discriminates
// which payload field, if any, carries the decoded value: Str for
// String, Num for Number, Bool for Boolean. The structural kinds and
// Null have no payload.
//
// Tokens do not record where in the input they occurred; the scanner
// tracks start offsets separately (see Scanner.Offsets).
type Token struct {
	Kind Kind
	Str  string
	Num  float64
	Bool bool
}

// String renders the token for use in diagnostics.
func (t Token) String() string {
	switch t.Kind {
	case String:
		return strconv.Quote(t.Str)
	case Number:
		return strconv.FormatFloat(t.Num, 'g', -1, 64)
	case Boolean:
		return strconv.FormatBool(t.Bool)
	default:
		return t.Kind.String()
	}
}
