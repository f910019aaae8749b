// Copyright (C) 2025 The jsontree Authors. All Rights Reserved.

package jsontree

import "fmt"

// An ErrKind identifies one of the failure classes shared by the scanner
// and parser. The set is closed: every error produced by this module has
// concrete type *Error carrying one of these kinds, and a consumer
// switching on the kind covers all cases.
type ErrKind int

// Constants defining the valid ErrKind values.
const (
	ErrUnexpectedToken ErrKind = iota + 1 // wrong token for the grammar position
	ErrUnexpectedEOF                      // input ended inside a production
	ErrInvalidNumber                      // numeric run did not parse as a double
	ErrInvalidEscape                      // unknown \-escape in a string
	ErrInvalidUnicode                     // malformed \uXXXX sequence
	ErrDepthExceeded                      // nesting beyond the parser's depth limit
	ErrIO                                 // failure reading an input file
)

var errKindStr = [...]string{
	ErrUnexpectedToken: "unexpected token",
	ErrUnexpectedEOF:   "unexpected end of input",
	ErrInvalidNumber:   "invalid number",
	ErrInvalidEscape:   "invalid escape",
	ErrInvalidUnicode:  "invalid Unicode escape",
	ErrDepthExceeded:   "depth exceeded",
	ErrIO:              "I/O error",
}

func (k ErrKind) String() string {
	if k < 1 || int(k) >= len(errKindStr) {
		return "unknown error"
	}
	return errKindStr[k]
}

// An Error describes a failure to scan or parse a JSON input. Which
// fields are populated depends on Kind:
//
//	ErrUnexpectedToken   Expected, Found, Pos
//	ErrUnexpectedEOF     Expected, Pos
//	ErrInvalidNumber     Value (the raw numeric run), Pos
//	ErrInvalidEscape     Value (the escape character), Pos
//	ErrInvalidUnicode    Value (the hex sequence after "\u"), Pos
//	ErrDepthExceeded     Pos
//	ErrIO                the wrapped cause, via Unwrap
//
// Pos is a byte offset into the source text. Errors are terminal: the
// scan or parse that produced one made no further progress.
type Error struct {
	Kind     ErrKind
	Expected string
	Found    string
	Value    string
	Pos      int

	cause error
}

// Error satisfies the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case ErrUnexpectedToken:
		return fmt.Sprintf("unexpected token at offset %d: expected %s, found %s", e.Pos, e.Expected, e.Found)
	case ErrUnexpectedEOF:
		return fmt.Sprintf("unexpected end of input at offset %d: expected %s", e.Pos, e.Expected)
	case ErrInvalidNumber:
		return fmt.Sprintf("invalid number %q at offset %d", e.Value, e.Pos)
	case ErrInvalidEscape:
		return fmt.Sprintf("invalid escape %q at offset %d", e.Value, e.Pos)
	case ErrInvalidUnicode:
		return fmt.Sprintf("invalid Unicode escape \\u%s at offset %d", e.Value, e.Pos)
	case ErrDepthExceeded:
		return fmt.Sprintf("nesting too deep at offset %d", e.Pos)
	case ErrIO:
		return fmt.Sprintf("read input: %v", e.cause)
	default:
		return "unknown error"
	}
}

// Unwrap returns the underlying cause of an ErrIO error, or nil.
func (e *Error) Unwrap() error { return e.cause }

// IOError wraps err as an input error.
func IOError(err error) *Error { return &Error{Kind: ErrIO, cause: err} }
