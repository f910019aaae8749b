// Copyright (C) 2025 The jsontree Authors. All Rights Reserved.

package jsontree

import (
	"strings"

	"go4.org/mem"

	"github.com/calvora/jsontree/internal/escape"
)

// Quote encodes src as a JSON string literal. The contents are escaped
// and double quotation marks are added. Only the short escapes are used;
// non-ASCII text is not re-encoded as \u sequences.
func Quote(src string) string {
	esc := escape.Quote(mem.S(src))
	var sb strings.Builder
	sb.Grow(len(esc) + 2)
	sb.WriteByte('"')
	sb.Write(esc)
	sb.WriteByte('"')
	return sb.String()
}

// Unquote decodes the contents of a JSON string literal. The enclosing
// quotation marks must already be removed. In case of error, the
// returned error has concrete type *Error.
func Unquote(src string) (string, error) {
	dec, err := escape.Unquote(mem.S(src))
	if err != nil {
		return "", escapeError(err, 0)
	}
	return string(dec), nil
}

// escapeError converts an escape decoding failure into an *Error,
// shifting its recorded offset by base.
func escapeError(err error, base int) *Error {
	switch e := err.(type) {
	case *escape.EscapeError:
		return &Error{Kind: ErrInvalidEscape, Value: string(e.Char), Pos: base + e.Off}
	case *escape.UnicodeError:
		return &Error{Kind: ErrInvalidUnicode, Value: e.Sequence, Pos: base + e.Off}
	}
	return &Error{Kind: ErrInvalidEscape, Pos: base}
}
