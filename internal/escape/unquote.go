// Copyright (C) 2025 The jsontree Authors. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// An EscapeError reports a backslash escape that names no substitution.
// Off is the byte offset of the backslash within the input to Unquote.
type EscapeError struct {
	Char rune
	Off  int
}

func (e *EscapeError) Error() string {
	return fmt.Sprintf("invalid %q after escape at offset %d", e.Char, e.Off)
}

// A UnicodeError reports a malformed \u escape: fewer than four hex
// digits remaining, a non-hex digit, or a lone UTF-16 surrogate half.
// Sequence holds the characters following "\u", up to four. Off is the
// byte offset of the backslash within the input to Unquote.
type UnicodeError struct {
	Sequence string
	Off      int
}

func (e *UnicodeError) Error() string {
	return fmt.Sprintf("invalid Unicode escape \\u%s at offset %d", e.Sequence, e.Off)
}

// Unquote decodes a byte slice containing the JSON encoding of a string.
// The input must have the enclosing double quotation marks already
// removed. Escape sequences are replaced with their unescaped
// equivalents; a pair of \u escapes encoding a valid surrogate pair is
// combined into the single rune the pair denotes.
func Unquote(src mem.RO) ([]byte, error) {
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(nil, src), nil
	}

	dec := make([]byte, 0, src.Len())
	putRune := func(r rune) {
		var buf [4]byte
		n := utf8.EncodeRune(buf[:], r)
		dec = append(dec, buf[:n]...)
	}
	base := 0 // offset of the current src view in the original input
	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))
		off := base + i // offset of the backslash

		src = src.SliceFrom(i + 1)
		base += i + 1
		if src.Len() == 0 {
			return nil, &EscapeError{Char: utf8.RuneError, Off: off}
		}
		r, n := mem.DecodeRune(src)
		if n == 0 {
			n++
		}
		src = src.SliceFrom(n)
		base += n

		switch r {
		case '"', '\\', '/':
			dec = append(dec, byte(r))
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			c, size, err := decodeHex(src, off)
			if err != nil {
				return nil, err
			}
			putRune(c)
			src = src.SliceFrom(size)
			base += size
		default:
			return nil, &EscapeError{Char: r, Off: off}
		}

		// Look for the next escape sequence, and if one is not found we can blit
		// the rest of the input and go home.
		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec, nil
}

// decodeHex decodes the hex payload of a \u escape beginning at the
// front of src, and reports how many bytes of src it consumed (4, or 10
// when a surrogate pair was combined). off is the offset of the
// backslash, used for error reporting only.
func decodeHex(src mem.RO, off int) (rune, int, error) {
	v, err := parseHex4(src)
	if err != nil {
		return 0, 0, &UnicodeError{Sequence: firstN(src, 4), Off: off}
	}
	r := rune(v)
	if !utf16.IsSurrogate(r) {
		return r, 4, nil
	}

	// A high surrogate must be followed immediately by a \u escape for the
	// low half; anything else leaves a lone surrogate, which is not a
	// valid scalar value.
	if src.Len() >= 10 && src.At(4) == '\\' && src.At(5) == 'u' {
		w, err := parseHex4(src.SliceFrom(6))
		if err == nil {
			if c := utf16.DecodeRune(r, rune(w)); c != utf8.RuneError {
				return c, 10, nil
			}
		}
	}
	return 0, 0, &UnicodeError{Sequence: firstN(src, 4), Off: off}
}

func parseHex4(data mem.RO) (int64, error) {
	if data.Len() < 4 {
		return 0, fmt.Errorf("need 4 hex digits, have %d", data.Len())
	}
	var v int64
	for i := 0; i < 4; i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += int64(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += int64(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += int64(b - 'A' + 10)
		} else {
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}

// firstN returns a copy of up to n leading bytes of src.
func firstN(src mem.RO, n int) string {
	if src.Len() < n {
		n = src.Len()
	}
	return src.SliceTo(n).StringCopy()
}
