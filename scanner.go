// Copyright (C) 2025 The jsontree Authors. All Rights Reserved.

package jsontree

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"go4.org/mem"

	"github.com/calvora/jsontree/internal/escape"
)

// A Scanner reads the lexical tokens of a complete JSON input held in
// memory. It maintains a single forward cursor with no backtracking, and
// is good for one Tokenize call; it is not reused across inputs.
type Scanner struct {
	src  string
	pos  int
	toks []Token
	offs []int // start offset of toks[i] in src
}

// NewScanner constructs a scanner that consumes input.
func NewScanner(input string) *Scanner { return &Scanner{src: input} }

// Tokenize scans input and returns its complete token sequence.
// Scanning stops at the first error, which has concrete type *Error.
func Tokenize(input string) ([]Token, error) {
	return NewScanner(input).Tokenize()
}

// Tokenize scans the whole input and returns the token sequence.
func (s *Scanner) Tokenize() ([]Token, error) {
	for s.pos < len(s.src) {
		start := s.pos
		ch := s.src[s.pos]
		switch {
		case isSpace(ch):
			s.pos++

		case ch == '"':
			str, err := s.scanString()
			if err != nil {
				return nil, err
			}
			s.emit(start, Token{Kind: String, Str: str})

		case isNumStart(ch):
			num, err := s.scanNumber()
			if err != nil {
				return nil, err
			}
			s.emit(start, Token{Kind: Number, Num: num})

		case isAlpha(ch):
			tok, err := s.scanKeyword()
			if err != nil {
				return nil, err
			}
			s.emit(start, tok)

		default:
			t, ok := selfDelim(ch)
			if !ok {
				r, _ := utf8.DecodeRuneInString(s.src[s.pos:])
				return nil, &Error{
					Kind: ErrUnexpectedToken, Expected: "valid JSON value",
					Found: strconv.QuoteRune(r), Pos: start,
				}
			}
			s.pos++
			s.emit(start, Token{Kind: t})
		}
	}
	return s.toks, nil
}

// Offsets returns the byte offset in the input of the start of each
// token produced by Tokenize, in token order. The tokens themselves are
// position-free; the parser consults this slice for its diagnostics.
func (s *Scanner) Offsets() []int { return s.offs }

func (s *Scanner) emit(start int, tok Token) {
	s.toks = append(s.toks, tok)
	s.offs = append(s.offs, start)
}

// scanString consumes a string literal. On entry the cursor is on the
// opening quote; on return it is past the closing quote. Strings with no
// escapes are sliced from the input without allocating; the first
// backslash switches to a decoding buffer.
func (s *Scanner) scanString() (string, error) {
	open := s.pos
	for i := open + 1; i < len(s.src); i++ {
		switch s.src[i] {
		case '"':
			str := s.src[open+1 : i]
			s.pos = i + 1
			return str, nil
		case '\\':
			return s.scanEscaped(open, i)
		}
	}
	return "", &Error{Kind: ErrUnexpectedEOF, Expected: "closing quote", Pos: len(s.src)}
}

// scanEscaped finishes a string known to contain at least one escape.
// open is the offset of the opening quote and bs the offset of the first
// backslash. It locates the closing quote, then decodes the contents.
func (s *Scanner) scanEscaped(open, bs int) (string, error) {
	esc := false
	for i := bs; i < len(s.src); i++ {
		ch := s.src[i]
		switch {
		case esc:
			esc = false
		case ch == '\\':
			esc = true
		case ch == '"':
			dec, err := escape.Unquote(mem.S(s.src[open+1 : i]))
			if err != nil {
				return "", escapeError(err, open+1)
			}
			s.pos = i + 1
			return string(dec), nil
		}
	}
	return "", &Error{Kind: ErrUnexpectedEOF, Expected: "closing quote", Pos: len(s.src)}
}

// scanNumber consumes the maximal run of number characters and decodes
// it as a float64. A run the decoder rejects is an invalid number; a run
// whose value overflows clamps to an infinity, as the double type does.
func (s *Scanner) scanNumber() (float64, error) {
	start := s.pos
	for s.pos < len(s.src) && isNumRune(s.src[s.pos]) {
		s.pos++
	}
	text := s.src[start:s.pos]
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && ne.Err == strconv.ErrRange {
			return v, nil
		}
		return 0, &Error{Kind: ErrInvalidNumber, Value: text, Pos: start}
	}
	return v, nil
}

var (
	kwTrue  = mem.S("true")
	kwFalse = mem.S("false")
	kwNull  = mem.S("null")
)

// scanKeyword consumes a maximal alphabetic run and matches it against
// the JSON constants.
func (s *Scanner) scanKeyword() (Token, error) {
	start := s.pos
	for s.pos < len(s.src) && isAlpha(s.src[s.pos]) {
		s.pos++
	}
	name := mem.S(s.src[start:s.pos])
	switch {
	case name.Equal(kwTrue):
		return Token{Kind: Boolean, Bool: true}, nil
	case name.Equal(kwFalse):
		return Token{Kind: Boolean}, nil
	case name.Equal(kwNull):
		return Token{Kind: Null}, nil
	}
	return Token{}, &Error{
		Kind: ErrUnexpectedToken, Expected: "valid JSON value",
		Found: strconv.Quote(name.StringCopy()), Pos: start,
	}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isNumStart(ch byte) bool { return ch == '-' || isDigit(ch) }
func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isNumRune(ch byte) bool {
	return isDigit(ch) || ch == '.' || ch == '-' || ch == '+' || ch == 'e' || ch == 'E'
}

var self = [...]Kind{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch byte) (Kind, bool) {
	i := strings.IndexByte("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
