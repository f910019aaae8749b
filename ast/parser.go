// Copyright (C) 2025 The jsontree Authors. All Rights Reserved.

package ast

import "github.com/calvora/jsontree"

// MaxDepth caps the nesting depth of arrays and objects. Inputs nested
// more deeply fail with jsontree.ErrDepthExceeded instead of exhausting
// the stack. The limit matches the one used by encoding/json.
const MaxDepth = 10000

// Parse parses input, which must contain exactly one JSON value, and
// returns the corresponding value tree. The whole input is tokenized
// before parsing begins; the first error from either pass aborts and is
// returned with concrete type *jsontree.Error.
func Parse(input string) (Value, error) {
	s := jsontree.NewScanner(input)
	toks, err := s.Tokenize()
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, offs: s.Offsets(), end: len(input)}
	v, err := p.parseValue(0)
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, p.errUnexpected("end of input")
	}
	return v, nil
}

// A parser walks a token sequence with a single cursor. It is consumed
// by one parseValue call.
type parser struct {
	toks []jsontree.Token
	offs []int // source offset of toks[i]
	cur  int
	end  int // length of the source text, for end-of-input diagnostics
}

func (p *parser) atEnd() bool { return p.cur >= len(p.toks) }

// peek returns the current token without consuming it.
// Precondition: !p.atEnd().
func (p *parser) peek() jsontree.Token { return p.toks[p.cur] }

// advance consumes the current token and returns it.
func (p *parser) advance() jsontree.Token {
	t := p.toks[p.cur]
	p.cur++
	return t
}

// pos returns the source offset of the current token, or of the end of
// input when no tokens remain.
func (p *parser) pos() int {
	if p.atEnd() {
		return p.end
	}
	return p.offs[p.cur]
}

// errUnexpected builds the diagnostic for the current cursor position:
// an end-of-input error past the last token, a token error otherwise.
func (p *parser) errUnexpected(expected string) *jsontree.Error {
	if p.atEnd() {
		return &jsontree.Error{Kind: jsontree.ErrUnexpectedEOF, Expected: expected, Pos: p.end}
	}
	return &jsontree.Error{
		Kind:     jsontree.ErrUnexpectedToken,
		Expected: expected,
		Found:    p.peek().String(),
		Pos:      p.pos(),
	}
}

func (p *parser) parseValue(depth int) (Value, error) {
	if p.atEnd() {
		return nil, p.errUnexpected("JSON value")
	}
	if depth > MaxDepth {
		return nil, &jsontree.Error{Kind: jsontree.ErrDepthExceeded, Pos: p.pos()}
	}
	switch p.peek().Kind {
	case jsontree.LBrace:
		return p.parseObject(depth)
	case jsontree.LSquare:
		return p.parseArray(depth)
	default:
		return p.parsePrimitive()
	}
}

// parsePrimitive maps a scalar token onto its value.
func (p *parser) parsePrimitive() (Value, error) {
	switch t := p.peek(); t.Kind {
	case jsontree.String:
		p.advance()
		return String(t.Str), nil
	case jsontree.Number:
		p.advance()
		return Number(t.Num), nil
	case jsontree.Boolean:
		p.advance()
		return Bool(t.Bool), nil
	case jsontree.Null:
		p.advance()
		return Null{}, nil
	}
	return nil, p.errUnexpected("JSON value")
}

// parseArray consumes "[" elements "]".
// Precondition: the current token is "[".
func (p *parser) parseArray(depth int) (Value, error) {
	p.advance() // "["
	arr := Array{}
	expectComma := false
	for !p.atEnd() {
		switch p.peek().Kind {
		case jsontree.RSquare:
			p.advance()
			return arr, nil

		case jsontree.Comma:
			if !expectComma {
				return nil, p.errUnexpected("value")
			}
			p.advance()
			expectComma = false
			// Neither a trailing comma nor a doubled one.
			if !p.atEnd() {
				if k := p.peek().Kind; k == jsontree.RSquare || k == jsontree.Comma {
					return nil, p.errUnexpected("value")
				}
			}

		default:
			if expectComma {
				return nil, p.errUnexpected(`","`)
			}
			v, err := p.parseValue(depth + 1)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
			expectComma = true
		}
	}
	return nil, &jsontree.Error{Kind: jsontree.ErrUnexpectedEOF, Expected: "closing bracket", Pos: p.end}
}

// parseObject consumes "{" members "}". A member is built in two steps:
// a string token becomes the pending key once the lookahead confirms a
// colon follows, and the next value token (after the colon) completes
// it. Storing an existing key overwrites the earlier value.
// Precondition: the current token is "{".
func (p *parser) parseObject(depth int) (Value, error) {
	p.advance() // "{"
	obj := Object{}
	var pendingKey string
	haveKey := false     // a key has been read for the current member
	colonFound := false  // the key's colon has been consumed
	expectComma := false // a member was completed and no comma seen yet
	for !p.atEnd() {
		switch t := p.peek(); t.Kind {
		case jsontree.RBrace:
			if haveKey {
				return nil, p.errUnexpected("value")
			}
			p.advance()
			return obj, nil

		case jsontree.Comma:
			if !expectComma {
				return nil, p.errUnexpected("value")
			}
			p.advance()
			expectComma = false
			// No trailing comma before the closing brace.
			if !p.atEnd() && p.peek().Kind == jsontree.RBrace {
				return nil, p.errUnexpected("key")
			}

		case jsontree.Colon:
			if !haveKey || colonFound {
				return nil, p.errUnexpected("value")
			}
			p.advance()
			colonFound = true

		case jsontree.String:
			if !colonFound {
				// The string is a key, provided a member is expected here
				// and a colon follows it.
				if expectComma {
					return nil, p.errUnexpected(`","`)
				}
				if haveKey {
					return nil, p.errUnexpected(`":"`)
				}
				p.advance()
				if p.atEnd() || p.peek().Kind != jsontree.Colon {
					return nil, p.errUnexpected(`":"`)
				}
				pendingKey, haveKey = t.Str, true
				continue
			}
			fallthrough

		default:
			// A value: legal only after "key":. Keys must be strings, so a
			// scalar or container in key position is rejected.
			if !colonFound {
				if expectComma {
					return nil, p.errUnexpected(`","`)
				}
				return nil, p.errUnexpected("string key")
			}
			v, err := p.parseValue(depth + 1)
			if err != nil {
				return nil, err
			}
			obj[pendingKey] = v
			haveKey, colonFound, expectComma = false, false, true
		}
	}
	return nil, &jsontree.Error{Kind: jsontree.ErrUnexpectedEOF, Expected: "closing brace", Pos: p.end}
}
