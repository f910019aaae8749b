// Copyright (C) 2025 The jsontree Authors. All Rights Reserved.

package ast_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/calvora/jsontree"
	"github.com/calvora/jsontree/ast"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  ast.Value
	}{
		// Primitives
		{`null`, ast.Null{}},
		{`true`, ast.Bool(true)},
		{`false`, ast.Bool(false)},
		{`0`, ast.Number(0)},
		{`-15.75`, ast.Number(-15.75)},
		{`3e2`, ast.Number(300)},
		{`""`, ast.String("")},
		{`"blood alone moves the wheels of history"`,
			ast.String("blood alone moves the wheels of history")},
		{`  "padded"  `, ast.String("padded")},

		// Escapes resolve during the scan.
		{`"a\nb\tc\""`, ast.String("a\nb\tc\"")},

		// Arrays
		{`[]`, ast.Array{}},
		{`[ ]`, ast.Array{}},
		{`[1]`, ast.Array{ast.Number(1)}},
		{`[1, "two", null, false]`, ast.Array{
			ast.Number(1), ast.String("two"), ast.Null{}, ast.Bool(false),
		}},
		{`[[[1]]]`, ast.Array{ast.Array{ast.Array{ast.Number(1)}}}},
		{`[[], [], [[]]]`, ast.Array{ast.Array{}, ast.Array{}, ast.Array{ast.Array{}}}},

		// Objects
		{`{}`, ast.Object{}},
		{`{"a": 1}`, ast.Object{"a": ast.Number(1)}},
		{`{"a": 1, "b": [true, {"c": null}]}`, ast.Object{
			"a": ast.Number(1),
			"b": ast.Array{ast.Bool(true), ast.Object{"c": ast.Null{}}},
		}},
		{`{"": "empty key"}`, ast.Object{"": ast.String("empty key")}},

		// The last of duplicate keys wins.
		{`{"a": 1, "a": 2}`, ast.Object{"a": ast.Number(2)}},
		{`{"a": 1, "b": 0, "a": {"x": 3}}`, ast.Object{
			"a": ast.Object{"x": ast.Number(3)},
			"b": ast.Number(0),
		}},
	}
	for _, test := range tests {
		got, err := ast.Parse(test.input)
		if err != nil {
			t.Errorf("Parse(%#q) failed: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nValue: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  jsontree.ErrKind
		pos   int
	}{
		// Truncated input
		{``, jsontree.ErrUnexpectedEOF, 0},
		{`  `, jsontree.ErrUnexpectedEOF, 2},
		{`[1, 2`, jsontree.ErrUnexpectedEOF, 5},
		{`{"a": 1`, jsontree.ErrUnexpectedEOF, 7},
		{`{"a":`, jsontree.ErrUnexpectedEOF, 5},
		{`[`, jsontree.ErrUnexpectedEOF, 1},

		// Commas out of place
		{`[1, 2,]`, jsontree.ErrUnexpectedToken, 6},
		{`[1,, 2]`, jsontree.ErrUnexpectedToken, 3},
		{`[,1]`, jsontree.ErrUnexpectedToken, 1},
		{`{"a": 1,}`, jsontree.ErrUnexpectedToken, 8},
		{`[1 2 3]`, jsontree.ErrUnexpectedToken, 3},
		{`{"a": 1 "b": 2}`, jsontree.ErrUnexpectedToken, 8},

		// Malformed members
		{`{"key" 1}`, jsontree.ErrUnexpectedToken, 7},
		{`{"a":}`, jsontree.ErrUnexpectedToken, 5},
		{`{:1}`, jsontree.ErrUnexpectedToken, 1},
		{`{1: 2}`, jsontree.ErrUnexpectedToken, 1},
		{`{"a": 1: 2}`, jsontree.ErrUnexpectedToken, 7},

		// Mismatched brackets
		{`[1}`, jsontree.ErrUnexpectedToken, 2},
		{`{"a": 1]`, jsontree.ErrUnexpectedToken, 7},

		// Exactly one value per input
		{`true false`, jsontree.ErrUnexpectedToken, 5},
		{`1 2`, jsontree.ErrUnexpectedToken, 2},
		{`{} []`, jsontree.ErrUnexpectedToken, 3},
	}
	for _, test := range tests {
		_, err := ast.Parse(test.input)
		if err == nil {
			t.Errorf("Parse(%#q): got nil, want error", test.input)
			continue
		}
		var perr *jsontree.Error
		if !errors.As(err, &perr) {
			t.Errorf("Parse(%#q): error type %T, want *jsontree.Error", test.input, err)
			continue
		}
		if perr.Kind != test.kind || perr.Pos != test.pos {
			t.Errorf("Parse(%#q): got kind %v at %d, want %v at %d (%v)",
				test.input, perr.Kind, perr.Pos, test.kind, test.pos, perr)
		}
	}
}

func TestParseDepth(t *testing.T) {
	t.Run("WithinLimit", func(t *testing.T) {
		const n = 500
		input := strings.Repeat("[", n) + "1" + strings.Repeat("]", n)
		v, err := ast.Parse(input)
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		for i := 0; i < n; i++ {
			e, ok := ast.At(v, 0)
			if !ok {
				t.Fatalf("At level %d: not an array", i)
			}
			v = e
		}
		if !ast.Equal(v, ast.Number(1)) {
			t.Errorf("Innermost value: got %s, want 1", v.JSON())
		}
	})

	t.Run("OverLimit", func(t *testing.T) {
		input := strings.Repeat("[", ast.MaxDepth+2)
		_, err := ast.Parse(input)
		var perr *jsontree.Error
		if !errors.As(err, &perr) || perr.Kind != jsontree.ErrDepthExceeded {
			t.Fatalf("Parse: got %v, want kind %v", err, jsontree.ErrDepthExceeded)
		}
	})
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		`null`,
		`-6.25`,
		`"a\nstring\twith \u0041 escape"`,
		`[]`,
		`{}`,
		`[1,[2,[3,[]]],{"deep": {"deeper": null}}]`,
		`{"name": "aloysius", "tags": ["horse", "old"], "size": 45.25}`,
	}
	for _, input := range inputs {
		v, err := ast.Parse(input)
		if err != nil {
			t.Errorf("Parse(%#q) failed: %v", input, err)
			continue
		}
		text := v.JSON()
		w, err := ast.Parse(text)
		if err != nil {
			t.Errorf("Reparse(%#q) failed: %v", text, err)
			continue
		}
		if !ast.Equal(v, w) {
			t.Errorf("Round trip of %#q changed the value:\n got %s\nwant %s",
				input, w.JSON(), text)
		}
		if again := w.JSON(); again != text {
			t.Errorf("Serialization is not stable: got %#q, want %#q", again, text)
		}
	}
}
