// Copyright (C) 2025 The jsontree Authors. All Rights Reserved.

// Package jsontree implements the lexical layer of a JSON parser: a
// scanner that converts source text into a token sequence, and the error
// model shared by the scanner and the parser in the ast subpackage.
//
// # Scanning
//
// Tokenize scans a complete input and returns its tokens with string
// escapes and numeric literals already decoded:
//
//	toks, err := jsontree.Tokenize(`{"a": [1, 2]}`)
//
// Scanning is batch: the whole input is consumed before the first token
// is returned, and the first error aborts the scan. Every error has
// concrete type *Error, whose Kind field identifies one of the closed
// set of failure classes.
//
// Tokens carry their decoded payloads but not their positions. A Scanner
// value records the byte offset of each token separately, so callers
// that need diagnostics (such as the parser) retrieve them with Offsets:
//
//	s := jsontree.NewScanner(input)
//	toks, err := s.Tokenize()
//	offs := s.Offsets() // offs[i] is the start of toks[i]
//
// # Parsing
//
// Most callers want the ast subpackage, which parses a token sequence
// into a value tree:
//
//	v, err := ast.Parse(`{"a": [1, 2]}`)
package jsontree
