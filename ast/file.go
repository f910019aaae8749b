// Copyright (C) 2025 The jsontree Authors. All Rights Reserved.

package ast

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/calvora/jsontree"
)

// ParseFile reads the named file and parses its contents as a single
// JSON value. Files named *.gz are transparently decompressed. A failure
// to read the file is reported as a jsontree.ErrIO error wrapping the
// underlying cause; parse failures are reported as Parse reports them.
func ParseFile(path string) (Value, error) {
	text, err := readFile(path)
	if err != nil {
		return nil, jsontree.IOError(err)
	}
	return Parse(text)
}

func readFile(path string) (string, error) {
	if !strings.HasSuffix(path, ".gz") {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	zr, err := gzip.NewReader(f)
	if err != nil {
		return "", err
	}
	defer zr.Close()
	data, err := io.ReadAll(zr)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
