// Copyright (C) 2025 The jsontree Authors. All Rights Reserved.

package escape

import "go4.org/mem"

var shortEsc = [...]byte{
	'\b': 'b',
	'\t': 't',
	'\n': 'n',
	'\f': 'f',
	'\r': 'r',
	'"':  '"',
	'\\': '\\',
}

// Quote escapes the contents of src for inclusion in a JSON string
// literal. Only the seven short escapes are substituted; every other
// byte, including control and non-ASCII bytes, passes through
// unmodified. The enclosing quotation marks are not added.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	for i := 0; i < src.Len(); i++ {
		b := src.At(i)
		if int(b) < len(shortEsc) && shortEsc[b] != 0 {
			buf = append(buf, '\\', shortEsc[b])
		} else {
			buf = append(buf, b)
		}
	}
	return buf
}
