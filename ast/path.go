// Copyright (C) 2025 The jsontree Authors. All Rights Reserved.

package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Path traverses v by the given elements and returns the value reached.
// A string element selects a member of an object; an int element selects
// an element of an array, with negative values counting back from the
// end. An empty path returns v itself.
func Path(v Value, elems ...any) (Value, error) {
	for _, e := range elems {
		switch t := e.(type) {
		case string:
			o, ok := v.(Object)
			if !ok {
				return nil, fmt.Errorf("path %q: value is %s, not object", t, typeName(v))
			}
			m, ok := o.Get(t)
			if !ok {
				return nil, fmt.Errorf("path %q: key not found", t)
			}
			v = m
		case int:
			a, ok := v.(Array)
			if !ok {
				return nil, fmt.Errorf("path [%d]: value is %s, not array", t, typeName(v))
			}
			i := t
			if i < 0 {
				i += len(a)
			}
			m, ok := a.At(i)
			if !ok {
				return nil, fmt.Errorf("path [%d]: index out of range (len %d)", t, len(a))
			}
			v = m
		default:
			return nil, fmt.Errorf("path: invalid element %T", e)
		}
	}
	return v, nil
}

// ParsePath splits a dotted path expression such as "users.0.name" into
// Path elements, treating components that parse as decimal integers as
// array indexes. An empty expression yields no elements.
func ParsePath(expr string) []any {
	if expr == "" {
		return nil
	}
	parts := strings.Split(expr, ".")
	elems := make([]any, len(parts))
	for i, p := range parts {
		if n, err := strconv.Atoi(p); err == nil {
			elems[i] = n
		} else {
			elems[i] = p
		}
	}
	return elems
}

func typeName(v Value) string {
	switch v.(type) {
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	}
	return "unknown"
}
