// Copyright (C) 2025 The jsontree Authors. All Rights Reserved.

// Package ast defines the value model for parsed JSON documents, and a
// parser that constructs values from JSON source.
package ast

import (
	"fmt"
	"math"
	"strconv"

	"github.com/calvora/jsontree"
)

// A Value is an arbitrary JSON value. The implementations of Value are
// exactly Null, Bool, Number, String, Array, and Object; a consumer
// switching on those types covers all cases. A Value produced by Parse
// is owned by its caller and holds no references back into the scanner
// or parser that built it.
type Value interface {
	// JSON returns the compact JSON encoding of the value.
	JSON() string

	appendJSON(dst []byte) []byte
	appendPretty(dst []byte, indent, depth int) []byte
}

// Null represents the JSON null constant.
type Null struct{}

// Bool is a JSON Boolean value.
type Bool bool

// Number is a JSON number. All numbers are IEEE-754 doubles.
type Number float64

// String is a JSON string value, with escapes already resolved.
type String string

// An Array is an ordered sequence of values. Elements keep their source
// order and may repeat or mix types.
type Array []Value

// An Object maps string keys to values. Keys are unique; storing an
// existing key overwrites its previous value. Iteration order is
// unspecified and need not match the source text.
type Object map[string]Value

func (Null) JSON() string     { return "null" }
func (b Bool) JSON() string   { return string(b.appendJSON(nil)) }
func (n Number) JSON() string { return string(n.appendJSON(nil)) }
func (s String) JSON() string { return jsontree.Quote(string(s)) }
func (a Array) JSON() string  { return string(a.appendJSON(nil)) }
func (o Object) JSON() string { return string(o.appendJSON(nil)) }

func (Null) appendJSON(dst []byte) []byte { return append(dst, "null"...) }

func (b Bool) appendJSON(dst []byte) []byte { return strconv.AppendBool(dst, bool(b)) }

func (n Number) appendJSON(dst []byte) []byte { return appendNumber(dst, float64(n)) }

func (s String) appendJSON(dst []byte) []byte {
	return append(dst, jsontree.Quote(string(s))...)
}

func (a Array) appendJSON(dst []byte) []byte {
	if len(a) == 0 {
		return append(dst, "[]"...)
	}
	dst = append(dst, '[')
	for i, v := range a {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = v.appendJSON(dst)
	}
	return append(dst, ']')
}

func (o Object) appendJSON(dst []byte) []byte {
	if len(o) == 0 {
		return append(dst, "{}"...)
	}
	dst = append(dst, '{')
	first := true
	for k, v := range o {
		if !first {
			dst = append(dst, ',')
		}
		first = false
		dst = append(dst, jsontree.Quote(k)...)
		dst = append(dst, ':', ' ')
		dst = v.appendJSON(dst)
	}
	return append(dst, '}')
}

// Pretty renders v in indented form, with each nesting level indented by
// indent spaces. Arrays and objects with at least one element place each
// entry on its own line; empty containers render as "[]" and "{}".
func Pretty(v Value, indent int) string {
	return string(v.appendPretty(nil, indent, 0))
}

func (v Null) appendPretty(dst []byte, _, _ int) []byte   { return v.appendJSON(dst) }
func (b Bool) appendPretty(dst []byte, _, _ int) []byte   { return b.appendJSON(dst) }
func (n Number) appendPretty(dst []byte, _, _ int) []byte { return n.appendJSON(dst) }
func (s String) appendPretty(dst []byte, _, _ int) []byte { return s.appendJSON(dst) }

func (a Array) appendPretty(dst []byte, indent, depth int) []byte {
	if len(a) == 0 {
		return append(dst, "[]"...)
	}
	dst = append(dst, '[', '\n')
	for i, v := range a {
		if i > 0 {
			dst = append(dst, ',', '\n')
		}
		dst = appendSpaces(dst, (depth+1)*indent)
		dst = v.appendPretty(dst, indent, depth+1)
	}
	dst = append(dst, '\n')
	dst = appendSpaces(dst, depth*indent)
	return append(dst, ']')
}

func (o Object) appendPretty(dst []byte, indent, depth int) []byte {
	if len(o) == 0 {
		return append(dst, "{}"...)
	}
	dst = append(dst, '{', '\n')
	first := true
	for k, v := range o {
		if !first {
			dst = append(dst, ',', '\n')
		}
		first = false
		dst = appendSpaces(dst, (depth+1)*indent)
		dst = append(dst, jsontree.Quote(k)...)
		dst = append(dst, ':', ' ')
		dst = v.appendPretty(dst, indent, depth+1)
	}
	dst = append(dst, '\n')
	dst = appendSpaces(dst, depth*indent)
	return append(dst, '}')
}

func appendSpaces(dst []byte, n int) []byte {
	for i := 0; i < n; i++ {
		dst = append(dst, ' ')
	}
	return dst
}

// appendNumber formats f the way the serialization contract requires:
// integral values print with no decimal point, everything else in the
// shortest form that round-trips.
func appendNumber(dst []byte, f float64) []byte {
	if f == math.Trunc(f) && math.Abs(f) < 1e21 {
		return strconv.AppendFloat(dst, f, 'f', -1, 64)
	}
	return strconv.AppendFloat(dst, f, 'g', -1, 64)
}

// IsNull reports whether v is the null value.
func IsNull(v Value) bool { _, ok := v.(Null); return ok }

// AsString returns the text of v, if v is a string.
func AsString(v Value) (string, bool) {
	s, ok := v.(String)
	return string(s), ok
}

// AsFloat returns the value of v, if v is a number.
func AsFloat(v Value) (float64, bool) {
	n, ok := v.(Number)
	return float64(n), ok
}

// AsBool returns the truth value of v, if v is a Boolean.
func AsBool(v Value) (bool, bool) {
	b, ok := v.(Bool)
	return bool(b), ok
}

// AsArray returns v as an Array, if it is one.
func AsArray(v Value) (Array, bool) {
	a, ok := v.(Array)
	return a, ok
}

// AsObject returns v as an Object, if it is one.
func AsObject(v Value) (Object, bool) {
	o, ok := v.(Object)
	return o, ok
}

// Get returns the member of v stored under key. It reports false when v
// is not an object or the key is not present.
func Get(v Value, key string) (Value, bool) {
	o, ok := v.(Object)
	if !ok {
		return nil, false
	}
	return o.Get(key)
}

// Get returns the value stored under key, if any.
func (o Object) Get(key string) (Value, bool) {
	m, ok := o[key]
	return m, ok
}

// At returns the element of v at index i. It reports false when v is not
// an array or i is out of bounds.
func At(v Value, i int) (Value, bool) {
	a, ok := v.(Array)
	if !ok {
		return nil, false
	}
	return a.At(i)
}

// At returns the element at index i, if i is in bounds.
func (a Array) At(i int) (Value, bool) {
	if i < 0 || i >= len(a) {
		return nil, false
	}
	return a[i], true
}

// Equal reports whether a and b are structurally equal values.
func Equal(a, b Value) bool {
	switch t := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		u, ok := b.(Bool)
		return ok && t == u
	case Number:
		u, ok := b.(Number)
		return ok && t == u
	case String:
		u, ok := b.(String)
		return ok && t == u
	case Array:
		u, ok := b.(Array)
		if !ok || len(t) != len(u) {
			return false
		}
		for i := range t {
			if !Equal(t[i], u[i]) {
				return false
			}
		}
		return true
	case Object:
		u, ok := b.(Object)
		if !ok || len(t) != len(u) {
			return false
		}
		for k, v := range t {
			w, ok := u[k]
			if !ok || !Equal(v, w) {
				return false
			}
		}
		return true
	}
	return false
}

// ToValue converts a plain Go value into a Value. It accepts nil, bool,
// the integer kinds, float64, string, []any, map[string]any, and Value
// itself, and panics for any other type. This is the conversion surface
// a host-language binding uses to hand data in for serialization.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case bool:
		return Bool(t)
	case int:
		return Number(t)
	case int32:
		return Number(t)
	case int64:
		return Number(t)
	case float64:
		return Number(t)
	case string:
		return String(t)
	case []any:
		out := make(Array, len(t))
		for i, e := range t {
			out[i] = ToValue(e)
		}
		return out
	case map[string]any:
		out := make(Object, len(t))
		for k, e := range t {
			out[k] = ToValue(e)
		}
		return out
	}
	panic(fmt.Sprintf("invalid value %T", v))
}

// ToGo converts v into the equivalent plain Go value: nil, bool,
// float64, string, []any, or map[string]any. This is the shape a
// host-language binding unpacks on its side of the boundary.
func ToGo(v Value) any {
	switch t := v.(type) {
	case Null:
		return nil
	case Bool:
		return bool(t)
	case Number:
		return float64(t)
	case String:
		return string(t)
	case Array:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = ToGo(e)
		}
		return out
	case Object:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = ToGo(e)
		}
		return out
	}
	panic(fmt.Sprintf("invalid value %T", v))
}
