// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsondoc

import (
	"strings"

	"github.com/go-json-experiment/jsondoc/internal/jsonwire"
)

// DefaultIndent is the per-level indentation used by Marshal.
const DefaultIndent = "    "

// Marshal returns the pretty-printed JSON text of v.
//
// Every array element and object member is written on its own line,
// indented by DefaultIndent per level of nesting.
// Object members are written in sorted order of their names.
// Empty arrays and objects are written as [] and {}.
// Marshal never fails.
func Marshal(v Value) []byte {
	return marshal(v, DefaultIndent)
}

// MarshalCompact returns the JSON text of v without any insignificant whitespace.
func MarshalCompact(v Value) []byte {
	return marshal(v, "")
}

func marshal(v Value, indent string) []byte {
	b := getBuffer()
	defer putBuffer(b)
	b.buf = AppendValue(b.buf, v, indent)
	return append([]byte(nil), b.buf...)
}

// AppendValue appends the JSON text of v to dst and returns the extended buffer.
// Each nesting level is indented by indent, which must consist only of
// JSON whitespace characters. If indent is empty, the output is compact.
func AppendValue(dst []byte, v Value, indent string) []byte {
	if strings.Trim(indent, " \t") != "" {
		panic("jsondoc: indent must only contain space or tab characters")
	}
	e := getEncoder(indent)
	defer putEncoder(e)
	return e.appendValue(dst, v)
}

// encoder walks a Value tree without recursion, using an explicit stack of
// the arrays and objects currently being written.
type encoder struct {
	indent string
	stack  []encodeFrame
}

// encodeFrame is an array or object that is partially written.
type encodeFrame struct {
	value Value
	names []string // sorted member names of an object, captured once
	next  int      // index of the next element or member to write
}

func (f *encodeFrame) len() int {
	if f.value.kind == KindObject {
		return len(f.names)
	}
	return len(f.value.arr)
}

func (e *encoder) appendValue(b []byte, v Value) []byte {
	b = e.appendOne(b, v)
	for len(e.stack) > 0 {
		f := &e.stack[len(e.stack)-1]
		if f.next == f.len() {
			kind := f.value.kind
			*f = encodeFrame{}
			e.stack = e.stack[:len(e.stack)-1]
			b = e.appendIndent(b, len(e.stack))
			if kind == KindObject {
				b = append(b, '}')
			} else {
				b = append(b, ']')
			}
			continue
		}

		if f.next > 0 {
			b = append(b, ',')
		}
		b = e.appendIndent(b, len(e.stack))
		var child Value
		if f.value.kind == KindObject {
			name := f.names[f.next]
			b = jsonwire.AppendQuote(b, name)
			b = append(b, ':')
			if e.indent != "" {
				b = append(b, ' ')
			}
			child = f.value.obj[name]
		} else {
			child = f.value.arr[f.next]
		}
		f.next++
		b = e.appendOne(b, child) // may grow e.stack and invalidate f
	}
	return b
}

// appendOne appends a scalar, an empty container, or the opening
// delimiter of a non-empty container, which is then pushed onto the stack.
func (e *encoder) appendOne(b []byte, v Value) []byte {
	switch v.kind {
	case KindNull:
		return append(b, "null"...)
	case KindBool:
		if v.num != 0 {
			return append(b, "true"...)
		}
		return append(b, "false"...)
	case KindInt:
		return jsonwire.AppendInt(b, int64(v.num))
	case KindDouble:
		return jsonwire.AppendFloat(b, v.Float())
	case KindString:
		return jsonwire.AppendQuote(b, v.str)
	case KindArray:
		if len(v.arr) == 0 {
			return append(b, "[]"...)
		}
		e.stack = append(e.stack, encodeFrame{value: v})
		return append(b, '[')
	case KindObject:
		if len(v.obj) == 0 {
			return append(b, "{}"...)
		}
		e.stack = append(e.stack, encodeFrame{value: v, names: v.Names()})
		return append(b, '{')
	}
	panic("jsondoc: invalid Value kind " + v.kind.String())
}

// appendIndent appends a newline and depth levels of indentation.
// It does nothing for compact output.
func (e *encoder) appendIndent(b []byte, depth int) []byte {
	if e.indent == "" {
		return b
	}
	b = append(b, '\n')
	for i := 0; i < depth; i++ {
		b = append(b, e.indent...)
	}
	return b
}
