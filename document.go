// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsondoc

import (
	"errors"
	"io"
)

// Document is a JSON document: a root Value together with the outcome
// of the parse that produced it.
//
// The zero Document is a valid document whose root is null.
type Document struct {
	root Value
	errs []error
}

// New constructs a valid Document from the given root.
// With no arguments the root is null, with one argument it is that value,
// and with more than one the root is an array of all of them.
func New(root ...Value) *Document {
	switch len(root) {
	case 0:
		return &Document{}
	case 1:
		return &Document{root: root[0]}
	default:
		return &Document{root: Array(root...)}
	}
}

// FromString constructs a Document by parsing s.
// The returned Document is never nil; check IsValid for the outcome.
func FromString(s string) *Document {
	d := new(Document)
	d.Load(s)
	return d
}

// FromBytes constructs a Document by parsing b.
func FromBytes(b []byte) *Document {
	return FromString(string(b))
}

// Load replaces the content of d with the result of parsing s
// and reports whether the parse succeeded.
// On failure the root is null and the diagnostics are
// available from ErrorMessage and Err.
func (d *Document) Load(s string) bool {
	p := NewParser(s)
	d.root = p.Parse()
	d.errs = p.errs
	return p.IsValid()
}

// Root returns the root value.
// Mutating a container within the returned value mutates the document,
// but appending to the root array itself requires SetRoot or RootPtr.
func (d *Document) Root() Value { return d.root }

// RootPtr returns a pointer to the root value for in-place mutation.
func (d *Document) RootPtr() *Value { return &d.root }

// SetRoot replaces the root value and discards any previous diagnostics.
func (d *Document) SetRoot(v Value) {
	d.root = v
	d.errs = nil
}

// Clear resets the document to a valid null root.
func (d *Document) Clear() {
	d.SetRoot(Null())
}

// Empty reports whether the root is null or an empty array or object.
func (d *Document) Empty() bool { return d.root.IsEmpty() }

// IsValid reports whether the most recent parse succeeded.
func (d *Document) IsValid() bool { return len(d.errs) == 0 }

// ErrorMessage returns the diagnostics of the most recent parse,
// separated by newlines, or the empty string if it succeeded.
func (d *Document) ErrorMessage() string { return joinMessages(d.errs) }

// Err returns the errors of the most recent parse, or nil if it succeeded.
func (d *Document) Err() error { return errors.Join(d.errs...) }

// ToString returns the pretty-printed JSON text of the root.
func (d *Document) ToString() string { return string(Marshal(d.root)) }

// String implements fmt.Stringer and is equivalent to ToString.
func (d *Document) String() string { return d.ToString() }

// ReadFrom reads r until EOF and loads the content as the document.
// It returns the number of bytes read and either the read error
// or the parse error.
func (d *Document) ReadFrom(r io.Reader) (int64, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return int64(len(b)), err
	}
	d.Load(string(b))
	return int64(len(b)), d.Err()
}

// WriteTo writes the pretty-printed JSON text of the root to w,
// followed by a newline.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	b := getBuffer()
	defer putBuffer(b)
	b.buf = AppendValue(b.buf, d.root, DefaultIndent)
	b.buf = append(b.buf, '\n')
	n, err := w.Write(b.buf)
	return int64(n), err
}
