// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsondoc implements a strict, in-memory JSON document model
// as specified in RFC 8259.
// It parses JSON text into a tree of Values, lets the tree be inspected
// and mutated, and serializes it back to deterministic, pretty-printed text.
//
// # Terminology
//
// This package uses JSON terminology when discussing JSON, which may differ
// from related concepts in Go or elsewhere in computing literature.
//
//   - A JSON "object" refers to an unordered collection of name/value members;
//   - a JSON "array" refers to an ordered sequence of elements; and
//   - a JSON "value" refers to either a literal (i.e., null, false, or true),
//     string, number, object, or array.
//
// # Grammar
//
// The parser accepts exactly one JSON value surrounded by optional whitespace
// and is stricter than RFC 8259 in a few deliberate ways:
//
//   - Strings must be valid UTF-8 and surrogate halves must be properly
//     paired \u escapes.
//   - Object names must not be empty. Duplicate names are permitted and
//     the last occurrence wins.
//   - Numbers without a fraction or exponent must fit in an int64.
//     Other numbers must be finite normal float64 values or zero;
//     a number that would overflow or underflow to a subnormal is rejected
//     instead of silently losing precision.
//
// Parsing and serialization are iterative, so the depth of nesting is
// bounded only by available memory.
//
// # Numbers
//
// A JSON number is held either as an Int or a Double. Serialization keeps
// the two apart: a Double is always written with a decimal point or an
// exponent so that it parses back as a Double.
package jsondoc
