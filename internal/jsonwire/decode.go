// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonwire implements stateless functionality for handling JSON text:
// quoting strings, formatting numbers, and decoding escape sequences.
package jsonwire

import (
	"unicode/utf16"
	"unicode/utf8"
)

// IsWhitespace reports whether c is insignificant JSON whitespace.
func IsWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// ConsumeWhitespace reports the number of leading whitespace bytes in src.
func ConsumeWhitespace(src string) (n int) {
	for len(src) > n && IsWhitespace(src[n]) {
		n++
	}
	return n
}

// ParseHex4 decodes exactly four hexadecimal digits from the start of src.
// It reports false if src is too short or contains a non-hex digit.
func ParseHex4(src string) (v rune, ok bool) {
	if len(src) < 4 {
		return 0, false
	}
	for _, c := range []byte(src[:4]) {
		switch {
		case '0' <= c && c <= '9':
			c = c - '0'
		case 'a' <= c && c <= 'f':
			c = 10 + c - 'a'
		case 'A' <= c && c <= 'F':
			c = 10 + c - 'A'
		default:
			return 0, false
		}
		v = v<<4 | rune(c)
	}
	return v, true
}

// IsHighSurrogate reports whether r is the first half of a UTF-16 surrogate pair.
func IsHighSurrogate(r rune) bool { return 0xd800 <= r && r <= 0xdbff }

// IsLowSurrogate reports whether r is the second half of a UTF-16 surrogate pair.
func IsLowSurrogate(r rune) bool { return 0xdc00 <= r && r <= 0xdfff }

// CombineSurrogates decodes a high and low surrogate into a single code point.
// The result is at least 0x10000.
func CombineSurrogates(hi, lo rune) rune {
	return utf16.DecodeRune(hi, lo)
}

// AppendRune appends the UTF-8 encoding of r to dst.
// Unlike utf8.AppendRune, it does not substitute the replacement character
// and instead reports false for code points beyond utf8.MaxRune
// and for surrogate halves, leaving dst unmodified.
func AppendRune(dst []byte, r rune) ([]byte, bool) {
	if r < 0 || r > utf8.MaxRune || (0xd800 <= r && r <= 0xdfff) {
		return dst, false
	}
	return utf8.AppendRune(dst, r), true
}
