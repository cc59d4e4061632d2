// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwire

import "unicode/utf8"

// Validity of this checked in TestEscapeTable.
var escapeTable = [utf8.RuneSelf]int8{
	+1, +1, +1, +1, +1, +1, +1, +1, -1, -1, -1, +1, -1, -1, +1, +1,
	+1, +1, +1, +1, +1, +1, +1, +1, +1, +1, +1, +1, +1, +1, +1, +1,
	00, 00, -1, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00,
	00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00,
	00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00,
	00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, -1, 00, 00, 00,
	00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00,
	00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00,
}

// makeEscapeTable builds escapeTable from the JSON grammar, where
// 0 means not escaped, -1 escapes with the short sequence (e.g., \n),
// and +1 escapes with the \u00XX sequence.
func makeEscapeTable() (t [utf8.RuneSelf]int8) {
	for i := 0; i < ' '; i++ {
		t[i] = +1
	}
	for _, c := range "\b\f\n\r\t\"\\" {
		t[c] = -1
	}
	return t
}

// NeedEscape reports whether the byte c must be escaped within a JSON string.
// Bytes at or above utf8.RuneSelf are never escaped since
// they are already part of a UTF-8 encoded payload.
func NeedEscape(c byte) bool {
	return c < utf8.RuneSelf && escapeTable[c] != 0
}

// needEscapeAsUTF16 reports whether c must be escaped using a \u00XX sequence.
func needEscapeAsUTF16(c byte) bool {
	return c < utf8.RuneSelf && escapeTable[c] > 0
}
