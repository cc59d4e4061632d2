// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsondoc

import "github.com/go-json-experiment/jsondoc/internal/jsonwire"

// AppendQuote appends a double-quoted JSON string literal representing s
// to dst and returns the extended buffer.
// Only '"', '\\', and control characters are escaped; every other
// byte, including '/' and non-ASCII UTF-8, is written verbatim.
func AppendQuote(dst []byte, s string) []byte {
	return jsonwire.AppendQuote(dst, s)
}

// Unquote returns the decoded interpretation of s as a
// double-quoted JSON string literal.
// The input s must be a JSON string without any surrounding whitespace,
// and must obey the same rules that the Lexer enforces.
func Unquote(s string) (string, error) {
	if len(s) == 0 || s[0] != '"' {
		if len(s) == 0 {
			return "", errUnterminatedString.withOffset(0)
		}
		return "", newInvalidCharacterError(s[0], "at start of string (expecting '\"')").withOffset(0)
	}
	l := NewLexer(s)
	tok := l.Next()
	if tok.Kind == TokenInvalid {
		return "", tok.Err
	}
	if n := l.Offset(); n < int64(len(s)) {
		return "", errTrailingTokens.withOffset(n)
	}
	return tok.Value.str, nil
}
