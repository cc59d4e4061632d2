// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsondoc

// TokenKind identifies a lexical JSON token.
// The zero TokenKind is TokenInvalid.
type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenEOF

	TokenArrayStart  // [
	TokenArrayEnd    // ]
	TokenObjectStart // {
	TokenObjectEnd   // }
	TokenColon       // :
	TokenComma       // ,

	TokenString
	TokenInt
	TokenDouble
	TokenBool
	TokenNull
)

var tokenKindNames = [...]string{
	TokenInvalid:     "invalid",
	TokenEOF:         "end of input",
	TokenArrayStart:  "'['",
	TokenArrayEnd:    "']'",
	TokenObjectStart: "'{'",
	TokenObjectEnd:   "'}'",
	TokenColon:       "':'",
	TokenComma:       "','",
	TokenString:      "string",
	TokenInt:         "integer",
	TokenDouble:      "double",
	TokenBool:        "boolean",
	TokenNull:        "null",
}

// String prints the token kind in a humanly readable fashion.
func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "<invalid jsondoc.TokenKind>"
}

// IsScalar reports whether the token kind carries a payload Value.
func (k TokenKind) IsScalar() bool {
	return TokenString <= k && k <= TokenNull
}

// Token represents a lexical JSON token produced by a Lexer,
// which may be one of the following:
//   - a structural character (i.e., [ ] { } : or , )
//   - a scalar value (i.e., a string, number, boolean, or null)
//   - the end of the input
//   - an invalid token describing a lexical error
//
// Unlike a Value, a Token cannot represent an entire array or object.
type Token struct {
	Kind TokenKind

	// Value is the payload of a scalar token and is null otherwise.
	Value Value

	// Err is the lexical error of an invalid token and is nil otherwise.
	Err error

	// Offset is the byte offset of the start of the token in the input,
	// or of the location of the error for an invalid token.
	Offset int64
}

// IsValid reports whether the token is not TokenInvalid.
func (t Token) IsValid() bool {
	return t.Kind != TokenInvalid
}

// Message returns the human-readable error of an invalid token.
// It returns the empty string for a valid token.
func (t Token) Message() string {
	switch err := t.Err.(type) {
	case nil:
		return ""
	case *SyntaxError:
		return err.Message()
	default:
		return err.Error()
	}
}
