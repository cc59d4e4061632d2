// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsondoc

import (
	"strconv"
	"strings"
)

const errorPrefix = "jsondoc: "

// Error matches errors returned by this package according to errors.Is.
const Error = jsonError("jsondoc error")

type jsonError string

func (e jsonError) Error() string        { return string(e) }
func (e jsonError) Is(target error) bool { return e == target || target == Error }

// SyntaxError is a description of a JSON syntax error.
// It is reported both for lexical errors (e.g., a malformed number)
// and structural errors (e.g., a missing colon).
//
// The contents of this error as produced by this package may change over time.
type SyntaxError struct {
	// Offset indicates that an error occurred after processing Offset bytes.
	Offset int64
	str    string
}

func (e *SyntaxError) Error() string        { return errorPrefix + e.str }
func (e *SyntaxError) Is(target error) bool { return e == target || target == Error }

// Message returns the human-readable diagnostic without the package prefix.
func (e *SyntaxError) Message() string { return e.str }

func (e *SyntaxError) withOffset(pos int64) *SyntaxError {
	return &SyntaxError{Offset: pos, str: e.str}
}

// Lexical errors.
var (
	errLoneMinus          = &SyntaxError{str: "missing digits after minus sign"}
	errLeadingZero        = &SyntaxError{str: "invalid leading zero in number"}
	errMissingFraction    = &SyntaxError{str: "missing digits after decimal point"}
	errMissingExponent    = &SyntaxError{str: "missing digits in exponent"}
	errIntegerOverflow    = &SyntaxError{str: "integer overflows 64-bit signed range"}
	errNonFinite          = &SyntaxError{str: "number is not finite"}
	errSubnormal          = &SyntaxError{str: "number underflows to a subnormal value"}
	errUnterminatedString = &SyntaxError{str: "unterminated string"}
	errUnterminatedEscape = &SyntaxError{str: "unterminated escape sequence within string"}
	errInvalidUnicode     = &SyntaxError{str: "incomplete or invalid \\u escape sequence within string"}
	errMissingLowHalf     = &SyntaxError{str: "high surrogate not followed by \\u escape sequence"}
	errInvalidLowHalf     = &SyntaxError{str: "high surrogate followed by invalid low surrogate"}
	errLoneLowHalf        = &SyntaxError{str: "low surrogate without preceding high surrogate"}
	errInvalidCodePoint   = &SyntaxError{str: "code point outside the Unicode range"}
	errInvalidUTF8        = &SyntaxError{str: "invalid UTF-8 within string"}
)

// Structural errors.
var (
	errEmptyDocument    = &SyntaxError{str: "empty JSON document"}
	errUnexpectedRoot   = &SyntaxError{str: "unexpected token in root"}
	errTrailingTokens   = &SyntaxError{str: "unexpected tokens after JSON document end"}
	errMissingName      = &SyntaxError{str: "missing string for object name"}
	errEmptyName        = &SyntaxError{str: "empty string for object name"}
	errMissingColon     = &SyntaxError{str: "missing character ':' after object name"}
	errMissingValue     = &SyntaxError{str: "missing value after object name"}
	errMissingComma     = &SyntaxError{str: "missing character ',' after object or array value"}
	errTrailingComma    = &SyntaxError{str: "trailing comma before closing delimiter"}
	errUnexpectedColon  = &SyntaxError{str: "unexpected character ':' outside object member"}
	errUnexpectedComma  = &SyntaxError{str: "unexpected character ',' before value"}
	errArrayEndInObject = &SyntaxError{str: "unexpected character ']' inside object"}
	errObjectEndInArray = &SyntaxError{str: "unexpected character '}' inside array"}
	errEOFInsideObject  = &SyntaxError{str: "unexpected end of input inside object"}
	errEOFInsideArray   = &SyntaxError{str: "unexpected end of input inside array"}
)

func newInvalidCharacterError(c byte, where string) *SyntaxError {
	return &SyntaxError{str: "invalid character " + escapeCharacter(c) + " " + where}
}

func newInvalidEscapeError(c byte) *SyntaxError {
	return newInvalidCharacterError(c, "in string escape code")
}

func escapeCharacter(c byte) string {
	switch c {
	case '\'':
		return `'\''`
	case '"':
		return `'"'`
	default:
		return "'" + strings.TrimPrefix(strings.TrimSuffix(strconv.Quote(string([]byte{c})), `"`), `"`) + "'"
	}
}
