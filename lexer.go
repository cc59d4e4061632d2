// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsondoc

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-json-experiment/jsondoc/internal/jsonwire"
)

// Lexer splits JSON text into a sequence of tokens.
//
// The Lexer never fails by panicking or returning an error; a lexical error
// is reported as a TokenInvalid whose Err is a *SyntaxError. Once an invalid
// token is produced, every later call to Next returns that same token.
// Once the input is exhausted, every later call returns TokenEOF.
//
// The Lexer does not validate grammar; it happily reports "truex" as the
// boolean true followed by an invalid token.
type Lexer struct {
	src string
	pos int

	invalid Token // sticky once Kind is TokenInvalid and Err is non-nil

	scratch []byte // reused buffer for unescaping strings
	strings *internTable
}

// NewLexer constructs a Lexer reading from src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src, strings: newInternTable()}
}

// Offset returns the number of input bytes consumed so far.
func (l *Lexer) Offset() int64 {
	return int64(l.pos)
}

// Next skips leading whitespace and returns the next token.
func (l *Lexer) Next() Token {
	if l.invalid.Err != nil {
		return l.invalid
	}
	l.pos += jsonwire.ConsumeWhitespace(l.src[l.pos:])
	if l.pos >= len(l.src) {
		return Token{Kind: TokenEOF, Offset: int64(l.pos)}
	}

	start := l.pos
	switch c := l.src[l.pos]; c {
	case '[':
		return l.delim(TokenArrayStart)
	case ']':
		return l.delim(TokenArrayEnd)
	case '{':
		return l.delim(TokenObjectStart)
	case '}':
		return l.delim(TokenObjectEnd)
	case ':':
		return l.delim(TokenColon)
	case ',':
		return l.delim(TokenComma)
	case 'n':
		return l.literal("null", TokenNull, Null())
	case 'f':
		return l.literal("false", TokenBool, Bool(false))
	case 't':
		return l.literal("true", TokenBool, Bool(true))
	case '"':
		return l.lexString()
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return l.lexNumber()
	default:
		return l.fail(newInvalidCharacterError(c, "at start of value"), start)
	}
}

func (l *Lexer) delim(k TokenKind) Token {
	t := Token{Kind: k, Offset: int64(l.pos)}
	l.pos++
	return t
}

func (l *Lexer) literal(lit string, k TokenKind, v Value) Token {
	start := l.pos
	if !strings.HasPrefix(l.src[start:], lit) {
		// Report the first byte that diverges from the literal.
		n := 0
		for start+n < len(l.src) && l.src[start+n] == lit[n] {
			n++
		}
		if start+n == len(l.src) {
			return l.fail(&SyntaxError{str: "unexpected end of input within literal " + lit}, start+n)
		}
		return l.fail(newInvalidCharacterError(l.src[start+n], "within literal "+lit+" (expecting "+escapeCharacter(lit[n])+")"), start+n)
	}
	l.pos += len(lit)
	return Token{Kind: k, Value: v, Offset: int64(start)}
}

func (l *Lexer) fail(err *SyntaxError, pos int) Token {
	l.invalid = Token{Kind: TokenInvalid, Err: err.withOffset(int64(pos)), Offset: int64(pos)}
	return l.invalid
}

// lexNumber consumes a JSON number according to the grammar:
//
//	number = [ minus ] int [ frac ] [ exp ]
//
// A number without a fraction or exponent is an Int, otherwise a Double.
func (l *Lexer) lexNumber() Token {
	s := l.src
	start := l.pos
	n := start

	if s[n] == '-' {
		n++
		if n == len(s) || !jsonwire.IsDigit(s[n]) {
			return l.fail(errLoneMinus, n)
		}
	}
	if s[n] == '0' {
		n++
		if n < len(s) && jsonwire.IsDigit(s[n]) {
			return l.fail(errLeadingZero, n)
		}
	} else {
		for n < len(s) && jsonwire.IsDigit(s[n]) {
			n++
		}
	}

	isDouble := false
	if n < len(s) && s[n] == '.' {
		isDouble = true
		n++
		if n == len(s) || !jsonwire.IsDigit(s[n]) {
			return l.fail(errMissingFraction, n)
		}
		for n < len(s) && jsonwire.IsDigit(s[n]) {
			n++
		}
	}
	if n < len(s) && (s[n] == 'e' || s[n] == 'E') {
		isDouble = true
		n++
		if n < len(s) && (s[n] == '+' || s[n] == '-') {
			n++
		}
		if n == len(s) || !jsonwire.IsDigit(s[n]) {
			return l.fail(errMissingExponent, n)
		}
		for n < len(s) && jsonwire.IsDigit(s[n]) {
			n++
		}
	}

	lexeme := s[start:n]
	if !isDouble {
		// The only possible failure for a well-formed integer is ErrRange.
		i, err := strconv.ParseInt(lexeme, 10, 64)
		if err != nil {
			return l.fail(errIntegerOverflow, start)
		}
		l.pos = n
		return Token{Kind: TokenInt, Value: Int(i), Offset: int64(start)}
	}

	// ParseFloat rounds values too small to represent to zero without
	// reporting an error, so detect that from the mantissa instead.
	f, _ := strconv.ParseFloat(lexeme, 64)
	if f == 0 && !isZeroMantissa(lexeme) {
		return l.fail(errSubnormal, start)
	}
	if err := CheckDouble(f); err != nil {
		return l.fail(err.(*SyntaxError), start)
	}
	l.pos = n
	return Token{Kind: TokenDouble, Value: Double(f), Offset: int64(start)}
}

// isZeroMantissa reports whether every digit before the exponent is zero.
func isZeroMantissa(lexeme string) bool {
	for i := 0; i < len(lexeme); i++ {
		switch c := lexeme[i]; {
		case c == 'e' || c == 'E':
			return true
		case '1' <= c && c <= '9':
			return false
		}
	}
	return true
}

// lexString consumes a JSON string, unescaping it into the scratch buffer.
// The input must be valid UTF-8 and must not contain unescaped control
// characters. Surrogate halves must appear as properly paired \u escapes.
func (l *Lexer) lexString() Token {
	s := l.src
	start := l.pos
	n := start + 1
	b := l.scratch[:0]
	for {
		// Copy the longest run of bytes that need no special handling.
		i := n
		for i < len(s) && s[i] < utf8.RuneSelf && s[i] >= ' ' && s[i] != '"' && s[i] != '\\' {
			i++
		}
		b = append(b, s[n:i]...)
		n = i
		if n == len(s) {
			return l.fail(errUnterminatedString, n)
		}

		switch c := s[n]; {
		case c == '"':
			l.scratch = b
			l.pos = n + 1
			return Token{Kind: TokenString, Value: String(l.strings.make(b)), Offset: int64(start)}
		case c == '\\':
			var err *SyntaxError
			var pos int
			if b, n, pos, err = unescape(b, s, n); err != nil {
				return l.fail(err, pos)
			}
		case c < ' ':
			return l.fail(newInvalidCharacterError(c, "within string (expecting non-control character)"), n)
		default:
			r, size := utf8.DecodeRuneInString(s[n:])
			if r == utf8.RuneError && size == 1 {
				return l.fail(errInvalidUTF8, n)
			}
			b = append(b, s[n:n+size]...)
			n += size
		}
	}
}

// unescape decodes the escape sequence at s[n:], which starts with a
// backslash, and appends the result to b. It returns the updated buffer and
// the offset just past the sequence, or the offset and cause of an error.
func unescape(b []byte, s string, n int) ([]byte, int, int, *SyntaxError) {
	start := n
	n++ // skip backslash
	if n == len(s) {
		return b, n, n, errUnterminatedEscape
	}
	switch c := s[n]; c {
	case '"', '\\', '/':
		return append(b, c), n + 1, 0, nil
	case 'b':
		return append(b, '\b'), n + 1, 0, nil
	case 'f':
		return append(b, '\f'), n + 1, 0, nil
	case 'n':
		return append(b, '\n'), n + 1, 0, nil
	case 'r':
		return append(b, '\r'), n + 1, 0, nil
	case 't':
		return append(b, '\t'), n + 1, 0, nil
	case 'u':
		r, err := parseUnicodeEscape(s, n+1)
		if err != nil {
			return b, n, start, err
		}
		n += 5
		switch {
		case jsonwire.IsLowSurrogate(r):
			return b, n, start, errLoneLowHalf
		case jsonwire.IsHighSurrogate(r):
			if !strings.HasPrefix(s[n:], `\u`) {
				return b, n, n, errMissingLowHalf
			}
			lo, err := parseUnicodeEscape(s, n+2)
			if err != nil {
				return b, n, n, err
			}
			if !jsonwire.IsLowSurrogate(lo) {
				return b, n, n, errInvalidLowHalf
			}
			r = jsonwire.CombineSurrogates(r, lo)
			n += 6
		}
		var ok bool
		if b, ok = jsonwire.AppendRune(b, r); !ok {
			return b, n, start, errInvalidCodePoint
		}
		return b, n, 0, nil
	default:
		return b, n, n, newInvalidEscapeError(c)
	}
}

// parseUnicodeEscape parses the four hexadecimal digits at s[n:].
func parseUnicodeEscape(s string, n int) (rune, *SyntaxError) {
	r, ok := jsonwire.ParseHex4(s[n:])
	if ok {
		return r, nil
	}
	// Distinguish input that merely ended early from a malformed escape.
	rest := s[n:]
	for i := 0; i < len(rest); i++ {
		if !isHex(rest[i]) {
			return 0, errInvalidUnicode
		}
	}
	return 0, errUnterminatedEscape
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
