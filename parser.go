// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsondoc

import (
	"errors"
	"strings"
)

// Parser assembles the tokens of a Lexer into a Value tree.
//
// For example, the following JSON text:
//
//	{"key":"value","array":[null,false,true,3.14159],"object":{"k":"v"}}
//
// is read as the token sequence
//
//	{ "key" : "value" , "array" : [ null , false , true , 3.14159 ] , ...
//
// and assembled without recursion, using an explicit stack of the arrays and
// objects that are still open. Arbitrarily deep nesting is therefore limited
// only by available memory.
//
// Parsing stops at the first error, in which case Parse returns null
// and IsValid reports false.
type Parser struct {
	lex   *Lexer
	state stateMachine
	errs  []error
}

// NewParser constructs a Parser reading from src.
func NewParser(src string) *Parser {
	return &Parser{lex: NewLexer(src)}
}

// Parse parses exactly one JSON value from the input,
// which must contain nothing but whitespace after it.
// Parse must be called at most once per Parser.
func (p *Parser) Parse() Value {
	root, err := p.parse()
	if err != nil {
		p.errs = append(p.errs, err)
		return Null()
	}
	return root
}

func (p *Parser) parse() (Value, error) {
	var root Value
	switch tok := p.lex.Next(); {
	case tok.Kind == TokenInvalid:
		return Value{}, tok.Err
	case tok.Kind == TokenEOF:
		return Value{}, errEmptyDocument.withOffset(tok.Offset)
	case tok.Kind.IsScalar():
		root = tok.Value
	case tok.Kind == TokenArrayStart || tok.Kind == TokenObjectStart:
		var err error
		if root, err = p.parseContainer(tok.Kind); err != nil {
			return Value{}, err
		}
	default:
		return Value{}, errUnexpectedRoot.withOffset(tok.Offset)
	}

	if tok := p.lex.Next(); tok.Kind != TokenEOF {
		return Value{}, errTrailingTokens.withOffset(tok.Offset)
	}
	return root, nil
}

// parseContainer assembles the array or object that begins with open.
func (p *Parser) parseContainer(open TokenKind) (Value, error) {
	m := &p.state
	m.reset()
	defer m.reset()
	if open == TokenArrayStart {
		m.pushArray()
	} else {
		m.pushObject()
	}
	for {
		tok := p.lex.Next()
		switch tok.Kind {
		case TokenInvalid:
			return Value{}, tok.Err
		case TokenEOF:
			return Value{}, m.eofError().withOffset(tok.Offset)
		}
		root, done, err := m.appendToken(tok)
		switch {
		case err != nil:
			return Value{}, err.withOffset(tok.Offset)
		case done:
			return root, nil
		}
	}
}

// IsValid reports whether no error has been recorded.
func (p *Parser) IsValid() bool {
	return len(p.errs) == 0
}

// ErrorMessage returns every recorded diagnostic, separated by newlines.
// It returns the empty string if the input was valid.
func (p *Parser) ErrorMessage() string {
	return joinMessages(p.errs)
}

// Err returns the recorded errors joined together, or nil if valid.
func (p *Parser) Err() error {
	return errors.Join(p.errs...)
}

func joinMessages(errs []error) string {
	var sb strings.Builder
	for i, err := range errs {
		if i > 0 {
			sb.WriteByte('\n')
		}
		var serr *SyntaxError
		if errors.As(err, &serr) {
			sb.WriteString(serr.Message())
		} else {
			sb.WriteString(err.Error())
		}
	}
	return sb.String()
}

// Parse parses data as a single JSON value.
// The returned error, if any, is a *SyntaxError.
func Parse(data []byte) (Value, error) {
	return ParseString(string(data))
}

// ParseString parses s as a single JSON value.
// The returned error, if any, is a *SyntaxError.
func ParseString(s string) (Value, error) {
	p := NewParser(s)
	v := p.Parse()
	if !p.IsValid() {
		return Value{}, p.errs[0]
	}
	return v, nil
}

// Valid reports whether data is a single valid JSON value
// according to the grammar of this package.
func Valid(data []byte) bool {
	_, err := Parse(data)
	return err == nil
}
