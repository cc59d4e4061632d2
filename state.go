// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsondoc

// stateMachine is a push-down automaton that assembles a sequence of tokens
// into nested JSON arrays and objects, validating the grammar as it goes.
//
// It is a stack where each entry represents a JSON object or array that is
// still being built. A parallel stack holds the most recently read name for
// every object entry, so that a completed child value can be installed into
// its parent under the right name when the child is popped.
// Nesting is bounded only by available memory; nothing recurses.
//
// The zero value is an empty machine ready for use.
type stateMachine struct {
	stack []stateEntry
	names []string // one pending name per object entry on stack

	// danglingComma reports whether the previous token was a comma,
	// which forbids the next token from closing the container.
	danglingComma bool
}

// reset empties the machine, retaining allocated capacity.
// Stale entries are cleared so that values from an earlier parse
// are not kept alive.
func (m *stateMachine) reset() {
	clear(m.stack[:cap(m.stack)])
	clear(m.names[:cap(m.names)])
	m.stack = m.stack[:0]
	m.names = m.names[:0]
	m.danglingComma = false
}

// depth is the current nested depth of JSON objects and arrays.
func (m *stateMachine) depth() int {
	return len(m.stack)
}

// last returns a pointer to the last entry.
func (m *stateMachine) last() *stateEntry {
	return &m.stack[len(m.stack)-1]
}

// pushArray begins a new JSON array.
func (m *stateMachine) pushArray() {
	m.stack = append(m.stack, stateEntry{value: Array(), expect: expectArrayValue})
}

// pushObject begins a new JSON object.
func (m *stateMachine) pushObject() {
	m.stack = append(m.stack, stateEntry{value: Object(nil), expect: expectName})
	m.names = append(m.names, "")
}

// appendValue installs a completed value into the last entry,
// either as the next array element or as the member for the pending name.
func (m *stateMachine) appendValue(v Value) {
	e := m.last()
	if e.isObject() {
		e.value.obj[m.names[len(m.names)-1]] = v
	} else {
		e.value.arr = append(e.value.arr, v)
	}
	e.expect = expectComma
}

// pop removes the last entry and installs it into its parent.
// It reports the completed value and true if the popped entry was the root.
func (m *stateMachine) pop() (Value, bool) {
	e := m.last()
	v := e.value
	if e.isObject() {
		m.names[len(m.names)-1] = ""
		m.names = m.names[:len(m.names)-1]
	}
	*e = stateEntry{}
	m.stack = m.stack[:len(m.stack)-1]
	if len(m.stack) == 0 {
		return v, true
	}
	m.appendValue(v)
	return Value{}, false
}

// appendToken feeds the next token within the outermost container.
// It reports the root value and true once the outermost container closes.
// If an error is returned, the state is not mutated.
//
// End-of-input and invalid tokens must be handled by the caller.
func (m *stateMachine) appendToken(tok Token) (root Value, done bool, err *SyntaxError) {
	e := m.last()
	switch e.expect {
	case expectArrayValue, expectObjectValue:
		switch k := tok.Kind; {
		case k.IsScalar():
			m.appendValue(tok.Value)
		case k == TokenArrayStart:
			m.pushArray()
		case k == TokenObjectStart:
			m.pushObject()
		case k == TokenArrayEnd && e.isArray():
			if m.danglingComma {
				return Value{}, false, errTrailingComma
			}
			root, done = m.pop()
		case k == TokenArrayEnd:
			return Value{}, false, errArrayEndInObject
		case k == TokenObjectEnd && e.isObject():
			return Value{}, false, errMissingValue
		case k == TokenObjectEnd:
			return Value{}, false, errObjectEndInArray
		case k == TokenColon:
			return Value{}, false, errUnexpectedColon
		case k == TokenComma:
			return Value{}, false, errUnexpectedComma
		}
	case expectName:
		switch tok.Kind {
		case TokenString:
			name := tok.Value.str
			if name == "" {
				return Value{}, false, errEmptyName
			}
			m.names[len(m.names)-1] = name
			e.expect = expectColon
		case TokenObjectEnd:
			if m.danglingComma {
				return Value{}, false, errTrailingComma
			}
			root, done = m.pop()
		case TokenArrayEnd:
			return Value{}, false, errArrayEndInObject
		default:
			return Value{}, false, errMissingName
		}
	case expectColon:
		if tok.Kind != TokenColon {
			return Value{}, false, errMissingColon
		}
		e.expect = expectObjectValue
	case expectComma:
		switch k := tok.Kind; {
		case k == TokenComma && e.isObject():
			e.expect = expectName
		case k == TokenComma:
			e.expect = expectArrayValue
		case k == TokenArrayEnd && e.isArray(), k == TokenObjectEnd && e.isObject():
			root, done = m.pop()
		case k == TokenArrayEnd:
			return Value{}, false, errArrayEndInObject
		case k == TokenObjectEnd:
			return Value{}, false, errObjectEndInArray
		case k == TokenColon:
			return Value{}, false, errUnexpectedColon
		default:
			return Value{}, false, errMissingComma
		}
	}
	m.danglingComma = tok.Kind == TokenComma
	return root, done, nil
}

// eofError reports the error for input that ends inside the last entry.
func (m *stateMachine) eofError() *SyntaxError {
	if m.last().isObject() {
		return errEOFInsideObject
	}
	return errEOFInsideArray
}

// expectation is what the next token must be within a container.
type expectation uint8

const (
	expectArrayValue  expectation = iota // a value, or ']' unless after a comma
	expectObjectValue                    // a value following a name and colon
	expectName                           // a name, or '}' unless after a comma
	expectColon                          // ':' following a name
	expectComma                          // ',' or the matching closing delimiter
)

// stateEntry is a JSON array or object under construction.
type stateEntry struct {
	value  Value
	expect expectation
}

// isObject reports whether this is a JSON object.
func (e *stateEntry) isObject() bool {
	return e.value.kind == KindObject
}

// isArray reports whether this is a JSON array.
func (e *stateEntry) isArray() bool {
	return e.value.kind == KindArray
}
