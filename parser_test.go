// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsondoc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// diffValues reports the difference between two Values by comparing their
// dynamic Go representation, which keeps int64 and float64 distinct.
func diffValues(want, got Value) string {
	return cmp.Diff(want.Interface(), got.Interface())
}

var parseTestdata = []struct {
	name string
	in   string
	want Value
}{
	{"Null", "null", Null()},
	{"True", " true ", Bool(true)},
	{"False", "\tfalse\n", Bool(false)},
	{"Int", "42", Int(42)},
	{"NegativeInt", "-17", Int(-17)},
	{"ExponentIsDouble", "1e2", Double(100)},
	{"NegativeDouble", "-0.5e2", Double(-50)},
	{"String", `"hello"`, String("hello")},
	{"SurrogatePair", `"😀"`, String("\xf0\x9f\x98\x80")},
	{"EmptyArray", "[]", Array()},
	{"EmptyArraySpaced", "[ \n ]", Array()},
	{"EmptyObject", "{}", Object(nil)},
	{"EmptyObjectSpaced", "{ \r\n }", Object(nil)},
	{"Array", `[1, 2.5, "x", true, null]`, Array(Int(1), Double(2.5), String("x"), Bool(true), Null())},
	{"Object", `{"a":1,"b":[true,null,"x"]}`, Object(map[string]Value{
		"a": Int(1),
		"b": Array(Bool(true), Null(), String("x")),
	})},
	{"DuplicateNames", `{"k":1,"k":2}`, Object(map[string]Value{"k": Int(2)})},
	{"NestedObjects", `{"outer":{"inner":{"x":1},"after":2},"last":3}`, Object(map[string]Value{
		"outer": Object(map[string]Value{
			"inner": Object(map[string]Value{"x": Int(1)}),
			"after": Int(2),
		}),
		"last": Int(3),
	})},
	{"ArraysInObjects", `{"a":[[],[{}],{"b":[1]}],"c":{}}`, Object(map[string]Value{
		"a": Array(Array(), Array(Object(nil)), Object(map[string]Value{"b": Array(Int(1))})),
		"c": Object(nil),
	})},
	{"WhitespaceEverywhere", " \n{ \"a\" :\t[ 1 , 2 ] , \"b\" : { } }\r\n", Object(map[string]Value{
		"a": Array(Int(1), Int(2)),
		"b": Object(nil),
	})},
}

func TestParse(t *testing.T) {
	for _, tt := range parseTestdata {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParser(tt.in)
			got := p.Parse()
			require.True(t, p.IsValid(), "unexpected error: %v", p.Err())
			assert.Empty(t, p.ErrorMessage())
			assert.NoError(t, p.Err())
			if diff := diffValues(tt.want, got); diff != "" {
				t.Errorf("Parse mismatch (-want +got):\n%s", diff)
			}
			assert.True(t, tt.want.Equal(got))
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   *SyntaxError
		offset int64
	}{
		{"Empty", "", errEmptyDocument, 0},
		{"WhitespaceOnly", " \t\r\n", errEmptyDocument, 4},
		{"RootArrayEnd", "]", errUnexpectedRoot, 0},
		{"RootObjectEnd", " }", errUnexpectedRoot, 1},
		{"RootColon", ":", errUnexpectedRoot, 0},
		{"RootComma", ",", errUnexpectedRoot, 0},
		{"TrailingValue", "1 2", errTrailingTokens, 2},
		{"TrailingGarbage", "{} x", errTrailingTokens, 3},
		{"TrailingCloser", `{"a":1}}`, errTrailingTokens, 7},
		{"MissingColonScenario", `[1,    2, {"key" "value"}]`, errMissingColon, 17},
		{"MissingColon", `{"a" 1}`, errMissingColon, 5},
		{"DoubleColon", `{"a"::1}`, errUnexpectedColon, 5},
		{"MissingValue", `{"a":}`, errMissingValue, 5},
		{"MissingComma", "[1 2]", errMissingComma, 3},
		{"MissingCommaInObject", `{"a":1 "b":2}`, errMissingComma, 7},
		{"TrailingCommaArray", "[1,]", errTrailingComma, 3},
		{"TrailingCommaObject", `{"a":1,}`, errTrailingComma, 7},
		{"LeadingComma", "[,1]", errUnexpectedComma, 1},
		{"DoubleComma", "[1,,2]", errUnexpectedComma, 3},
		{"DoubleCommaInObject", `{"a":1,,}`, errMissingName, 7},
		{"ColonInArray", "[1:2]", errUnexpectedColon, 2},
		{"ColonBeforeValue", "[:]", errUnexpectedColon, 1},
		{"NonStringName", "{1:2}", errMissingName, 1},
		{"MissingName", "{:1}", errMissingName, 1},
		{"EmptyName", `{"":1}`, errEmptyName, 1},
		{"ArrayEndInObject", "{]", errArrayEndInObject, 1},
		{"ArrayEndAfterMember", `{"a":1]`, errArrayEndInObject, 6},
		{"ArrayEndAfterComma", `{"a":1,]`, errArrayEndInObject, 7},
		{"ArrayEndAfterColon", `{"a":]`, errArrayEndInObject, 5},
		{"ObjectEndInArray", "[}", errObjectEndInArray, 1},
		{"ObjectEndAfterElement", "[1}", errObjectEndInArray, 2},
		{"ObjectEndAfterComma", "[1,2,}", errObjectEndInArray, 5},
		{"EOFInArray", "[", errEOFInsideArray, 1},
		{"EOFInNestedArray", `{"a":[1,2`, errEOFInsideArray, 9},
		{"EOFInObject", `{"a":1`, errEOFInsideObject, 6},
		{"EOFAfterName", `{"a"`, errEOFInsideObject, 4},
		{"EOFAfterComma", "[1,", errEOFInsideArray, 3},
		{"LexicalErrorInContainer", "[1, 01]", errLeadingZero, 5},
		{"LexicalErrorAtRoot", "-", errLoneMinus, 1},
		{"UnterminatedStringInObject", `{"a":"b`, errUnterminatedString, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParser(tt.in)
			got := p.Parse()
			assert.True(t, got.IsNull(), "invalid input must yield null")
			require.False(t, p.IsValid())
			assert.Equal(t, tt.want.Message(), p.ErrorMessage())

			var serr *SyntaxError
			require.ErrorAs(t, p.Err(), &serr)
			assert.Equal(t, tt.offset, serr.Offset)
			assert.ErrorIs(t, p.Err(), Error)

			_, err := ParseString(tt.in)
			assert.Equal(t, serr, err)
			assert.False(t, Valid([]byte(tt.in)))
		})
	}
}

func TestParseDeepNesting(t *testing.T) {
	const depth = 100000

	t.Run("Arrays", func(t *testing.T) {
		in := strings.Repeat("[", depth) + strings.Repeat("]", depth)
		v, err := ParseString(in)
		require.NoError(t, err)
		n := 0
		for ; v.Len() > 0; v = v.Index(0) {
			n++
		}
		assert.Equal(t, depth-1, n)
		assert.Equal(t, KindArray, v.Kind())
	})

	t.Run("Objects", func(t *testing.T) {
		in := strings.Repeat(`{"a":`, depth) + "null" + strings.Repeat("}", depth)
		v, err := ParseString(in)
		require.NoError(t, err)
		n := 0
		for v.Kind() == KindObject {
			v, _ = v.Get("a")
			n++
		}
		assert.Equal(t, depth, n)
		assert.True(t, v.IsNull())
	})

	t.Run("Mixed", func(t *testing.T) {
		var sb strings.Builder
		for i := 0; i < depth; i++ {
			sb.WriteString(`{"k":[`)
		}
		for i := 0; i < depth; i++ {
			sb.WriteString(`]}`)
		}
		assert.True(t, Valid([]byte(sb.String())))
	})

	t.Run("Unterminated", func(t *testing.T) {
		in := strings.Repeat("[", depth)
		_, err := ParseString(in)
		var serr *SyntaxError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, errEOFInsideArray.Message(), serr.Message())
		assert.Equal(t, int64(depth), serr.Offset)
	})

	t.Run("Mismatched", func(t *testing.T) {
		in := strings.Repeat("[", depth) + "}"
		_, err := ParseString(in)
		var serr *SyntaxError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, errObjectEndInArray.Message(), serr.Message())
	})
}

// The parent name must survive a nested object that sets names of its own.
func TestParseNestedObjectNames(t *testing.T) {
	v, err := ParseString(`{"outer":{"x":{"y":{"z":1}},"w":2},"v":3}`)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"outer", "v"}, v.Names())
	outer, _ := v.Get("outer")
	assert.Equal(t, []string{"w", "x"}, outer.Names())
	x, _ := outer.Get("x")
	y, _ := x.Get("y")
	z, _ := y.Get("z")
	assert.Equal(t, int64(1), z.Int())
}

func TestParseIntegers(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 9, 10, 99, -100, 1 << 31, -(1 << 31), 1<<53 + 1, math.MaxInt64, math.MinInt64} {
		s := strconv.FormatInt(n, 10)
		v, err := ParseString(s)
		require.NoError(t, err, s)
		assert.Equal(t, KindInt, v.Kind(), s)
		assert.Equal(t, n, v.Int(), s)
	}
}

func TestParseRejectsControlCharacters(t *testing.T) {
	for c := byte(0); c < 0x20; c++ {
		in := `["a` + string(c) + `b"]`
		assert.False(t, Valid([]byte(in)), "control character %#02x", c)
	}
	// Escaped forms of the same characters are fine.
	for c := 0; c < 0x20; c++ {
		in := fmt.Sprintf(`"\u%04x"`, c)
		v, err := ParseString(in)
		require.NoError(t, err, in)
		assert.Equal(t, string(rune(c)), v.String())
	}
}

func TestParseRejectsTrailingCommas(t *testing.T) {
	for _, in := range []string{
		"[1,]",
		"[1, ]",
		"[[],]",
		`{"a":1,}`,
		`{"a":{},}`,
		`[{"a":[1,2,]}]`,
		`{"a":[{"b":1,}]}`,
	} {
		p := NewParser(in)
		p.Parse()
		assert.False(t, p.IsValid(), in)
	}
}

func TestParseRejectsLeadingZeros(t *testing.T) {
	for _, in := range []string{"00", "01", "-01", "00.5", "[012]", `{"a":09}`, "0123e4"} {
		assert.False(t, Valid([]byte(in)), in)
	}
	for _, in := range []string{"0", "-0", "0.5", "0e1", "10", "[0,0]"} {
		assert.True(t, Valid([]byte(in)), in)
	}
}

func TestParseNonFinite(t *testing.T) {
	for _, in := range []string{"NaN", "Infinity", "-Infinity", "1e400", "[1e309]", "-1.8e308"} {
		_, err := ParseString(in)
		assert.Error(t, err, in)
	}
	_, err := ParseString("1e400")
	assert.ErrorContains(t, err, errNonFinite.Message())
	_, err = ParseString("1e-400")
	assert.ErrorContains(t, err, errSubnormal.Message())
}

func TestParserErrorAccumulation(t *testing.T) {
	p := NewParser("[")
	p.Parse()
	// Parse is documented to be called once, but a second call must not panic
	// and simply reports the exhausted input.
	p.Parse()
	assert.False(t, p.IsValid())
	assert.Equal(t, errEOFInsideArray.Message()+"\n"+errEmptyDocument.Message(), p.ErrorMessage())

	var serr *SyntaxError
	require.ErrorAs(t, p.Err(), &serr)
	assert.True(t, errors.Is(p.Err(), Error))
}

func TestParseScenarios(t *testing.T) {
	t.Run("Int", func(t *testing.T) {
		d := FromString("42")
		require.True(t, d.IsValid())
		assert.Equal(t, int64(42), d.Root().Int())
		assert.Equal(t, "42", d.ToString())
	})
	t.Run("Double", func(t *testing.T) {
		v, err := ParseString("-0.5e2")
		require.NoError(t, err)
		assert.Equal(t, KindDouble, v.Kind())
		assert.Equal(t, -50.0, v.Float())
		w, err := Parse(Marshal(v))
		require.NoError(t, err)
		assert.True(t, v.Equal(w))
	})
	t.Run("MissingColon", func(t *testing.T) {
		d := FromString(`[1,    2, {"key" "value"}]`)
		assert.False(t, d.IsValid())
		assert.Contains(t, d.ErrorMessage(), "missing character ':'")
		assert.True(t, d.Root().IsNull())
	})
	t.Run("Object", func(t *testing.T) {
		d := FromString(`{"a":1,"b":[true,null,"x"]}`)
		require.True(t, d.IsValid())
		root := d.Root()
		assert.Equal(t, 2, root.Len())
		b, ok := root.Get("b")
		require.True(t, ok)
		require.Equal(t, 3, b.Len())
		assert.True(t, b.Index(0).Bool())
		assert.True(t, b.Index(1).IsNull())
		assert.Equal(t, "x", b.Index(2).String())
	})
	t.Run("Surrogates", func(t *testing.T) {
		v, err := ParseString(`"😀"`)
		require.NoError(t, err)
		assert.Equal(t, []byte{0xf0, 0x9f, 0x98, 0x80}, []byte(v.String()))
	})
	t.Run("DuplicateKeys", func(t *testing.T) {
		v, err := ParseString(`{"k":1,"k":2}`)
		require.NoError(t, err)
		assert.Equal(t, 1, v.Len())
		k, _ := v.Get("k")
		assert.Equal(t, int64(2), k.Int())
	})
}

func TestValueUnmarshalJSON(t *testing.T) {
	var v Value
	require.NoError(t, v.UnmarshalJSON([]byte(`{"a":[1]}`)))
	assert.Equal(t, []string{"a"}, v.Names())

	err := v.UnmarshalJSON([]byte(`{"a":[1,]}`))
	assert.ErrorIs(t, err, Error)
	assert.Equal(t, []string{"a"}, v.Names(), "failed unmarshal must not modify the value")
}
