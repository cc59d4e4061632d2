// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsondoc

import (
	"math"
	"slices"
)

// Kind identifies which of the seven JSON variants a Value holds.
// The zero Kind is KindNull.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindDouble
	KindString
	KindArray
	KindObject
)

var kindNames = [...]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindInt:    "int",
	KindDouble: "double",
	KindString: "string",
	KindArray:  "array",
	KindObject: "object",
}

// String prints the kind in a humanly readable fashion.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "<invalid jsondoc.Kind>"
}

// Value is a node in a JSON document tree, which may be one of the following:
//   - a JSON null (the zero value)
//   - a JSON boolean
//   - a JSON number, held either as an int64 (Int) or a float64 (Double)
//   - a JSON string holding unescaped UTF-8
//   - a JSON array, an ordered sequence of values
//   - a JSON object, an unordered mapping of names to values
//
// A Value owns its elements and members. Copying a Value copies the
// reference to any underlying array or object storage, so use Clone to
// obtain an independent copy before mutating a shared container.
type Value struct {
	// NOTE: This is an opaque type that functionally represents a union type.
	// Numbers and booleans share num, where a double is stored as its
	// IEEE-754 bit pattern, similar to how an exact number Token is stored.
	kind Kind
	num  uint64
	str  string
	arr  []Value
	obj  map[string]Value
}

// Null constructs a Value representing a JSON null.
func Null() Value { return Value{} }

// Bool constructs a Value representing a JSON boolean.
func Bool(b bool) Value {
	v := Value{kind: KindBool}
	if b {
		v.num = 1
	}
	return v
}

// Int constructs a Value representing a JSON integer.
func Int(n int64) Value {
	return Value{kind: KindInt, num: uint64(n)}
}

// Double constructs a Value representing a JSON floating-point number.
// The value should satisfy CheckDouble; a NaN, infinite or non-zero
// subnormal Double is serialized as null so that the output parses.
func Double(f float64) Value {
	return Value{kind: KindDouble, num: math.Float64bits(f)}
}

// String constructs a Value representing a JSON string.
// The string should contain valid UTF-8.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Array constructs a Value representing a JSON array of elems.
// The array takes ownership of the elems slice.
func Array(elems ...Value) Value {
	return Value{kind: KindArray, arr: elems}
}

// Object constructs a Value representing a JSON object of members.
// The object takes ownership of the members map, which may be nil.
func Object(members map[string]Value) Value {
	if members == nil {
		members = make(map[string]Value)
	}
	return Value{kind: KindObject, obj: members}
}

// minNormal is the smallest positive normal float64.
const minNormal = 0x1p-1022

// CheckDouble reports whether f may be held by a Double that is
// produced by the parser. NaN, ±Inf, and non-zero subnormal values are
// rejected; zero (of either sign) is accepted.
func CheckDouble(f float64) error {
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return errNonFinite
	case f != 0 && math.Abs(f) < minNormal:
		return errSubnormal
	}
	return nil
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is a JSON null.
func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) mustBe(k Kind, method string) {
	if v.kind != k {
		panic("jsondoc: call of Value." + method + " on " + v.kind.String() + " value")
	}
}

// Bool returns the value for a JSON boolean.
// It panics if v is not a JSON boolean.
func (v Value) Bool() bool {
	v.mustBe(KindBool, "Bool")
	return v.num != 0
}

// Int returns the value for a JSON integer.
// It panics if v is not an Int.
func (v Value) Int() int64 {
	v.mustBe(KindInt, "Int")
	return int64(v.num)
}

// Float returns the value for a JSON number.
// An Int is converted to the nearest float64.
// It panics if v is not a number.
func (v Value) Float() float64 {
	switch v.kind {
	case KindInt:
		return float64(int64(v.num))
	case KindDouble:
		return math.Float64frombits(v.num)
	}
	panic("jsondoc: call of Value.Float on " + v.kind.String() + " value")
}

// String returns the unescaped string value for a JSON string.
// For other JSON kinds, this returns the pretty-printed JSON text,
// so that a Value formats sensibly with the fmt package.
func (v Value) String() string {
	if v.kind == KindString {
		return v.str
	}
	return string(Marshal(v))
}

// AsBool returns the boolean held by v and whether v is a JSON boolean.
func (v Value) AsBool() (bool, bool) {
	return v.num != 0 && v.kind == KindBool, v.kind == KindBool
}

// AsInt returns the integer held by v and whether v is an Int.
func (v Value) AsInt() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return int64(v.num), true
}

// AsFloat returns the number held by v and whether v is an Int or Double.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindInt, KindDouble:
		return v.Float(), true
	}
	return 0, false
}

// AsString returns the string held by v and whether v is a JSON string.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// Len reports the number of elements in an array or members in an object.
// It returns 0 for every other kind.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj)
	}
	return 0
}

// IsEmpty reports whether v is null or an array or object with no entries.
func (v Value) IsEmpty() bool {
	switch v.kind {
	case KindNull:
		return true
	case KindArray, KindObject:
		return v.Len() == 0
	}
	return false
}

// Elements returns the elements of a JSON array.
// The returned slice aliases the array; mutating an element mutates v.
// It panics if v is not an array.
func (v Value) Elements() []Value {
	v.mustBe(KindArray, "Elements")
	return v.arr
}

// Members returns the members of a JSON object.
// The returned map aliases the object; mutating it mutates v.
// It panics if v is not an object.
func (v Value) Members() map[string]Value {
	v.mustBe(KindObject, "Members")
	return v.obj
}

// Index returns the i-th element of a JSON array.
// It panics if v is not an array or i is out of range.
func (v Value) Index(i int) Value {
	v.mustBe(KindArray, "Index")
	return v.arr[i]
}

// SetIndex replaces the i-th element of a JSON array.
// It panics if v is not an array or i is out of range.
func (v *Value) SetIndex(i int, elem Value) {
	v.mustBe(KindArray, "SetIndex")
	v.arr[i] = elem
}

// Append appends elems to the end of a JSON array.
// It panics if v is not an array.
func (v *Value) Append(elems ...Value) {
	v.mustBe(KindArray, "Append")
	v.arr = append(v.arr, elems...)
}

// Get returns the member of a JSON object with the given name
// and whether it was present. It returns false for non-objects.
func (v Value) Get(name string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	m, ok := v.obj[name]
	return m, ok
}

// Set stores a member of a JSON object, replacing any existing member
// with the same name. It panics if v is not an object.
func (v *Value) Set(name string, member Value) {
	v.mustBe(KindObject, "Set")
	if v.obj == nil {
		v.obj = make(map[string]Value)
	}
	v.obj[name] = member
}

// Delete removes the named member of a JSON object, if present.
// It panics if v is not an object.
func (v *Value) Delete(name string) {
	v.mustBe(KindObject, "Delete")
	delete(v.obj, name)
}

// Names returns the member names of a JSON object in sorted order.
// It returns nil for non-objects.
func (v Value) Names() []string {
	if v.kind != KindObject {
		return nil
	}
	names := make([]string, 0, len(v.obj))
	for name := range v.obj {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Equal reports whether v and w are structurally equal.
// Arrays compare element-wise in order, objects compare as sets of members
// regardless of iteration order, and an Int never equals a Double.
// Doubles compare by value, so 0.0 equals -0.0.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool, KindInt:
		return v.num == w.num
	case KindDouble:
		return math.Float64frombits(v.num) == math.Float64frombits(w.num)
	case KindString:
		return v.str == w.str
	case KindArray:
		return slices.EqualFunc(v.arr, w.arr, Value.Equal)
	case KindObject:
		if len(v.obj) != len(w.obj) {
			return false
		}
		for name, vm := range v.obj {
			wm, ok := w.obj[name]
			if !ok || !vm.Equal(wm) {
				return false
			}
		}
		return true
	}
	return false
}

// Clone returns a deep copy of v that shares no storage with it.
func (v Value) Clone() Value {
	switch v.kind {
	case KindArray:
		arr := make([]Value, len(v.arr))
		for i, elem := range v.arr {
			arr[i] = elem.Clone()
		}
		v.arr = arr
	case KindObject:
		obj := make(map[string]Value, len(v.obj))
		for name, member := range v.obj {
			obj[name] = member.Clone()
		}
		v.obj = obj
	}
	return v
}

// MarshalJSON returns the compact JSON encoding of v.
// It lets a Value be embedded in types handled by encoding/json
// and compatible libraries.
func (v Value) MarshalJSON() ([]byte, error) {
	return MarshalCompact(v), nil
}

// UnmarshalJSON parses b with the strict grammar of this package
// and stores the result in v.
func (v *Value) UnmarshalJSON(b []byte) error {
	nv, err := Parse(b)
	if err != nil {
		return err
	}
	*v = nv
	return nil
}
