// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsondoc

import (
	"fmt"
	"math"
)

// This file converts between Value and the dynamic Go representation of
// JSON (nil, bool, numbers, string, []any, and map[string]any), which is what
// a Go program typically holds when it has no knowledge of the JSON schema.

// maxConvertDepth bounds the nesting of a Go value accepted by ValueOf.
// Reference cycles in maps and slices are caught by this limit.
const maxConvertDepth = 10000

// ValueOf converts a dynamic Go value into a Value.
//
// It accepts nil, bool, string, every integer and floating-point kind,
// []any, map[string]any, []Value, map[string]Value, and Value itself.
// Unsigned integers above math.MaxInt64 are rejected, as are floats that
// CheckDouble rejects. Integers become Int and floats become Double.
func ValueOf(x any) (Value, error) {
	return valueOf(x, 0)
}

func valueOf(x any, depth int) (Value, error) {
	if depth > maxConvertDepth {
		return Value{}, fmt.Errorf("%w: exceeded max depth of %d (possible cycle)", Error, maxConvertDepth)
	}
	switch x := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case *Value:
		if x == nil {
			return Null(), nil
		}
		return *x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return uintValue(uint64(x))
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		return uintValue(x)
	case float32:
		return floatValue(float64(x))
	case float64:
		return floatValue(x)
	case []Value:
		return Array(x...), nil
	case map[string]Value:
		return Object(x), nil
	case []any:
		arr := make([]Value, len(x))
		for i, elem := range x {
			v, err := valueOf(elem, depth+1)
			if err != nil {
				return Value{}, err
			}
			arr[i] = v
		}
		return Array(arr...), nil
	case map[string]any:
		obj := make(map[string]Value, len(x))
		for name, member := range x {
			v, err := valueOf(member, depth+1)
			if err != nil {
				return Value{}, err
			}
			obj[name] = v
		}
		return Object(obj), nil
	default:
		return Value{}, fmt.Errorf("%w: cannot convert Go type %T to a Value", Error, x)
	}
}

func uintValue(n uint64) (Value, error) {
	if n > math.MaxInt64 {
		return Value{}, fmt.Errorf("%w: integer %d overflows 64-bit signed range", Error, n)
	}
	return Int(int64(n)), nil
}

func floatValue(f float64) (Value, error) {
	if err := CheckDouble(f); err != nil {
		return Value{}, fmt.Errorf("%w: cannot convert %v", err, f)
	}
	return Double(f), nil
}

// Interface converts v into its dynamic Go representation:
// nil, bool, int64, float64, string, []any, or map[string]any.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.num != 0
	case KindInt:
		return int64(v.num)
	case KindDouble:
		return math.Float64frombits(v.num)
	case KindString:
		return v.str
	case KindArray:
		arr := make([]any, len(v.arr))
		for i, elem := range v.arr {
			arr[i] = elem.Interface()
		}
		return arr
	case KindObject:
		obj := make(map[string]any, len(v.obj))
		for name, member := range v.obj {
			obj[name] = member.Interface()
		}
		return obj
	}
	return nil
}
