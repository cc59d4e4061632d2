// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwire

import (
	"math"
	"slices"
	"strconv"
)

// AppendQuote appends src to dst as a JSON string per RFC 8259, section 7.
//
// Only the characters that JSON requires to be escaped are escaped:
// the quotation mark, the reverse solidus, and the control characters.
// The control characters \b, \f, \n, \r, and \t use their short form
// and every other byte below 0x20 uses a \u00XX sequence.
// The forward solidus is not escaped. All other bytes are copied verbatim
// since src is expected to already hold UTF-8.
func AppendQuote(dst []byte, src string) []byte {
	var i, n int
	dst = slices.Grow(dst, len(`"`)+len(src)+len(`"`))
	dst = append(dst, '"')
	for uint(len(src)) > uint(n) {
		if c := src[n]; NeedEscape(c) {
			dst = append(dst, src[i:n]...)
			if needEscapeAsUTF16(c) {
				dst = appendEscapedUTF16(dst, uint16(c))
			} else {
				dst = appendEscapedASCII(dst, c)
			}
			i = n + 1
		}
		n++
	}
	dst = append(dst, src[i:n]...)
	dst = append(dst, '"')
	return dst
}

func appendEscapedASCII(dst []byte, c byte) []byte {
	switch c {
	case '"', '\\':
		dst = append(dst, '\\', c)
	case '\b':
		dst = append(dst, "\\b"...)
	case '\f':
		dst = append(dst, "\\f"...)
	case '\n':
		dst = append(dst, "\\n"...)
	case '\r':
		dst = append(dst, "\\r"...)
	case '\t':
		dst = append(dst, "\\t"...)
	default:
		dst = appendEscapedUTF16(dst, uint16(c))
	}
	return dst
}

func appendEscapedUTF16(dst []byte, x uint16) []byte {
	const hex = "0123456789abcdef"
	return append(dst, '\\', 'u', hex[(x>>12)&0xf], hex[(x>>8)&0xf], hex[(x>>4)&0xf], hex[(x>>0)&0xf])
}

// AppendInt appends src to dst as a JSON number in minimal decimal form.
func AppendInt(dst []byte, src int64) []byte {
	return strconv.AppendInt(dst, src, 10)
}

// minNormal is the smallest positive normal float64.
const minNormal = 0x1p-1022

// FloatPrecision is the number of significant digits AppendFloat tries first.
const FloatPrecision = 15

// AppendFloat appends src to dst as a JSON number in general format
// with up to FloatPrecision significant digits.
//
// If that form does not parse back to exactly src, the shortest
// representation that does is used instead. The output always contains
// a fraction or an exponent so that it is never mistaken for an integer.
// NaN, ±Inf and non-zero subnormal values are not accepted by the parser
// and are formatted as null.
func AppendFloat(dst []byte, src float64) []byte {
	if math.IsNaN(src) || math.IsInf(src, 0) || (src != 0 && math.Abs(src) < minNormal) {
		return append(dst, "null"...)
	}

	start := len(dst)
	dst = strconv.AppendFloat(dst, src, 'g', FloatPrecision, 64)
	if f, err := strconv.ParseFloat(string(dst[start:]), 64); err != nil || f != src {
		dst = strconv.AppendFloat(dst[:start], src, 'g', -1, 64)
	}
	dst = trimExponent(dst, start)

	for _, c := range dst[start:] {
		if c == '.' || c == 'e' {
			return dst
		}
	}
	return append(dst, ".0"...)
}

// trimExponent cleans up e-09 to e-9 and e+09 to e+9 in dst[start:].
func trimExponent(dst []byte, start int) []byte {
	n := len(dst)
	if n-start >= 4 && dst[n-4] == 'e' && (dst[n-3] == '-' || dst[n-3] == '+') && dst[n-2] == '0' {
		dst[n-2] = dst[n-1]
		dst = dst[:n-1]
	}
	return dst
}
