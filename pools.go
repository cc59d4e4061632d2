// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsondoc

import (
	"math/bits"
	"sync"
)

var encoderPool = sync.Pool{New: func() any { return new(encoder) }}

func getEncoder(indent string) *encoder {
	e := encoderPool.Get().(*encoder)
	e.indent = indent
	return e
}

func putEncoder(e *encoder) {
	// The stack is always fully popped by appendValue,
	// and popped frames are zeroed so they retain no Values.
	*e = encoder{stack: e.stack[:0]}
	encoderPool.Put(e)
}

// bufferPool is a pool of variable-length buffers.
//
// Example usage:
//
//	b := getBuffer()
//	defer putBuffer(b)
//	b.buf = AppendValue(b.buf, v, indent) // may resize b.buf to arbitrarily large sizes
//	return append([]byte(nil), b.buf...)  // single copy of the b.buf contents
//
// It avoids https://golang.org/issue/23199 by locally tracking
// statistics on the utilization of the buffer to avoid
// pinning arbitrarily large buffers on the heap forever.
var bufferPool = sync.Pool{
	New: func() any { return new(pooledBuffer) },
}

type pooledBuffer struct {
	buf     []byte
	strikes int // number of times the buffer was under-utilized
	prevLen int // length of previous buffer
}

// getBuffer retrieves a buffer from the pool,
// where len(b.buf) is guaranteed to be zero and cap(b.buf) > 0.
func getBuffer() (b *pooledBuffer) {
	b = bufferPool.Get().(*pooledBuffer)
	if b.buf == nil {
		// Round up to nearest 2ⁿ to make best use of malloc size classes.
		// Logical OR with 63 to ensure 64 as the minimum buffer size.
		n := 1 << bits.Len(uint(b.prevLen|63))
		b.buf = make([]byte, 0, n)
	}
	return b
}

// putBuffer places the buffer back into the pool,
// where len(b.buf) is the actual amount of the buffer that was used.
//
// Large buffers are recycled only if sufficiently utilized.
// After maxStrikes consecutive under-utilized uses the buffer is discarded,
// so a single large document cannot pin memory for a stream of small ones.
// The worst case utilization is minUtilization / (1 + maxStrikes) = 5%.
func putBuffer(b *pooledBuffer) {
	const (
		alwaysRecycle = 4 << 10
		maxStrikes    = 4
	)
	switch {
	case cap(b.buf) <= alwaysRecycle:
		b.strikes = 0
	case cap(b.buf)/4 <= len(b.buf): // minUtilization is 25%
		b.strikes = 0
	case b.strikes < maxStrikes:
		b.strikes++
	default:
		b.strikes = 0
		b.prevLen = len(b.buf) // heuristic for size to allocate next time
		b.buf = nil
	}
	b.buf = b.buf[:0]
	bufferPool.Put(b)
}
