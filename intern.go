// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsondoc

import "hash/maphash"

// internTable is a small direct-mapped cache of strings decoded by a Lexer.
// Documents tend to repeat the same object names many times,
// so sharing a single allocation for each of them keeps the tree compact.
type internTable struct {
	seed    maphash.Seed
	entries [256]string // 256*unsafe.Sizeof(string("")) => 4KiB
}

func newInternTable() *internTable {
	return &internTable{seed: maphash.MakeSeed()}
}

// make returns the string form of b.
// It returns a previously allocated string from t if present, otherwise
// it allocates a new string, records it in t, and returns it.
// The result never aliases b.
func (t *internTable) make(b []byte) string {
	const (
		minCachedLen = 2   // single byte strings are already interned by the runtime
		maxCachedLen = 256 // large enough for UUIDs, URLs, typical names, etc.
	)
	if t == nil || len(b) < minCachedLen || len(b) > maxCachedLen {
		return string(b)
	}
	i := maphash.Bytes(t.seed, b) % uint64(len(t.entries))
	if s := t.entries[i]; s == string(b) {
		return s
	}
	s := string(b)
	t.entries[i] = s
	return s
}
