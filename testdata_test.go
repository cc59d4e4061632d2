// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsondoc

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
)

type jsonTestdataEntry struct {
	name string
	data []byte
}

var (
	jsonTestdataOnce sync.Once
	jsonTestdataLazy []jsonTestdataEntry
)

// jsonTestdata returns a corpus of valid JSON documents shared by the
// round-trip, oracle, fuzz, and benchmark tests.
// The documents are generated deterministically so that no files are needed.
func jsonTestdata() []jsonTestdataEntry {
	jsonTestdataOnce.Do(func() {
		jsonTestdataLazy = []jsonTestdataEntry{
			{"Config", []byte(configDocument)},
			{"StringEscaped", makeStringsDocument(true)},
			{"StringUnicode", makeStringsDocument(false)},
			{"Numbers", makeNumbersDocument()},
			{"SyntheticNested", makeNestedDocument()},
			{"RecordSet", makeRecordSetDocument()},
		}
	})
	return jsonTestdataLazy
}

const configDocument = `{
	"service": {
		"name": "ingester",
		"replicas": 3,
		"ports": [8080, 9095],
		"labels": {"team": "storage", "tier": "hot"},
		"limits": {"cpu": 1.5, "memory": 4294967296, "ratio": 0.125}
	},
	"features": [
		{"name": "compaction", "enabled": true},
		{"name": "retention", "enabled": false, "period": "744h"},
		{"name": "sharding", "enabled": null}
	],
	"paths": ["/var/lib/data", "C:\\data", "https://example.com/a/b?c=d&e=f"],
	"empty": {"object": {}, "array": [], "string": ""}
}`

func makeStringsDocument(escaped bool) []byte {
	rn := rand.New(rand.NewSource(1))
	var sb strings.Builder
	sb.WriteString("[")
	for i := 0; i < 2000; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(`"`)
		for j := rn.Intn(32); j >= 0; j-- {
			switch r := rn.Intn(8); {
			case escaped && r == 0:
				sb.WriteString([]string{`\"`, `\\`, `\/`, `\b`, `\f`, `\n`, `\r`, `\t`}[rn.Intn(8)])
			case escaped && r == 1:
				fmt.Fprintf(&sb, `\u%04x`, rn.Intn(0xd800))
			case escaped && r == 2:
				sb.WriteString(`\ud83d\ude00`)
			case !escaped && r < 3:
				sb.WriteString([]string{"é", "日本語", "😀", "Ω", "\u2028", "\ufffd"}[rn.Intn(6)])
			default:
				sb.WriteByte(byte('a' + rn.Intn(26)))
			}
		}
		sb.WriteString(`"`)
	}
	sb.WriteString("]")
	return []byte(sb.String())
}

func makeNumbersDocument() []byte {
	rn := rand.New(rand.NewSource(2))
	var sb strings.Builder
	sb.WriteString("[0,-0,0.0,-0.0,1e2,1E+2,1e-2,9223372036854775807,-9223372036854775808,2.2250738585072014e-308,1.7976931348623157e308")
	for i := 0; i < 2000; i++ {
		switch rn.Intn(4) {
		case 0:
			fmt.Fprintf(&sb, ",%d", rn.Int63()-rn.Int63())
		case 1:
			fmt.Fprintf(&sb, ",%g", rn.NormFloat64()*1e6)
		case 2:
			fmt.Fprintf(&sb, ",%.17g", rn.ExpFloat64())
		case 3:
			fmt.Fprintf(&sb, ",%de%d", rn.Intn(1000)+1, rn.Intn(200)-100)
		}
	}
	sb.WriteString("]")
	return []byte(sb.String())
}

func makeNestedDocument() []byte {
	const depth = 200
	var sb strings.Builder
	for i := 0; i < depth; i++ {
		if i%2 == 0 {
			fmt.Fprintf(&sb, `{"level%d":`, i)
		} else {
			sb.WriteString(`[true,`)
		}
	}
	sb.WriteString(`"bottom"`)
	for i := depth - 1; i >= 0; i-- {
		if i%2 == 0 {
			sb.WriteString(`}`)
		} else {
			sb.WriteString(`]`)
		}
	}
	return []byte(sb.String())
}

func makeRecordSetDocument() []byte {
	rn := rand.New(rand.NewSource(3))
	var sb strings.Builder
	sb.WriteString(`{"records":[`)
	for i := 0; i < 500; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, `{"id":%d,"name":"user-%d","score":%.3f,"active":%t,"tags":["t%d","t%d"],"parent":null}`,
			i, rn.Intn(1e6), rn.Float64()*100, rn.Intn(2) == 0, rn.Intn(10), rn.Intn(10))
	}
	sb.WriteString(`],"count":500}`)
	return []byte(sb.String())
}
