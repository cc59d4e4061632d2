// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"io"
	"os"

	"github.com/go-kit/log/level"
	pkgerrors "github.com/pkg/errors"

	"github.com/go-json-experiment/jsondoc"
)

const stdinName = "<stdin>"

// input is a single document to be processed by a command.
type input struct {
	name string
	data []byte
	mode os.FileMode // zero for standard input
}

// readInputs reads every named file, or standard input if there are none,
// and calls fn for each. Reading stops at the first I/O error.
func (env *environment) readInputs(files []string, fn func(in input) error) error {
	if len(files) == 0 {
		b, err := io.ReadAll(env.stdin)
		if err != nil {
			return pkgerrors.Wrap(err, "read standard input")
		}
		return fn(input{name: stdinName, data: b})
	}
	for _, name := range files {
		fi, err := os.Stat(name)
		if err != nil {
			return pkgerrors.Wrapf(err, "stat %s", name)
		}
		b, err := os.ReadFile(name)
		if err != nil {
			return pkgerrors.Wrapf(err, "read %s", name)
		}
		if err := fn(input{name: name, data: b, mode: fi.Mode().Perm()}); err != nil {
			return err
		}
	}
	return nil
}

// parse parses in and logs its diagnostics if it is invalid.
func (env *environment) parse(in input) (*jsondoc.Document, bool) {
	d := jsondoc.FromBytes(in.data)
	if d.IsValid() {
		return d, true
	}
	env.invalid++
	keyvals := []any{"msg", "invalid JSON document", "file", in.name}
	var serr *jsondoc.SyntaxError
	if errors.As(d.Err(), &serr) {
		keyvals = append(keyvals, "offset", serr.Offset)
	}
	keyvals = append(keyvals, "err", d.ErrorMessage())
	level.Error(env.logger).Log(keyvals...)
	return nil, false
}
