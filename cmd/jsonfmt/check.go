// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log/level"

	"github.com/go-json-experiment/jsondoc"
)

// checkCommand validates each document and reports the invalid ones.
type checkCommand struct {
	env   *environment
	files *[]string
}

func (cmd *checkCommand) run(_ *kingpin.ParseContext) error {
	if err := cmd.env.start(); err != nil {
		return err
	}
	var checked, invalid int
	err := cmd.env.readInputs(*cmd.files, func(in input) error {
		checked++
		d := jsondoc.FromBytes(in.data)
		if d.IsValid() {
			level.Debug(cmd.env.logger).Log("msg", "valid JSON document", "file", in.name)
			return nil
		}
		invalid++
		cmd.env.invalid++
		var offset int64
		var serr *jsondoc.SyntaxError
		if errors.As(d.Err(), &serr) {
			offset = serr.Offset
		}
		_, err := fmt.Fprintf(cmd.env.stdout, "%s:%d: %s\n", in.name, offset, d.ErrorMessage())
		return err
	})
	level.Info(cmd.env.logger).Log("msg", "checked documents", "total", checked, "invalid", invalid)
	return err
}

func addCheckCommand(app *kingpin.Application, env *environment) {
	cmd := &checkCommand{env: env}
	c := app.Command("check", "Validate JSON documents, printing a diagnostic for each invalid one.").Action(cmd.run)
	cmd.files = c.Arg("file", "Files to check. Standard input is read if none are given.").Strings()
}
