// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/go-json-experiment/jsondoc"
)

const maxIndent = 16

// formatCommand pretty-prints each document.
type formatCommand struct {
	env     *environment
	files   *[]string
	write   *bool
	compact *bool
	indent  *int
}

func (cmd *formatCommand) run(_ *kingpin.ParseContext) error {
	if err := cmd.env.start(); err != nil {
		return err
	}
	if *cmd.indent < 0 || *cmd.indent > maxIndent {
		return errors.Errorf("indent %d out of range [0, %d]", *cmd.indent, maxIndent)
	}
	indent := strings.Repeat(" ", *cmd.indent)
	if *cmd.compact {
		indent = ""
	}
	return cmd.env.readInputs(*cmd.files, func(in input) error {
		d, ok := cmd.env.parse(in)
		if !ok {
			return nil
		}
		out := jsondoc.AppendValue(nil, d.Root(), indent)
		out = append(out, '\n')

		if !*cmd.write || in.mode == 0 {
			_, err := cmd.env.stdout.Write(out)
			return errors.Wrap(err, "write output")
		}
		if bytes.Equal(out, in.data) {
			level.Debug(cmd.env.logger).Log("msg", "already formatted", "file", in.name)
			return nil
		}
		if err := os.WriteFile(in.name, out, in.mode); err != nil {
			return errors.Wrapf(err, "write %s", in.name)
		}
		level.Info(cmd.env.logger).Log("msg", "formatted", "file", in.name, "bytes", len(out))
		return nil
	})
}

func addFormatCommand(app *kingpin.Application, env *environment) {
	cmd := &formatCommand{env: env}
	c := app.Command("fmt", "Pretty-print JSON documents.").Default().Action(cmd.run)
	cmd.write = c.Flag("write", "Rewrite files in place instead of printing to standard output.").Short('w').Bool()
	cmd.compact = c.Flag("compact", "Print without insignificant whitespace.").Envar("JSONFMT_COMPACT").Bool()
	cmd.indent = c.Flag("indent", "Number of spaces per level of indentation.").Envar("JSONFMT_INDENT").Default("4").Int()
	cmd.files = c.Arg("file", "Files to format. Standard input is read if none are given.").Strings()
}
