// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command jsonfmt formats and validates JSON documents
// with the strict grammar of the jsondoc package.
//
// Usage:
//
//	jsonfmt fmt [--write] [--compact] [--indent=N] [FILE...]
//	jsonfmt check [FILE...]
//
// With no FILE arguments, standard input is read.
// Flags may also be set from the environment (JSONFMT_LOG_LEVEL,
// JSONFMT_INDENT, JSONFMT_COMPACT) or from a .env file
// in the working directory, whose location can be overridden
// with JSONFMT_ENV_FILE.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// environment is the state shared by every command.
type environment struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	logLevel string
	logger   log.Logger

	dotenvPath string
	dotenvErr  error

	ran      bool // whether a command action started
	exitCode int  // set by kingpin through Terminate, -1 until then
	invalid  int  // number of inputs that failed to parse
}

// errTerminated stops a command action after kingpin has asked to exit,
// for example once --help has printed the usage.
var errTerminated = errors.New("terminated")

// start prepares the environment for a command action. Every action calls
// it first, so that kingpin usage errors are reported before anything runs.
func (env *environment) start() error {
	if env.exitCode >= 0 {
		return errTerminated
	}
	env.ran = true
	env.logger = newLogger(env.stderr, env.logLevel)
	if env.dotenvErr != nil {
		return errors.Wrap(env.dotenvErr, "load environment file")
	}
	if env.dotenvPath != "" {
		level.Debug(env.logger).Log("msg", "loaded environment file", "path", env.dotenvPath)
	}
	return nil
}

// run executes jsonfmt with args and returns the process exit code:
// 0 on success, 1 if any input was invalid or could not be processed,
// and 2 for usage errors.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	env := &environment{stdin: stdin, stdout: stdout, stderr: stderr, logger: log.NewNopLogger(), exitCode: -1}

	// The .env file must be loaded before flags are parsed
	// so that it can provide defaults through Envar.
	env.dotenvPath, env.dotenvErr = loadDotEnv()

	app := kingpin.New("jsonfmt", "Format and validate JSON documents.")
	app.UsageWriter(stdout)
	app.ErrorWriter(stderr)
	app.Terminate(func(code int) {
		if env.exitCode < 0 {
			env.exitCode = code
		}
	})
	app.Flag("log.level", "Only log messages with the given severity or above. One of: [debug, info, warn, error]").
		Envar("JSONFMT_LOG_LEVEL").Default("info").EnumVar(&env.logLevel, "debug", "info", "warn", "error")
	addFormatCommand(app, env)
	addCheckCommand(app, env)

	_, err := app.Parse(args)
	switch {
	case env.exitCode >= 0:
		return env.exitCode
	case err != nil && !env.ran:
		fmt.Fprintf(stderr, "jsonfmt: error: %v, try --help\n", err)
		return 2
	case err != nil:
		level.Error(env.logger).Log("msg", "command failed", "err", err)
		return 1
	}
	if env.invalid > 0 {
		return 1
	}
	return 0
}
