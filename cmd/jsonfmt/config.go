// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const defaultEnvFile = ".env"

// loadDotEnv loads variables from the environment file, if present,
// without overriding variables that are already set.
// It returns the path of the loaded file, or "" if there was none.
func loadDotEnv() (string, error) {
	path := os.Getenv("JSONFMT_ENV_FILE")
	if path == "" {
		path = defaultEnvFile
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && path == defaultEnvFile {
			return "", nil
		}
		return path, errors.Wrapf(err, "stat %s", path)
	}
	if err := godotenv.Load(path); err != nil {
		return path, errors.Wrapf(err, "load %s", path)
	}
	return path, nil
}

// newLogger returns a logfmt logger writing to w that drops
// messages below the named level.
func newLogger(w io.Writer, name string) log.Logger {
	var allow level.Option
	switch name {
	case "debug":
		allow = level.AllowDebug()
	case "warn":
		allow = level.AllowWarn()
	case "error":
		allow = level.AllowError()
	default:
		allow = level.AllowInfo()
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, allow)
	return log.With(logger, "caller", log.DefaultCaller)
}
