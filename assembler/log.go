// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembler

import (
	"fmt"
	"io"
)

// logFunc prints a single trace line when verbose tracing is enabled,
// and is a no-op otherwise. It mirrors the teacher's own verbose-mode
// tracing idiom rather than introducing a logging library: the core
// pipeline has no log levels, structured fields, or sinks to manage,
// just an optional human-readable trace of each stage's work.
type logFunc func(format string, args ...interface{})

func newLogger(w io.Writer, verbose bool) logFunc {
	if !verbose || w == nil {
		return func(string, ...interface{}) {}
	}
	return func(format string, args ...interface{}) {
		fmt.Fprintf(w, format, args...)
		fmt.Fprintln(w)
	}
}

// logSection prints a banner around a pipeline stage's name.
func logSection(log logFunc, name string) {
	log("-- %s --", name)
}
