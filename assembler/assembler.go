// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assembler implements a multi-pass 6502 assembler. Source text
// flows forward through seven stages -- pre-parse, instruction-parse,
// position, symbol-table build, dereference, emit, and stitch -- each a
// pure transform of the previous stage's output with no feedback into
// earlier stages.
package assembler

import (
	"io"
)

// A Result is the output of a successful assembly: a flat byte image
// plus the lowest offset at which it begins.
type Result struct {
	Code   []byte
	Origin int
}

// state threads the pipeline's intermediate values through its stages.
type state struct {
	r       io.Reader
	verbose bool
	log     logFunc

	tokens  []Origin[[]Token]
	items   []Origin[[]item]
	symbols *SymbolTable
	bytes   []Origin[[]byte]
	result  *Result
}

// Assemble reads 6502 assembly source from r and assembles it into a
// flat byte image. verbose causes each stage to trace its work to w; w
// is ignored when verbose is false.
func Assemble(r io.Reader, verbose bool, w io.Writer) (*Result, error) {
	s := &state{r: r, verbose: verbose, log: newLogger(w, verbose)}

	steps := []func(s *state) error{
		(*state).runPreParse,
		(*state).runInstructionParse,
		(*state).runPosition,
		(*state).runSymbolTable,
		(*state).runDereference,
		(*state).runEmit,
		(*state).runStitch,
	}

	for _, step := range steps {
		if err := step(s); err != nil {
			return nil, err
		}
	}
	return s.result, nil
}

func (s *state) runPreParse() error {
	logSection(s.log, "pre-parsing")
	origins, err := preParse(s.r, s.log)
	if err != nil {
		return err
	}
	s.tokens = origins
	return nil
}

func (s *state) runInstructionParse() error {
	logSection(s.log, "parsing instructions")
	items, err := parseInstructions(s.tokens)
	if err != nil {
		return err
	}
	s.items = items
	return nil
}

func (s *state) runPosition() error {
	logSection(s.log, "assigning positions")
	position(s.items)
	return nil
}

func (s *state) runSymbolTable() error {
	logSection(s.log, "building symbol table")
	s.symbols = buildSymbolTable(s.items)
	return nil
}

func (s *state) runDereference() error {
	logSection(s.log, "dereferencing operands")
	return dereference(s.items, s.symbols)
}

func (s *state) runEmit() error {
	logSection(s.log, "emitting opcodes")
	bytes, err := emit(s.items)
	if err != nil {
		return err
	}
	s.bytes = bytes
	return nil
}

func (s *state) runStitch() error {
	logSection(s.log, "stitching origins")
	code, err := stitch(s.bytes)
	if err != nil {
		return err
	}
	origin := 0
	if len(s.bytes) > 0 {
		origin = firstNonEmptyOffset(s.bytes)
	}
	s.result = &Result{Code: code, Origin: origin}
	return nil
}

func firstNonEmptyOffset(origins []Origin[[]byte]) int {
	lowest := origins[0].Offset
	found := false
	for _, o := range origins {
		if len(o.Contents) == 0 {
			continue
		}
		if !found || o.Offset < lowest {
			lowest = o.Offset
			found = true
		}
	}
	return lowest
}
