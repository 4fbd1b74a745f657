// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembler

import "fmt"

// ParseError means the input failed to match the expected grammar at
// the pre-parser or instruction-parser level. It carries the unmatched
// remainder of the line.
type ParseError struct {
	Row       int
	Column    int
	Remainder string
	Detail    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, col %d: %s (near '%s')", e.Row, e.Column+1, e.Detail, e.Remainder)
}

func parseErrorf(l fstring, format string, args ...interface{}) error {
	return &ParseError{
		Row:       l.row,
		Column:    l.column,
		Remainder: l.str,
		Detail:    fmt.Sprintf(format, args...),
	}
}

// UndefinedReferenceError means a label or symbol name referenced in an
// operand or constant is absent from the global symbol table.
type UndefinedReferenceError struct {
	Name string
}

func (e *UndefinedReferenceError) Error() string {
	return fmt.Sprintf("undefined reference to '%s'", e.Name)
}

// UndefinedInstructionError means the parsed (mnemonic, addressing-mode)
// pair is not a legal 6502 opcode.
type UndefinedInstructionError struct {
	Mnemonic string
	Mode     string
}

func (e *UndefinedInstructionError) Error() string {
	return fmt.Sprintf("no such instruction: %s %s", e.Mnemonic, e.Mode)
}

// IllegalTypeError means a byte-encoded value had more bits than its
// consuming context permits, or a directive received a type-incompatible
// literal.
type IllegalTypeError struct {
	Detail string
}

func (e *IllegalTypeError) Error() string {
	return fmt.Sprintf("illegal type: %s", e.Detail)
}

// UnspecifiedError is a fallback category for errors surfaced by an
// upstream collaborator (e.g. the scanner) without a more specific
// classification.
type UnspecifiedError struct {
	Detail string
}

func (e *UnspecifiedError) Error() string {
	return e.Detail
}
