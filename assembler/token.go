// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembler

import "github.com/kallard6502/mos6502asm/bytevalue"

// An Origin pairs a declared base offset with the tokens or items that
// belong to it. The pre-parser produces Origin[[]Token]; each later
// pass refines the contents type while leaving Offset untouched.
type Origin[T any] struct {
	Offset   int
	Contents T
}

// A Positional annotates a value with the absolute byte position it was
// assigned during the positioning pass.
type Positional[T any] struct {
	Position int
	Contents T
}

// A Token is the pre-parser's unit of output: either a verbatim
// instruction line awaiting parsing, a symbol (label or .define
// constant), or a data constant.
type Token interface {
	token()
}

// An instructionToken carries the unparsed text of an instruction line.
type instructionToken struct {
	text fstring
}

func (*instructionToken) token() {}

// A symbolToken is a label (Value == nil, position not yet known) or a
// .define constant (Value holds the declared byte-encoded value).
type symbolToken struct {
	name  fstring
	value *bytevalue.Value
}

func (*symbolToken) token() {}

// A constantToken is produced by a .byte/.word/.doubleword/.char
// directive. Unit is the directive's declared byte width (1, 2, or 4).
type constantToken struct {
	line fstring
	unit int
	data PrimitiveOrReference
}

func (*constantToken) token() {}

// A PrimitiveOrReference is either an inline byte-encoded value or a
// named reference to be resolved later via the symbol table.
type PrimitiveOrReference struct {
	value Primitive
	name  string
	isRef bool
}

// Primitive wraps an inline byte-encoded value.
type Primitive struct {
	Value bytevalue.Value
}

// primitiveValue builds an inline, already-known value.
func primitiveValue(v bytevalue.Value) PrimitiveOrReference {
	return PrimitiveOrReference{value: Primitive{Value: v}}
}

// primitiveReference builds a named forward/backward reference.
func primitiveReference(name string) PrimitiveOrReference {
	return PrimitiveOrReference{name: name, isRef: true}
}

// IsReference reports whether the constant is a named reference rather
// than an inline value.
func (p PrimitiveOrReference) IsReference() bool {
	return p.isRef
}

// Name returns the referenced symbol name. Only meaningful when
// IsReference is true.
func (p PrimitiveOrReference) Name() string {
	return p.name
}

// Value returns the inline value. Only meaningful when IsReference is
// false.
func (p PrimitiveOrReference) Value() bytevalue.Value {
	return p.value.Value
}
