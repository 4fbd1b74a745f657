// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembler

import "github.com/kallard6502/mos6502asm/isa"

// An Operand is an instruction's addressing-mode-or-reference: a
// concrete, already-resolved addressing mode, or a placeholder that
// must be reified against the symbol table before emission.
type Operand interface {
	operand()
	byteSize() int
}

// A ConcreteOperand carries an addressing mode whose operand value is
// already known.
type ConcreteOperand struct {
	Mode isa.AddressingMode
}

func (ConcreteOperand) operand()      {}
func (o ConcreteOperand) byteSize() int { return o.Mode.ByteSize() }

// A LabelOperand is a placeholder for a label reference. It always
// reifies to an Absolute 16-bit addressing mode.
type LabelOperand struct {
	Name string
}

func (LabelOperand) operand()      {}
func (LabelOperand) byteSize() int { return 2 }

// A SymbolOperand is a placeholder for a named constant reference whose
// value must fit the addressing-mode shape ModeType indicates.
type SymbolOperand struct {
	Name     string
	ModeType isa.AddressingModeType
}

func (SymbolOperand) operand() {}
func (o SymbolOperand) byteSize() int {
	if o.ModeType == isa.Indirect {
		return 2
	}
	return 1
}

// item is the positioner/symbol-table/dereferencer/emitter's unit of
// work: an instruction, a label-or-define symbol, or a data constant,
// each annotated in-place with its assigned byte position.
type item interface {
	address() int
}

// An instructionItem is a (mnemonic, operand) pair awaiting positioning
// and, if its operand is a placeholder, dereferencing.
type instructionItem struct {
	pos      int
	opcode   fstring
	mnemonic isa.Mnemonic
	operand  Operand
}

func (i *instructionItem) address() int { return i.pos }

func (i *instructionItem) byteSize() int {
	return i.mnemonic.ByteSize() + i.operand.byteSize()
}

// A symbolItem is a label (tok.value == nil) or .define constant
// (tok.value holds its declared byte-encoded value) carried through
// from the pre-parser.
type symbolItem struct {
	pos  int
	name fstring
	tok  *symbolToken
}

func (s *symbolItem) address() int { return s.pos }

// A constantItem is a data directive awaiting positioning and, if its
// data is a reference, dereferencing. resolved holds the final output
// bytes once dereferenced: for an inline value it is always unit bytes
// long, but for a reference it is the referenced symbol's own native
// width, which the position pass had no way to know in advance (see
// the dereferencer's doc comment).
type constantItem struct {
	pos      int
	line     fstring
	unit     int
	data     PrimitiveOrReference
	resolved []byte
}

func (c *constantItem) address() int { return c.pos }
