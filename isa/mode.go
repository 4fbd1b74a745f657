// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package isa

// An AddressingModeType identifies one of the 13 operand-syntax shapes
// the 6502 ISA accepts. It determines operand width and opcode table
// slot, independent of the operand's concrete value.
type AddressingModeType byte

// All 13 addressing mode shapes.
const (
	Accumulator AddressingModeType = iota
	Implied
	Immediate
	Absolute
	ZeroPage
	Relative
	Indirect
	AbsoluteIndexedWithX
	AbsoluteIndexedWithY
	ZeroPageIndexedWithX
	ZeroPageIndexedWithY
	XIndexedIndirect
	IndirectYIndexed
	modeCount
)

var modeName = [modeCount]string{
	Accumulator:          "Accumulator",
	Implied:              "Implied",
	Immediate:            "Immediate",
	Absolute:             "Absolute",
	ZeroPage:             "ZeroPage",
	Relative:             "Relative",
	Indirect:             "Indirect",
	AbsoluteIndexedWithX: "AbsoluteIndexedWithX",
	AbsoluteIndexedWithY: "AbsoluteIndexedWithY",
	ZeroPageIndexedWithX: "ZeroPageIndexedWithX",
	ZeroPageIndexedWithY: "ZeroPageIndexedWithY",
	XIndexedIndirect:     "XIndexedIndirect",
	IndirectYIndexed:     "IndirectYIndexed",
}

func (t AddressingModeType) String() string {
	if t >= modeCount {
		return "???"
	}
	return modeName[t]
}

// OperandByteSize returns the number of operand bytes (0, 1, or 2) that a
// concrete addressing mode of this shape contributes to an encoded
// instruction, not counting the opcode byte itself.
func (t AddressingModeType) OperandByteSize() int {
	switch t {
	case Accumulator, Implied:
		return 0
	case Absolute, Indirect, AbsoluteIndexedWithX, AbsoluteIndexedWithY:
		return 2
	default:
		return 1
	}
}

// An AddressingMode is a concrete, fully-resolved operand: a shape plus
// (for every shape but Accumulator and Implied) the operand value
// itself. Relative operands store their signed byte value reinterpreted
// as unsigned; all other multi-byte operands store an unsigned value.
type AddressingMode struct {
	Type    AddressingModeType
	Operand uint16 // meaningful only when Type.OperandByteSize() > 0
}

// ByteSize returns the total encoded size, in bytes, of the operand
// (excluding the opcode byte).
func (a AddressingMode) ByteSize() int {
	return a.Type.OperandByteSize()
}

// NewAccumulator returns the no-operand Accumulator addressing mode.
func NewAccumulator() AddressingMode { return AddressingMode{Type: Accumulator} }

// NewImplied returns the no-operand Implied addressing mode.
func NewImplied() AddressingMode { return AddressingMode{Type: Implied} }

// NewImmediate returns an Immediate addressing mode carrying an 8-bit
// operand.
func NewImmediate(v uint8) AddressingMode { return AddressingMode{Type: Immediate, Operand: uint16(v)} }

// NewAbsolute returns an Absolute addressing mode carrying a 16-bit
// operand.
func NewAbsolute(v uint16) AddressingMode { return AddressingMode{Type: Absolute, Operand: v} }

// NewZeroPage returns a ZeroPage addressing mode carrying an 8-bit
// operand.
func NewZeroPage(v uint8) AddressingMode { return AddressingMode{Type: ZeroPage, Operand: uint16(v)} }

// NewRelative returns a Relative addressing mode carrying a signed byte
// operand, stored as its unsigned bit pattern.
func NewRelative(v int8) AddressingMode { return AddressingMode{Type: Relative, Operand: uint16(uint8(v))} }

// NewIndirect returns an Indirect addressing mode carrying a 16-bit
// operand.
func NewIndirect(v uint16) AddressingMode { return AddressingMode{Type: Indirect, Operand: v} }

// NewAbsoluteIndexedWithX returns an AbsoluteIndexedWithX addressing
// mode carrying a 16-bit operand.
func NewAbsoluteIndexedWithX(v uint16) AddressingMode {
	return AddressingMode{Type: AbsoluteIndexedWithX, Operand: v}
}

// NewAbsoluteIndexedWithY returns an AbsoluteIndexedWithY addressing
// mode carrying a 16-bit operand.
func NewAbsoluteIndexedWithY(v uint16) AddressingMode {
	return AddressingMode{Type: AbsoluteIndexedWithY, Operand: v}
}

// NewZeroPageIndexedWithX returns a ZeroPageIndexedWithX addressing mode
// carrying an 8-bit operand.
func NewZeroPageIndexedWithX(v uint8) AddressingMode {
	return AddressingMode{Type: ZeroPageIndexedWithX, Operand: uint16(v)}
}

// NewZeroPageIndexedWithY returns a ZeroPageIndexedWithY addressing mode
// carrying an 8-bit operand.
func NewZeroPageIndexedWithY(v uint8) AddressingMode {
	return AddressingMode{Type: ZeroPageIndexedWithY, Operand: uint16(v)}
}

// NewXIndexedIndirect returns an XIndexedIndirect addressing mode
// carrying an 8-bit operand.
func NewXIndexedIndirect(v uint8) AddressingMode {
	return AddressingMode{Type: XIndexedIndirect, Operand: uint16(v)}
}

// NewIndirectYIndexed returns an IndirectYIndexed addressing mode
// carrying an 8-bit operand.
func NewIndirectYIndexed(v uint8) AddressingMode {
	return AddressingMode{Type: IndirectYIndexed, Operand: uint16(v)}
}
