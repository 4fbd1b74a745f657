// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package isa

// An Instruction describes one legal (mnemonic, addressing-mode) pair of
// the canonical NMOS 6502 instruction set: its opcode byte and its
// total encoded length.
type Instruction struct {
	Mnemonic Mnemonic
	Mode     AddressingModeType
	Opcode   byte
	Length   byte // opcode byte + operand bytes
}

// opcodeRow is the raw (mnemonic, mode, opcode) tuple used to build the
// Instructions table. Length is derived from the mode, not stored here.
type opcodeRow struct {
	mnemonic Mnemonic
	mode     AddressingModeType
	opcode   byte
}

// table holds every legal (mnemonic, addressing-mode) pair of the
// canonical NMOS 6502 -- 151 entries. The remaining 105 of the 256
// opcode byte values have no legal mnemonic/mode pairing and are left
// unmapped; encoding such a pair is an UndefinedInstruction error.
var table = []opcodeRow{
	{LDA, Immediate, 0xa9}, {LDA, ZeroPage, 0xa5}, {LDA, ZeroPageIndexedWithX, 0xb5},
	{LDA, Absolute, 0xad}, {LDA, AbsoluteIndexedWithX, 0xbd}, {LDA, AbsoluteIndexedWithY, 0xb9},
	{LDA, XIndexedIndirect, 0xa1}, {LDA, IndirectYIndexed, 0xb1},

	{LDX, Immediate, 0xa2}, {LDX, ZeroPage, 0xa6}, {LDX, ZeroPageIndexedWithY, 0xb6},
	{LDX, Absolute, 0xae}, {LDX, AbsoluteIndexedWithY, 0xbe},

	{LDY, Immediate, 0xa0}, {LDY, ZeroPage, 0xa4}, {LDY, ZeroPageIndexedWithX, 0xb4},
	{LDY, Absolute, 0xac}, {LDY, AbsoluteIndexedWithX, 0xbc},

	{STA, ZeroPage, 0x85}, {STA, ZeroPageIndexedWithX, 0x95}, {STA, Absolute, 0x8d},
	{STA, AbsoluteIndexedWithX, 0x9d}, {STA, AbsoluteIndexedWithY, 0x99},
	{STA, XIndexedIndirect, 0x81}, {STA, IndirectYIndexed, 0x91},

	{STX, ZeroPage, 0x86}, {STX, ZeroPageIndexedWithY, 0x96}, {STX, Absolute, 0x8e},

	{STY, ZeroPage, 0x84}, {STY, ZeroPageIndexedWithX, 0x94}, {STY, Absolute, 0x8c},

	{ADC, Immediate, 0x69}, {ADC, ZeroPage, 0x65}, {ADC, ZeroPageIndexedWithX, 0x75},
	{ADC, Absolute, 0x6d}, {ADC, AbsoluteIndexedWithX, 0x7d}, {ADC, AbsoluteIndexedWithY, 0x79},
	{ADC, XIndexedIndirect, 0x61}, {ADC, IndirectYIndexed, 0x71},

	{SBC, Immediate, 0xe9}, {SBC, ZeroPage, 0xe5}, {SBC, ZeroPageIndexedWithX, 0xf5},
	{SBC, Absolute, 0xed}, {SBC, AbsoluteIndexedWithX, 0xfd}, {SBC, AbsoluteIndexedWithY, 0xf9},
	{SBC, XIndexedIndirect, 0xe1}, {SBC, IndirectYIndexed, 0xf1},

	{CMP, Immediate, 0xc9}, {CMP, ZeroPage, 0xc5}, {CMP, ZeroPageIndexedWithX, 0xd5},
	{CMP, Absolute, 0xcd}, {CMP, AbsoluteIndexedWithX, 0xdd}, {CMP, AbsoluteIndexedWithY, 0xd9},
	{CMP, XIndexedIndirect, 0xc1}, {CMP, IndirectYIndexed, 0xd1},

	{CPX, Immediate, 0xe0}, {CPX, ZeroPage, 0xe4}, {CPX, Absolute, 0xec},

	{CPY, Immediate, 0xc0}, {CPY, ZeroPage, 0xc4}, {CPY, Absolute, 0xcc},

	{BIT, ZeroPage, 0x24}, {BIT, Absolute, 0x2c},

	{CLC, Implied, 0x18}, {SEC, Implied, 0x38}, {CLI, Implied, 0x58}, {SEI, Implied, 0x78},
	{CLD, Implied, 0xd8}, {SED, Implied, 0xf8}, {CLV, Implied, 0xb8},

	{BCC, Relative, 0x90}, {BCS, Relative, 0xb0}, {BEQ, Relative, 0xf0}, {BNE, Relative, 0xd0},
	{BMI, Relative, 0x30}, {BPL, Relative, 0x10}, {BVC, Relative, 0x50}, {BVS, Relative, 0x70},

	{BRK, Implied, 0x00},

	{AND, Immediate, 0x29}, {AND, ZeroPage, 0x25}, {AND, ZeroPageIndexedWithX, 0x35},
	{AND, Absolute, 0x2d}, {AND, AbsoluteIndexedWithX, 0x3d}, {AND, AbsoluteIndexedWithY, 0x39},
	{AND, XIndexedIndirect, 0x21}, {AND, IndirectYIndexed, 0x31},

	{ORA, Immediate, 0x09}, {ORA, ZeroPage, 0x05}, {ORA, ZeroPageIndexedWithX, 0x15},
	{ORA, Absolute, 0x0d}, {ORA, AbsoluteIndexedWithX, 0x1d}, {ORA, AbsoluteIndexedWithY, 0x19},
	{ORA, XIndexedIndirect, 0x01}, {ORA, IndirectYIndexed, 0x11},

	{EOR, Immediate, 0x49}, {EOR, ZeroPage, 0x45}, {EOR, ZeroPageIndexedWithX, 0x55},
	{EOR, Absolute, 0x4d}, {EOR, AbsoluteIndexedWithX, 0x5d}, {EOR, AbsoluteIndexedWithY, 0x59},
	{EOR, XIndexedIndirect, 0x41}, {EOR, IndirectYIndexed, 0x51},

	{INC, ZeroPage, 0xe6}, {INC, ZeroPageIndexedWithX, 0xf6}, {INC, Absolute, 0xee}, {INC, AbsoluteIndexedWithX, 0xfe},

	{DEC, ZeroPage, 0xc6}, {DEC, ZeroPageIndexedWithX, 0xd6}, {DEC, Absolute, 0xce}, {DEC, AbsoluteIndexedWithX, 0xde},

	{INX, Implied, 0xe8}, {INY, Implied, 0xc8},
	{DEX, Implied, 0xca}, {DEY, Implied, 0x88},

	{JMP, Absolute, 0x4c}, {JMP, Indirect, 0x6c},
	{JSR, Absolute, 0x20},
	{RTS, Implied, 0x60},
	{RTI, Implied, 0x40},
	{NOP, Implied, 0xea},

	{TAX, Implied, 0xaa}, {TXA, Implied, 0x8a}, {TAY, Implied, 0xa8}, {TYA, Implied, 0x98},
	{TXS, Implied, 0x9a}, {TSX, Implied, 0xba},

	{PHA, Implied, 0x48}, {PLA, Implied, 0x68}, {PHP, Implied, 0x08}, {PLP, Implied, 0x28},

	{ASL, Accumulator, 0x0a}, {ASL, ZeroPage, 0x06}, {ASL, ZeroPageIndexedWithX, 0x16},
	{ASL, Absolute, 0x0e}, {ASL, AbsoluteIndexedWithX, 0x1e},

	{LSR, Accumulator, 0x4a}, {LSR, ZeroPage, 0x46}, {LSR, ZeroPageIndexedWithX, 0x56},
	{LSR, Absolute, 0x4e}, {LSR, AbsoluteIndexedWithX, 0x5e},

	{ROL, Accumulator, 0x2a}, {ROL, ZeroPage, 0x26}, {ROL, ZeroPageIndexedWithX, 0x36},
	{ROL, Absolute, 0x2e}, {ROL, AbsoluteIndexedWithX, 0x3e},

	{ROR, Accumulator, 0x6a}, {ROR, ZeroPage, 0x66}, {ROR, ZeroPageIndexedWithX, 0x76},
	{ROR, Absolute, 0x6e}, {ROR, AbsoluteIndexedWithX, 0x7e},
}

// Instructions is the full opcode table, indexed by opcode byte. An
// entry whose Length is zero means the byte has no legal encoding.
var Instructions [256]Instruction

// variants maps a mnemonic to every (mnemonic, mode) pair legal for it.
var variants map[Mnemonic][]*Instruction

func init() {
	variants = make(map[Mnemonic][]*Instruction, mnemonicCount)
	for _, row := range table {
		inst := &Instructions[row.opcode]
		inst.Mnemonic = row.mnemonic
		inst.Mode = row.mode
		inst.Opcode = row.opcode
		inst.Length = byte(1 + row.mode.OperandByteSize())
		variants[row.mnemonic] = append(variants[row.mnemonic], inst)
	}
}

// GetInstruction returns the legal Instruction for the given mnemonic
// and addressing-mode shape. ok is false if the 6502 ISA has no opcode
// for that pair (it is one of the 105 unmapped slots).
func GetInstruction(m Mnemonic, mode AddressingModeType) (inst Instruction, ok bool) {
	for _, v := range variants[m] {
		if v.Mode == mode {
			return *v, true
		}
	}
	return Instruction{}, false
}

// Variants returns every legal addressing mode for the given mnemonic.
func Variants(m Mnemonic) []*Instruction {
	return variants[m]
}
