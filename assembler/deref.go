// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembler

import (
	"fmt"

	"github.com/kallard6502/mos6502asm/isa"
)

// dereference resolves every LabelOperand, SymbolOperand, and
// referenced data constant against the symbol table, replacing each
// with its concrete value. It is the only pass permitted to fail with
// an UndefinedReferenceError.
func dereference(origins []Origin[[]item], st *SymbolTable) error {
	for _, o := range origins {
		for _, it := range o.Contents {
			switch v := it.(type) {
			case *instructionItem:
				if err := dereferenceInstruction(v, st); err != nil {
					return err
				}
			case *constantItem:
				if err := dereferenceConstant(v, st); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func dereferenceInstruction(it *instructionItem, st *SymbolTable) error {
	switch op := it.operand.(type) {
	case LabelOperand:
		v, err := st.Lookup(op.Name)
		if err != nil {
			return err
		}
		addr, err := v.ReifyUint16()
		if err != nil {
			return &IllegalTypeError{Detail: fmt.Sprintf("value %s does not fit in 16 bits", v)}
		}
		it.operand = ConcreteOperand{Mode: isa.NewAbsolute(addr)}

	case SymbolOperand:
		v, err := st.Lookup(op.Name)
		if err != nil {
			return err
		}
		u8, err := v.ReifyUint8()
		if err != nil {
			return &IllegalTypeError{Detail: fmt.Sprintf("value %s does not fit in 8 bits", v)}
		}
		switch op.ModeType {
		case isa.Immediate:
			it.operand = ConcreteOperand{Mode: isa.NewImmediate(u8)}
		case isa.XIndexedIndirect:
			it.operand = ConcreteOperand{Mode: isa.NewXIndexedIndirect(u8)}
		case isa.IndirectYIndexed:
			it.operand = ConcreteOperand{Mode: isa.NewIndirectYIndexed(u8)}
		default:
			return &IllegalTypeError{Detail: fmt.Sprintf("symbol reference not valid in %s addressing", op.ModeType)}
		}
	}
	return nil
}

// dereferenceConstant resolves a .byte/.word/.doubleword/.char
// directive's value. An inline value is always exactly c.unit bytes.
// A referenced symbol emits its own declared width in full, which may
// differ from the directive's unit -- a .byte referencing a .define
// word constant emits two bytes, not one, even though the position
// pass advanced the following item's address by only one.
func dereferenceConstant(c *constantItem, st *SymbolTable) error {
	if !c.data.IsReference() {
		c.resolved = c.data.Value().Bytes()
		return nil
	}
	v, err := st.Lookup(c.data.Name())
	if err != nil {
		return err
	}
	c.resolved = v.Bytes()
	return nil
}
