// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembler

import "github.com/kallard6502/mos6502asm/isa"

// emit converts every dereferenced origin into its final byte stream,
// in item order. Labels and .define symbols contribute no bytes of
// their own; they exist purely to be referenced.
func emit(origins []Origin[[]item]) ([]Origin[[]byte], error) {
	out := make([]Origin[[]byte], len(origins))
	for i, o := range origins {
		out[i].Offset = o.Offset
		var buf []byte
		for _, it := range o.Contents {
			switch v := it.(type) {
			case *instructionItem:
				b, err := emitInstruction(v)
				if err != nil {
					return nil, err
				}
				buf = append(buf, b...)
			case *constantItem:
				buf = append(buf, v.resolved...)
			}
		}
		out[i].Contents = buf
	}
	return out, nil
}

// emitInstruction encodes a single instruction's opcode and operand
// bytes, little-endian. Its operand must already be a ConcreteOperand;
// dereference guarantees this for every instruction reachable here.
func emitInstruction(it *instructionItem) ([]byte, error) {
	co := it.operand.(ConcreteOperand)

	inst, ok := isa.GetInstruction(it.mnemonic, co.Mode.Type)
	if !ok {
		return nil, &UndefinedInstructionError{
			Mnemonic: it.mnemonic.String(),
			Mode:     co.Mode.Type.String(),
		}
	}

	out := make([]byte, 0, inst.Length)
	out = append(out, inst.Opcode)
	switch co.Mode.Type.OperandByteSize() {
	case 1:
		out = append(out, byte(co.Mode.Operand))
	case 2:
		out = append(out, byte(co.Mode.Operand), byte(co.Mode.Operand>>8))
	}
	return out, nil
}
