// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembler

import "github.com/kallard6502/mos6502asm/isa"

// parseInstructions converts every instructionToken captured by the
// pre-parser into an instructionItem: a mnemonic paired with a concrete
// addressing mode or a label/symbol placeholder. Symbol and constant
// tokens pass through unchanged, wrapped as their item counterpart.
func parseInstructions(origins []Origin[[]Token]) ([]Origin[[]item], error) {
	out := make([]Origin[[]item], len(origins))
	for i, o := range origins {
		out[i].Offset = o.Offset
		items := make([]item, 0, len(o.Contents))
		for _, tok := range o.Contents {
			switch t := tok.(type) {
			case *instructionToken:
				it, err := parseInstruction(t.text)
				if err != nil {
					return nil, err
				}
				items = append(items, it)
			case *symbolToken:
				items = append(items, &symbolItem{name: t.name, tok: t})
			case *constantToken:
				items = append(items, &constantItem{line: t.line, unit: t.unit, data: t.data})
			}
		}
		out[i].Contents = items
	}
	return out, nil
}

// parseInstruction parses one verbatim instruction line into a
// (mnemonic, operand) pair.
func parseInstruction(line fstring) (*instructionItem, error) {
	name, rest := line.consumeWhile(alpha)
	if len(name.str) != 3 {
		return nil, parseErrorf(line, "invalid mnemonic '%s'", name.str)
	}
	if !rest.isEmpty() && !rest.startsWith(whitespace) {
		return nil, parseErrorf(rest, "invalid mnemonic suffix")
	}

	m, ok := isa.ParseMnemonic(name.str)
	if !ok {
		return nil, parseErrorf(name, "unknown mnemonic '%s'", name.str)
	}

	operand, remain, err := parseOperand(rest.consumeWhitespace())
	if err != nil {
		return nil, err
	}
	if !remain.isEmpty() {
		return nil, parseErrorf(remain, "unexpected text after operand")
	}

	return &instructionItem{opcode: name, mnemonic: m, operand: operand}, nil
}

// isWholeToken reports whether the first n characters of l form the
// entire next whitespace-delimited token (i.e. nothing but whitespace
// or end-of-input follows).
func isWholeToken(l fstring, n int) bool {
	if len(l.str) < n {
		return false
	}
	rest := l.consume(n)
	return rest.isEmpty() || rest.startsWith(whitespace)
}

// parseOperand parses the operand syntax following a mnemonic. An empty
// operand is Implied addressing.
func parseOperand(rest fstring) (Operand, fstring, error) {
	if rest.isEmpty() {
		return ConcreteOperand{Mode: isa.NewImplied()}, rest, nil
	}

	switch {
	case rest.startsWithChar('A') && isWholeToken(rest, 1):
		return ConcreteOperand{Mode: isa.NewAccumulator()}, rest.consume(1), nil

	case rest.startsWithChar('#'):
		return parseImmediateOperand(rest.consume(1))

	case rest.startsWithChar('('):
		return parseIndirectOperand(rest)

	case rest.startsWithChar('*'):
		v, remain, err := parseSigned8(rest.consume(1))
		if err != nil {
			return nil, rest, err
		}
		return ConcreteOperand{Mode: isa.NewRelative(v)}, remain, nil

	case rest.startsWith(identifierChar):
		name, remain := rest.consumeWhile(identifierChar)
		return LabelOperand{Name: name.str}, remain, nil

	default:
		return parseAbsoluteOrZeroPageOperand(rest)
	}
}

func parseImmediateOperand(body fstring) (Operand, fstring, error) {
	if body.startsWith(identifierChar) {
		name, remain := body.consumeWhile(identifierChar)
		return SymbolOperand{Name: name.str, ModeType: isa.Immediate}, remain, nil
	}
	u, remain, err := parseUnsigned8(body)
	if err != nil {
		return nil, body, err
	}
	return ConcreteOperand{Mode: isa.NewImmediate(u)}, remain, nil
}

// parseAbsoluteOrZeroPageOperand parses a numeric operand, preferring
// the narrowest width the literal fits, then consumes an optional
// ",X"/",Y" index suffix.
func parseAbsoluteOrZeroPageOperand(rest fstring) (Operand, fstring, error) {
	isZP, value, remain, err := parseAbsOrZeroPageLiteral(rest)
	if err != nil {
		return nil, rest, err
	}

	switch {
	case remain.startsWithString(",X"):
		remain = remain.consume(2)
		if isZP {
			return ConcreteOperand{Mode: isa.NewZeroPageIndexedWithX(uint8(value))}, remain, nil
		}
		return ConcreteOperand{Mode: isa.NewAbsoluteIndexedWithX(value)}, remain, nil

	case remain.startsWithString(",Y"):
		remain = remain.consume(2)
		if isZP {
			return ConcreteOperand{Mode: isa.NewZeroPageIndexedWithY(uint8(value))}, remain, nil
		}
		return ConcreteOperand{Mode: isa.NewAbsoluteIndexedWithY(value)}, remain, nil

	default:
		if isZP {
			return ConcreteOperand{Mode: isa.NewZeroPage(uint8(value))}, remain, nil
		}
		return ConcreteOperand{Mode: isa.NewAbsolute(value)}, remain, nil
	}
}

// parseAbsOrZeroPageLiteral parses a numeric literal, trying the 8-bit
// width first and widening to 16 bits only if the literal doesn't fit.
func parseAbsOrZeroPageLiteral(rest fstring) (isZeroPage bool, value uint16, remain fstring, err error) {
	u8, r8, err8 := parseUnsigned8(rest)
	if err8 == nil {
		return true, uint16(u8), r8, nil
	}
	u16, r16, err16 := parseUnsigned16(rest)
	if err16 == nil {
		return false, u16, r16, nil
	}
	return false, 0, rest, err16
}

// parseIndirectOperand parses the "(...)" operand shapes: plain
// Indirect, XIndexedIndirect, and IndirectYIndexed, plus symbolic forms
// of XIndexedIndirect and IndirectYIndexed. Plain Indirect has no
// symbolic form.
func parseIndirectOperand(rest fstring) (Operand, fstring, error) {
	body := rest.consume(1) // skip '('

	if body.startsWith(identifierChar) {
		name, remain := body.consumeWhile(identifierChar)
		switch {
		case remain.startsWithString(",X)"):
			return SymbolOperand{Name: name.str, ModeType: isa.XIndexedIndirect}, remain.consume(3), nil
		case remain.startsWithString("),Y"):
			return SymbolOperand{Name: name.str, ModeType: isa.IndirectYIndexed}, remain.consume(3), nil
		default:
			return nil, rest, parseErrorf(remain, "unknown indirect addressing mode format")
		}
	}

	u8, r8, err8 := parseUnsigned8(body)
	if err8 == nil {
		switch {
		case r8.startsWithString(",X)"):
			return ConcreteOperand{Mode: isa.NewXIndexedIndirect(u8)}, r8.consume(3), nil
		case r8.startsWithString("),Y"):
			return ConcreteOperand{Mode: isa.NewIndirectYIndexed(u8)}, r8.consume(3), nil
		}
	}

	u16, r16, err16 := parseUnsigned16(body)
	if err16 == nil && r16.startsWithChar(')') {
		return ConcreteOperand{Mode: isa.NewIndirect(u16)}, r16.consume(1), nil
	}

	if err16 != nil {
		return nil, rest, err16
	}
	return nil, rest, parseErrorf(rest, "unknown indirect addressing mode format")
}
