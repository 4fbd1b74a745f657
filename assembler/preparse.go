// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembler

import (
	"bufio"
	"io"
	"strings"

	"github.com/kallard6502/mos6502asm/bytevalue"
)

// preParse splits the source text into origin-scoped token streams. It
// strips comments, recognizes directives, labels, and captures
// instruction source lines verbatim for the instruction parser.
func preParse(r io.Reader, log logFunc) ([]Origin[[]Token], error) {
	origins := []Origin[[]Token]{{Offset: 0}}

	scanner := bufio.NewScanner(r)
	row := 0
	for scanner.Scan() {
		row++
		line := newFstring(row, scanner.Text()).stripTrailingComment().consumeWhitespace()
		if line.isEmpty() {
			continue
		}

		switch {
		case line.startsWith(directiveStartChar):
			opened, tok, err := parseDirective(line)
			if err != nil {
				return nil, err
			}
			if opened != nil {
				log("origin $%04X", *opened)
				origins = append(origins, Origin[[]Token]{Offset: *opened})
				continue
			}
			last := &origins[len(origins)-1]
			last.Contents = append(last.Contents, tok)

		default:
			tok, err := parseLabelOrInstruction(line)
			if err != nil {
				return nil, err
			}
			last := &origins[len(origins)-1]
			last.Contents = append(last.Contents, tok)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &UnspecifiedError{Detail: err.Error()}
	}
	return origins, nil
}

// parseLabelOrInstruction recognizes "name:" as a label on its own
// statement; anything else is captured verbatim as an instruction line.
func parseLabelOrInstruction(line fstring) (Token, error) {
	name, rest := line.consumeWhile(identifierChar)
	if !name.isEmpty() && rest.startsWithChar(':') {
		after := rest.consume(1).consumeWhitespace()
		if after.isEmpty() {
			return &symbolToken{name: name, value: nil}, nil
		}
	}
	return &instructionToken{text: line}, nil
}

// parseDirective parses a directive line. If the directive is
// ".origin", opened holds the new origin's offset and tok is nil;
// otherwise tok holds the produced token and opened is nil.
func parseDirective(line fstring) (opened *int, tok Token, err error) {
	rest := line.consume(1) // skip '.'
	name, rest := rest.consumeWhile(alpha)
	if name.isEmpty() {
		return nil, nil, parseErrorf(line, "invalid directive")
	}
	rest = rest.consumeWhitespace()

	switch strings.ToLower(name.str) {
	case "origin":
		v, remain, err := parseUnsigned32(rest)
		if err != nil {
			return nil, nil, err
		}
		if !remain.consumeWhitespace().isEmpty() {
			return nil, nil, parseErrorf(remain, "unexpected text after .origin value")
		}
		n := int(v)
		return &n, nil, nil

	case "define":
		tok, err := parseDefine(rest)
		return nil, tok, err

	case "byte":
		tok, err := parseDataDirective(line, rest, 1)
		return nil, tok, err

	case "word":
		tok, err := parseDataDirective(line, rest, 2)
		return nil, tok, err

	case "doubleword":
		tok, err := parseDataDirective(line, rest, 4)
		return nil, tok, err

	case "char":
		tok, err := parseDataDirective(line, rest, 1)
		return nil, tok, err

	default:
		return nil, nil, parseErrorf(line, "unrecognized directive '.%s'", name.str)
	}
}

// parseDefine parses "<type> <name> <value>" following ".define".
func parseDefine(rest fstring) (Token, error) {
	typeName, rest := rest.consumeWhile(alpha)
	if typeName.isEmpty() {
		return nil, parseErrorf(rest, "expected a .define type")
	}
	rest = rest.consumeWhitespace()

	name, rest := rest.consumeWhile(identifierChar)
	if name.isEmpty() {
		return nil, parseErrorf(rest, "expected a .define name")
	}
	rest = rest.consumeWhitespace()

	var v bytevalue.Value
	switch strings.ToLower(typeName.str) {
	case "byte":
		u, remain, err := parseUnsigned8(rest)
		if err != nil {
			return nil, err
		}
		v, rest = bytevalue.FromUint8(u), remain
	case "word":
		u, remain, err := parseUnsigned16(rest)
		if err != nil {
			return nil, err
		}
		v, rest = bytevalue.FromUint16(u), remain
	case "doubleword":
		u, remain, err := parseUnsigned32(rest)
		if err != nil {
			return nil, err
		}
		v, rest = bytevalue.FromUint32(u), remain
	case "char":
		c, remain, err := parseChar(rest)
		if err != nil {
			return nil, err
		}
		v, rest = bytevalue.FromChar(c), remain
	default:
		return nil, parseErrorf(rest, "unknown .define type '%s'", typeName.str)
	}

	if !rest.consumeWhitespace().isEmpty() {
		return nil, parseErrorf(rest, "unexpected text after .define value")
	}
	return &symbolToken{name: name, value: &v}, nil
}

// parseDataDirective parses the value portion of a .byte/.word/
// .doubleword/.char directive: either an inline literal of the
// appropriate width, or an identifier referencing a symbol to be
// resolved later.
func parseDataDirective(line, rest fstring, unit int) (Token, error) {
	if rest.isEmpty() {
		return nil, parseErrorf(line, "expected a value")
	}

	if rest.startsWith(identifierChar) {
		name, remain := rest.consumeWhile(identifierChar)
		if !remain.consumeWhitespace().isEmpty() {
			return nil, parseErrorf(remain, "unexpected text after reference")
		}
		return &constantToken{line: line, unit: unit, data: primitiveReference(name.str)}, nil
	}

	var v bytevalue.Value
	var remain fstring
	var err error
	switch unit {
	case 1:
		if rest.startsWithChar('\'') {
			var c byte
			c, remain, err = parseChar(rest)
			v = bytevalue.FromChar(c)
		} else {
			var u uint8
			u, remain, err = parseUnsigned8(rest)
			v = bytevalue.FromUint8(u)
		}
	case 2:
		var u uint16
		u, remain, err = parseUnsigned16(rest)
		v = bytevalue.FromUint16(u)
	default:
		var u uint32
		u, remain, err = parseUnsigned32(rest)
		v = bytevalue.FromUint32(u)
	}
	if err != nil {
		return nil, err
	}
	if !remain.consumeWhitespace().isEmpty() {
		return nil, parseErrorf(remain, "unexpected text after value")
	}
	return &constantToken{line: line, unit: unit, data: primitiveValue(v)}, nil
}
