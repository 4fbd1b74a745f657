// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembler

import (
	"bytes"
	"strings"
	"testing"
)

const hex = "0123456789ABCDEF"

func assemble(code string) ([]byte, error) {
	r := strings.NewReader(code)
	result, err := Assemble(r, false, nil)
	if err != nil {
		return nil, err
	}
	return result.Code, nil
}

func checkASM(t *testing.T, asm string, expected string) {
	t.Helper()
	code, err := assemble(asm)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b := make([]byte, len(code)*2)
	for i, j := 0, 0; i < len(code); i, j = i+1, j+2 {
		v := code[i]
		b[j+0] = hex[v>>4]
		b[j+1] = hex[v&0x0f]
	}
	got := string(b)

	if got != expected {
		t.Errorf("code doesn't match expected\ngot: %s\nexp: %s", got, expected)
	}
}

func checkASMError(t *testing.T, asm string, wantErr string) {
	t.Helper()
	_, err := assemble(asm)
	if err == nil {
		t.Fatalf("expected error on %q, got none", asm)
	}
	if err.Error() != wantErr {
		t.Errorf("expected error %q, got %q", wantErr, err.Error())
	}
}

func TestBasicSequence(t *testing.T) {
	asm := `
	.origin 0x0000
	nop
	lda #0x01
	sta 0x2000
	jmp 0x0000`
	checkASM(t, asm, "EAA9018D00204C0000")
}

func TestSelfReferencingLabel(t *testing.T) {
	asm := `
	.origin 0x0000
init:
	jmp init`
	checkASM(t, asm, "4C0000")
}

func TestDefineByteConstant(t *testing.T) {
	asm := `
	.origin 0x0000
	.define byte t 0x12
	lda #t`
	checkASM(t, asm, "A912")
}

func TestMultiOriginZeroPadding(t *testing.T) {
	asm := `
	.origin 0x0000
	nop
	.origin 0x0004
	nop`
	checkASM(t, asm, "EA000000EA")
}

func TestMultiOriginWordData(t *testing.T) {
	asm := `
	.origin 0x0000
	.word 0x1234
	.origin 0x0008
	.word 0x5678`
	checkASM(t, asm, "34120000000000007856")
}

func TestUndefinedReference(t *testing.T) {
	checkASMError(t, "jmp notinit", "undefined reference to 'notinit'")
}

func TestRelativeBackwardBranch(t *testing.T) {
	asm := `
	.origin 0x0010
	bpl *-16`
	checkASM(t, asm, "10F0")
}

func TestUnsigned8Overflow(t *testing.T) {
	checkASMError(t, "lda #0x100", "line 1, col 6: hexadecimal literal '100' too wide (near '0x100')")
}

func TestSigned8Boundaries(t *testing.T) {
	checkASM(t, "bpl *+127", "107F")
	checkASM(t, "bpl *-128", "1080")
}

func TestUnknownMnemonic(t *testing.T) {
	checkASMError(t, "xyz 0x20", "line 1, col 1: unknown mnemonic 'xyz' (near 'xyz')")
}

func TestIllegalAddressingMode(t *testing.T) {
	checkASMError(t, "jmp A", "no such instruction: JMP Accumulator")
}

func TestVerboseTraceGoesToWriter(t *testing.T) {
	var buf bytes.Buffer
	r := strings.NewReader("nop")
	_, err := Assemble(r, true, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected verbose trace output, got none")
	}
}
