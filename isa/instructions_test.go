package isa

import "testing"

func TestTableHas151Entries(t *testing.T) {
	if len(table) != 151 {
		t.Errorf("table has %d entries, want 151", len(table))
	}
}

func TestGetInstructionKnownPair(t *testing.T) {
	inst, ok := GetInstruction(LDA, Immediate)
	if !ok {
		t.Fatal("expected LDA Immediate to be a legal instruction")
	}
	if inst.Opcode != 0xa9 || inst.Length != 2 {
		t.Errorf("got opcode %#x length %d, want 0xa9 2", inst.Opcode, inst.Length)
	}
}

func TestGetInstructionIllegalPair(t *testing.T) {
	if _, ok := GetInstruction(JMP, Accumulator); ok {
		t.Error("JMP Accumulator is not a legal 6502 instruction")
	}
}

func TestEveryOpcodeUniquelyInvertible(t *testing.T) {
	seen := make(map[byte]bool)
	for _, row := range table {
		if seen[row.opcode] {
			t.Errorf("opcode %#x used by more than one (mnemonic, mode) pair", row.opcode)
		}
		seen[row.opcode] = true

		inst, ok := GetInstruction(row.mnemonic, row.mode)
		if !ok || inst.Opcode != row.opcode {
			t.Errorf("round-trip failed for %s %s", row.mnemonic, row.mode)
		}
	}
}

func TestInstructionLengthRange(t *testing.T) {
	for _, row := range table {
		inst, _ := GetInstruction(row.mnemonic, row.mode)
		if inst.Length < 1 || inst.Length > 3 {
			t.Errorf("%s %s has length %d, want 1..3", row.mnemonic, row.mode, inst.Length)
		}
	}
}

func TestParseMnemonicCaseFold(t *testing.T) {
	m, ok := ParseMnemonic("lda")
	if !ok || m != LDA {
		t.Errorf("ParseMnemonic(lda) = (%v, %v), want (LDA, true)", m, ok)
	}
	if _, ok := ParseMnemonic("xyz"); ok {
		t.Error("expected ParseMnemonic(xyz) to fail")
	}
}
