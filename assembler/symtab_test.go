// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembler

import (
	"testing"

	"github.com/kallard6502/mos6502asm/bytevalue"
)

func TestSymbolTableLabelAddress(t *testing.T) {
	v := bytevalue.FromUint8(0x12)
	origins := []Origin[[]item]{
		{Offset: 0x2000, Contents: []item{
			&symbolItem{pos: 0x2000, name: newFstring(1, "start"), tok: &symbolToken{name: newFstring(1, "start"), value: nil}},
			&symbolItem{pos: 0x2000, name: newFstring(2, "limit"), tok: &symbolToken{name: newFstring(2, "limit"), value: &v}},
		}},
	}

	st := buildSymbolTable(origins)

	got, err := st.Lookup("start")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	addr, err := got.ReifyUint16()
	if err != nil || addr != 0x2000 {
		t.Errorf("expected 0x2000, got %#x (err=%v)", addr, err)
	}

	got, err = st.Lookup("limit")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := got.ReifyUint8()
	if err != nil || b != 0x12 {
		t.Errorf("expected 0x12, got %#x (err=%v)", b, err)
	}
}

func TestSymbolTableCollisionLastWriterWins(t *testing.T) {
	first := bytevalue.FromUint8(1)
	second := bytevalue.FromUint8(2)
	origins := []Origin[[]item]{
		{Contents: []item{
			&symbolItem{name: newFstring(1, "v"), tok: &symbolToken{name: newFstring(1, "v"), value: &first}},
			&symbolItem{name: newFstring(2, "v"), tok: &symbolToken{name: newFstring(2, "v"), value: &second}},
		}},
	}

	st := buildSymbolTable(origins)

	got, err := st.Lookup("v")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, _ := got.ReifyUint8()
	if b != 2 {
		t.Errorf("expected the later definition (2) to win, got %d", b)
	}
}

func TestSymbolTableUndefined(t *testing.T) {
	st := newSymbolTable()
	_, err := st.Lookup("nope")
	if err == nil {
		t.Fatal("expected an error")
	}
	if _, ok := err.(*UndefinedReferenceError); !ok {
		t.Errorf("expected *UndefinedReferenceError, got %T", err)
	}
}
