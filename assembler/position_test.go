// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembler

import "testing"

func TestPositionSingleOrigin(t *testing.T) {
	origins := []Origin[[]item]{
		{Offset: 0x10, Contents: []item{
			&symbolItem{name: newFstring(1, "start")},
			&instructionItem{mnemonic: 0, operand: ConcreteOperand{}}, // 1 byte mnemonic + 0 operand (Implied-sized stub)
			&constantItem{unit: 2},
		}},
	}

	position(origins)

	items := origins[0].Contents
	if items[0].address() != 0x10 {
		t.Errorf("label: expected pos 0x10, got %#x", items[0].address())
	}
	if items[1].address() != 0x10 {
		t.Errorf("instruction: expected pos 0x10, got %#x", items[1].address())
	}
	if items[2].address() != 0x11 {
		t.Errorf("constant: expected pos 0x11, got %#x", items[2].address())
	}
}

func TestPositionIndependentOrigins(t *testing.T) {
	origins := []Origin[[]item]{
		{Offset: 0x00, Contents: []item{&constantItem{unit: 4}}},
		{Offset: 0x40, Contents: []item{&constantItem{unit: 1}}},
	}

	position(origins)

	if origins[0].Contents[0].address() != 0x00 {
		t.Errorf("origin 0: expected pos 0, got %#x", origins[0].Contents[0].address())
	}
	if origins[1].Contents[0].address() != 0x40 {
		t.Errorf("origin 1: expected pos 0x40, got %#x", origins[1].Contents[0].address())
	}
}
