// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembler

import (
	"github.com/beevik/prefixtree/v2"

	"github.com/kallard6502/mos6502asm/bytevalue"
)

// A SymbolTable maps label and .define names to their byte-encoded
// values. Labels reify to their 16-bit absolute address; .define
// constants carry the width their declaration specified.
type SymbolTable struct {
	tree *prefixtree.Tree[bytevalue.Value]
}

func newSymbolTable() *SymbolTable {
	return &SymbolTable{tree: prefixtree.New[bytevalue.Value]()}
}

// set records name's value, replacing any earlier definition. Symbol
// collisions are not an error: the last definition encountered while
// walking origins in order wins.
func (t *SymbolTable) set(name string, v bytevalue.Value) {
	t.tree.Add(name, v)
}

// Lookup returns the value bound to name, or an UndefinedReferenceError
// if no such symbol was ever defined.
func (t *SymbolTable) Lookup(name string) (bytevalue.Value, error) {
	v, err := t.tree.FindValue(name)
	if err != nil {
		return bytevalue.Value{}, &UndefinedReferenceError{Name: name}
	}
	return v, nil
}

// buildSymbolTable walks every positioned origin in order and merges
// each label and .define symbol into a single global table. This pass
// is single-threaded: unlike position, it must observe every origin's
// symbolItems in a consistent, deterministic order for last-writer-wins
// collision resolution to mean anything.
func buildSymbolTable(origins []Origin[[]item]) *SymbolTable {
	st := newSymbolTable()
	for _, o := range origins {
		for _, it := range o.Contents {
			s, ok := it.(*symbolItem)
			if !ok {
				continue
			}
			if s.tok.value != nil {
				st.set(s.name.str, *s.tok.value)
				continue
			}
			st.set(s.name.str, bytevalue.FromUint16(uint16(s.pos)))
		}
	}
	return st
}
