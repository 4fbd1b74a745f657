// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bytevalue implements the assembler's universal numeric
// representation: a variable-width, little-endian byte sequence used for
// every immediate, constant, and symbol value that flows through the
// assembly pipeline.
package bytevalue

import "fmt"

// A Value is an ordered sequence of bytes, stored least-significant byte
// first, representing an unsigned numeric quantity. Its length is always
// 1, 2, or 4 bytes.
type Value struct {
	b []byte
}

// FromUint8 creates a 1-byte Value from v.
func FromUint8(v uint8) Value {
	return Value{b: []byte{v}}
}

// FromUint16 creates a 2-byte little-endian Value from v.
func FromUint16(v uint16) Value {
	return Value{b: []byte{byte(v), byte(v >> 8)}}
}

// FromUint32 creates a 4-byte little-endian Value from v.
func FromUint32(v uint32) Value {
	return Value{b: []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}}
}

// FromChar creates a 1-byte Value from the UTF-8 encoding of an ASCII
// character. c must be a single-byte ASCII rune.
func FromChar(c byte) Value {
	return Value{b: []byte{c}}
}

// Bytes returns the little-endian byte representation of the value.
func (v Value) Bytes() []byte {
	return v.b
}

// ByteSize returns the number of bytes used to store the value (1, 2, or 4).
func (v Value) ByteSize() int {
	return len(v.b)
}

// BitsUsed returns the number of significant bits in the value: the bit
// position of the highest set bit, plus one. A value of zero uses zero
// bits. BitsUsed is width-preserving: the caller's chosen byte width only
// bounds the result from above (e.g. 255 stored as a 2-byte value still
// reports 8 bits used).
func (v Value) BitsUsed() int {
	for i := len(v.b) - 1; i >= 0; i-- {
		byt := v.b[i]
		if byt == 0 {
			continue
		}
		bits := 0
		for byt != 0 {
			bits++
			byt >>= 1
		}
		return i*8 + bits
	}
	return 0
}

// ReifyUint8 converts the value to an unsigned 8-bit integer. It fails if
// the value uses more than 8 significant bits.
func (v Value) ReifyUint8() (uint8, error) {
	if v.BitsUsed() > 8 {
		return 0, fmt.Errorf("illegal type: value %s does not fit in 8 bits", v)
	}
	return v.b[0], nil
}

// ReifyUint16 converts the value to an unsigned 16-bit integer, assembled
// from its first two little-endian bytes. It fails if the value uses
// more than 16 significant bits.
func (v Value) ReifyUint16() (uint16, error) {
	if v.BitsUsed() > 16 {
		return 0, fmt.Errorf("illegal type: value %s does not fit in 16 bits", v)
	}
	lo := uint16(v.b[0])
	var hi uint16
	if len(v.b) > 1 {
		hi = uint16(v.b[1])
	}
	return lo | hi<<8, nil
}

// String formats the value as a hexadecimal literal, most significant
// byte first.
func (v Value) String() string {
	s := make([]byte, len(v.b)*2+2)
	s[0], s[1] = '0', 'x'
	const hex = "0123456789abcdef"
	for i, j := len(v.b)-1, 2; i >= 0; i, j = i-1, j+2 {
		s[j] = hex[v.b[i]>>4]
		s[j+1] = hex[v.b[i]&0xf]
	}
	return string(s)
}
