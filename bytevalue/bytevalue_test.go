package bytevalue

import "testing"

func TestBitsUsed(t *testing.T) {
	cases := []struct {
		v    Value
		bits int
	}{
		{FromUint8(0), 0},
		{FromUint8(1), 1},
		{FromUint8(0xff), 8},
		{FromUint16(0xff), 8},
		{FromUint16(0x6000), 15},
		{FromUint16(0x8000), 16},
		{FromUint16(0xffff), 16},
		{FromUint32(0x10000), 17},
	}
	for _, c := range cases {
		if got := c.v.BitsUsed(); got != c.bits {
			t.Errorf("%s: BitsUsed() = %d, want %d", c.v, got, c.bits)
		}
	}
}

func TestByteSize(t *testing.T) {
	if FromUint8(1).ByteSize() != 1 {
		t.Error("expected byte size 1")
	}
	if FromUint16(1).ByteSize() != 2 {
		t.Error("expected byte size 2")
	}
	if FromUint32(1).ByteSize() != 4 {
		t.Error("expected byte size 4")
	}
}

func TestReifyUint8(t *testing.T) {
	v, err := FromUint8(0x42).ReifyUint8()
	if err != nil || v != 0x42 {
		t.Errorf("got (%v, %v), want (0x42, nil)", v, err)
	}

	_, err = FromUint16(0x100).ReifyUint8()
	if err == nil {
		t.Error("expected error reifying 0x100 to uint8")
	}
}

func TestReifyUint16(t *testing.T) {
	v, err := FromUint16(0x1234).ReifyUint16()
	if err != nil || v != 0x1234 {
		t.Errorf("got (%v, %v), want (0x1234, nil)", v, err)
	}

	v, err = FromUint8(0xab).ReifyUint16()
	if err != nil || v != 0xab {
		t.Errorf("got (%v, %v), want (0xab, nil)", v, err)
	}

	_, err = FromUint32(0x10000).ReifyUint16()
	if err == nil {
		t.Error("expected error reifying 0x10000 to uint16")
	}
}

func TestFromChar(t *testing.T) {
	v := FromChar('A')
	u, err := v.ReifyUint8()
	if err != nil || u != 'A' {
		t.Errorf("got (%v, %v), want ('A', nil)", u, err)
	}
}
