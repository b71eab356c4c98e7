// internal/escpos/encode_test.go
package escpos

import (
	"bytes"
	"testing"
	"unicode/utf8"
)

func TestAppendIntLittleEndian(t *testing.T) {
	o := NewOrder(DeviceWidth80mm)
	o.appendInt(0x1234, 2)
	if !bytes.Equal(o.Bytes(), []byte{0x34, 0x12}) {
		t.Errorf("got % x, want 34 12", o.Bytes())
	}

	o.Clear()
	o.appendInt(0x01020304, 4)
	if !bytes.Equal(o.Bytes(), []byte{0x04, 0x03, 0x02, 0x01}) {
		t.Errorf("got % x, want 04 03 02 01", o.Bytes())
	}
}

func TestAppendIntTruncates(t *testing.T) {
	o := NewOrder(DeviceWidth80mm)
	o.appendInt(0x1FF, 1)
	if !bytes.Equal(o.Bytes(), []byte{0xFF}) {
		t.Errorf("got % x, want ff", o.Bytes())
	}
}

func TestAppendCodePointRoundTrip(t *testing.T) {
	o := NewOrder(DeviceWidth80mm)
	for r := rune(0); r <= utf8.MaxRune; r++ {
		if r >= 0xD800 && r <= 0xDFFF {
			continue
		}
		o.Clear()
		o.appendCodePoint(r)
		got, size := utf8.DecodeRune(o.Bytes())
		if got != r || size != o.Len() {
			t.Fatalf("code point %U: decoded %U from %d byte(s), buffer % x", r, got, size, o.Bytes())
		}
	}
}

func TestAppendCodePointEncodedLengths(t *testing.T) {
	cases := []struct {
		r    rune
		size int
	}{
		{0x7F, 1},
		{0x80, 2},
		{0x7FF, 2},
		{0x800, 3},
		{0xFFFF, 3},
		{0x10000, 4},
		{0x10FFFF, 4},
	}
	for _, c := range cases {
		o := NewOrder(DeviceWidth80mm)
		o.appendCodePoint(c.r)
		if o.Len() != c.size {
			t.Errorf("code point %U: encoded in %d bytes, want %d", c.r, o.Len(), c.size)
		}
	}
}

func TestAppendCodePointRejectsInvalid(t *testing.T) {
	for _, r := range []rune{-1, 0x110000, 0xD800, 0xDFFF} {
		o := NewOrder(DeviceWidth80mm)
		o.appendCodePoint(r)
		if o.Len() != 0 {
			t.Errorf("code point %#x: expected empty encoding, got % x", r, o.Bytes())
		}
	}
}

func TestClearResetsBufferAndScale(t *testing.T) {
	o := NewOrder(DeviceWidth80mm)
	o.SetCharacterSize(3, 1)
	o.AppendText("hello")
	o.Clear()
	if o.Len() != 0 {
		t.Errorf("buffer not empty after Clear: % x", o.Bytes())
	}
	if o.charScale != 1 {
		t.Errorf("charScale = %d after Clear, want 1", o.charScale)
	}
}

func TestNewOrderNormalizesDeviceWidth(t *testing.T) {
	if w := NewOrder(999).DeviceWidth(); w != DeviceWidth58mm {
		t.Errorf("width 999 normalized to %d, want %d", w, DeviceWidth58mm)
	}
	if w := NewOrder(DeviceWidth80mm).DeviceWidth(); w != DeviceWidth80mm {
		t.Errorf("width 576 changed to %d", w)
	}
}
