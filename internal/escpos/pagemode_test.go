// internal/escpos/pagemode_test.go
package escpos

import (
	"bytes"
	"testing"
)

func TestSetPrintAreaEncodesRectangle(t *testing.T) {
	o := NewOrder(DeviceWidth80mm)
	o.SetPrintArea(0, 100, 576, 0x1234)

	want := []byte{
		0x1B, 0x57,
		0x00, 0x00,
		0x64, 0x00,
		0x40, 0x02,
		0x34, 0x12,
	}
	if !bytes.Equal(o.Bytes(), want) {
		t.Errorf("buffer\n got % x\nwant % x", o.Bytes(), want)
	}
}

func TestSetPrintAreaClampsNegative(t *testing.T) {
	o := NewOrder(DeviceWidth80mm)
	o.SetPrintArea(-5, 0, 70000, 10)

	buf := o.Bytes()
	if buf[2] != 0 || buf[3] != 0 {
		t.Errorf("negative x not clamped: % x", buf)
	}
	if buf[6] != 0xFF || buf[7] != 0xFF {
		t.Errorf("oversize width not clamped: % x", buf)
	}
}

func TestSetPrintDirectionIgnoresOutOfRange(t *testing.T) {
	o := NewOrder(DeviceWidth80mm)
	o.SetPrintDirection(4)
	o.SetPrintDirection(-1)
	if o.Len() != 0 {
		t.Errorf("out-of-range direction emitted bytes: % x", o.Bytes())
	}

	o.SetPrintDirection(2)
	if !bytes.Equal(o.Bytes(), []byte{0x1B, 0x54, 0x02}) {
		t.Errorf("direction 2: % x", o.Bytes())
	}
}

func TestSetRelativePositionSignedEncoding(t *testing.T) {
	o := NewOrder(DeviceWidth80mm)
	o.SetRelativePosition(-2)

	want := []byte{0x1B, 0x5C, 0xFE, 0xFF}
	if !bytes.Equal(o.Bytes(), want) {
		t.Errorf("buffer % x, want % x", o.Bytes(), want)
	}
}

func TestPageModeTriggers(t *testing.T) {
	o := NewOrder(DeviceWidth80mm)
	o.EnterPageMode()
	o.PrintPage()
	o.ClearPage()
	o.ExitPageMode()

	want := []byte{0x1B, 0x4C, 0x0C, 0x18, 0x1B, 0x53}
	if !bytes.Equal(o.Bytes(), want) {
		t.Errorf("buffer % x, want % x", o.Bytes(), want)
	}
}
