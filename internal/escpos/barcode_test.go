// internal/escpos/barcode_test.go
package escpos

import (
	"bytes"
	"strings"
	"testing"
)

func TestAppendBarcodeCommandSequence(t *testing.T) {
	o := NewOrder(DeviceWidth80mm)
	o.AppendBarcode(BarcodeCode128, "HELLO", 80, 3, HRIBelow)

	want := []byte{
		0x1D, 0x48, 0x02, // HRI below
		0x1D, 0x68, 0x50, // height 80
		0x1D, 0x77, 0x03, // module 3
		0x1D, 0x6B, 0x49, 0x05, 'H', 'E', 'L', 'L', 'O',
	}
	if !bytes.Equal(o.Bytes(), want) {
		t.Errorf("buffer\n got % x\nwant % x", o.Bytes(), want)
	}
}

func TestAppendBarcodeTruncatesLongPayload(t *testing.T) {
	o := NewOrder(DeviceWidth80mm)
	o.AppendBarcode(BarcodeCode128, strings.Repeat("7", 300), 80, 3, HRINone)

	buf := o.Bytes()
	// Length byte sits right after GS k m.
	i := bytes.Index(buf, []byte{0x1D, 0x6B})
	if i < 0 {
		t.Fatal("GS k command missing")
	}
	if n := buf[i+3]; n != 255 {
		t.Errorf("length prefix = %d, want 255", n)
	}
	if payload := buf[i+4:]; len(payload) != 255 {
		t.Errorf("payload length = %d, want 255", len(payload))
	}
}

func TestAppendBarcodeClampsParameters(t *testing.T) {
	o := NewOrder(DeviceWidth80mm)
	o.AppendBarcode(BarcodeEAN13, "4006381333931", 999, 0, 9)

	buf := o.Bytes()
	if buf[2] != 3 {
		t.Errorf("HRI position = %d, want 3", buf[2])
	}
	if buf[5] != 255 {
		t.Errorf("height = %d, want 255", buf[5])
	}
	if buf[8] != 1 {
		t.Errorf("module = %d, want 1", buf[8])
	}
}

func TestAppendBarcodeEmptyTextIsNoOp(t *testing.T) {
	o := NewOrder(DeviceWidth80mm)
	o.AppendBarcode(BarcodeCode39, "", 80, 3, HRINone)
	if o.Len() != 0 {
		t.Errorf("expected no output, got % x", o.Bytes())
	}
}

func TestAppendQRCodeCommandSequence(t *testing.T) {
	o := NewOrder(DeviceWidth80mm)
	o.AppendQRCode("OK", 4, QRLevelM)

	want := []byte{
		0x1D, 0x28, 0x6B, 0x04, 0x00, 0x31, 0x41, 0x32, 0x00, // model 2
		0x1D, 0x28, 0x6B, 0x03, 0x00, 0x31, 0x43, 0x04, // module 4
		0x1D, 0x28, 0x6B, 0x03, 0x00, 0x31, 0x45, 0x31, // level M
		0x1D, 0x28, 0x6B, 0x05, 0x00, 0x31, 0x50, 0x30, 'O', 'K', // store
		0x1D, 0x28, 0x6B, 0x03, 0x00, 0x31, 0x51, 0x30, // print
	}
	if !bytes.Equal(o.Bytes(), want) {
		t.Errorf("buffer\n got % x\nwant % x", o.Bytes(), want)
	}
}

func TestAppendQRCodeClampsErrorCorrection(t *testing.T) {
	o := NewOrder(DeviceWidth80mm)
	o.AppendQRCode("X", 4, 5)

	if !bytes.Contains(o.Bytes(), []byte{0x31, 0x45, 0x33}) {
		t.Errorf("EC level 5 not clamped to 3: % x", o.Bytes())
	}
}

func TestAppendQRCodeClampsModuleSize(t *testing.T) {
	o := NewOrder(DeviceWidth80mm)
	o.AppendQRCode("X", 99, QRLevelL)
	if !bytes.Contains(o.Bytes(), []byte{0x31, 0x43, 0x10}) {
		t.Errorf("module 99 not clamped to 16: % x", o.Bytes())
	}

	o.Clear()
	o.AppendQRCode("X", 0, QRLevelL)
	if !bytes.Contains(o.Bytes(), []byte{0x31, 0x43, 0x01}) {
		t.Errorf("module 0 not clamped to 1: % x", o.Bytes())
	}
}

func TestAppendQRCodeEmptyTextIsNoOp(t *testing.T) {
	o := NewOrder(DeviceWidth80mm)
	o.AppendQRCode("", 4, QRLevelL)
	if o.Len() != 0 {
		t.Errorf("expected no output, got % x", o.Bytes())
	}
}
