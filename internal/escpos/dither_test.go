// internal/escpos/dither_test.go
package escpos

import (
	"bytes"
	"testing"
)

func TestToGrayWeights(t *testing.T) {
	// One pure-red, one pure-green, one pure-blue, one white pixel.
	pix := []byte{
		255, 0, 0, 255,
		0, 255, 0, 0,
		0, 0, 255, 128,
		255, 255, 255, 255,
	}
	gray := ToGray(pix, 4, 1)
	want := []byte{
		byte((255 * 11) >> 5),
		byte((255 * 16) >> 5),
		byte((255 * 5) >> 5),
		byte((255 * 32) >> 5),
	}
	if !bytes.Equal(gray, want) {
		t.Errorf("gray = %v, want %v", gray, want)
	}
}

func TestToGrayDegenerateInput(t *testing.T) {
	if ToGray(nil, 0, 10) != nil {
		t.Error("zero width should return nil")
	}
	if ToGray(make([]byte, 8), 2, 2) != nil {
		t.Error("undersized buffer should return nil")
	}
}

func TestDitherThresholdPerPixel(t *testing.T) {
	gray := []byte{0, 127, 128, 255, 50, 200, 127, 128, 1}
	out := DitherThreshold(gray, 9, 1)
	if len(out) != 2 {
		t.Fatalf("stride: got %d bytes, want 2", len(out))
	}
	for i, g := range gray {
		bit := out[i/8]>>(7-i%8)&1 == 1
		if bit != (g < 128) {
			t.Errorf("pixel %d (gray %d): bit %v", i, g, bit)
		}
	}
}

func TestDitherDiffuseUniformGrayGolden(t *testing.T) {
	gray := []byte{127, 127, 127, 127}
	out := DitherDiffuse(gray, 2, 2)

	// 127 is just below the threshold, so the first pixel prints and its
	// pushed error lifts the neighbours above it, alternating.
	want := []byte{0x80, 0x40}
	if !bytes.Equal(out, want) {
		t.Errorf("raster = % x, want % x", out, want)
	}
}

func TestDitherDiffuseExtremesAreStable(t *testing.T) {
	black := DitherDiffuse([]byte{0, 0, 0, 0}, 2, 2)
	if !bytes.Equal(black, []byte{0xC0, 0xC0}) {
		t.Errorf("black raster = % x, want c0 c0", black)
	}
	white := DitherDiffuse([]byte{255, 255, 255, 255}, 2, 2)
	if !bytes.Equal(white, []byte{0x00, 0x00}) {
		t.Errorf("white raster = % x, want 00 00", white)
	}
}

func TestDitherDegenerateInput(t *testing.T) {
	if DitherThreshold([]byte{1}, -1, 1) != nil {
		t.Error("negative width should return nil")
	}
	if DitherDiffuse([]byte{1, 2}, 2, 2) != nil {
		t.Error("undersized buffer should return nil")
	}
}

func TestAppendImageEmitsRasterCommand(t *testing.T) {
	o := NewOrder(DeviceWidth80mm)
	// 2x2 all-black RGBA.
	pix := make([]byte, 16)
	for i := 3; i < 16; i += 4 {
		pix[i] = 255
	}
	o.AppendImage(pix, 2, 2, DitherThresholdMode)

	want := []byte{
		0x1D, 0x76, 0x30, 0x00, // GS v 0, normal density
		0x01, 0x00, // stride
		0x02, 0x00, // height
		0xC0, 0xC0, // both pixels dark, MSB-first
	}
	if !bytes.Equal(o.Bytes(), want) {
		t.Errorf("buffer\n got % x\nwant % x", o.Bytes(), want)
	}
}

func TestAppendImageDegenerateIsNoOp(t *testing.T) {
	o := NewOrder(DeviceWidth80mm)
	o.AppendImage(nil, 0, 0, DitherDiffuseMode)
	o.AppendImage(make([]byte, 4), 10, 10, DitherThresholdMode)
	if o.Len() != 0 {
		t.Errorf("expected no output, got % x", o.Bytes())
	}
}
