// internal/escpos/raster.go
package escpos

// AppendImage converts an RGBA pixel buffer to a 1-bit raster with the
// selected dithering mode and appends it as a GS v 0 raster bit image.
// Degenerate input (non-positive dimensions, undersized buffer) appends
// nothing.
func (o *Order) AppendImage(pix []byte, width, height int, mode DitherMode) {
	gray := ToGray(pix, width, height)
	if gray == nil {
		return
	}

	var raster []byte
	switch mode {
	case DitherDiffuseMode:
		raster = DitherDiffuse(gray, width, height)
	default:
		raster = DitherThreshold(gray, width, height)
	}
	if raster == nil {
		return
	}

	stride := (width + 7) / 8
	o.appendRaw(0x1D, 0x76, 0x30, 0x00)
	o.appendInt(stride, 2)
	o.appendInt(height, 2)
	o.appendRaw(raster...)
}
