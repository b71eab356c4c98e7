// internal/escpos/pagemode.go
package escpos

// EnterPageMode switches from the linear stream to page mode, where
// print regions are positioned inside a buffered page.
func (o *Order) EnterPageMode() {
	o.appendRaw(0x1B, 0x4C)
}

// SetPrintArea defines the page-mode print rectangle. Each coordinate is
// encoded as a 2-byte value, clamped to 0..65535.
func (o *Order) SetPrintArea(x, y, width, height int) {
	o.appendRaw(0x1B, 0x57)
	o.appendInt(clamp(x, 0, 0xFFFF), 2)
	o.appendInt(clamp(y, 0, 0xFFFF), 2)
	o.appendInt(clamp(width, 0, 0xFFFF), 2)
	o.appendInt(clamp(height, 0, 0xFFFF), 2)
}

// SetPrintDirection sets the page-mode print direction and starting
// corner (0..3). Out-of-range values are ignored entirely.
func (o *Order) SetPrintDirection(dir int) {
	if dir < 0 || dir > 3 {
		return
	}
	o.appendRaw(0x1B, 0x54, byte(dir))
}

// SetAbsolutePosition moves the horizontal print position to an absolute
// dot offset, clamped to 0..65535.
func (o *Order) SetAbsolutePosition(dots int) {
	o.appendRaw(0x1B, 0x24)
	o.appendInt(clamp(dots, 0, 0xFFFF), 2)
}

// SetAbsoluteVerticalPosition moves the page-mode vertical print position
// to an absolute dot offset, clamped to 0..65535.
func (o *Order) SetAbsoluteVerticalPosition(dots int) {
	o.appendRaw(0x1D, 0x24)
	o.appendInt(clamp(dots, 0, 0xFFFF), 2)
}

// SetRelativePosition shifts the horizontal print position by a signed
// dot offset, clamped to the signed 16-bit range.
func (o *Order) SetRelativePosition(dots int) {
	o.appendRaw(0x1B, 0x5C)
	o.appendInt(int(int16(clamp(dots, -32768, 32767))), 2)
}

// SetRelativeVerticalPosition shifts the page-mode vertical print
// position by a signed dot offset, clamped to the signed 16-bit range.
func (o *Order) SetRelativeVerticalPosition(dots int) {
	o.appendRaw(0x1D, 0x5C)
	o.appendInt(int(int16(clamp(dots, -32768, 32767))), 2)
}

// PrintPage prints the buffered page and stays in page mode.
func (o *Order) PrintPage() {
	o.appendRaw(0x0C)
}

// ClearPage discards the buffered page data.
func (o *Order) ClearPage() {
	o.appendRaw(0x18)
}

// ExitPageMode returns to standard mode, printing any buffered page data.
func (o *Order) ExitPageMode() {
	o.appendRaw(0x1B, 0x53)
}
