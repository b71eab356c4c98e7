// internal/escpos/style.go
package escpos

// Print mode bits for SetPrintMode (ESC !).
const (
	ModeEmphasized   = 0x08
	ModeDoubleHeight = 0x10
	ModeDoubleWidth  = 0x20
	ModeUnderline    = 0x80
)

// Initialize resets the printer to power-on defaults and drops the text
// scale back to 1x.
func (o *Order) Initialize() {
	o.appendRaw(0x1B, 0x40)
	o.charScale = 1
}

// LineFeed advances the paper one line.
func (o *Order) LineFeed() {
	o.appendRaw(0x0A)
}

// FeedLines advances the paper n lines, clamped to 0..255.
func (o *Order) FeedLines(n int) {
	o.appendRaw(0x1B, 0x64, byte(clamp(n, 0, 255)))
}

// AppendText appends text to print at the current position.
func (o *Order) AppendText(s string) {
	o.appendText(s)
}

// SetAlignment selects left (0), center (1) or right (2) justification
// for the standard mode line. Out-of-range values clamp.
func (o *Order) SetAlignment(a Alignment) {
	o.appendRaw(0x1B, 0x61, byte(clamp(int(a), 0, 2)))
}

// SetBold switches emphasized printing.
func (o *Order) SetBold(on bool) {
	o.appendRaw(0x1B, 0x45, flag(on))
}

// SetUnderline sets underline thickness in dots, clamped to 0..2.
func (o *Order) SetUnderline(dots int) {
	o.appendRaw(0x1B, 0x2D, byte(clamp(dots, 0, 2)))
}

// SetPrintMode sets the ESC ! mode byte. The double-width bit feeds the
// horizontal scale used by column layout.
func (o *Order) SetPrintMode(mode byte) {
	o.appendRaw(0x1B, 0x21, mode)
	if mode&ModeDoubleWidth != 0 {
		o.charScale = 2
	} else {
		o.charScale = 1
	}
}

// SetCharacterSize sets independent width and height multipliers (1..8,
// clamped). The width multiplier feeds the horizontal scale used by
// column layout.
func (o *Order) SetCharacterSize(width, height int) {
	width = clamp(width, 1, 8)
	height = clamp(height, 1, 8)
	o.appendRaw(0x1D, 0x21, byte((width-1)<<4|(height-1)))
	o.charScale = width
}

// SetLineSpacing sets line spacing in dots, clamped to 0..255.
func (o *Order) SetLineSpacing(dots int) {
	o.appendRaw(0x1B, 0x33, byte(clamp(dots, 0, 255)))
}

// ResetLineSpacing restores the default line spacing.
func (o *Order) ResetLineSpacing() {
	o.appendRaw(0x1B, 0x32)
}

// CutPaper cuts the paper, partially if requested.
func (o *Order) CutPaper(partial bool) {
	o.appendRaw(0x1D, 0x56, flag(partial))
}

// OpenDrawer fires the cash drawer kick pulse. Connector pin 2 maps to
// ESC p m=0 and pin 5 to m=1; any other value falls back to pin 2.
func (o *Order) OpenDrawer(pin int) {
	p := byte(0)
	if pin == 5 {
		p = 1
	}
	o.appendRaw(0x1B, 0x70, p, 0x19, 0x19)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func flag(on bool) byte {
	if on {
		return 1
	}
	return 0
}
