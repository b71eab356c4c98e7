// internal/escpos/order.go
package escpos

// Alignment selects horizontal placement of text inside a column.
type Alignment uint32

const (
	AlignLeft   Alignment = 0
	AlignCenter Alignment = 1
	AlignRight  Alignment = 2
)

// Supported printable widths in dots per line.
const (
	DeviceWidth58mm = 384
	DeviceWidth80mm = 576
)

// MaxColumns is the column slot capacity of one Order.
const MaxColumns = 6

// Order accumulates the wire-format command stream for one print session.
// All directive encoders append to it; the finished buffer is handed to a
// transport verbatim. An Order must not be shared between goroutines.
type Order struct {
	buf         []byte
	deviceWidth int

	// charScale is the active horizontal text multiplier (1-8). It is set
	// by SetPrintMode and SetCharacterSize and read during column layout.
	charScale int

	// Column slots, packed: width in the low 16 bits, alignment in bits
	// 16-17. A zero slot is unconfigured.
	columns [MaxColumns]uint32
}

// NewOrder creates an Order for a printer with the given dot width. Any
// value other than 384 or 576 falls back to 384.
func NewOrder(deviceWidth int) *Order {
	if deviceWidth != DeviceWidth58mm && deviceWidth != DeviceWidth80mm {
		deviceWidth = DeviceWidth58mm
	}
	return &Order{
		buf:         make([]byte, 0, 512),
		deviceWidth: deviceWidth,
		charScale:   1,
	}
}

// Column packs a column width (device dots) and alignment into one
// SetColumnWidths entry.
func Column(width uint16, align Alignment) uint32 {
	return uint32(width) | uint32(align&3)<<16
}

func columnWidth(packed uint32) int       { return int(packed & 0xFFFF) }
func columnAlign(packed uint32) Alignment { return Alignment(packed >> 16 & 3) }

// Bytes returns the accumulated command stream. The slice aliases the
// internal buffer and is only valid until the next append or Clear.
func (o *Order) Bytes() []byte {
	return o.buf
}

// Len reports the number of accumulated bytes.
func (o *Order) Len() int {
	return len(o.buf)
}

// DeviceWidth reports the printable width in dots.
func (o *Order) DeviceWidth() int {
	return o.deviceWidth
}

// Clear discards the accumulated buffer and resets the text scale,
// starting a fresh session. Column configuration is kept.
func (o *Order) Clear() {
	o.buf = o.buf[:0]
	o.charScale = 1
}
