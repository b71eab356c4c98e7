// internal/escpos/qrcode.go
package escpos

// QR error correction levels for AppendQRCode.
const (
	QRLevelL = 0
	QRLevelM = 1
	QRLevelQ = 2
	QRLevelH = 3
)

// AppendQRCode encodes a model-2 QR symbol as the fixed five-command
// GS ( k sequence: model select, module size (1..16), error correction
// level (0..3), payload store, print. Out-of-range parameters clamp;
// payloads longer than 65535 bytes truncate; an empty payload emits
// nothing.
func (o *Order) AppendQRCode(text string, module, ecLevel int) {
	if text == "" {
		return
	}
	if len(text) > 65535 {
		text = text[:65535]
	}

	// Function 165: select model 2.
	o.appendRaw(0x1D, 0x28, 0x6B, 0x04, 0x00, 0x31, 0x41, 0x32, 0x00)
	// Function 167: module size in dots.
	o.appendRaw(0x1D, 0x28, 0x6B, 0x03, 0x00, 0x31, 0x43, byte(clamp(module, 1, 16)))
	// Function 169: error correction level.
	o.appendRaw(0x1D, 0x28, 0x6B, 0x03, 0x00, 0x31, 0x45, byte(0x30+clamp(ecLevel, 0, 3)))
	// Function 180: store symbol data.
	o.appendRaw(0x1D, 0x28, 0x6B)
	o.appendInt(len(text)+3, 2)
	o.appendRaw(0x31, 0x50, 0x30)
	o.appendRaw([]byte(text)...)
	// Function 181: print the stored symbol.
	o.appendRaw(0x1D, 0x28, 0x6B, 0x03, 0x00, 0x31, 0x51, 0x30)
}
