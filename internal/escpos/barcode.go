// internal/escpos/barcode.go
package escpos

// BarcodeType selects the GS k symbology (function B codes).
type BarcodeType byte

const (
	BarcodeUPCA    BarcodeType = 65
	BarcodeUPCE    BarcodeType = 66
	BarcodeEAN13   BarcodeType = 67
	BarcodeEAN8    BarcodeType = 68
	BarcodeCode39  BarcodeType = 69
	BarcodeITF     BarcodeType = 70
	BarcodeCodabar BarcodeType = 71
	BarcodeCode93  BarcodeType = 72
	BarcodeCode128 BarcodeType = 73
)

// HRI text positions for AppendBarcode.
const (
	HRINone  = 0
	HRIAbove = 1
	HRIBelow = 2
	HRIBoth  = 3
)

// AppendBarcode encodes a one-dimensional barcode: HRI position, bar
// height in dots (1..255), module width (1..6) and the length-prefixed
// payload. Out-of-range parameters clamp; payloads longer than 255 bytes
// truncate; an empty payload emits nothing.
func (o *Order) AppendBarcode(kind BarcodeType, text string, height, module, hriPosition int) {
	if text == "" {
		return
	}
	if len(text) > 255 {
		text = text[:255]
	}
	k := byte(clamp(int(kind), int(BarcodeUPCA), int(BarcodeCode128)))

	o.appendRaw(0x1D, 0x48, byte(clamp(hriPosition, 0, 3)))
	o.appendRaw(0x1D, 0x68, byte(clamp(height, 1, 255)))
	o.appendRaw(0x1D, 0x77, byte(clamp(module, 1, 6)))
	o.appendRaw(0x1D, 0x6B, k, byte(len(text)))
	o.appendRaw([]byte(text)...)
}
