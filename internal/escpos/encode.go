// internal/escpos/encode.go
package escpos

import (
	"unicode/utf8"
)

// appendRaw appends a complete command pattern verbatim.
func (o *Order) appendRaw(cmd ...byte) {
	o.buf = append(o.buf, cmd...)
}

// appendInt appends v as n little-endian bytes. Values wider than n bytes
// wrap; negative values are encoded as their two's complement bytes.
func (o *Order) appendInt(v int, n int) {
	for i := 0; i < n; i++ {
		o.buf = append(o.buf, byte(v))
		v >>= 8
	}
}

// appendCodePoint appends the UTF-8 encoding of one code point. Values
// outside 0..0x10FFFF and surrogate halves append nothing.
func (o *Order) appendCodePoint(r rune) {
	if r < 0 || r > utf8.MaxRune || (r >= 0xD800 && r <= 0xDFFF) {
		return
	}
	o.buf = utf8.AppendRune(o.buf, r)
}

// appendText appends a string one code point at a time. Invalid UTF-8 in
// the input comes through range iteration as U+FFFD and is encoded as such.
func (o *Order) appendText(s string) {
	for _, r := range s {
		o.appendCodePoint(r)
	}
}
