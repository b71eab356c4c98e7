// internal/escpos/width.go
package escpos

// Nominal glyph widths in device dots at 1x scale. The printer renders
// Latin glyphs at half the cell of CJK glyphs; scripts without a tuned
// entry get an average width so column wrapping stays close enough.
const (
	widthLatin = 12
	widthOther = 20
	widthWide  = 24
)

// wideRanges lists code point spans rendered on a full-width cell:
// Hangul jamo and syllables, enclosed alphanumerics, CJK symbols, kana and
// ideographs, compatibility ideographs and forms, fullwidth forms, and the
// emoji block.
var wideRanges = [...][2]rune{
	{0x1100, 0x11FF},
	{0x2460, 0x24FF},
	{0x3000, 0x9FFF},
	{0xAC00, 0xD7A3},
	{0xF900, 0xFAFF},
	{0xFE30, 0xFE4F},
	{0xFF00, 0xFF60},
	{0xFFE0, 0xFFE6},
	{0x1F300, 0x1FAFF},
}

// glyphWidth maps a code point to its nominal width unit at 1x scale.
// Control characters report 0 and are substituted by the column layout.
func glyphWidth(r rune) int {
	if r < 0x20 {
		return 0
	}
	if r <= 0xFF {
		return widthLatin
	}
	switch r {
	// General punctuation quotation and dash marks that CJK fonts render
	// full width.
	case 0x2014, 0x2018, 0x2019, 0x201C, 0x201D:
		return widthWide
	}
	for _, span := range wideRanges {
		if r >= span[0] && r <= span[1] {
			return widthWide
		}
	}
	return widthOther
}
