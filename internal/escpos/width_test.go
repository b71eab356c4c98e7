// internal/escpos/width_test.go
package escpos

import "testing"

func TestGlyphWidthClasses(t *testing.T) {
	cases := []struct {
		r    rune
		want int
	}{
		{' ', 12},
		{'A', 12},
		{0xFF, 12},    // Latin-1 supplement
		{0x0100, 20},  // Latin Extended-A
		{0x0416, 20},  // Cyrillic
		{0x0E01, 20},  // Thai
		{0x0E81, 20},  // Lao
		{0x1100, 24},  // Hangul jamo
		{0x2460, 24},  // enclosed alphanumerics
		{0x3042, 24},  // hiragana
		{0x4E2D, 24},  // CJK ideograph
		{0xAC00, 24},  // Hangul syllable
		{0xFF21, 24},  // fullwidth A
		{0x2014, 24},  // em dash
		{0x2018, 24},  // left single quote
		{0x1F600, 24}, // emoji
		{0x061F, 20},  // Arabic, unclassified fallback
		{0x09, 0},     // control
	}
	for _, c := range cases {
		if got := glyphWidth(c.r); got != c.want {
			t.Errorf("glyphWidth(%U) = %d, want %d", c.r, got, c.want)
		}
	}
}
