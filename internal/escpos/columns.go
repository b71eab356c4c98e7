// internal/escpos/columns.go
package escpos

// SetColumnWidths replaces the column configuration with the given packed
// (width, alignment) entries, at most MaxColumns of them. Entries are
// consumed left to right against the remaining device width: an entry with
// width 0, or wider than what is left, absorbs all remaining dots and ends
// the configuration. Calling with no entries leaves the previous
// configuration in place.
func (o *Order) SetColumnWidths(entries ...uint32) {
	if len(entries) == 0 {
		return
	}

	o.columns = [MaxColumns]uint32{}

	remain := o.deviceWidth
	for i, entry := range entries {
		if i >= MaxColumns {
			break
		}
		w := columnWidth(entry)
		if w == 0 || w > remain {
			o.columns[i] = Column(uint16(remain), columnAlign(entry))
			break
		}
		o.columns[i] = entry
		remain -= w
	}
}

// PrintInColumns lays out one string per configured column, wrapping each
// independently at its column's dot width using per-glyph visual widths.
// Rows are emitted top to bottom until every column has consumed its text;
// a column that finishes early keeps reserving its horizontal span.
//
// Inside a column a line ends at a newline (consumed and dropped) or at
// the last glyph that still fits. A glyph the classifier rejects prints as
// '?' at the average width.
func (o *Order) PrintInColumns(texts ...string) {
	// Active columns are the leading slots that are both configured and
	// supplied with text.
	n := 0
	for n < MaxColumns && n < len(texts) && columnWidth(o.columns[n]) > 0 {
		n++
	}
	if n == 0 {
		return
	}

	rem := make([][]rune, n)
	offsets := make([]int, n)
	x := 0
	for i := 0; i < n; i++ {
		rem[i] = []rune(texts[i])
		offsets[i] = x
		x += columnWidth(o.columns[i])
	}

	for {
		pending := false
		for i := 0; i < n; i++ {
			if len(rem[i]) > 0 {
				pending = true
				break
			}
		}
		if !pending {
			return
		}

		for i := 0; i < n; i++ {
			if len(rem[i]) == 0 {
				continue
			}
			colW := columnWidth(o.columns[i])
			frag, used, rest := o.consumeLine(rem[i], colW)
			rem[i] = rest
			if len(frag) == 0 {
				continue
			}

			pos := offsets[i]
			switch columnAlign(o.columns[i]) {
			case AlignCenter:
				pos += (colW - used + 1) / 2
			case AlignRight:
				pos += colW - used
			}

			o.SetAbsolutePosition(pos)
			for _, r := range frag {
				o.appendCodePoint(r)
			}
		}

		o.LineFeed()
	}
}

// consumeLine takes glyphs off the front of line until a newline or until
// the next glyph would overflow colWidth. A glyph wider than the whole
// column is consumed alone so layout always makes progress.
func (o *Order) consumeLine(line []rune, colWidth int) (frag []rune, used int, rest []rune) {
	for len(line) > 0 {
		r := line[0]
		if r == '\n' {
			line = line[1:]
			break
		}
		w := glyphWidth(r)
		if w == 0 {
			r = '?'
			w = widthOther
		}
		w *= o.charScale
		if used+w > colWidth {
			if len(frag) > 0 {
				break
			}
			// Oversized single glyph: emit it anyway.
			frag = append(frag, r)
			used += w
			line = line[1:]
			break
		}
		frag = append(frag, r)
		used += w
		line = line[1:]
	}
	return frag, used, line
}
