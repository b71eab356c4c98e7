// internal/escpos/dither.go
package escpos

// DitherMode selects how grayscale is reduced to the 1-bit raster.
type DitherMode int

const (
	// DitherThresholdMode maps each pixel independently against 128.
	DitherThresholdMode DitherMode = iota
	// DitherDiffuseMode distributes quantization error to neighbouring
	// pixels, Floyd-Steinberg style.
	DitherDiffuseMode
)

// ToGray converts an RGBA pixel buffer (4 bytes per pixel, row-major) to
// one luma byte per pixel. The weights are the printer firmware's integer
// approximation; keep them bit-for-bit. Alpha is ignored. Returns nil for
// non-positive dimensions or an undersized buffer.
func ToGray(pix []byte, width, height int) []byte {
	if width <= 0 || height <= 0 || len(pix) < width*height*4 {
		return nil
	}
	gray := make([]byte, width*height)
	for i := 0; i < width*height; i++ {
		r := int(pix[i*4])
		g := int(pix[i*4+1])
		b := int(pix[i*4+2])
		gray[i] = byte((r*11 + g*16 + b*5) >> 5)
	}
	return gray
}

// DitherThreshold packs gray into a monochrome raster where every pixel
// below 128 prints dark. Bits are MSB-first, rows padded to a whole byte.
// Returns nil for non-positive dimensions or an undersized buffer.
func DitherThreshold(gray []byte, width, height int) []byte {
	if width <= 0 || height <= 0 || len(gray) < width*height {
		return nil
	}
	stride := (width + 7) / 8
	out := make([]byte, stride*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if gray[y*width+x] < 128 {
				out[y*stride+x/8] |= 0x80 >> (x % 8)
			}
		}
	}
	return out
}

// DitherDiffuse packs gray into a monochrome raster using error diffusion
// over two working rows. The current row holds each pixel's residual
// intensity (source value plus errors pushed into it); the next row is
// reloaded from the source before the rows swap. The traversal order and
// the integer error split are fixed; reordering changes the output.
// Returns nil for non-positive dimensions or an undersized buffer.
func DitherDiffuse(gray []byte, width, height int) []byte {
	if width <= 0 || height <= 0 || len(gray) < width*height {
		return nil
	}
	stride := (width + 7) / 8
	out := make([]byte, stride*height)

	cur := make([]int, width)
	next := make([]int, width)
	for x := 0; x < width; x++ {
		next[x] = int(gray[x])
	}

	for y := 0; y < height; y++ {
		cur, next = next, cur
		if y+1 < height {
			for x := 0; x < width; x++ {
				next[x] = int(gray[(y+1)*width+x])
			}
		}

		for x := 0; x < width; x++ {
			v := cur[x]
			var err int
			if v < 128 {
				out[y*stride+x/8] |= 0x80 >> (x % 8)
				err = v
			} else {
				err = v - 255
			}

			// 7/16 right, 5/16 below, 3/16 below-left, 1/16 below-right,
			// with the last weight taking the rounding remainder.
			e7 := (err*7 + 8) >> 4
			e5 := (err*5 + 8) >> 4
			e3 := (err*3 + 8) >> 4
			e1 := err - (e7 + e5 + e3)

			if x+1 < width {
				cur[x+1] += e7
			}
			if y+1 < height {
				next[x] += e5
				if x > 0 {
					next[x-1] += e3
				}
				if x+1 < width {
					next[x+1] += e1
				}
			}
		}
	}
	return out
}
