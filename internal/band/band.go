package band

import (
	"image/color"
)

// Band is a horizontal run of identically coloured samples, one sample tall.
type Band struct {
	X     int
	Y     int
	Width int
	Color color.RGBA
}

// Encoder turns a colour field into bands.
type Encoder struct {
	// FlipY emits rows bottom up (Y = height-1-row), for targets whose
	// origin is the bottom left corner.
	FlipY bool
}

// Encode appends one band per maximal constant colour run of every row of
// pix (width*height, row major) to dst[:0].
func (e Encoder) Encode(pix []color.RGBA, width, height int, dst []Band) []Band {
	dst = dst[:0]
	for j := 0; j < height; j++ {
		row := pix[j*width : (j+1)*width]
		y := j
		if e.FlipY {
			y = height - 1 - j
		}

		i := 0
		for i < width {
			low := i
			this := row[i]
			for ; i < width; i++ {
				if row[i] != this {
					break
				}
			}
			dst = append(dst, Band{X: low, Y: y, Width: i - low, Color: this})
		}
	}
	return dst
}

// Encode using the default Encoder.
func Encode(pix []color.RGBA, width, height int, dst []Band) []Band {
	return Encoder{}.Encode(pix, width, height, dst)
}

// DecodeRow writes the colours of every band on row y into dst (len width).
// Samples no band covers are left untouched.
func DecodeRow(bands []Band, y int, dst []color.RGBA) {
	for _, b := range bands {
		if b.Y != y {
			continue
		}
		for x := b.X; x < b.X+b.Width && x < len(dst); x++ {
			dst[x] = b.Color
		}
	}
}

// Decode rebuilds a width*height field from bands.
func Decode(bands []Band, width, height int) []color.RGBA {
	pix := make([]color.RGBA, width*height)
	for _, b := range bands {
		if b.Y < 0 || b.Y >= height {
			continue
		}
		DecodeRow([]Band{b}, b.Y, pix[b.Y*width:(b.Y+1)*width])
	}
	return pix
}

// Runs counts the maximal constant colour runs in a row.
func Runs(row []color.RGBA) int {
	if len(row) == 0 {
		return 0
	}
	runs := 1
	for i := 1; i < len(row); i++ {
		if row[i] != row[i-1] {
			runs++
		}
	}
	return runs
}
