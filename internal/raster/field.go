package raster

import (
	"image/color"
)

// Field is a grow only colour buffer. Capacity is tracked separately from
// the logical size so going back & forth between grid sizes does not
// reallocate.
type Field struct {
	pix    []color.RGBA
	width  int
	height int
}

// Resize sets the logical size, reallocating only when capacity is short.
// Contents are undefined after a Resize.
func (f *Field) Resize(width, height int) {
	n := width * height
	if cap(f.pix) < n {
		f.pix = make([]color.RGBA, n)
	}
	f.pix = f.pix[:n]
	f.width = width
	f.height = height
}

// Pix returns the logical buffer (width*height, row major).
func (f *Field) Pix() []color.RGBA {
	return f.pix
}

// Cap returns how many samples fit without reallocating.
func (f *Field) Cap() int {
	return cap(f.pix)
}

// Width of the field
func (f *Field) Width() int {
	return f.width
}

// Height of the field
func (f *Field) Height() int {
	return f.height
}

// At returns the colour at x, y
func (f *Field) At(x, y int) color.RGBA {
	return f.pix[y*f.width+x]
}

// Set the colour at x, y
func (f *Field) Set(x, y int, c color.RGBA) {
	f.pix[y*f.width+x] = c
}
