package raster

import (
	"image/color"

	"github.com/golang/geo/r2"
)

// Nearest returns the index of the point closest to (x, y) by squared
// distance. Ties go to the lowest index.
// Nb. there must be at least one point or this will panic.
func Nearest(points []r2.Point, x, y float64) int {
	if len(points) == 0 {
		panic("nearest site requires at least one site")
	}

	pick := 0
	d1 := distSqr(points[0], x, y)
	for k := 1; k < len(points); k++ {
		d2 := distSqr(points[k], x, y)
		if d2 < d1 {
			d1 = d2
			pick = k
		}
	}
	return pick
}

func distSqr(p r2.Point, x, y float64) float64 {
	dx := p.X - x
	dy := p.Y - y
	return dx*dx + dy*dy
}

// Frame is everything one rasterization pass needs. It is built by the
// caller before the pass & read only while workers run.
type Frame struct {
	Width  int
	Height int
	Points []r2.Point
	Colors []color.RGBA

	// Out receives Width*Height colours, row major
	Out []color.RGBA
}

// Len is the number of samples in the frame.
func (f *Frame) Len() int {
	return f.Width * f.Height
}

// Do colours samples [lo, hi). hi is clamped to Len.
func (f *Frame) Do(worker int, lo, hi int) {
	if n := f.Len(); hi > n {
		hi = n
	}
	for i := lo; i < hi; i++ {
		x := float64(i % f.Width)
		y := float64(i / f.Width)
		f.Out[i] = f.Colors[Nearest(f.Points, x, y)]
	}
}

// Render colours every sample in the calling goroutine.
func (f *Frame) Render() {
	f.Do(0, 0, f.Len())
}
