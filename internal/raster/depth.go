package raster

import (
	"image/color"

	"github.com/golang/geo/r2"
)

// Depth rasterizes site by site rather than sample by sample, keeping the
// best squared distance so far per sample (like a z-buffer).
// A site only takes a sample on strictly smaller distance, so the result
// matches Nearest exactly.
type Depth struct {
	depth []float64
}

// Render fills out (width*height, row major) with the colour of the
// nearest point. out must be at least width*height long.
// Nb. there must be at least one point or this will panic.
func (d *Depth) Render(width, height int, points []r2.Point, colors []color.RGBA, out []color.RGBA) {
	if len(points) == 0 {
		panic("depth rasterizer requires at least one site")
	}

	n := width * height
	if cap(d.depth) < n {
		d.depth = make([]float64, n)
	}
	d.depth = d.depth[:n]

	// seed with the first site
	first, fc := points[0], colors[0]
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			d.depth[j*width+i] = distSqr(first, float64(i), float64(j))
			out[j*width+i] = fc
		}
	}

	for k := 1; k < len(points); k++ {
		pos, c := points[k], colors[k]
		for j := 0; j < height; j++ {
			for i := 0; i < width; i++ {
				d2 := distSqr(pos, float64(i), float64(j))
				if d2 < d.depth[j*width+i] {
					d.depth[j*width+i] = d2
					out[j*width+i] = c
				}
			}
		}
	}
}

// Cap returns how many samples the depth buffer holds without reallocating.
func (d *Depth) Cap() int {
	return cap(d.depth)
}
