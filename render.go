package tessellate

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

// ColourScheme decides how a Tessellation is drawn.
type ColourScheme struct {
	// Background fills anything no band or cell covers
	Background color.Color

	// Outline strokes cell edges, nil for none
	Outline   color.Color
	LineWidth float64

	// Markers draws a dot at every site, nil for none
	Markers      color.Color
	MarkerRadius float64
}

// DefaultScheme returns a reasonable default ColourScheme.
func DefaultScheme() *ColourScheme {
	return &ColourScheme{
		Background:   colornames.Magenta,
		Markers:      colornames.Blue,
		MarkerRadius: 5,
		LineWidth:    1,
	}
}

// Image draws the tessellation. A nil scheme means DefaultScheme.
// Bands are drawn as 1 sample tall rectangles, cells are filled from their
// triangles.
func (t *Tessellation) Image(scheme *ColourScheme) image.Image {
	if scheme == nil {
		scheme = DefaultScheme()
	}

	ctx := gg.NewContext(t.Grid.Width, t.Grid.Height)
	ctx.SetColor(scheme.Background)
	ctx.Clear()

	for _, b := range t.Bands {
		// drawing a band at once is MUCH faster than pixel by pixel
		ctx.SetColor(b.Color)
		ctx.DrawRectangle(float64(b.X), float64(b.Y), float64(b.Width), 1)
		ctx.Fill()
	}

	for _, c := range t.Cells {
		tris := c.Triangles
		if len(tris) < 3 {
			continue
		}
		for i := 0; i+2 < len(tris); i += 3 {
			ctx.MoveTo(tris[i].X, tris[i].Y)
			ctx.LineTo(tris[i+1].X, tris[i+1].Y)
			ctx.LineTo(tris[i+2].X, tris[i+2].Y)
			ctx.ClosePath()
		}
		ctx.SetColor(c.Color)
		ctx.Fill()
	}

	if scheme.Outline != nil {
		ctx.SetColor(scheme.Outline)
		ctx.SetLineWidth(scheme.LineWidth)
		for _, c := range t.Cells {
			if len(c.Polygon) < 2 {
				continue
			}
			ctx.MoveTo(c.Polygon[0].X, c.Polygon[0].Y)
			for _, v := range c.Polygon[1:] {
				ctx.LineTo(v.X, v.Y)
			}
			ctx.ClosePath()
			ctx.Stroke()
		}
	}

	if scheme.Markers != nil && scheme.MarkerRadius > 0 {
		ctx.SetColor(scheme.Markers)
		for _, s := range t.Sites {
			ctx.DrawCircle(s.X, s.Y, scheme.MarkerRadius)
			ctx.Fill()
		}
	}

	return ctx.Image()
}

// SavePNG draws the tessellation & writes it to fpath.
func (t *Tessellation) SavePNG(fpath string, scheme *ColourScheme) error {
	err := gg.SavePNG(fpath, t.Image(scheme))
	if err != nil {
		return errors.Wrapf(err, "saving %s", fpath)
	}
	return nil
}
