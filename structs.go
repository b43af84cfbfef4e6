package tessellate

import (
	"image/color"

	"github.com/golang/geo/r2"

	"github.com/voidshard/tessellate/internal/band"
)

// Site is an input point with the colour of its cell.
// A site's index is its position in the slice handed to a pass; lower
// indices win ties.
type Site struct {
	X     float64
	Y     float64
	Color color.RGBA
}

// Pos returns the site position
func (s Site) Pos() r2.Point {
	return r2.Point{X: s.X, Y: s.Y}
}

// Grid is the resolution a tessellation is evaluated at.
// Sample (i, j) sits at coordinate (i, j); polygons cover [0, Width] x [0, Height].
type Grid struct {
	Width  int
	Height int
}

// Samples is Width * Height
func (g Grid) Samples() int {
	return g.Width * g.Height
}

// valid returns true if both dimensions are usable
func (g Grid) valid() bool {
	return g.Width > 0 && g.Height > 0
}

// Band is a horizontal run of identical colour, one sample tall.
type Band = band.Band

// Cell is one site's region from a geometric strategy.
type Cell struct {
	// Site is the index of the owning site
	Site  int
	Color color.RGBA

	// Polygon is the convex boundary, implicitly closed
	Polygon []r2.Point

	// Triangles is a fan over Polygon, 3 vertices per triangle
	Triangles []r2.Point `json:"-"`
}

// Tessellation is the result of one pass.
//
// Raster strategies fill Field & Bands, geometric strategies fill Cells.
// Slices are owned by the strategy & are overwritten by its next pass;
// copy anything that must outlive it.
type Tessellation struct {
	// Strategy is the Name() of the strategy that produced this
	Strategy string

	Grid  Grid
	Sites []Site

	// Field is Grid.Width * Grid.Height colours, row major.
	// Bands carry the same information, so only they are exported.
	Field []color.RGBA `json:"-"`
	Bands []Band       `json:",omitempty"`

	Cells []Cell `json:",omitempty"`

	// Skipped counts bisector clips abandoned for precision reasons,
	// each one means some cell may be slightly too large.
	Skipped int `json:",omitempty"`
}

// At returns the colour of sample x, y of a rasterized tessellation.
func (t *Tessellation) At(x, y int) color.RGBA {
	return t.Field[y*t.Grid.Width+x]
}

// Rasterized returns if this tessellation holds a colour field.
func (t *Tessellation) Rasterized() bool {
	return t.Field != nil
}
