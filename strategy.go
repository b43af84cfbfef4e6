package tessellate

import (
	"image/color"

	"github.com/golang/geo/r2"

	"github.com/voidshard/tessellate/internal/band"
	"github.com/voidshard/tessellate/internal/geom"
	"github.com/voidshard/tessellate/internal/profile"
)

// span labels
const (
	spanPixels = "calculate pixel buffer"
	spanBands  = "encode bands"
	spanCells  = "clip cells"
	spanFrame  = "tessellate"
)

// Option tweaks a strategy at construction.
type Option func(*base)

// WithFlipY makes raster strategies emit bands bottom row first.
func WithFlipY(flip bool) Option {
	return func(b *base) {
		b.enc.FlipY = flip
	}
}

// withProfiler records internal spans into p.
func withProfiler(p *profile.Profiler) Option {
	return func(b *base) {
		b.prof = p
	}
}

// base holds what every strategy needs: sites unpacked into parallel
// position / colour slices, the band encoder & the result we hand back.
// All of it is reused pass to pass.
type base struct {
	name   string
	prof   *profile.Profiler
	enc    band.Encoder
	points []r2.Point
	colors []color.RGBA
	bands  []band.Band
	cells  []Cell
	out    Tessellation
	closed bool
}

func newBase(name string, opts []Option) base {
	b := base{name: name}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Name of the strategy
func (b *base) Name() string {
	return b.name
}

// load unpacks sites, keeping capacity.
func (b *base) load(sites []Site) {
	b.points = b.points[:0]
	b.colors = b.colors[:0]
	for _, s := range sites {
		b.points = append(b.points, s.Pos())
		b.colors = append(b.colors, s.Color)
	}
}

// start validates the pass & resets the result.
func (b *base) start(sites []Site, grid Grid, needSites bool) error {
	if b.closed {
		return ErrClosed
	}
	if err := checkInput(sites, grid, needSites); err != nil {
		return err
	}
	b.load(sites)
	b.out = Tessellation{Strategy: b.name, Grid: grid, Sites: sites}
	return nil
}

// rasterized finishes a raster pass by band encoding pix.
func (b *base) rasterized(grid Grid, pix []color.RGBA) *Tessellation {
	end := b.prof.Start(spanBands)
	b.bands = b.enc.Encode(pix, grid.Width, grid.Height, b.bands)
	end()

	b.out.Field = pix
	b.out.Bands = b.bands
	return &b.out
}

// polygons finishes a geometric pass, triangulating each ring.
func (b *base) polygons(rings []geom.Polygon, skipped int) *Tessellation {
	n := len(rings)
	if cap(b.cells) < n {
		cells := make([]Cell, n, n*2)
		copy(cells, b.cells[:cap(b.cells)])
		b.cells = cells
	}
	b.cells = b.cells[:n]

	for i := range rings {
		c := &b.cells[i]
		c.Site = i
		c.Color = b.colors[i]
		c.Polygon = rings[i].Points
		c.Triangles = rings[i].Fan(c.Triangles[:0])
	}

	b.out.Cells = b.cells
	b.out.Skipped = skipped
	if skipped > 0 {
		Logger().Warn("tessellate: degenerate clips skipped", "strategy", b.name, "skipped", skipped)
	}
	return &b.out
}

// bounds is the polygon extent for a grid.
func bounds(grid Grid) (r2.Point, r2.Point) {
	return r2.Point{}, r2.Point{X: float64(grid.Width), Y: float64(grid.Height)}
}
