package tessellate

import (
	"github.com/voidshard/tessellate/internal/raster"
)

// SimpleStrategy checks every site for every sample on the calling goroutine.
type SimpleStrategy struct {
	base
	field raster.Field
	frame raster.Frame
}

// NewSimple returns a single threaded brute force rasterizer.
func NewSimple(opts ...Option) *SimpleStrategy {
	return &SimpleStrategy{base: newBase(string(Simple), opts)}
}

// Tessellate colours every sample with its nearest site.
func (s *SimpleStrategy) Tessellate(sites []Site, grid Grid) (*Tessellation, error) {
	if err := s.start(sites, grid, true); err != nil {
		return nil, err
	}

	end := s.prof.Start(spanPixels)
	s.field.Resize(grid.Width, grid.Height)
	s.frame = raster.Frame{
		Width:  grid.Width,
		Height: grid.Height,
		Points: s.points,
		Colors: s.colors,
		Out:    s.field.Pix(),
	}
	s.frame.Render()
	end()

	return s.rasterized(grid, s.field.Pix()), nil
}

// Close drops the buffers
func (s *SimpleStrategy) Close() error {
	s.closed = true
	s.field = raster.Field{}
	s.frame = raster.Frame{}
	return nil
}

// DepthStrategy rasterizes one site at a time against a depth buffer.
// Output matches SimpleStrategy exactly.
type DepthStrategy struct {
	base
	field raster.Field
	depth raster.Depth
}

// NewDepth returns a depth buffer rasterizer.
func NewDepth(opts ...Option) *DepthStrategy {
	return &DepthStrategy{base: newBase(string(Depth), opts)}
}

// Tessellate colours every sample with its nearest site.
func (d *DepthStrategy) Tessellate(sites []Site, grid Grid) (*Tessellation, error) {
	if err := d.start(sites, grid, true); err != nil {
		return nil, err
	}

	end := d.prof.Start(spanPixels)
	d.field.Resize(grid.Width, grid.Height)
	d.depth.Render(grid.Width, grid.Height, d.points, d.colors, d.field.Pix())
	end()

	return d.rasterized(grid, d.field.Pix()), nil
}

// Close drops the buffers
func (d *DepthStrategy) Close() error {
	d.closed = true
	d.field = raster.Field{}
	d.depth = raster.Depth{}
	return nil
}
