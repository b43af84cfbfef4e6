package tessellate

import (
	"runtime"

	"github.com/pkg/errors"

	"github.com/voidshard/tessellate/internal/clip"
	"github.com/voidshard/tessellate/internal/raster"
	"github.com/voidshard/tessellate/internal/workpool"
)

// ThreadedStrategy spreads brute force rasterization over a fixed pool of
// workers claiming chunks of samples.
type ThreadedStrategy struct {
	base
	pool     *workpool.Pool
	coverage *workpool.Coverage
	field    raster.Field
	frame    raster.Frame
}

// NewThreaded starts a pool of workers (0 for GOMAXPROCS) each claiming
// chunk samples at a time.
func NewThreaded(workers, chunk int, opts ...Option) (*ThreadedStrategy, error) {
	return newThreaded(workers, chunk, false, opts...)
}

func newThreaded(workers, chunk int, track bool, opts ...Option) (*ThreadedStrategy, error) {
	t := &ThreadedStrategy{base: newBase(string(Threaded), opts)}

	popts := []workpool.Option{workpool.WithLogger(Logger())}
	if track {
		t.coverage = workpool.NewCoverage()
		popts = append(popts, workpool.WithCoverage(t.coverage))
	}

	pool, err := workpool.New(workers, chunk, popts...)
	if err != nil {
		return nil, errors.Wrap(err, "starting raster workers")
	}
	t.pool = pool
	return t, nil
}

// Tessellate colours every sample with its nearest site.
func (t *ThreadedStrategy) Tessellate(sites []Site, grid Grid) (*Tessellation, error) {
	if err := t.start(sites, grid, true); err != nil {
		return nil, err
	}

	end := t.prof.Start(spanPixels)
	t.field.Resize(grid.Width, grid.Height)

	// workers only read this after the start barrier
	t.frame = raster.Frame{
		Width:  grid.Width,
		Height: grid.Height,
		Points: t.points,
		Colors: t.colors,
		Out:    t.field.Pix(),
	}
	err := t.pool.Run(&t.frame)
	end()
	if err != nil {
		return nil, err
	}

	if t.coverage != nil {
		gaps, dups := t.coverage.Gaps(), t.coverage.Duplicates()
		if gaps > 0 || dups > 0 {
			Logger().Warn("tessellate: uneven sample coverage", "gaps", gaps, "duplicates", dups)
		}
	}

	return t.rasterized(grid, t.field.Pix()), nil
}

// Workers is the pool size.
func (t *ThreadedStrategy) Workers() int {
	return t.pool.Workers()
}

// Close stops the workers.
func (t *ThreadedStrategy) Close() error {
	t.closed = true
	return t.pool.Close()
}

// GeometricStrategy builds every site's cell as a convex polygon by clipping
// the grid rectangle against each bisector. With more than one worker,
// sites are handed out one at a time over a pool.
type GeometricStrategy struct {
	base
	pool  *workpool.Pool
	frame *clip.Frame
}

// NewGeometric returns a clipping strategy. workers <= 0 means GOMAXPROCS,
// 1 runs on the calling goroutine.
func NewGeometric(workers int, opts ...Option) (*GeometricStrategy, error) {
	g := &GeometricStrategy{base: newBase(string(Geometric), opts)}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers == 1 {
		g.frame = clip.NewFrame(1)
		return g, nil
	}

	pool, err := workpool.New(workers, 1, workpool.WithLogger(Logger()))
	if err != nil {
		return nil, errors.Wrap(err, "starting clipping workers")
	}
	g.pool = pool
	g.frame = clip.NewFrame(pool.Workers())
	return g, nil
}

// Tessellate computes every cell. No sites is not an error, the result
// simply has no cells.
func (g *GeometricStrategy) Tessellate(sites []Site, grid Grid) (*Tessellation, error) {
	if err := g.start(sites, grid, false); err != nil {
		return nil, err
	}

	end := g.prof.Start(spanCells)
	min, max := bounds(grid)
	g.frame.Reset(g.points, min, max)
	if g.pool != nil && g.frame.Len() > 1 {
		if err := g.pool.Run(g.frame); err != nil {
			end()
			return nil, err
		}
	} else {
		g.frame.Run()
	}
	end()

	return g.polygons(g.frame.Cells, g.frame.TotalSkipped()), nil
}

// Workers is the number of goroutines clipping cells.
func (g *GeometricStrategy) Workers() int {
	if g.pool == nil {
		return 1
	}
	return g.pool.Workers()
}

// Close stops the workers, if any.
func (g *GeometricStrategy) Close() error {
	g.closed = true
	if g.pool == nil {
		return nil
	}
	return g.pool.Close()
}
