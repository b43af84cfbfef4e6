package clip

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidshard/tessellate/internal/geom"
)

func pt(x, y float64) r2.Point {
	return r2.Point{X: x, Y: y}
}

func randomPoints(rng *rand.Rand, n int, w, h float64) []r2.Point {
	pts := make([]r2.Point, n)
	for i := range pts {
		pts[i] = pt(rng.Float64()*w, rng.Float64()*h)
	}
	return pts
}

func TestClipTwoSites(t *testing.T) {
	points := []r2.Point{pt(0, 0), pt(3, 0)}
	b := NewBuilder(8)

	left := geom.NewPolygon(0)
	require.Equal(t, 0, b.Cell(points, 0, pt(0, 0), pt(4, 1), left))
	min, max := left.Bounds()
	assert.Equal(t, pt(0, 0), min)
	assert.Equal(t, pt(1.5, 1), max)
	assert.InDelta(t, 1.5, left.Area(), 1e-12)

	right := geom.NewPolygon(0)
	require.Equal(t, 0, b.Cell(points, 1, pt(0, 0), pt(4, 1), right))
	min, max = right.Bounds()
	assert.Equal(t, pt(1.5, 0), min)
	assert.Equal(t, pt(4, 1), max)
	assert.InDelta(t, 2.5, right.Area(), 1e-12)
}

func TestClipOutcomes(t *testing.T) {
	b := NewBuilder(8)

	t.Run("missed", func(t *testing.T) {
		poly := geom.NewPolygon(4)
		poly.Rect(pt(0, 0), pt(4, 4))
		before := append([]r2.Point{}, poly.Points...)

		out := b.Clip(poly, geom.Bisector(pt(1, 1), pt(100, 1)), pt(1, 1))
		assert.Equal(t, Missed, out)
		assert.Equal(t, before, poly.Points)
	})

	t.Run("split", func(t *testing.T) {
		poly := geom.NewPolygon(4)
		poly.Rect(pt(0, 0), pt(4, 4))

		out := b.Clip(poly, geom.Bisector(pt(1, 1), pt(3, 1)), pt(1, 1))
		assert.Equal(t, Split, out)
		assert.InDelta(t, 8, poly.Area(), 1e-12)
		assert.True(t, poly.Contains(pt(1, 1), 0))
		assert.False(t, poly.Contains(pt(3, 1), 0))
	})

	t.Run("through a vertex", func(t *testing.T) {
		poly := geom.NewPolygon(4)
		poly.Rect(pt(0, 0), pt(4, 4))

		// bisector is y = 2x, through the corner (0,0) & the top edge
		out := b.Clip(poly, geom.Bisector(pt(0, 2.5), pt(2, 1.5)), pt(0, 2.5))
		assert.Equal(t, Split, out)
		assert.Equal(t, []r2.Point{pt(2, 4), pt(0, 4), pt(0, 0)}, poly.Points)
		assert.InDelta(t, 4, poly.Area(), 1e-12)
	})

	t.Run("touches a vertex", func(t *testing.T) {
		poly := geom.NewPolygon(4)
		poly.Rect(pt(0, 0), pt(4, 4))
		before := append([]r2.Point{}, poly.Points...)

		// bisector x + y = 8 only meets the corner (4,4)
		out := b.Clip(poly, geom.Bisector(pt(3, 3), pt(5, 5)), pt(3, 3))
		assert.Equal(t, Missed, out)
		assert.Equal(t, before, poly.Points)
	})

	t.Run("degenerate", func(t *testing.T) {
		// a U shape, y = 2 crosses both arms
		poly := &geom.Polygon{Points: []r2.Point{
			pt(0, 0), pt(6, 0), pt(6, 4), pt(4, 4), pt(4, 1), pt(2, 1), pt(2, 4), pt(0, 4),
		}}
		before := append([]r2.Point{}, poly.Points...)

		out := b.Clip(poly, geom.Bisector(pt(1, 1), pt(1, 3)), pt(1, 1))
		assert.Equal(t, Degenerate, out)
		assert.Equal(t, before, poly.Points)
	})
}

func TestClipNearlyVerticalEdge(t *testing.T) {
	// the right edge is one ulp off vertical, as an earlier clip leaves it
	poly := &geom.Polygon{Points: []r2.Point{
		pt(0, 0), pt(300, 0), pt(math.Nextafter(300, 400), 95.08), pt(0, 95.08),
	}}
	require.True(t, poly.IsConvex())

	b := NewBuilder(8)
	out := b.Clip(poly, geom.Bisector(pt(100, 30), pt(100, 92.12)), pt(100, 30))
	require.Equal(t, Split, out)
	assert.InDelta(t, 300*61.06, poly.Area(), 1e-6)
	assert.True(t, poly.IsConvex())
}

func TestCellDiagonalSites(t *testing.T) {
	// the bisector runs corner to corner
	points := []r2.Point{pt(1, 1), pt(3, 3)}
	b := NewBuilder(8)
	cell := geom.NewPolygon(0)

	for i := range points {
		require.Equal(t, 0, b.Cell(points, i, pt(0, 0), pt(4, 4), cell))
		assert.Len(t, cell.Points, 3)
		assert.InDelta(t, 8, cell.Area(), 1e-12)
		assert.True(t, cell.IsConvex())
		assert.True(t, cell.Contains(points[i], 0))
	}
}

func TestCellsNoSkips(t *testing.T) {
	for _, seed := range []int64{1, 3, 8, 21, 99} {
		rng := rand.New(rand.NewSource(seed))
		points := randomPoints(rng, 60, 300, 200)

		f := NewFrame(1)
		f.Reset(points, pt(0, 0), pt(300, 200))
		f.Run()
		assert.Equal(t, 0, f.TotalSkipped(), "seed %d", seed)

		total := 0.0
		for i := range f.Cells {
			total += f.Cells[i].Area()
		}
		assert.InDelta(t, 300*200, total, 1e-6, "seed %d", seed)
	}
}

func TestClipStaysConvex(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	points := randomPoints(rng, 60, 200, 120)
	b := NewBuilder(8)

	for i, p := range points {
		poly := geom.NewPolygon(8)
		poly.Rect(pt(0, 0), pt(200, 120))

		for j, q := range points {
			if i == j {
				continue
			}
			out := b.Clip(poly, geom.Bisector(p, q), p)
			if out == Degenerate {
				continue
			}
			require.True(t, poly.IsConvex(), "site %d not convex after clip by %d", i, j)
			require.Greater(t, poly.Area(), 0.0)
		}
	}
}

func TestCellSamplesAreNearest(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const w, h = 64, 48
	points := randomPoints(rng, 25, w, h)
	b := NewBuilder(8)
	cell := geom.NewPolygon(8)

	for i, p := range points {
		require.Equal(t, 0, b.Cell(points, i, pt(0, 0), pt(w, h), cell))

		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				s := pt(float64(x), float64(y))
				if !cell.Contains(s, -1e-6) {
					continue
				}
				mine := geom.DistSqr(s, p)
				for j, q := range points {
					if j == i {
						continue
					}
					assert.LessOrEqual(t, mine, geom.DistSqr(s, q)+1e-6, "sample %v in cell %d is nearer %d", s, i, j)
				}
			}
		}
	}
}

func TestCellsPartitionArea(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	const w, h = 300, 200
	points := randomPoints(rng, 40, w, h)

	f := NewFrame(1)
	f.Reset(points, pt(0, 0), pt(w, h))
	f.Run()
	require.Equal(t, 0, f.TotalSkipped())

	total := 0.0
	for i := range f.Cells {
		assert.True(t, f.Cells[i].IsConvex())
		assert.True(t, f.Cells[i].Contains(points[i], 1e-9))
		total += f.Cells[i].Area()
	}
	assert.InDelta(t, float64(w*h), total, 1e-6)
}

func TestCellSingleAndCoincident(t *testing.T) {
	b := NewBuilder(8)
	cell := geom.NewPolygon(0)

	require.Equal(t, 0, b.Cell([]r2.Point{pt(2, 2)}, 0, pt(0, 0), pt(4, 4), cell))
	assert.InDelta(t, 16, cell.Area(), 1e-12)

	// coincident sites can't separate, both keep the whole area
	points := []r2.Point{pt(2, 2), pt(2, 2)}
	require.Equal(t, 0, b.Cell(points, 1, pt(0, 0), pt(4, 4), cell))
	assert.InDelta(t, 16, cell.Area(), 1e-12)
}

func TestFrameReuse(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	points := randomPoints(rng, 30, 100, 100)

	f := NewFrame(2)
	f.Reset(points, pt(0, 0), pt(100, 100))
	f.Do(0, 0, 15)
	f.Do(1, 15, 30)

	first := make([][]r2.Point, len(f.Cells))
	for i := range f.Cells {
		first[i] = append([]r2.Point{}, f.Cells[i].Points...)
	}

	// same input, same vertices
	f.Reset(points, pt(0, 0), pt(100, 100))
	f.Run()
	for i := range f.Cells {
		assert.Equal(t, first[i], f.Cells[i].Points)
	}

	// shrinking keeps storage
	f.Reset(points[:5], pt(0, 0), pt(100, 100))
	assert.Equal(t, 5, f.Len())
	assert.GreaterOrEqual(t, cap(f.Cells), 30)

	f.Reset(nil, pt(0, 0), pt(100, 100))
	f.Run()
	assert.Equal(t, 0, f.TotalSkipped())
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "missed", Missed.String())
	assert.Equal(t, "split", Split.String())
	assert.Equal(t, "degenerate", Degenerate.String())
}
