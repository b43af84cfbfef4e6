package geom

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(x, y float64) r2.Point {
	return r2.Point{X: x, Y: y}
}

func TestCoefficients(t *testing.T) {
	a, b, c := Line{A: pt(0, 0), B: pt(2, 2)}.Coefficients()
	// 2x - 2y = 0
	assert.Equal(t, 2.0, a)
	assert.Equal(t, -2.0, b)
	assert.Equal(t, 0.0, c)
}

func TestIntersect(t *testing.T) {
	p, ok := Intersect(Line{A: pt(0, 0), B: pt(4, 4)}, Line{A: pt(0, 4), B: pt(4, 0)})
	require.True(t, ok)
	assert.InDelta(t, 2, p.X, 1e-12)
	assert.InDelta(t, 2, p.Y, 1e-12)

	p, ok = Intersect(Line{A: pt(0, 0), B: pt(1, 0)}, Line{A: pt(0, 1), B: pt(5, 1)})
	assert.False(t, ok)
	assert.Equal(t, Infinity, p)
}

func TestBisector(t *testing.T) {
	l := Bisector(pt(0, 0), pt(3, 0))
	assert.Equal(t, 1.5, l.A.X)
	assert.Equal(t, 1.5, l.B.X)
	assert.NotEqual(t, l.A.Y, l.B.Y)

	// every point on the bisector is equidistant
	for _, s := range []float64{-3, 0, 0.5, 7} {
		on := l.A.Add(l.B.Sub(l.A).Mul(s))
		assert.InDelta(t, DistSqr(on, pt(0, 0)), DistSqr(on, pt(3, 0)), 1e-9)
	}
}

func TestSegmentContains(t *testing.T) {
	cases := []struct {
		name string
		a, b r2.Point
		p    r2.Point
		want bool
	}{
		{"vertical inside", pt(1, 0), pt(1, 4), pt(1, 2), true},
		{"vertical reversed", pt(1, 4), pt(1, 0), pt(1, 2), true},
		{"vertical outside", pt(1, 0), pt(1, 4), pt(1, 5), false},
		{"vertical endpoint", pt(1, 0), pt(1, 4), pt(1, 4), false},
		{"horizontal inside", pt(0, 3), pt(4, 3), pt(3.9, 3), true},
		{"horizontal outside", pt(0, 3), pt(4, 3), pt(-0.1, 3), false},
		{"general inside", pt(0, 0), pt(4, 2), pt(2, 1), true},
		{"general outside", pt(0, 0), pt(4, 2), pt(6, 3), false},
		{"steep inside", pt(0, 0), pt(1, 4), pt(0.5, 2), true},
		{"steep outside", pt(0, 0), pt(1, 4), pt(1.25, 5), false},
		{"nearly vertical", pt(300, 0), pt(math.Nextafter(300, 400), 95.08), pt(300, 61.06), true},
		{"nearly vertical outside", pt(300, 0), pt(math.Nextafter(300, 400), 95.08), pt(300, 96), false},
		{"nearly horizontal", pt(0, math.Copysign(0, -1)), pt(120, 1e-15), pt(60, 0), true},
		{"infinity", pt(0, 0), pt(4, 2), Infinity, false},
		{"nan", pt(0, 0), pt(4, 2), pt(math.NaN(), 1), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, SegmentContains(c.a, c.b, c.p))
		})
	}
}

func TestIsLeft(t *testing.T) {
	assert.Greater(t, IsLeft(pt(0, 0), pt(1, 0), pt(0, 1)), 0.0)
	assert.Less(t, IsLeft(pt(0, 0), pt(1, 0), pt(0, -1)), 0.0)
	assert.Equal(t, 0.0, IsLeft(pt(0, 0), pt(1, 0), pt(5, 0)))
}

func TestPolygonRect(t *testing.T) {
	p := NewPolygon(4)
	p.Rect(pt(0, 0), pt(4, 3))

	require.Equal(t, 4, p.Len())
	assert.True(t, p.IsConvex())
	assert.InDelta(t, 12, p.Area(), 1e-12)
	assert.True(t, p.Contains(pt(2, 1), 0))
	assert.True(t, p.Contains(pt(4, 3), 1e-9))
	assert.False(t, p.Contains(pt(5, 1), 1e-9))

	min, max := p.Bounds()
	assert.Equal(t, pt(0, 0), min)
	assert.Equal(t, pt(4, 3), max)
}

func TestPolygonReuse(t *testing.T) {
	p := NewPolygon(8)
	p.Rect(pt(0, 0), pt(1, 1))
	before := cap(p.Points)

	p.Reset()
	assert.Equal(t, 0, p.Len())
	p.Rect(pt(0, 0), pt(2, 2))
	assert.Equal(t, before, cap(p.Points))

	o := NewPolygon(0)
	o.CopyFrom(p)
	assert.Equal(t, p.Points, o.Points)
}

func TestPolygonNotConvex(t *testing.T) {
	p := &Polygon{Points: []r2.Point{pt(0, 0), pt(4, 0), pt(2, 1), pt(4, 4), pt(0, 4)}}
	assert.False(t, p.IsConvex())

	// reversed winding is rejected too
	q := &Polygon{Points: []r2.Point{pt(0, 0), pt(0, 4), pt(4, 4), pt(4, 0)}}
	assert.False(t, q.IsConvex())
}

func TestFan(t *testing.T) {
	p := NewPolygon(5)
	p.Rect(pt(0, 0), pt(2, 2))
	p.Push(pt(-1, 1))

	tris := p.Fan(nil)
	require.Len(t, tris, 3*(p.Len()-2))

	area := 0.0
	for i := 0; i < len(tris); i += 3 {
		tri := &Polygon{Points: tris[i : i+3]}
		area += tri.Area()
	}
	assert.InDelta(t, p.Area(), area, 1e-12)

	assert.Empty(t, (&Polygon{Points: []r2.Point{pt(0, 0), pt(1, 1)}}).Fan(nil))
}
