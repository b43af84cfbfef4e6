package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// Infinity is returned by Intersect for lines that never meet.
var Infinity = r2.Point{X: math.Inf(1), Y: math.Inf(1)}

// Line is an infinite line through two points.
type Line struct {
	A r2.Point
	B r2.Point
}

// Coefficients returns a, b, c such that a*x + b*y = c for every point on the line.
func (l Line) Coefficients() (a, b, c float64) {
	a = l.B.Y - l.A.Y
	b = l.A.X - l.B.X
	c = a*l.A.X + b*l.A.Y
	return a, b, c
}

// Bisector returns the perpendicular bisector of p & q.
// It passes through the midpoint with direction rot90(q - p).
func Bisector(p, q r2.Point) Line {
	mid := p.Add(q).Mul(0.5)
	return Line{A: mid, B: mid.Add(q.Sub(p).Ortho())}
}

// Intersect returns where the two (infinite) lines cross.
// Parallel or coincident lines return Infinity and false.
func Intersect(l1, l2 Line) (r2.Point, bool) {
	a1, b1, c1 := l1.Coefficients()
	a2, b2, c2 := l2.Coefficients()

	det := a1*b2 - a2*b1
	if det == 0 {
		return Infinity, false
	}

	return r2.Point{
		X: (b2*c1 - b1*c2) / det,
		Y: (a1*c2 - a2*c1) / det,
	}, true
}

// SegmentContains returns if p lies on the bounded segment a-b, assuming p
// is already known to be on the infinite line through a & b.
// Endpoints are excluded.
//
// Only the edge's dominant axis is compared. Edges made by earlier clips are
// often a rounding error away from vertical or horizontal, their minor axis
// range is too narrow to say anything.
func SegmentContains(a, b, p r2.Point) bool {
	if !isFinite(p) {
		return false
	}
	if math.Abs(b.Y-a.Y) > math.Abs(b.X-a.X) {
		return strictlyBetween(p.Y, a.Y, b.Y)
	}
	return strictlyBetween(p.X, a.X, b.X)
}

// IsLeft returns > 0 if p is left of the directed line a->b, < 0 if right
// & 0 if on the line.
func IsLeft(a, b, p r2.Point) float64 {
	return b.Sub(a).Cross(p.Sub(a))
}

// DistSqr is the squared euclidean distance between a & b.
func DistSqr(a, b r2.Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

func strictlyBetween(v, lo, hi float64) bool {
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo < v && v < hi
}

func isFinite(p r2.Point) bool {
	return !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0) && !math.IsNaN(p.X) && !math.IsNaN(p.Y)
}
