package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// Polygon is a ring of vertices, the last implicitly joins the first.
// Rings built here keep their interior on the left of every directed edge
// (clockwise on screen, where y points down).
//
// Polygons are meant to be reused: Reset keeps the backing array so
// refilling does not allocate once capacity has been reached.
type Polygon struct {
	Points []r2.Point
}

// NewPolygon returns a polygon with room for n vertices
func NewPolygon(n int) *Polygon {
	return &Polygon{Points: make([]r2.Point, 0, n)}
}

// Reset empties the polygon, keeping capacity.
func (p *Polygon) Reset() {
	p.Points = p.Points[:0]
}

// Push appends a vertex.
func (p *Polygon) Push(pt r2.Point) {
	p.Points = append(p.Points, pt)
}

// Len is the number of vertices
func (p *Polygon) Len() int {
	return len(p.Points)
}

// Edge returns the i'th edge, wrapping at the end of the ring.
func (p *Polygon) Edge(i int) (r2.Point, r2.Point) {
	return p.Points[i], p.Points[(i+1)%len(p.Points)]
}

// Rect sets the polygon to the rectangle min-max.
func (p *Polygon) Rect(min, max r2.Point) {
	p.Reset()
	p.Push(r2.Point{X: min.X, Y: min.Y})
	p.Push(r2.Point{X: max.X, Y: min.Y})
	p.Push(r2.Point{X: max.X, Y: max.Y})
	p.Push(r2.Point{X: min.X, Y: max.Y})
}

// CopyFrom overwrites p with the vertices of o.
func (p *Polygon) CopyFrom(o *Polygon) {
	p.Points = append(p.Points[:0], o.Points...)
}

// IsConvex returns true if no vertex turns against the winding.
// Collinear vertices are tolerated.
func (p *Polygon) IsConvex() bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		c := p.Points[(i+2)%n]
		if IsLeft(a, b, c) < -1e-9 {
			return false
		}
	}
	return true
}

// Area via the shoelace formula. Positive for our winding.
func (p *Polygon) Area() float64 {
	n := len(p.Points)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		a, b := p.Edge(i)
		sum += a.Cross(b)
	}
	return sum / 2
}

// Contains returns if pt lies inside (or within eps of the boundary of)
// the convex polygon.
func (p *Polygon) Contains(pt r2.Point, eps float64) bool {
	if len(p.Points) < 3 {
		return false
	}
	for i := range p.Points {
		a, b := p.Edge(i)
		// normalise so eps is a distance rather than an area
		l := b.Sub(a).Norm()
		if l == 0 {
			continue
		}
		if IsLeft(a, b, pt)/l < -eps {
			return false
		}
	}
	return true
}

// Bounds returns the lowest & highest x, y over all vertices.
func (p *Polygon) Bounds() (r2.Point, r2.Point) {
	min := r2.Point{X: math.Inf(1), Y: math.Inf(1)}
	max := r2.Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, pt := range p.Points {
		min.X = math.Min(min.X, pt.X)
		min.Y = math.Min(min.Y, pt.Y)
		max.X = math.Max(max.X, pt.X)
		max.Y = math.Max(max.Y, pt.Y)
	}
	return min, max
}

// Fan triangulates the (convex) polygon from its first vertex, appending
// 3*(n-2) vertices to dst. Rings with fewer than 3 vertices add nothing.
func (p *Polygon) Fan(dst []r2.Point) []r2.Point {
	n := len(p.Points)
	for i := 1; i+1 < n; i++ {
		dst = append(dst, p.Points[0], p.Points[i], p.Points[i+1])
	}
	return dst
}
