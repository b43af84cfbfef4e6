package clip

import (
	"github.com/golang/geo/r2"

	"github.com/voidshard/tessellate/internal/geom"
)

// Outcome says what a single clip did to a polygon.
type Outcome int

const (
	// Missed means the line does not cross the polygon, it is unchanged.
	Missed Outcome = iota

	// Split means the line crossed two edges & the polygon now holds
	// only the side containing the kept point.
	Split

	// Degenerate means the line crossed some number of edges other than
	// 0 or 2. This is a precision failure (or a polygon that is not
	// convex); the polygon is left unchanged.
	Degenerate
)

func (o Outcome) String() string {
	switch o {
	case Missed:
		return "missed"
	case Split:
		return "split"
	default:
		return "degenerate"
	}
}

// crossing is where a line passes through edge i of a polygon.
// vertex marks a crossing exactly on the edge's start point.
type crossing struct {
	edge   int
	at     r2.Point
	vertex bool
}

// Builder cuts convex polygons into Voronoi cells by half-plane clipping.
// It holds scratch storage so repeated calls do not allocate; a Builder
// must not be shared between goroutines.
type Builder struct {
	scratch *geom.Polygon
}

// NewBuilder returns a Builder with scratch room for n vertices.
func NewBuilder(n int) *Builder {
	return &Builder{scratch: geom.NewPolygon(n)}
}

// Clip cuts poly by the infinite line & keeps the part containing keep.
// poly must be convex & wound as geom.Polygon documents; so is the result.
func (b *Builder) Clip(poly *geom.Polygon, line geom.Line, keep r2.Point) Outcome {
	n := poly.Len()

	var hits [2]crossing
	count := 0
	for i := 0; i < n; i++ {
		a, c := poly.Edge(i)
		at, ok := geom.Intersect(geom.Line{A: a, B: c}, line)
		if !ok {
			continue
		}
		// a line through a vertex counts once, on the edge leaving it
		vertex := at == a
		if !vertex && !geom.SegmentContains(a, c, at) {
			continue
		}
		if count < len(hits) {
			hits[count] = crossing{edge: i, at: at, vertex: vertex}
		}
		count++
	}

	switch count {
	case 0:
		return Missed
	case 1:
		if hits[0].vertex {
			// touches a single vertex, nothing to cut
			return Missed
		}
		return Degenerate
	case 2:
	default:
		return Degenerate
	}

	first, second := hits[0], hits[1]
	out := b.scratch
	out.Reset()

	// walking first -> second covers one side, its closing edge runs from
	// the second crossing back to the first with the interior on the left.
	if geom.IsLeft(second.at, first.at, keep) > 0 {
		push(out, first.at)
		for i := first.edge + 1; i <= second.edge; i++ {
			push(out, poly.Points[i])
		}
		push(out, second.at)
	} else {
		push(out, second.at)
		for i := second.edge + 1; i < n; i++ {
			push(out, poly.Points[i])
		}
		for i := 0; i <= first.edge; i++ {
			push(out, poly.Points[i])
		}
		push(out, first.at)
	}

	// swap backing arrays rather than copy; each array still has one owner
	poly.Points, out.Points = out.Points, poly.Points
	return Split
}

// push appends pt unless it repeats the last vertex, which happens when a
// crossing sits exactly on a vertex.
func push(p *geom.Polygon, pt r2.Point) {
	if n := p.Len(); n > 0 && p.Points[n-1] == pt {
		return
	}
	p.Push(pt)
}

// Cell sets dst to the Voronoi cell of points[i] within the rectangle
// min-max. Every other site is applied in index order.
// Returns how many sites were skipped due to Degenerate clips.
func (b *Builder) Cell(points []r2.Point, i int, min, max r2.Point, dst *geom.Polygon) int {
	dst.Rect(min, max)

	p := points[i]
	skipped := 0
	for j, q := range points {
		if j == i {
			continue
		}
		// nb. a site coincident with p gives a zero length bisector which
		// never intersects anything, so it is a Missed
		if b.Clip(dst, geom.Bisector(p, q), p) == Degenerate {
			skipped++
		}
	}

	return skipped
}
