package polytope

import (
	"math"
	"sort"

	"github.com/golang/geo/r2"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model2d"
)

// based on the approach in
// https://github.com/unixpickle/voronoi-glass/blob/main/voronoi.go
//
// + vertex ordering so cells come out as rings

// Cell is the convex region owned by one site.
type Cell struct {
	Center r2.Point
	Edges  []*model2d.Segment

	// Ring is the cell boundary wound with the interior on the left
	Ring []r2.Point
}

// Cells computes the voronoi cell of every point within the box min-max by
// solving one linear constraint per bisector.
//
// The resulting cells may have nearly identical vertices due to rounding,
// these are merged when within epsilon.
func Cells(min, max r2.Point, points []r2.Point, epsilon float64) []*Cell {
	lo := model2d.Coord{X: min.X, Y: min.Y}
	hi := model2d.Coord{X: max.X, Y: max.Y}

	cells := make([]*Cell, len(points))
	for i, p := range points {
		c := model2d.Coord{X: p.X, Y: p.Y}

		constraints := model2d.NewConvexPolytopeRect(lo, hi)
		for j, q := range points {
			c1 := model2d.Coord{X: q.X, Y: q.Y}
			if j == i || c1 == c {
				continue
			}
			mp := c.Mid(c1)
			normal := c1.Sub(c).Normalize()
			constraints = append(constraints, &model2d.LinearConstraint{
				Normal: normal,
				Max:    normal.Dot(mp),
			})
		}

		cell := &Cell{Center: p, Edges: constraints.Mesh().SegmentSlice()}
		cell.repair(epsilon)
		cells[i] = cell
	}
	return cells
}

// repair drops near singular edges & builds the ring
func (c *Cell) repair(epsilon float64) {
	for i := 0; i < len(c.Edges); i++ {
		edge := c.Edges[i]
		if edge[0].Dist(edge[1]) <= epsilon {
			// This was almost a singular edge.
			essentials.UnorderedDelete(&c.Edges, i)
			i--
		}
	}

	verts := []r2.Point{}
	for _, e := range c.Edges {
		for _, v := range e {
			pt := r2.Point{X: v.X, Y: v.Y}
			dup := false
			for _, o := range verts {
				if o.Sub(pt).Norm() <= epsilon {
					dup = true
					break
				}
			}
			if !dup {
				verts = append(verts, pt)
			}
		}
	}
	if len(verts) == 0 {
		c.Ring = nil
		return
	}

	// convex, so sorting by angle around the centroid gives the ring
	centroid := r2.Point{}
	for _, v := range verts {
		centroid = centroid.Add(v)
	}
	centroid = centroid.Mul(1 / float64(len(verts)))

	sort.Slice(verts, func(a, b int) bool {
		da := verts[a].Sub(centroid)
		db := verts[b].Sub(centroid)
		return math.Atan2(da.Y, da.X) < math.Atan2(db.Y, db.X)
	})
	c.Ring = verts
}

// Area of the cell ring (shoelace).
func (c *Cell) Area() float64 {
	n := len(c.Ring)
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += c.Ring[i].Cross(c.Ring[(i+1)%n])
	}
	return sum / 2
}
