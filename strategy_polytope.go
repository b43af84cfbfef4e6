package tessellate

import (
	"github.com/voidshard/tessellate/internal/geom"
	"github.com/voidshard/tessellate/internal/polytope"
)

// repairEpsilon is how close two polytope vertices must be to merge
const repairEpsilon = 1e-8

// PolytopeStrategy builds cells by intersecting one linear constraint per
// bisector. Slower & allocation heavy, it exists to check GeometricStrategy
// against an independent construction.
type PolytopeStrategy struct {
	base
	rings []geom.Polygon
}

// NewPolytope returns a constraint solving strategy.
func NewPolytope(opts ...Option) *PolytopeStrategy {
	return &PolytopeStrategy{base: newBase(string(Polytope), opts)}
}

// Tessellate computes every cell.
func (p *PolytopeStrategy) Tessellate(sites []Site, grid Grid) (*Tessellation, error) {
	if err := p.start(sites, grid, false); err != nil {
		return nil, err
	}

	end := p.prof.Start(spanCells)
	min, max := bounds(grid)
	cells := polytope.Cells(min, max, p.points, repairEpsilon)

	if cap(p.rings) < len(cells) {
		p.rings = make([]geom.Polygon, len(cells))
	}
	p.rings = p.rings[:len(cells)]
	for i, c := range cells {
		p.rings[i].Points = c.Ring
	}
	end()

	return p.polygons(p.rings, 0), nil
}

// Close drops the buffers
func (p *PolytopeStrategy) Close() error {
	p.closed = true
	p.rings = nil
	return nil
}
