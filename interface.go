// Package tessellate computes discrete Voronoi tessellations: every sample of
// a grid belongs to the cell of its nearest site.
//
// Several interchangeable strategies exist, brute force rasterizers (single
// threaded, depth buffered or spread over a worker pool) & geometric ones
// building each cell as a convex polygon.
package tessellate

// Strategy computes a tessellation for a set of sites over a grid.
//
// Strategies keep their buffers between passes, so a Strategy must not be
// used from several goroutines at once.
type Strategy interface {
	// Name of the strategy, see StrategyKind
	Name() string

	// Tessellate runs one pass. The result is valid until the next call.
	Tessellate(sites []Site, grid Grid) (*Tessellation, error)

	// Close releases workers & buffers.
	Close() error
}
