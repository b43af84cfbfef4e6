package clip

import (
	"github.com/golang/geo/r2"

	"github.com/voidshard/tessellate/internal/geom"
)

// Frame is the state of one geometric pass: every site's cell within the
// same rectangle. Work is split by site index, each worker using its own
// Builder so no polygon storage is shared.
type Frame struct {
	Min    r2.Point
	Max    r2.Point
	Points []r2.Point

	// Cells[i] is the cell for Points[i]
	Cells []geom.Polygon

	// Skipped[i] is the number of Degenerate clips while building Cells[i]
	Skipped []int

	builders []*Builder
}

// NewFrame returns a Frame able to run on the given number of workers.
func NewFrame(workers int) *Frame {
	if workers < 1 {
		workers = 1
	}
	f := &Frame{builders: make([]*Builder, workers)}
	for i := range f.builders {
		f.builders[i] = NewBuilder(8)
	}
	return f
}

// Reset prepares the frame for a new pass. Cell storage from earlier
// passes is kept & reused.
func (f *Frame) Reset(points []r2.Point, min, max r2.Point) {
	f.Points = points
	f.Min = min
	f.Max = max

	n := len(points)
	if cap(f.Cells) < n {
		cells := make([]geom.Polygon, n, n*2)
		copy(cells, f.Cells[:cap(f.Cells)])
		f.Cells = cells
	}
	f.Cells = f.Cells[:n]

	if cap(f.Skipped) < n {
		f.Skipped = make([]int, n, n*2)
	}
	f.Skipped = f.Skipped[:n]
}

// Len is the number of sites to process.
func (f *Frame) Len() int {
	return len(f.Points)
}

// Do builds the cells for sites [lo, hi) using the given worker's Builder.
func (f *Frame) Do(worker, lo, hi int) {
	b := f.builders[worker]
	for i := lo; i < hi; i++ {
		f.Skipped[i] = b.Cell(f.Points, i, f.Min, f.Max, &f.Cells[i])
	}
}

// Run builds every cell on the calling goroutine.
func (f *Frame) Run() {
	f.Do(0, 0, f.Len())
}

// TotalSkipped sums Skipped.
func (f *Frame) TotalSkipped() int {
	total := 0
	for _, s := range f.Skipped {
		total += s
	}
	return total
}
