package workpool

import (
	"sync"

	"github.com/boljen/go-bitmap"
)

// Coverage records which indices were handed out during a pass so callers
// can check that every index was claimed exactly once.
type Coverage struct {
	mu         sync.Mutex
	seen       bitmap.Bitmap
	bits       int
	size       int
	duplicates int
}

// NewCoverage returns an empty Coverage.
func NewCoverage() *Coverage {
	return &Coverage{}
}

// Reset clears everything & sizes the tracker for n indices.
func (c *Coverage) Reset(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.seen == nil || c.bits < n {
		c.seen = bitmap.New(n)
		c.bits = n
	} else {
		for i := 0; i < c.size; i++ {
			c.seen.Set(i, false)
		}
	}
	c.size = n
	c.duplicates = 0
}

// claim marks [lo, hi) as handed out. Called once per chunk, so the lock
// is taken per chunk rather than per index.
func (c *Coverage) claim(lo, hi int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if hi > c.size {
		hi = c.size
	}
	for i := lo; i < hi; i++ {
		if c.seen.Get(i) {
			c.duplicates++
			continue
		}
		c.seen.Set(i, true)
	}
}

// Gaps returns the number of indices nobody claimed.
func (c *Coverage) Gaps() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	gaps := 0
	for i := 0; i < c.size; i++ {
		if !c.seen.Get(i) {
			gaps++
		}
	}
	return gaps
}

// Duplicates returns the number of indices claimed more than once.
func (c *Coverage) Duplicates() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.duplicates
}

// Claimed returns if index i was handed out.
func (c *Coverage) Claimed(i int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i < 0 || i >= c.size {
		return false
	}
	return c.seen.Get(i)
}
