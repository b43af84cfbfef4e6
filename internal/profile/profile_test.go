package profile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	p := New()
	for _, ms := range []int{2, 4, 4, 4, 5, 5, 7, 9} {
		p.Record("frame", time.Duration(ms)*time.Millisecond)
	}
	p.Record("encode", time.Millisecond)

	stats := p.Stats()
	require.Len(t, stats, 2)

	assert.Equal(t, "frame", stats[0].Label)
	assert.Equal(t, 8, stats[0].Count)
	assert.Equal(t, 5*time.Millisecond, stats[0].Mean)
	// sample stddev of the classic 2,4,4,4,5,5,7,9 set is sqrt(32/7)
	assert.InDelta(t, 2.138089935, stats[0].StdDev.Seconds()*1000, 1e-5)

	assert.Equal(t, "encode", stats[1].Label)
	assert.Equal(t, time.Duration(0), stats[1].StdDev)
	assert.Equal(t, 9, p.Count())

	p.Reset()
	assert.Empty(t, p.Stats())
}

func TestStartUsesClock(t *testing.T) {
	p := New()
	clock := time.Unix(0, 0)
	p.now = func() time.Time { return clock }

	end := p.Start("span")
	clock = clock.Add(3 * time.Millisecond)
	end()

	stats := p.Stats()
	require.Len(t, stats, 1)
	assert.Equal(t, 3*time.Millisecond, stats[0].Mean)
}

func TestNilProfiler(t *testing.T) {
	var p *Profiler
	p.Start("x")()
	p.Record("x", time.Second)
	p.Reset()
	assert.Nil(t, p.Stats())
	assert.Equal(t, 0, p.Count())
}
