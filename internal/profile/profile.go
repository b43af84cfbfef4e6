package profile

import (
	"math"
	"sync"
	"time"
)

// Stat summarises every finished span with the same label.
type Stat struct {
	Label  string
	Count  int
	Mean   time.Duration
	StdDev time.Duration
}

// Profiler collects labelled timing spans.
// A nil *Profiler is valid & records nothing.
type Profiler struct {
	mu    sync.Mutex
	order []string
	spans map[string][]time.Duration
	now   func() time.Time
}

// New returns an empty Profiler
func New() *Profiler {
	return &Profiler{spans: map[string][]time.Duration{}, now: time.Now}
}

// Start opens a span, the returned func closes it.
func (p *Profiler) Start(label string) func() {
	if p == nil {
		return func() {}
	}
	began := p.now()
	return func() {
		p.Record(label, p.now().Sub(began))
	}
}

// Record adds a finished span of duration d.
func (p *Profiler) Record(label string, d time.Duration) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.spans[label]; !ok {
		p.order = append(p.order, label)
	}
	p.spans[label] = append(p.spans[label], d)
}

// Stats returns one Stat per label, in the order labels were first seen.
// StdDev is the sample standard deviation (0 for a single span).
func (p *Profiler) Stats() []Stat {
	if p == nil {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]Stat, 0, len(p.order))
	for _, label := range p.order {
		times := p.spans[label]

		sum := 0.0
		for _, d := range times {
			sum += float64(d)
		}
		mean := sum / float64(len(times))

		variance := 0.0
		if len(times) > 1 {
			for _, d := range times {
				variance += (float64(d) - mean) * (float64(d) - mean)
			}
			variance /= float64(len(times) - 1)
		}

		out = append(out, Stat{
			Label:  label,
			Count:  len(times),
			Mean:   time.Duration(mean),
			StdDev: time.Duration(math.Sqrt(variance)),
		})
	}
	return out
}

// Count is the total number of recorded spans.
func (p *Profiler) Count() int {
	if p == nil {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, times := range p.spans {
		n += len(times)
	}
	return n
}

// Reset drops every recorded span.
func (p *Profiler) Reset() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	p.order = nil
	p.spans = map[string][]time.Duration{}
}
