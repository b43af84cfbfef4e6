package tessellate

import (
	"time"

	"github.com/pkg/errors"

	"github.com/voidshard/tessellate/internal/profile"
)

// maxSpans is how many timing spans we keep before starting over.
const maxSpans = 65536

// TimingStat summarises the timing of one labelled span, see Engine.Stats
type TimingStat struct {
	Label  string
	Count  int
	Mean   time.Duration
	StdDev time.Duration
}

// Engine runs the Strategy a Config selects & keeps timing stats about it.
type Engine struct {
	cfg      *Config
	strategy Strategy
	prof     *profile.Profiler
	passes   int
}

// New builds an Engine for cfg, nil means DefaultConfig.
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{cfg: cfg}
	if cfg.Profile {
		e.prof = profile.New()
	}

	s, err := newStrategy(cfg, e.prof)
	if err != nil {
		return nil, errors.Wrapf(err, "building %s strategy", cfg.Strategy)
	}
	e.strategy = s

	Logger().Debug("tessellate: engine ready", "strategy", cfg.Strategy, "workers", cfg.Workers, "chunk", cfg.ChunkSize)
	return e, nil
}

// newStrategy maps a config onto a concrete Strategy.
func newStrategy(cfg *Config, prof *profile.Profiler) (Strategy, error) {
	opts := []Option{WithFlipY(cfg.FlipY), withProfiler(prof)}

	switch cfg.Strategy {
	case Simple:
		return NewSimple(opts...), nil
	case Depth:
		return NewDepth(opts...), nil
	case Threaded:
		return newThreaded(cfg.Workers, cfg.ChunkSize, cfg.TrackCoverage, opts...)
	case Geometric:
		return NewGeometric(cfg.Workers, opts...)
	case Polytope:
		return NewPolytope(opts...), nil
	}
	return nil, ErrUnknownStrategy
}

// Tessellate runs one pass of the configured strategy.
// The result is valid until the next call.
func (e *Engine) Tessellate(sites []Site, grid Grid) (*Tessellation, error) {
	if e.prof.Count() > maxSpans {
		e.prof.Reset()
	}

	began := time.Now()
	end := e.prof.Start(spanFrame)
	t, err := e.strategy.Tessellate(sites, grid)
	end()
	if err != nil {
		return nil, err
	}

	e.passes++
	Logger().Debug(
		"tessellate: pass",
		"strategy", e.strategy.Name(),
		"sites", len(sites),
		"width", grid.Width,
		"height", grid.Height,
		"bands", len(t.Bands),
		"cells", len(t.Cells),
		"took", time.Since(began),
	)
	return t, nil
}

// Strategy returns the strategy in use
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// Passes is the number of successful passes so far
func (e *Engine) Passes() int {
	return e.passes
}

// Stats returns timing stats per span label. Empty unless Config.Profile.
func (e *Engine) Stats() []TimingStat {
	stats := e.prof.Stats()
	out := make([]TimingStat, len(stats))
	for i, s := range stats {
		out[i] = TimingStat{Label: s.Label, Count: s.Count, Mean: s.Mean, StdDev: s.StdDev}
	}
	return out
}

// ResetStats drops collected timings
func (e *Engine) ResetStats() {
	e.prof.Reset()
}

// Close shuts down the strategy.
func (e *Engine) Close() error {
	return e.strategy.Close()
}
