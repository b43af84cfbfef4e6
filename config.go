package tessellate

import (
	"fmt"
	"os"
	"runtime"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// StrategyKind names a Strategy implementation.
type StrategyKind string

const (
	// Simple rasterizes sample by sample on the calling goroutine.
	Simple StrategyKind = "simple"

	// Depth rasterizes site by site against a depth buffer.
	Depth StrategyKind = "depth"

	// Threaded rasterizes over a fixed worker pool.
	Threaded StrategyKind = "threaded"

	// Geometric builds each cell by half-plane clipping.
	Geometric StrategyKind = "geometric"

	// Polytope builds each cell by solving bisector constraints, mostly
	// useful as a reference for Geometric.
	Polytope StrategyKind = "polytope"
)

// StrategyKinds lists every known kind.
var StrategyKinds = []StrategyKind{Simple, Depth, Threaded, Geometric, Polytope}

// ParseStrategy returns the kind named s.
func ParseStrategy(s string) (StrategyKind, error) {
	for _, k := range StrategyKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownStrategy, s)
}

// DefaultChunkSize is how many samples a worker claims at once.
// Bigger chunks mean less lock traffic, smaller ones better balancing.
const DefaultChunkSize = 512

// Config selects & tunes a strategy for an Engine.
type Config struct {
	// Strategy to use
	Strategy StrategyKind `yaml:"strategy"`

	// Workers for Threaded & Geometric. 0 means GOMAXPROCS; Geometric
	// runs on the calling goroutine with 1.
	Workers int `yaml:"workers"`

	// ChunkSize is samples claimed per lock by Threaded workers
	ChunkSize int `yaml:"chunk_size"`

	// FlipY emits bands bottom row first (for bottom-left origin targets)
	FlipY bool `yaml:"flip_y"`

	// TrackCoverage checks every sample was claimed exactly once per
	// pass (Threaded only), logging a warning if not.
	TrackCoverage bool `yaml:"track_coverage"`

	// Profile records timing spans, see Engine.Stats
	Profile bool `yaml:"profile"`
}

// DefaultConfig returns a reasonable default Config.
func DefaultConfig() *Config {
	return &Config{
		Strategy:  Threaded,
		Workers:   runtime.GOMAXPROCS(0),
		ChunkSize: DefaultChunkSize,
	}
}

// LoadConfig reads a yaml config file over DefaultConfig.
func LoadConfig(fpath string) (*Config, error) {
	data, err := os.ReadFile(fpath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", fpath)
	}

	cfg := DefaultConfig()
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", fpath)
	}

	return cfg, cfg.Validate()
}

// Validate returns an error if the config cannot build an Engine.
func (c *Config) Validate() error {
	if _, err := ParseStrategy(string(c.Strategy)); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.Strategy == Threaded && c.ChunkSize < 1 {
		return fmt.Errorf("%w: chunk_size must be at least 1, got %d", ErrInvalidConfig, c.ChunkSize)
	}
	return nil
}
