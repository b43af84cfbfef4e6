package tessellate

import (
	"fmt"
)

var (
	// ErrNoSites implies a raster strategy was given no sites; there is
	// no sensible colour for any sample.
	ErrNoSites = fmt.Errorf("at least one site is required")

	// ErrInvalidGrid implies a grid with a zero or negative dimension.
	ErrInvalidGrid = fmt.Errorf("grid dimensions must be positive")

	// ErrUnknownStrategy implies a StrategyKind we don't have.
	ErrUnknownStrategy = fmt.Errorf("unknown strategy")

	// ErrInvalidConfig implies a Config that cannot build an Engine.
	ErrInvalidConfig = fmt.Errorf("invalid config")

	// ErrClosed is returned when using a strategy after Close.
	ErrClosed = fmt.Errorf("strategy is closed")
)

// checkInput validates a pass before any work is done.
func checkInput(sites []Site, grid Grid, needSites bool) error {
	if !grid.valid() {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGrid, grid.Width, grid.Height)
	}
	if needSites && len(sites) == 0 {
		return ErrNoSites
	}
	return nil
}
