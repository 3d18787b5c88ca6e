package service

import (
	"context"
	"sync"

	"storefront-orders/internal/core/logger"
	"storefront-orders/internal/features/thumbnails/domain"

	"go.uber.org/zap"
)

// Driver recomputes a thumbnail row whenever its container width changes.
// Each measurement replaces the previous result wholesale; the latest width wins.
type Driver struct {
	tile float64
	gap  float64

	mu        sync.Mutex
	itemCount int
	width     float64
	measured  bool
	last      domain.Result
}

// NewDriver creates a Driver for tiles of tile px separated by gap px.
func NewDriver(tile, gap float64) *Driver {
	return &Driver{tile: tile, gap: gap}
}

// SetItemCount updates the number of items in the row, typically once the order
// has loaded. If a width was already measured the row is recomputed. An empty row
// clears the last layout.
func (d *Driver) SetItemCount(n int) (domain.Result, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.itemCount = n
	if n <= 0 {
		d.last = domain.Result{}
	}
	if !d.measured {
		return domain.Result{}, false
	}
	return d.recompute()
}

// Measure records a new container width and returns the fresh layout.
// It is a no-op, returning false, while the row has no items.
func (d *Driver) Measure(width float64) (domain.Result, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.width = width
	d.measured = true
	return d.recompute()
}

// Last returns the most recent layout.
func (d *Driver) Last() domain.Result {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.last
}

// Run consumes width-change events until ctx is done or widths is closed,
// calling emit with every recomputed layout.
func (d *Driver) Run(ctx context.Context, widths <-chan float64, emit func(domain.Result)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case w, ok := <-widths:
			if !ok {
				return nil
			}
			if r, changed := d.Measure(w); changed && emit != nil {
				emit(r)
			}
		}
	}
}

func (d *Driver) recompute() (domain.Result, bool) {
	if d.itemCount <= 0 {
		return domain.Result{}, false
	}
	d.last = domain.Calculate(d.itemCount, d.width, d.tile, d.gap)
	logger.Get().Debug("Thumbnail row recalculated",
		zap.Float64("width", d.width),
		zap.Int("items", d.itemCount),
		zap.Int("visible", d.last.VisibleCount),
		zap.Int("remaining", d.last.RemainingCount),
	)
	return d.last, true
}
