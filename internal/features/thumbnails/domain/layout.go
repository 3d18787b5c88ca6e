package domain

import "math"

// Result is the outcome of a thumbnail row layout.
type Result struct {
	// VisibleCount is how many item tiles are rendered.
	VisibleCount int `json:"visible_count"`
	// ShowBadge is true when a "+N" tile replaces the overflow.
	ShowBadge bool `json:"show_badge"`
	// RemainingCount is N in the "+N" badge; zero without a badge.
	RemainingCount int `json:"remaining_count"`
}

// MaxTiles is how many tiles of tile px separated by gap px fit in width px.
// It is at least one, so a row never renders empty.
func MaxTiles(width, tile, gap float64) int {
	step := tile + gap
	if step <= 0 || math.IsNaN(width) || math.IsNaN(step) || math.IsInf(step, 0) {
		return 1
	}
	n := math.Floor((width + gap) / step)
	if math.IsNaN(n) || n < 1 {
		return 1
	}
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}

// Calculate decides how many of itemCount thumbnails fit in a row.
// When they do not all fit, the "+N" badge takes one of the available slots
// instead of being added on top, and at least one item stays visible.
func Calculate(itemCount int, width, tile, gap float64) Result {
	if itemCount <= 0 {
		return Result{}
	}

	maxVisible := MaxTiles(width, tile, gap)
	if itemCount <= maxVisible {
		return Result{VisibleCount: itemCount}
	}

	visible := max(1, maxVisible-1)
	return Result{
		VisibleCount:   visible,
		ShowBadge:      true,
		RemainingCount: itemCount - visible,
	}
}
