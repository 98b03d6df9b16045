package models

// Rect is a pixel-space rectangle on the drawing surface.
type Rect struct {
	X      float32 `json:"x"`
	Y      float32 `json:"y"`
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// TimeBlock is a labeled interval on one day column of the grid. Start and
// End are slot indices forming the half-open range [Start, End). Bounds is
// derived from (Day, Start, End) and the active GridConfig and is not part
// of the exported snapshot.
type TimeBlock struct {
	ID     string `json:"id"`
	Day    int    `json:"day"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Label  string `json:"label"`
	Color  string `json:"color"`
	Bounds Rect   `json:"-"`
}

// Overlaps reports whether two blocks occupy the same day with intersecting
// half-open time intervals. A block ending at a slot does not overlap one
// starting at that slot.
func (b TimeBlock) Overlaps(other TimeBlock) bool {
	return b.Day == other.Day && b.Start < other.End && other.Start < b.End
}

// RecomputeBounds refreshes the derived pixel rectangle from the logical
// position and the given grid geometry.
func (b *TimeBlock) RecomputeBounds(cfg GridConfig) {
	b.Bounds = cfg.BlockBounds(b.Day, b.Start, b.End)
}

// BlockPatch carries a partial update for a block. Nil fields are left
// untouched by Apply.
type BlockPatch struct {
	Day   *int
	Start *int
	End   *int
	Label *string
	Color *string
}

// Apply merges the patch into a copy of the block. The result has stale
// Bounds until recomputed.
func (p BlockPatch) Apply(b TimeBlock) TimeBlock {
	if p.Day != nil {
		b.Day = *p.Day
	}
	if p.Start != nil {
		b.Start = *p.Start
	}
	if p.End != nil {
		b.End = *p.End
	}
	if p.Label != nil {
		b.Label = *p.Label
	}
	if p.Color != nil {
		b.Color = *p.Color
	}
	return b
}

// PlannerData is the exportable snapshot: the ordered block list plus the
// grid configuration active at export time.
type PlannerData struct {
	Config GridConfig  `json:"config"`
	Blocks []TimeBlock `json:"blocks"`
}
