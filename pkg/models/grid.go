package models

import (
	"fmt"
	"strconv"
	"strings"
)

// GridConfig holds the geometric parameters mapping (day, slot) to pixel
// space, plus the time axis used for labels and calendar export.
type GridConfig struct {
	Days            int     `json:"days"`              // number of day columns
	Rows            int     `json:"rows"`              // number of time rows (slots per day)
	CellWidth       float32 `json:"cell_width"`        // pixel width of one day column
	CellHeight      float32 `json:"cell_height"`       // pixel height of one slot row
	OriginX         float32 `json:"origin_x"`          // left edge of column 0 (time gutter width)
	OriginY         float32 `json:"origin_y"`          // top edge of row 0 (day header height)
	DayStartMinutes int     `json:"day_start_minutes"` // minutes after midnight of row 0
	SlotMinutes     int     `json:"slot_minutes"`      // duration of one slot row
}

// Validate checks that every dimension is positive. A zero-valued config is
// never usable; callers must reject it before any bounds math.
func (c GridConfig) Validate() error {
	if c.Days <= 0 || c.Rows <= 0 {
		return NewOutOfRangeError("grid needs positive day/row counts, got %dx%d", c.Days, c.Rows)
	}
	if c.CellWidth <= 0 || c.CellHeight <= 0 {
		return NewOutOfRangeError("grid needs positive cell size, got %.1fx%.1f", c.CellWidth, c.CellHeight)
	}
	if c.OriginX < 0 || c.OriginY < 0 {
		return NewOutOfRangeError("grid origin must not be negative, got (%.1f, %.1f)", c.OriginX, c.OriginY)
	}
	if c.SlotMinutes <= 0 {
		return NewOutOfRangeError("slot duration must be positive, got %d minutes", c.SlotMinutes)
	}
	if c.DayStartMinutes < 0 || c.DayStartMinutes >= 24*60 {
		return NewOutOfRangeError("day start must be within the day, got %d minutes", c.DayStartMinutes)
	}
	return nil
}

// Width returns the pixel width of the full grid including the origin gutter.
func (c GridConfig) Width() float32 {
	return c.OriginX + float32(c.Days)*c.CellWidth
}

// Height returns the pixel height of the full grid including the header.
func (c GridConfig) Height() float32 {
	return c.OriginY + float32(c.Rows)*c.CellHeight
}

// CellAt converts pixel coordinates to a (day, slot) cell. Coordinates are
// clamped to the grid first, so points outside the canvas resolve to the
// nearest edge cell.
func (c GridConfig) CellAt(x, y float32) (day, slot int) {
	day = int((x - c.OriginX) / c.CellWidth)
	slot = int((y - c.OriginY) / c.CellHeight)
	return clampInt(day, 0, c.Days-1), clampInt(slot, 0, c.Rows-1)
}

// BlockBounds computes the pixel rectangle for a block spanning
// [start, end) slots on the given day.
func (c GridConfig) BlockBounds(day, start, end int) Rect {
	return Rect{
		X:      c.OriginX + float32(day)*c.CellWidth,
		Y:      c.OriginY + float32(start)*c.CellHeight,
		Width:  c.CellWidth,
		Height: float32(end-start) * c.CellHeight,
	}
}

// SlotToTime renders a slot index as "HH:MM" on the grid's time axis.
// Slot c.Rows maps to the end of the last row, so block end slots render too.
func (c GridConfig) SlotToTime(slot int) string {
	mins := c.DayStartMinutes + slot*c.SlotMinutes
	return fmt.Sprintf("%02d:%02d", (mins/60)%24, mins%60)
}

// TimeToSlot parses an "HH:MM" string into a slot index on the grid's time
// axis, the inverse of SlotToTime. Times before the day start are rejected;
// times not on a slot boundary are rounded down.
func (c GridConfig) TimeToSlot(s string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q, want HH:MM", s)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	if hours < 0 || hours > 23 || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("invalid time %q, out of range", s)
	}
	total := hours*60 + mins
	if total < c.DayStartMinutes {
		return 0, fmt.Errorf("time %q is before the day start %s", s, c.SlotToTime(0))
	}
	return (total - c.DayStartMinutes) / c.SlotMinutes, nil
}

// DayName returns the column header label for a day index. Seven-day grids
// start on Monday; wider or narrower grids fall back to numbered days.
func (c GridConfig) DayName(day int) string {
	names := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	if c.Days <= len(names) {
		return names[day%len(names)]
	}
	return fmt.Sprintf("Day %d", day+1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
