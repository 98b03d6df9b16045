package models

import "testing"

func testConfig() GridConfig {
	return GridConfig{
		Days:            7,
		Rows:            20,
		CellWidth:       100,
		CellHeight:      30,
		OriginX:         56,
		OriginY:         28,
		DayStartMinutes: 8 * 60,
		SlotMinutes:     30,
	}
}

func TestGridConfigValidate(t *testing.T) {
	if err := testConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	bad := []GridConfig{
		{},
		{Days: 7, Rows: 0, CellWidth: 10, CellHeight: 10, SlotMinutes: 30},
		{Days: 7, Rows: 20, CellWidth: -1, CellHeight: 10, SlotMinutes: 30},
		{Days: 7, Rows: 20, CellWidth: 10, CellHeight: 10, SlotMinutes: 0},
		{Days: 7, Rows: 20, CellWidth: 10, CellHeight: 10, SlotMinutes: 30, DayStartMinutes: 25 * 60},
	}
	for i, cfg := range bad {
		err := cfg.Validate()
		if err == nil {
			t.Fatalf("config %d accepted: %+v", i, cfg)
		}
		ve, ok := AsValidationError(err)
		if !ok || ve.Kind != ValidationOutOfRange {
			t.Fatalf("config %d: want out-of-range validation error, got %v", i, err)
		}
	}
}

func TestCellAtClampsToGrid(t *testing.T) {
	cfg := testConfig()

	cases := []struct {
		x, y      float32
		day, slot int
	}{
		{56, 28, 0, 0},              // top-left cell
		{156, 58, 1, 1},             // one cell in
		{-500, -500, 0, 0},          // far outside top-left
		{99999, 99999, 6, 19},       // far outside bottom-right
		{56 + 7*100 - 1, 30, 6, 0},  // last pixel column
		{60, 28 + 20*30 + 5, 0, 19}, // below last row
	}
	for _, c := range cases {
		day, slot := cfg.CellAt(c.x, c.y)
		if day != c.day || slot != c.slot {
			t.Errorf("CellAt(%.0f, %.0f) = (%d, %d), want (%d, %d)", c.x, c.y, day, slot, c.day, c.slot)
		}
	}
}

func TestBlockBounds(t *testing.T) {
	cfg := testConfig()

	b := TimeBlock{Day: 2, Start: 2, End: 4}
	b.RecomputeBounds(cfg)

	want := Rect{X: 56 + 2*100, Y: 28 + 2*30, Width: 100, Height: 2 * 30}
	if b.Bounds != want {
		t.Fatalf("bounds = %+v, want %+v", b.Bounds, want)
	}
	if !b.Bounds.Contains(want.X+1, want.Y+1) {
		t.Error("bounds should contain its own interior")
	}
	if b.Bounds.Contains(want.X+want.Width, want.Y) {
		t.Error("bounds should exclude the right edge")
	}
}

func TestTimeSlotRoundTrip(t *testing.T) {
	cfg := testConfig()

	cases := []struct {
		time string
		slot int
	}{
		{"08:00", 0},
		{"09:00", 2},
		{"09:30", 3},
		{"17:30", 19},
		{"18:00", 20},
	}
	for _, c := range cases {
		slot, err := cfg.TimeToSlot(c.time)
		if err != nil {
			t.Fatalf("TimeToSlot(%q): %v", c.time, err)
		}
		if slot != c.slot {
			t.Errorf("TimeToSlot(%q) = %d, want %d", c.time, slot, c.slot)
		}
		if got := cfg.SlotToTime(c.slot); got != c.time {
			t.Errorf("SlotToTime(%d) = %q, want %q", c.slot, got, c.time)
		}
	}

	for _, bad := range []string{"", "9", "25:00", "09:61", "ab:cd"} {
		if _, err := cfg.TimeToSlot(bad); err == nil {
			t.Errorf("TimeToSlot(%q) accepted", bad)
		}
	}

	// Valid wall-clock times before the axis start are out of domain, not
	// negative slots.
	if _, err := cfg.TimeToSlot("07:00"); err == nil {
		t.Error("TimeToSlot(07:00) on an 08:00 axis should be rejected")
	}
}

func TestOverlapsIsHalfOpen(t *testing.T) {
	a := TimeBlock{Day: 0, Start: 2, End: 4}

	if !a.Overlaps(TimeBlock{Day: 0, Start: 3, End: 5}) {
		t.Error("intersecting intervals on the same day should overlap")
	}
	if a.Overlaps(TimeBlock{Day: 0, Start: 4, End: 6}) {
		t.Error("a block ending at a slot must not overlap one starting there")
	}
	if a.Overlaps(TimeBlock{Day: 1, Start: 2, End: 4}) {
		t.Error("blocks on different days never overlap")
	}
}

func TestBlockPatchApply(t *testing.T) {
	b := TimeBlock{ID: "x", Day: 1, Start: 2, End: 4, Label: "deep work", Color: "#112233"}

	day := 3
	label := "review"
	got := BlockPatch{Day: &day, Label: &label}.Apply(b)

	if got.Day != 3 || got.Label != "review" {
		t.Fatalf("patched fields not applied: %+v", got)
	}
	if got.Start != 2 || got.End != 4 || got.Color != "#112233" || got.ID != "x" {
		t.Fatalf("unpatched fields changed: %+v", got)
	}
}
