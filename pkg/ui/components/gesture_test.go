package components

import (
	"testing"

	"github.com/dsebastien/week-planner/pkg/models"
)

func gestureConfig() models.GridConfig {
	return models.GridConfig{
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

// cellCenter returns the pixel center of a cell, handy for synthesizing
// pointer positions.
func cellCenter(cfg models.GridConfig, day, slot int) (float32, float32) {
	x := cfg.OriginX + (float32(day)+0.5)*cfg.CellWidth
	y := cfg.OriginY + (float32(slot)+0.5)*cfg.CellHeight
	return x, y
}

func TestClassifyPressEmptySpace(t *testing.T) {
	cfg := gestureConfig()
	x, y := cellCenter(cfg, 3, 5)

	g := classifyPress(cfg, models.TimeBlock{}, false, x, y)
	if g.kind != GestureCreating {
		t.Fatalf("kind = %v, want creating", g.kind)
	}
	if g.anchorDay != 3 || g.anchorSlot != 5 {
		t.Fatalf("anchor = (%d, %d), want (3, 5)", g.anchorDay, g.anchorSlot)
	}
	if g.active {
		t.Error("gesture must not be active before the pointer moves")
	}
}

func TestClassifyPressOnBlock(t *testing.T) {
	cfg := gestureConfig()
	b := models.TimeBlock{ID: "b", Day: 1, Start: 2, End: 6}
	b.RecomputeBounds(cfg)

	x := b.Bounds.X + b.Bounds.Width/2

	cases := []struct {
		name string
		y    float32
		kind GestureKind
	}{
		{"top edge band", b.Bounds.Y + 2, GestureResizingTop},
		{"just inside top band", b.Bounds.Y + resizeEdgePx - 1, GestureResizingTop},
		{"body", b.Bounds.Y + b.Bounds.Height/2, GestureMoving},
		{"just above bottom band", b.Bounds.Y + b.Bounds.Height - resizeEdgePx - 1, GestureMoving},
		{"bottom edge band", b.Bounds.Y + b.Bounds.Height - 2, GestureResizingBottom},
	}
	for _, c := range cases {
		g := classifyPress(cfg, b, true, x, c.y)
		if g.kind != c.kind {
			t.Errorf("%s: kind = %v, want %v", c.name, g.kind, c.kind)
		}
		if g.original.ID != "b" {
			t.Errorf("%s: original block not captured", c.name)
		}
	}
}

func TestClassifyPressGrabOffset(t *testing.T) {
	cfg := gestureConfig()
	b := models.TimeBlock{ID: "b", Day: 1, Start: 2, End: 6}
	b.RecomputeBounds(cfg)

	// Press in the third slot of the block: offset 2 from its start.
	x, y := cellCenter(cfg, 1, 4)
	g := classifyPress(cfg, b, true, x, y)
	if g.kind != GestureMoving {
		t.Fatalf("kind = %v, want moving", g.kind)
	}
	if g.grabOffset != 2 {
		t.Fatalf("grabOffset = %d, want 2", g.grabOffset)
	}
}

func TestCreatingDragGrowsEitherDirection(t *testing.T) {
	cfg := gestureConfig()
	x, y := cellCenter(cfg, 2, 5)
	g := classifyPress(cfg, models.TimeBlock{}, false, x, y)

	// Drag down to slot 8: [5, 9).
	_, y8 := cellCenter(cfg, 2, 8)
	g.pointerMoved(cfg, x, y8)
	if !g.active {
		t.Fatal("movement must activate the gesture")
	}
	if g.preview.Start != 5 || g.preview.End != 9 {
		t.Fatalf("preview = [%d, %d), want [5, 9)", g.preview.Start, g.preview.End)
	}

	// Drag back up past the anchor to slot 3: [3, 6).
	_, y3 := cellCenter(cfg, 2, 3)
	g.pointerMoved(cfg, x, y3)
	if g.preview.Start != 3 || g.preview.End != 6 {
		t.Fatalf("preview = [%d, %d), want [3, 6)", g.preview.Start, g.preview.End)
	}

	// Creation is locked to the anchor column even if the pointer strays.
	xOther, _ := cellCenter(cfg, 5, 3)
	g.pointerMoved(cfg, xOther, y3)
	if g.preview.Day != 2 {
		t.Fatalf("preview day = %d, want anchor day 2", g.preview.Day)
	}
}

func TestMovingDragKeepsLengthAndClamps(t *testing.T) {
	cfg := gestureConfig()
	b := models.TimeBlock{ID: "b", Day: 1, Start: 4, End: 8}
	b.RecomputeBounds(cfg)

	// Grab the second slot of the block.
	x, y := cellCenter(cfg, 1, 5)
	g := classifyPress(cfg, b, true, x, y)

	// Drag to day 3, pointer at slot 10: block follows with the grab point
	// pinned, so it starts at slot 9.
	x3, y10 := cellCenter(cfg, 3, 10)
	g.pointerMoved(cfg, x3, y10)
	if g.preview.Day != 3 || g.preview.Start != 9 || g.preview.End != 13 {
		t.Fatalf("preview = day %d [%d, %d), want day 3 [9, 13)", g.preview.Day, g.preview.Start, g.preview.End)
	}

	// Drag far above the grid: the block pins to the top, length intact.
	g.pointerMoved(cfg, x3, -1000)
	if g.preview.Start != 0 || g.preview.End != 4 {
		t.Fatalf("preview = [%d, %d), want [0, 4)", g.preview.Start, g.preview.End)
	}

	// Drag far below: pinned to the bottom.
	g.pointerMoved(cfg, x3, 100000)
	if g.preview.Start != 16 || g.preview.End != 20 {
		t.Fatalf("preview = [%d, %d), want [16, 20)", g.preview.Start, g.preview.End)
	}
}

func TestResizeNeverInvertsTheBlock(t *testing.T) {
	cfg := gestureConfig()
	b := models.TimeBlock{ID: "b", Day: 1, Start: 4, End: 8}
	b.RecomputeBounds(cfg)

	x := b.Bounds.X + b.Bounds.Width/2

	// Top handle dragged below the block's end: start stops one slot short.
	top := classifyPress(cfg, b, true, x, b.Bounds.Y+1)
	_, yBelow := cellCenter(cfg, 1, 12)
	top.pointerMoved(cfg, x, yBelow)
	if top.preview.Start != 7 || top.preview.End != 8 {
		t.Fatalf("preview = [%d, %d), want [7, 8)", top.preview.Start, top.preview.End)
	}

	// Bottom handle dragged above the block's start: one slot survives.
	bottom := classifyPress(cfg, b, true, x, b.Bounds.Y+b.Bounds.Height-1)
	_, yAbove := cellCenter(cfg, 1, 1)
	bottom.pointerMoved(cfg, x, yAbove)
	if bottom.preview.Start != 4 || bottom.preview.End != 5 {
		t.Fatalf("preview = [%d, %d), want [4, 5)", bottom.preview.Start, bottom.preview.End)
	}

	// Normal shrink from the bottom.
	bottom.reset()
	bottom = classifyPress(cfg, b, true, x, b.Bounds.Y+b.Bounds.Height-1)
	_, y5 := cellCenter(cfg, 1, 5)
	bottom.pointerMoved(cfg, x, y5)
	if bottom.preview.Start != 4 || bottom.preview.End != 6 {
		t.Fatalf("preview = [%d, %d), want [4, 6)", bottom.preview.Start, bottom.preview.End)
	}
}

func TestGesturePatchAndReset(t *testing.T) {
	cfg := gestureConfig()
	b := models.TimeBlock{ID: "b", Day: 1, Start: 4, End: 8}
	b.RecomputeBounds(cfg)

	x, y := cellCenter(cfg, 1, 5)
	g := classifyPress(cfg, b, true, x, y)
	x2, y6 := cellCenter(cfg, 2, 6)
	g.pointerMoved(cfg, x2, y6)

	patch := g.patch()
	if *patch.Day != 2 || *patch.Start != 5 || *patch.End != 9 {
		t.Fatalf("patch = day %d [%d, %d), want day 2 [5, 9)", *patch.Day, *patch.Start, *patch.End)
	}
	if patch.Label != nil || patch.Color != nil {
		t.Error("geometry patch must not touch label or color")
	}

	g.reset()
	if g.kind != GestureIdle || g.active || g.preview != nil {
		t.Fatalf("reset left state behind: %+v", g)
	}
}

func TestPointerMovedIgnoredWhenIdle(t *testing.T) {
	cfg := gestureConfig()
	var g gesture

	g.pointerMoved(cfg, 100, 100)
	if g.active || g.preview != nil {
		t.Fatal("idle gesture must ignore movement")
	}
}
