package components

import (
	"github.com/dsebastien/week-planner/pkg/models"
)

// GestureKind is the state of a single pointer gesture on the grid.
type GestureKind int

const (
	GestureIdle GestureKind = iota
	GestureCreating
	GestureMoving
	GestureResizingTop
	GestureResizingBottom
)

// resizeEdgePx is the band at a block's top/bottom edge where a press
// starts a resize instead of a move.
const resizeEdgePx float32 = 6

// gesture holds the transient state of one pointer interaction. It exists
// only between pointer-down and pointer-up (or Escape); nothing in it
// outlives the gesture.
type gesture struct {
	kind GestureKind

	// active flips when the pointer has actually dragged; a press that
	// releases without movement is a click, handled by Tapped.
	active bool

	// cancelled marks a gesture aborted by Escape while the button is still
	// held. Further drag events are ignored until release resolves the drag.
	cancelled bool

	anchorDay  int
	anchorSlot int

	// grabOffset keeps the pointer at the same slot within a moved block.
	grabOffset int

	// original is the committed block a move/resize started from, used to
	// revert the preview and as the update target.
	original models.TimeBlock

	preview *models.TimeBlock
}

// classifyPress decides which gesture a pointer-down begins: creating in
// empty space, resizing in a block's edge bands, moving in its body.
func classifyPress(cfg models.GridConfig, block models.TimeBlock, hit bool, x, y float32) gesture {
	day, slot := cfg.CellAt(x, y)

	if !hit {
		return gesture{kind: GestureCreating, anchorDay: day, anchorSlot: slot}
	}

	g := gesture{anchorDay: day, anchorSlot: slot, original: block}
	switch {
	case y < block.Bounds.Y+resizeEdgePx:
		g.kind = GestureResizingTop
	case y >= block.Bounds.Y+block.Bounds.Height-resizeEdgePx:
		g.kind = GestureResizingBottom
	default:
		g.kind = GestureMoving
		g.grabOffset = slot - block.Start
	}
	return g
}

// pointerMoved updates the preview block for the current pointer position.
// Coordinates are clamped by CellAt, so drags leaving the canvas still
// resolve to an edge cell.
func (g *gesture) pointerMoved(cfg models.GridConfig, x, y float32) {
	if g.kind == GestureIdle {
		return
	}
	g.active = true
	day, slot := cfg.CellAt(x, y)

	var p models.TimeBlock
	switch g.kind {
	case GestureCreating:
		// Creation stays in the anchor column; dragging up or down grows
		// the interval in either direction.
		p = models.TimeBlock{Day: g.anchorDay}
		p.Start = minInt(g.anchorSlot, slot)
		p.End = maxInt(g.anchorSlot, slot) + 1

	case GestureMoving:
		p = g.original
		p.Day = day
		length := p.End - p.Start
		p.Start = clampInt(slot-g.grabOffset, 0, cfg.Rows-length)
		p.End = p.Start + length

	case GestureResizingTop:
		p = g.original
		p.Start = minInt(slot, p.End-1)

	case GestureResizingBottom:
		p = g.original
		p.End = maxInt(slot+1, p.Start+1)
	}

	p.RecomputeBounds(cfg)
	g.preview = &p
}

// patch converts the preview into a partial update for the original block.
func (g gesture) patch() models.BlockPatch {
	p := g.preview
	return models.BlockPatch{Day: &p.Day, Start: &p.Start, End: &p.End}
}

func (g *gesture) reset() {
	*g = gesture{}
}

// cancel drops the gesture but remembers that a drag may still be in flight,
// so movement until the button release cannot start a new gesture.
func (g *gesture) cancel() {
	*g = gesture{cancelled: true}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
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
