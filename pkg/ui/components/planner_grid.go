package components

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/dsebastien/week-planner/pkg/models"
	"github.com/dsebastien/week-planner/pkg/store"
)

// PlannerGrid is the interactive weekly grid. It translates pointer and
// keyboard events into BlockStore mutations: drag in empty space or click a
// cell to create, drag a block's body to move, drag its edges to resize,
// double-click to edit the label, Delete to remove, Escape to abort.
type PlannerGrid struct {
	widget.BaseWidget

	Store *store.BlockStore

	// OnError receives rejected mutations so the shell can surface them.
	OnError func(error)
	// OnChanged fires after any state-mutating operation succeeded.
	OnChanged func()

	DefaultColor string
	DefaultLabel string

	gesture gesture
	cursor  desktop.Cursor

	editing   *widget.PopUp
	editingID string
}

var _ desktop.Mouseable = (*PlannerGrid)(nil)
var _ desktop.Hoverable = (*PlannerGrid)(nil)
var _ desktop.Cursorable = (*PlannerGrid)(nil)
var _ fyne.Draggable = (*PlannerGrid)(nil)
var _ fyne.Tappable = (*PlannerGrid)(nil)
var _ fyne.DoubleTappable = (*PlannerGrid)(nil)
var _ fyne.Focusable = (*PlannerGrid)(nil)

func NewPlannerGrid(st *store.BlockStore) *PlannerGrid {
	g := &PlannerGrid{
		Store:        st,
		DefaultColor: "#4285f4",
		DefaultLabel: "New block",
		cursor:       desktop.DefaultCursor,
	}
	g.ExtendBaseWidget(g)
	return g
}

func (g *PlannerGrid) CreateRenderer() fyne.WidgetRenderer {
	r := &plannerGridRenderer{grid: g, background: canvas.NewRectangle(theme.BackgroundColor())}
	r.rebuild()
	return r
}

// MouseDown classifies the gesture the press begins. Nothing is committed
// until the pointer drags; a plain click is handled by Tapped.
func (g *PlannerGrid) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	g.requestFocus()
	block, hit := g.Store.BlockAt(ev.Position.X, ev.Position.Y)
	g.gesture = classifyPress(g.Store.Config(), block, hit, ev.Position.X, ev.Position.Y)
}

func (g *PlannerGrid) MouseUp(ev *desktop.MouseEvent) {
	if !g.gesture.active {
		g.gesture.reset()
	}
}

// Dragged updates the preview. Fyne keeps delivering drag events to the
// widget that started the drag even after the pointer leaves its bounds, so
// a drag off the canvas is still tracked and resolved on release.
func (g *PlannerGrid) Dragged(ev *fyne.DragEvent) {
	if g.gesture.cancelled {
		// Aborted by Escape; the button is still down, so the remainder of
		// this drag must not start anything.
		return
	}
	if g.gesture.kind == GestureIdle {
		// Drag without a recorded press (synthetic input); classify now.
		block, hit := g.Store.BlockAt(ev.Position.X, ev.Position.Y)
		g.gesture = classifyPress(g.Store.Config(), block, hit, ev.Position.X, ev.Position.Y)
	}
	g.gesture.pointerMoved(g.Store.Config(), ev.Position.X, ev.Position.Y)
	g.Refresh()
}

// DragEnd finalizes the gesture: creation commits through AddBlock, move and
// resize through UpdateBlock. A rejected mutation discards the preview and
// leaves the store untouched.
func (g *PlannerGrid) DragEnd() {
	gest := g.gesture
	g.gesture.reset()

	if !gest.active || gest.preview == nil {
		g.Refresh()
		return
	}

	switch gest.kind {
	case GestureCreating:
		b := *gest.preview
		b.Label = g.DefaultLabel
		b.Color = g.DefaultColor
		added, err := g.Store.AddBlock(b)
		if err != nil {
			g.fail(err)
			break
		}
		g.Store.SelectBlock(added.ID)
		g.notifyChanged()

	case GestureMoving, GestureResizingTop, GestureResizingBottom:
		if _, err := g.Store.UpdateBlock(gest.original.ID, gest.patch()); err != nil {
			g.fail(err)
			break
		}
		g.notifyChanged()
	}

	g.Refresh()
}

// Tapped selects the topmost block under the pointer, or creates a
// single-slot block when the cell is empty.
func (g *PlannerGrid) Tapped(ev *fyne.PointEvent) {
	g.requestFocus()

	if block, hit := g.Store.BlockAt(ev.Position.X, ev.Position.Y); hit {
		g.Store.SelectBlock(block.ID)
		g.Refresh()
		return
	}

	cfg := g.Store.Config()
	day, slot := cfg.CellAt(ev.Position.X, ev.Position.Y)
	added, err := g.Store.AddBlock(models.TimeBlock{
		Day:   day,
		Start: slot,
		End:   slot + 1,
		Label: g.DefaultLabel,
		Color: g.DefaultColor,
	})
	if err != nil {
		g.fail(err)
		return
	}
	g.Store.SelectBlock(added.ID)
	g.notifyChanged()
	g.Refresh()
}

// DoubleTapped starts inline label editing on the block under the pointer.
func (g *PlannerGrid) DoubleTapped(ev *fyne.PointEvent) {
	block, hit := g.Store.BlockAt(ev.Position.X, ev.Position.Y)
	if !hit {
		return
	}
	g.Store.SelectBlock(block.ID)
	g.Refresh()
	g.startEditing(block)
}

func (g *PlannerGrid) MouseIn(ev *desktop.MouseEvent) {
	g.updateCursor(ev.Position)
}

func (g *PlannerGrid) MouseMoved(ev *desktop.MouseEvent) {
	g.updateCursor(ev.Position)
}

func (g *PlannerGrid) MouseOut() {
	g.cursor = desktop.DefaultCursor
}

func (g *PlannerGrid) Cursor() desktop.Cursor {
	return g.cursor
}

func (g *PlannerGrid) FocusGained() {}
func (g *PlannerGrid) FocusLost()   {}

func (g *PlannerGrid) TypedRune(r rune) {}

// TypedKey handles Escape (abort drag, then clear selection) and
// Delete/Backspace (remove the selected block).
func (g *PlannerGrid) TypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyEscape:
		if g.gesture.kind != GestureIdle {
			g.gesture.cancel()
		} else {
			g.Store.Deselect()
		}
		g.Refresh()
	case fyne.KeyDelete, fyne.KeyBackspace:
		if id := g.Store.SelectedID(); id != "" {
			if g.Store.RemoveBlock(id) {
				g.notifyChanged()
			}
			g.Refresh()
		}
	}
}

// StartEditingSelected opens the label editor for the current selection,
// for toolbar/menu access alongside double-click.
func (g *PlannerGrid) StartEditingSelected() {
	if block, ok := g.Store.SelectedBlock(); ok {
		g.startEditing(block)
	}
}

func (g *PlannerGrid) startEditing(block models.TimeBlock) {
	c := fyne.CurrentApp().Driver().CanvasForObject(g)
	if c == nil {
		return
	}
	g.stopEditing()

	entry := newLabelEntry()
	entry.SetText(block.Label)
	g.editingID = block.ID

	entry.onCommit = func(text string) {
		if g.editingID != "" {
			g.Store.UpdateBlockText(g.editingID, text)
			g.notifyChanged()
		}
		g.stopEditing()
		g.Refresh()
	}
	entry.onCancel = func() {
		g.stopEditing()
		g.Refresh()
	}

	pos := fyne.CurrentApp().Driver().AbsolutePositionForObject(g)
	pos = pos.Add(fyne.NewPos(block.Bounds.X, block.Bounds.Y))

	g.editing = widget.NewPopUp(entry, c)
	g.editing.ShowAtPosition(pos)
	width := block.Bounds.Width
	if width < 140 {
		width = 140
	}
	g.editing.Resize(fyne.NewSize(width, entry.MinSize().Height))
	c.Focus(entry)
}

func (g *PlannerGrid) stopEditing() {
	if g.editing != nil {
		g.editing.Hide()
		g.editing = nil
	}
	g.editingID = ""
}

func (g *PlannerGrid) updateCursor(pos fyne.Position) {
	block, hit := g.Store.BlockAt(pos.X, pos.Y)
	switch {
	case !hit:
		g.cursor = desktop.CrosshairCursor
	case pos.Y < block.Bounds.Y+resizeEdgePx,
		pos.Y >= block.Bounds.Y+block.Bounds.Height-resizeEdgePx:
		g.cursor = desktop.VResizeCursor
	default:
		g.cursor = desktop.PointerCursor
	}
}

func (g *PlannerGrid) requestFocus() {
	if c := fyne.CurrentApp().Driver().CanvasForObject(g); c != nil {
		c.Focus(g)
	}
}

func (g *PlannerGrid) notifyChanged() {
	if g.OnChanged != nil {
		g.OnChanged()
	}
}

func (g *PlannerGrid) fail(err error) {
	if g.OnError != nil {
		g.OnError(err)
		return
	}
	log.Printf("planner grid: %v", err)
}

// labelEntry is a single-line entry that commits on Enter or blur and
// cancels on Escape.
type labelEntry struct {
	widget.Entry

	onCommit func(string)
	onCancel func()
	done     bool
}

func newLabelEntry() *labelEntry {
	e := &labelEntry{}
	e.ExtendBaseWidget(e)
	e.OnSubmitted = func(text string) {
		e.finish(func() { e.onCommit(text) })
	}
	return e
}

func (e *labelEntry) TypedKey(ev *fyne.KeyEvent) {
	if ev.Name == fyne.KeyEscape {
		e.finish(func() { e.onCancel() })
		return
	}
	e.Entry.TypedKey(ev)
}

// FocusLost commits the edit, so clicking elsewhere behaves like blur.
func (e *labelEntry) FocusLost() {
	e.Entry.FocusLost()
	e.finish(func() { e.onCommit(e.Text) })
}

func (e *labelEntry) finish(f func()) {
	if e.done {
		return
	}
	e.done = true
	f()
}

// parseHexColor decodes "#rrggbb" block colors, falling back to gray on
// malformed input so a bad snapshot still renders.
func parseHexColor(s string) color.NRGBA {
	if len(s) == 7 && s[0] == '#' {
		r, okR := hexByte(s[1], s[2])
		g, okG := hexByte(s[3], s[4])
		b, okB := hexByte(s[5], s[6])
		if okR && okG && okB {
			return color.NRGBA{R: r, G: g, B: b, A: 0xff}
		}
	}
	return color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
}

func hexByte(hi, lo byte) (uint8, bool) {
	h, okH := hexNibble(hi)
	l, okL := hexNibble(lo)
	return h<<4 | l, okH && okL
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
