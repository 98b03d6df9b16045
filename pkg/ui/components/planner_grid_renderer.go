package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
)

type plannerGridRenderer struct {
	grid       *PlannerGrid
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (r *plannerGridRenderer) Layout(size fyne.Size) {
	// Geometry is absolute, driven by the grid config; nothing scales here.
}

func (r *plannerGridRenderer) MinSize() fyne.Size {
	cfg := r.grid.Store.Config()
	return fyne.NewSize(cfg.Width(), cfg.Height())
}

func (r *plannerGridRenderer) Refresh() {
	r.rebuild()
	for _, o := range r.objects {
		o.Refresh()
	}
}

func (r *plannerGridRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *plannerGridRenderer) Destroy() {
}

// rebuild regenerates every canvas primitive from the store: grid lines,
// headers, committed blocks, the selection outline, and the drag preview.
func (r *plannerGridRenderer) rebuild() {
	cfg := r.grid.Store.Config()

	r.background.FillColor = theme.BackgroundColor()
	r.background.Resize(fyne.NewSize(cfg.Width(), cfg.Height()))
	objects := []fyne.CanvasObject{r.background}

	lineColor := theme.DisabledColor()
	for d := 0; d <= cfg.Days; d++ {
		x := cfg.OriginX + float32(d)*cfg.CellWidth
		objects = append(objects, gridLine(x, cfg.OriginY, x, cfg.Height(), lineColor))
	}
	for row := 0; row <= cfg.Rows; row++ {
		y := cfg.OriginY + float32(row)*cfg.CellHeight
		objects = append(objects, gridLine(cfg.OriginX, y, cfg.Width(), y, lineColor))
	}

	headerColor := theme.ForegroundColor()
	for d := 0; d < cfg.Days; d++ {
		label := canvas.NewText(cfg.DayName(d), headerColor)
		label.TextSize = 12
		label.TextStyle = fyne.TextStyle{Bold: true}
		label.Alignment = fyne.TextAlignCenter
		label.Resize(fyne.NewSize(cfg.CellWidth, cfg.OriginY))
		label.Move(fyne.NewPos(cfg.OriginX+float32(d)*cfg.CellWidth, 2))
		objects = append(objects, label)
	}
	for row := 0; row <= cfg.Rows; row++ {
		label := canvas.NewText(cfg.SlotToTime(row), headerColor)
		label.TextSize = 10
		label.Alignment = fyne.TextAlignTrailing
		label.Resize(fyne.NewSize(cfg.OriginX-6, 12))
		label.Move(fyne.NewPos(0, cfg.OriginY+float32(row)*cfg.CellHeight-6))
		objects = append(objects, label)
	}

	selectedID := r.grid.Store.SelectedID()
	for _, b := range r.grid.Store.Blocks() {
		rect := canvas.NewRectangle(parseHexColor(b.Color))
		rect.CornerRadius = 3
		if b.ID == selectedID {
			rect.StrokeColor = theme.PrimaryColor()
			rect.StrokeWidth = 2
		}
		rect.Move(fyne.NewPos(b.Bounds.X+1, b.Bounds.Y+1))
		rect.Resize(fyne.NewSize(b.Bounds.Width-2, b.Bounds.Height-2))
		objects = append(objects, rect)

		if b.Label != "" && b.ID != r.grid.editingID {
			text := canvas.NewText(b.Label, color.White)
			text.TextSize = 11
			text.Move(fyne.NewPos(b.Bounds.X+6, b.Bounds.Y+4))
			objects = append(objects, text)
		}
	}

	if p := r.grid.gesture.preview; p != nil {
		// Move/resize previews keep the block's own color; creation
		// previews have none yet and use the default.
		tint := p.Color
		if tint == "" {
			tint = r.grid.DefaultColor
		}
		rect := canvas.NewRectangle(withAlpha(parseHexColor(tint), 0x60))
		rect.CornerRadius = 3
		rect.StrokeColor = theme.PrimaryColor()
		rect.StrokeWidth = 1
		rect.Move(fyne.NewPos(p.Bounds.X+1, p.Bounds.Y+1))
		rect.Resize(fyne.NewSize(p.Bounds.Width-2, p.Bounds.Height-2))
		objects = append(objects, rect)
	}

	r.objects = objects
}

func gridLine(x1, y1, x2, y2 float32, c color.Color) *canvas.Line {
	line := canvas.NewLine(c)
	line.StrokeWidth = 1
	line.Position1 = fyne.NewPos(x1, y1)
	line.Position2 = fyne.NewPos(x2, y2)
	return line
}

func withAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}
