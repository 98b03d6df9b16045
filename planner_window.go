package main

import (
	"fmt"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/dsebastien/week-planner/pkg/models"
	"github.com/dsebastien/week-planner/pkg/store"
	"github.com/dsebastien/week-planner/pkg/ui/components"
)

// resizeDebounce coalesces rapid window-resize events into one grid
// geometry recompute after a short quiescent delay.
const resizeDebounce = 150 * time.Millisecond

type PlannerWindow struct {
	window fyne.Window
	app    fyne.App
	config *Config
	store  *store.BlockStore
	grid   *components.PlannerGrid

	statusLabel  *widget.Label
	openSettings func()

	resizeMu    sync.Mutex
	resizeTimer *time.Timer
	areaSize    fyne.Size
}

func NewPlannerWindow(app fyne.App, config *Config, st *store.BlockStore, openSettings func()) *PlannerWindow {
	pw := &PlannerWindow{
		app:          app,
		config:       config,
		store:        st,
		openSettings: openSettings,
	}

	pw.window = app.NewWindow("Week Planner")
	pw.buildUI()

	return pw
}

func (pw *PlannerWindow) buildUI() {
	pw.grid = components.NewPlannerGrid(pw.store)
	pw.grid.DefaultColor = pw.config.DefaultColor
	pw.grid.DefaultLabel = pw.config.DefaultLabel
	pw.grid.OnError = pw.showValidationError
	pw.grid.OnChanged = pw.refreshStatus

	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() {
			pw.grid.StartEditingSelected()
		}),
		widget.NewToolbarAction(theme.DeleteIcon(), pw.deleteSelected),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.FolderOpenIcon(), pw.importPlan),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), pw.exportJSON),
		widget.NewToolbarSpacer(),
		widget.NewToolbarAction(theme.SettingsIcon(), pw.openSettings),
	)

	pw.statusLabel = widget.NewLabel("")
	pw.refreshStatus()

	area := newGridArea(container.NewScroll(pw.grid), pw.handleResize)

	pw.window.SetMainMenu(pw.buildMainMenu())
	pw.window.SetContent(container.NewBorder(toolbar, pw.statusLabel, nil, nil, area))
	pw.window.Resize(fyne.NewSize(1000, 700))
}

func (pw *PlannerWindow) buildMainMenu() *fyne.MainMenu {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Import Plan...", pw.importPlan),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export JSON...", pw.exportJSON),
		fyne.NewMenuItem("Export SVG...", pw.exportSVG),
		fyne.NewMenuItem("Export PNG...", pw.exportPNG),
		fyne.NewMenuItem("Export iCalendar...", pw.exportICal),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Settings...", func() { pw.openSettings() }),
	)
	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Edit Label", func() { pw.grid.StartEditingSelected() }),
		fyne.NewMenuItem("Delete Block", pw.deleteSelected),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Clear All...", pw.confirmClearAll),
	)
	return fyne.NewMainMenu(fileMenu, editMenu)
}

func (pw *PlannerWindow) ShowAndRun() {
	pw.window.ShowAndRun()
}

// ApplyConfig is called after the settings window saved new values. It
// refits the (possibly resized) grid into the current planner area.
func (pw *PlannerWindow) ApplyConfig(config *Config) {
	pw.config = config
	pw.grid.DefaultColor = config.DefaultColor
	pw.grid.DefaultLabel = config.DefaultLabel

	pw.resizeMu.Lock()
	size := pw.areaSize
	pw.resizeMu.Unlock()
	if size.Width > 0 && size.Height > 0 {
		pw.fitGrid(size)
	} else {
		pw.grid.Refresh()
		pw.refreshStatus()
	}
}

func (pw *PlannerWindow) deleteSelected() {
	if id := pw.store.SelectedID(); id != "" {
		if pw.store.RemoveBlock(id) {
			pw.grid.Refresh()
			pw.refreshStatus()
		}
	}
}

// handleResize is called for every size change of the planner area; the
// actual recompute runs once the events go quiet.
func (pw *PlannerWindow) handleResize(size fyne.Size) {
	pw.resizeMu.Lock()
	defer pw.resizeMu.Unlock()

	pw.areaSize = size
	if pw.resizeTimer != nil {
		pw.resizeTimer.Stop()
	}
	pw.resizeTimer = time.AfterFunc(resizeDebounce, func() {
		fyne.Do(func() { pw.fitGrid(size) })
	})
}

// fitGrid stretches cell geometry so the grid fills the planner area,
// then pushes the new config through the store to recompute block bounds.
func (pw *PlannerWindow) fitGrid(size fyne.Size) {
	cfg := pw.store.Config()

	cellWidth := (size.Width - cfg.OriginX) / float32(cfg.Days)
	cellHeight := (size.Height - cfg.OriginY) / float32(cfg.Rows)
	if cellWidth < minCellWidth {
		cellWidth = minCellWidth
	}
	if cellHeight < minCellHeight {
		cellHeight = minCellHeight
	}
	cfg.CellWidth = cellWidth
	cfg.CellHeight = cellHeight

	if err := pw.store.UpdateConfig(cfg); err != nil {
		log.Printf("Error refitting grid: %v", err)
		return
	}
	pw.grid.Refresh()
	pw.refreshStatus()
}

func (pw *PlannerWindow) refreshStatus() {
	cfg := pw.store.Config()
	pw.statusLabel.SetText(fmt.Sprintf("%d blocks  |  %d days, %s-%s in %d min slots",
		pw.store.Len(), cfg.Days, cfg.SlotToTime(0), cfg.SlotToTime(cfg.Rows), cfg.SlotMinutes))
}

// showValidationError surfaces a rejected mutation in the status bar, then
// restores the normal status once the message has been visible for a while.
func (pw *PlannerWindow) showValidationError(err error) {
	ve, ok := models.AsValidationError(err)
	if !ok {
		log.Printf("Unexpected planner error: %v", err)
		return
	}

	msg := "Rejected: " + ve.Message
	pw.statusLabel.SetText(msg)
	log.Printf("Block rejected (%s): %s", ve.Kind, ve.Message)

	go func() {
		time.Sleep(3 * time.Second)
		fyne.Do(func() {
			if pw.statusLabel.Text == msg {
				pw.refreshStatus()
			}
		})
	}()
}

// gridArea hosts the scrollable grid and reports size changes so the window
// can refit cell geometry.
type gridArea struct {
	widget.BaseWidget
	content  fyne.CanvasObject
	onResize func(fyne.Size)
}

func newGridArea(content fyne.CanvasObject, onResize func(fyne.Size)) *gridArea {
	a := &gridArea{content: content, onResize: onResize}
	a.ExtendBaseWidget(a)
	return a
}

func (a *gridArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(a.content)
}

func (a *gridArea) Resize(size fyne.Size) {
	a.BaseWidget.Resize(size)
	if a.onResize != nil {
		a.onResize(size)
	}
}
